package events

const (
	SubjectPlanStats = "planfold.plan.stats"

	StreamName   = "PLANFOLD_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectPlanComputed(planID string) string { return "planfold.plan." + planID + ".computed" }
func SubjectPlanStored(planID string) string   { return "planfold.plan." + planID + ".stored" }
