package solver

// Interval is an immutable time span with an associated selection cost.
// Start and End are inclusive integer timestamps; the solver assumes
// Start <= End but does not validate it.
type Interval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Cost  int64 `json:"cost"`
}

// Overlaps reports whether two intervals cannot coexist in a plan.
// Compatibility is strict: an interval must end before the next starts.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.End >= other.Start && other.End >= iv.Start
}

// TotalCost sums the cost of every interval in the slice.
func TotalCost(intervals []Interval) int64 {
	var total int64
	for _, iv := range intervals {
		total += iv.Cost
	}
	return total
}
