package solver

// scaleFactor keeps the blended objective in integer arithmetic: the
// trade-off is scaled to thousandths before the accumulation and the
// final score is divided back down.
const scaleFactor = 1000

// scaleTradeOff converts the trade-off into its integer form. The
// conversion truncates toward zero, so trade-offs that are not
// multiples of 0.001 round down.
func scaleTradeOff(tradeOff float64) int64 {
	return int64(tradeOff * scaleFactor)
}

// includeGain returns the integer score delta earned by adding an
// interval of the given cost on top of its predecessor chain.
//
// Zero-cost intervals at tradeOff 0 and every interval at tradeOff 1
// earn a flat +1. Everything else takes the blend: the scaled
// trade-off minus a cost penalty floored at zero. Costly intervals at
// tradeOff 0 therefore fall through to the blend and are penalized by
// scaleFactor*cost rather than ignored; see DESIGN.md before changing
// this branch order.
func includeGain(tradeOff float64, tradeOffScaled, cost int64) int64 {
	switch {
	case tradeOff == 0 && cost == 0:
		return 1
	case tradeOff == 1:
		return 1
	default:
		penalty := (scaleFactor - tradeOffScaled) * cost
		if penalty < 0 {
			penalty = 0
		}
		return tradeOffScaled - penalty
	}
}
