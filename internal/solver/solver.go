// Package solver selects non-overlapping interval subsets that
// maximize a blended count/cost objective controlled by a single
// trade-off parameter.
package solver

import "sort"

// Solve picks the best non-overlapping subset of intervals for the
// given trade-off. tradeOff 1 maximizes the number of selected
// intervals and reports that count as the score; tradeOff 0
// prioritizes cost, admitting only zero-cost intervals in practice;
// anything in between blends the two and reports the accumulated
// blend score divided by the scale factor. Values outside [0, 1] are
// accepted and extrapolate the blend linearly.
//
// The input slice is never reordered; the solver sorts a private copy
// by end time. An empty input yields an empty selection and score 0.
func Solve(intervals []Interval, tradeOff float64) ([]Interval, float64) {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].End < sorted[b].End })

	tradeOffScaled := scaleTradeOff(tradeOff)
	n := len(sorted)

	// scores[i] is the best attainable score over the first i sorted
	// intervals. Instead of materializing a selection list per cell,
	// each cell records whether it included sorted[i-1] and which
	// earlier cell its selection extends; backtracking over those
	// links reproduces the same selection in O(n) space.
	scores := make([]int64, n+1)
	included := make([]bool, n+1)
	parent := make([]int, n+1)

	for i := 1; i <= n; i++ {
		iv := sorted[i-1]

		excludeScore := scores[i-1]

		pred := LastCompatible(sorted, i-1)
		includeScore := scores[pred+1] + includeGain(tradeOff, tradeOffScaled, iv.Cost)

		// Ties keep the exclusion, so equal-score duplicates compete
		// and only the first survives.
		if includeScore > excludeScore {
			scores[i] = includeScore
			included[i] = true
			parent[i] = pred + 1
		} else {
			scores[i] = excludeScore
			parent[i] = i - 1
		}
	}

	selected := backtrack(sorted, included, parent, n)

	if tradeOff == 1 {
		return selected, float64(len(selected))
	}
	return selected, float64(scores[n]) / scaleFactor
}

// backtrack walks the parent links from the final cell and returns the
// selected intervals in ascending end-time order.
func backtrack(sorted []Interval, included []bool, parent []int, n int) []Interval {
	var picked []Interval
	for i := n; i > 0; i = parent[i] {
		if included[i] {
			picked = append(picked, sorted[i-1])
		}
	}

	selected := make([]Interval, 0, len(picked))
	for j := len(picked) - 1; j >= 0; j-- {
		selected = append(selected, picked[j])
	}
	return selected
}
