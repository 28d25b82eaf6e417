package solver

// LastCompatible returns the largest index j < i such that sorted[j]
// ends strictly before sorted[i] starts, or -1 when every earlier
// interval overlaps. sorted must be ordered by End ascending; ties on
// End are fine because the end < start predicate stays monotonic
// across them.
func LastCompatible(sorted []Interval, i int) int {
	low, high := 0, i-1
	for low <= high {
		mid := (low + high) / 2
		if sorted[mid].End < sorted[i].Start {
			if sorted[mid+1].End < sorted[i].Start {
				low = mid + 1
			} else {
				return mid
			}
		} else {
			high = mid - 1
		}
	}
	return -1
}
