package tabular

// DedupConsecutive blanks out consecutive duplicate values, keeping the
// first of each run:
//
//	DedupConsecutive([]string{"foo", "foo", "bar"}, "") == []string{"foo", "", "bar"}
//
// Comparison is always against the original input, so a run is never
// confused with the blank value itself.
func DedupConsecutive[T comparable](items []T, blank T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		if i > 0 && items[i-1] == v {
			out[i] = blank
			continue
		}
		out[i] = v
	}
	return out
}
