package tabular

// Shorten computes the shortest prefix abbreviation for every name such
// that all abbreviations are pairwise distinct. Names are compared by
// abbreviation value, not position, and every colliding name is extended by
// one character per round. Extension caps at the full name: two identical
// inputs can never become distinct and are returned at full length as-is.
// Output is positionally aligned with the input.
func Shorten(names []string) []string {
	lengths := make([]int, len(names))
	for i, n := range names {
		if len(n) > 0 {
			lengths[i] = 1
		}
	}
	abbrev := func(i int) string { return names[i][:lengths[i]] }

	for {
		counts := make(map[string]int, len(names))
		for i := range names {
			counts[abbrev(i)]++
		}

		extended := false
		for i := range names {
			if counts[abbrev(i)] > 1 && lengths[i] < len(names[i]) {
				lengths[i]++
				extended = true
			}
		}
		if !extended {
			break
		}
	}

	out := make([]string, len(names))
	for i := range names {
		out[i] = abbrev(i)
	}
	return out
}
