package analysis

import "sort"

// RankByStdDev orders summaries by ascending funding-ratio dispersion, so the
// most stable allocation comes first. Ties keep their input order.
func RankByStdDev(summaries []Summary) []Summary {
	out := make([]Summary, len(summaries))
	copy(out, summaries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StdDev < out[j].StdDev
	})
	return out
}
