package bundle

import "sort"

// SortCandidates orders the candidate list in place. SortByType groups files
// by extension (ordinal compare) and orders each group by file name;
// SortByName orders by file name alone. The sort is stable, so files that
// compare equal keep their scan order.
func SortCandidates(candidates []Candidate, mode SortMode) {
	switch mode {
	case SortByType:
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].Ext != candidates[j].Ext {
				return candidates[i].Ext < candidates[j].Ext
			}
			return candidates[i].Name < candidates[j].Name
		})
	default:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Name < candidates[j].Name
		})
	}
}
