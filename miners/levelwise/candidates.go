package levelwise

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/assoc/types/itemset"
)

// Candidates emits every size k combination over the items appearing in the
// previous level's frequent itemsets. Note: this is not the classical
// apriori join-then-prune. Only the item universe is restricted; a candidate
// is generated even when some of its subsets were never frequent. Pruning
// the candidates by subset frequency would change the support counts the
// engine reports, so keep it this way.
func Candidates(prev *itemset.Level, k int) []*itemset.Itemset {
	if prev == nil || prev.Size() == 0 || k < 2 {
		return nil
	}
	universe := set.NewSortedSet(prev.Size() * prev.K)
	for _, items := range prev.Itemsets() {
		for item, next := items.Set().Items()(); next != nil; item, next = next() {
			universe.Add(item)
		}
	}
	items := make([]string, 0, universe.Size())
	for item, next := universe.Items()(); next != nil; item, next = next() {
		items = append(items, string(item.(types.String)))
	}
	combs := combinations(items, k)
	candidates := make([]*itemset.Itemset, 0, len(combs))
	for _, comb := range combs {
		candidates = append(candidates, itemset.NewItemset(comb...))
	}
	return candidates
}

func combinations(items []string, k int) [][]string {
	if k <= 0 || k > len(items) {
		return nil
	}
	combs := make([][]string, 0, 10)
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		comb := make([]string, k)
		for i, j := range idx {
			comb[i] = items[j]
		}
		combs = append(combs, comb)
		i := k - 1
		for i >= 0 && idx[i] == len(items)-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return combs
}
