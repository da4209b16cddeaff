package levelwise

import (
	"sync"
)

import (
	"github.com/timtadh/assoc/types/itemset"
)

// CountSupport scans every transaction for every candidate and keeps the
// candidates whose relative support meets the configured threshold. The
// candidate list is sharded across Config.Workers() goroutines; each worker
// owns a disjoint stride of the counts slice so the merge is just the slice
// itself.
func (m *Miner) CountSupport(k int, candidates []*itemset.Itemset, txs itemset.Transactions) *itemset.Level {
	counts := make([]int, len(candidates))
	workers := m.Config.Workers()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(shard int) {
			defer wg.Done()
			for i := shard; i < len(candidates); i += workers {
				for _, tx := range txs {
					if candidates[i].SubsetOf(tx) {
						counts[i]++
					}
				}
			}
		}(w)
	}
	wg.Wait()
	level := itemset.NewLevel(k)
	n := float64(txs.Len())
	for i, c := range candidates {
		if float64(counts[i])/n >= m.Config.Support {
			level.Add(c, counts[i])
		}
	}
	return level
}
