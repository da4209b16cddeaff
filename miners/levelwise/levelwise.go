// Package levelwise mines frequent itemsets breadth first: level k holds
// the frequent itemsets of size k, and level k+1 candidates are drawn from
// the items that survived level k.
package levelwise

import ()

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/graph"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/types/itemset"
)

type Miner struct {
	Config *config.Config
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{Config: conf}
}

// Mine runs the generate -> count -> prune cycle until a level comes back
// empty. The empty level is discarded; the frequent levels are returned in
// order of itemset size and each frequent itemset is passed to rpt as it is
// found.
func (m *Miner) Mine(txs itemset.Transactions, rpt miners.Reporter) ([]*itemset.Level, error) {
	if m.Config.Support <= 0 || m.Config.Support > 1 {
		return nil, &itemset.InvalidThreshold{Name: "support", Value: m.Config.Support}
	}
	if len(txs) == 0 {
		return nil, &itemset.EmptyTransactions{}
	}
	seed := graph.NewIncidence(txs).SeedItems()
	candidates := make([]*itemset.Itemset, 0, seed.Size())
	for item, next := seed.Items()(); next != nil; item, next = next() {
		candidates = append(candidates, itemset.NewItemset(string(item.(types.String))))
	}
	levels := make([]*itemset.Level, 0, 10)
	for k := 1; len(candidates) > 0; k++ {
		level := m.CountSupport(k, candidates, txs)
		if level.Size() == 0 {
			break
		}
		errors.Logf("INFO", "level %v: %v frequent itemsets of %v candidates", k, level.Size(), len(candidates))
		err := level.Do(func(items *itemset.Itemset, count int) error {
			return rpt.Report(items, count)
		})
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
		candidates = Candidates(level, k+1)
	}
	return levels, nil
}

func (m *Miner) Close() error {
	return nil
}
