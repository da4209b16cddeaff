// Package graph holds the bipartite incidence structure between transactions
// and the items they contain. Transaction nodes are types.Int positions and
// item nodes are types.String labels, so the two partitions can never
// collide no matter what the item labels look like.
package graph

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/assoc/types/itemset"
)

type Incidence struct {
	adj *hashtable.LinearHash // node -> *set.SortedSet of neighbors
}

func NewIncidence(txs itemset.Transactions) *Incidence {
	g := &Incidence{adj: hashtable.NewLinearHash()}
	for _, tx := range txs {
		for _, item := range tx.Items() {
			g.addEdge(types.Int(tx.Pos()), types.String(item))
		}
	}
	return g
}

func (g *Incidence) addEdge(u, v types.Hashable) {
	g.neighbors(u).Add(v)
	g.neighbors(v).Add(u)
}

func (g *Incidence) neighbors(u types.Hashable) *set.SortedSet {
	if g.adj.Has(u) {
		n, err := g.adj.Get(u)
		if err == nil {
			return n.(*set.SortedSet)
		}
	}
	n := set.NewSortedSet(10)
	g.adj.Put(u, n)
	return n
}

func (g *Incidence) Degree(u types.Hashable) int {
	if !g.adj.Has(u) {
		return 0
	}
	n, err := g.adj.Get(u)
	if err != nil {
		return 0
	}
	return n.(*set.SortedSet).Size()
}

// SeedItems gives the items incident to at least one transaction: the
// candidate universe for the first mining level. It queries the item
// partition of the node set rather than unioning the transactions.
func (g *Incidence) SeedItems() *set.SortedSet {
	items := set.NewSortedSet(g.adj.Size())
	for u, next := g.adj.Keys()(); next != nil; u, next = next() {
		item, ok := u.(types.String)
		if !ok {
			continue // transaction node
		}
		if g.Degree(item) > 0 {
			items.Add(item)
		}
	}
	return items
}
