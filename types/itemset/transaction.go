package itemset

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// A Transaction is an unordered, duplicate free collection of item labels,
// identified by its position in the input sequence. Immutable once built.
type Transaction struct {
	pos   int
	items *set.SortedSet
}

type Transactions []*Transaction

func NewTransaction(pos int, items []string) *Transaction {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		s.Add(types.String(item))
	}
	return &Transaction{pos: pos, items: s}
}

func (t *Transaction) Pos() int {
	return t.pos
}

func (t *Transaction) Size() int {
	return t.items.Size()
}

func (t *Transaction) Has(item string) bool {
	return t.items.Has(types.String(item))
}

func (t *Transaction) Items() []string {
	items := make([]string, 0, t.items.Size())
	for item, next := t.items.Items()(); next != nil; item, next = next() {
		items = append(items, string(item.(types.String)))
	}
	return items
}

func (txs Transactions) Len() int {
	return len(txs)
}
