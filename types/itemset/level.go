package itemset

import (
	"github.com/timtadh/data-structures/hashtable"
)

// A Level maps the frequent itemsets of a fixed size K to their absolute
// support counts.
type Level struct {
	K      int
	counts *hashtable.LinearHash
}

func NewLevel(k int) *Level {
	return &Level{
		K:      k,
		counts: hashtable.NewLinearHash(),
	}
}

func (l *Level) Add(items *Itemset, count int) error {
	return l.counts.Put(items, count)
}

func (l *Level) Count(items *Itemset) (int, bool) {
	if !l.counts.Has(items) {
		return 0, false
	}
	count, err := l.counts.Get(items)
	if err != nil {
		return 0, false
	}
	return count.(int), true
}

func (l *Level) Size() int {
	return l.counts.Size()
}

func (l *Level) Itemsets() []*Itemset {
	itemsets := make([]*Itemset, 0, l.counts.Size())
	for k, next := l.counts.Keys()(); next != nil; k, next = next() {
		itemsets = append(itemsets, k.(*Itemset))
	}
	return itemsets
}

func (l *Level) Do(do func(items *Itemset, count int) error) error {
	for k, v, next := l.counts.Iterate()(); next != nil; k, v, next = next() {
		err := do(k.(*Itemset), v.(int))
		if err != nil {
			return err
		}
	}
	return nil
}
