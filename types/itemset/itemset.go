package itemset

import (
	"encoding/binary"
	"strings"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// An Itemset is an unordered, duplicate free collection of item labels. It
// is Hashable so itemsets can key LinearHashes and be members of sets.
type Itemset struct {
	items *set.SortedSet
}

func NewItemset(items ...string) *Itemset {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		s.Add(types.String(item))
	}
	return &Itemset{items: s}
}

func FromSet(items *set.SortedSet) *Itemset {
	return &Itemset{items: items}
}

func (i *Itemset) Size() int {
	return i.items.Size()
}

func (i *Itemset) Has(item string) bool {
	return i.items.Has(types.String(item))
}

func (i *Itemset) Set() *set.SortedSet {
	return i.items
}

// Items lists the item labels in sorted order.
func (i *Itemset) Items() []string {
	items := make([]string, 0, i.items.Size())
	for item, next := i.items.Items()(); next != nil; item, next = next() {
		items = append(items, string(item.(types.String)))
	}
	return items
}

func (i *Itemset) Copy() *Itemset {
	return &Itemset{items: i.items.Copy()}
}

func (i *Itemset) Extend(item string) *Itemset {
	items := i.items.Copy()
	items.Add(types.String(item))
	return &Itemset{items: items}
}

func (i *Itemset) Union(o *Itemset) *Itemset {
	items := i.items.Copy()
	for item, next := o.items.Items()(); next != nil; item, next = next() {
		items.Add(item)
	}
	return &Itemset{items: items}
}

// Subtract makes the itemset of the items in i but not in o.
func (i *Itemset) Subtract(o *Itemset) *Itemset {
	items := set.NewSortedSet(i.items.Size())
	for item, next := i.items.Items()(); next != nil; item, next = next() {
		if !o.items.Has(item) {
			items.Add(item)
		}
	}
	return &Itemset{items: items}
}

func (i *Itemset) SubsetOf(t *Transaction) bool {
	for item, next := i.items.Items()(); next != nil; item, next = next() {
		if !t.items.Has(item) {
			return false
		}
	}
	return true
}

func (i *Itemset) Equals(o types.Equatable) bool {
	if x, ok := o.(*Itemset); ok {
		return i.items.Equals(x.items)
	}
	return false
}

func (i *Itemset) Less(o types.Sortable) bool {
	if x, ok := o.(*Itemset); ok {
		return i.items.Less(x.items)
	}
	return false
}

func (i *Itemset) Hash() int {
	return i.items.Hash()
}

// Label serializes the itemset as a length prefixed list of length prefixed
// item labels. Equal itemsets produce equal labels.
func (i *Itemset) Label() []byte {
	bytes := make([]byte, 4, 4*(i.items.Size()+1))
	binary.BigEndian.PutUint32(bytes[0:4], uint32(i.items.Size()))
	for item, next := i.items.Items()(); next != nil; item, next = next() {
		label := string(item.(types.String))
		s := len(bytes)
		bytes = append(bytes, make([]byte, 4+len(label))...)
		binary.BigEndian.PutUint32(bytes[s:s+4], uint32(len(label)))
		copy(bytes[s+4:], label)
	}
	return bytes
}

func (i *Itemset) String() string {
	return "{" + strings.Join(i.Items(), ", ") + "}"
}
