// Package rules derives association rules from the frequent itemset levels
// produced by the miners.
package rules

import (
	"fmt"
	"math"
)

import (
	"github.com/timtadh/data-structures/hashtable"
)

import (
	"github.com/timtadh/assoc/stats"
	"github.com/timtadh/assoc/types/itemset"
)

type Rule struct {
	Antecedent *itemset.Itemset
	Consequent *itemset.Itemset
	Support    float64
	Confidence float64
	Lift       float64
	Leverage   float64
	// Conviction is +Inf when Confidence is 1.
	Conviction float64
	Zhangs     float64
	Jaccard    float64
	// Certainty is 0 when the consequent occurs in every transaction.
	Certainty  float64
	Kulczynski float64
}

func (r *Rule) String() string {
	return fmt.Sprintf("%v -> %v (supp %.4f, conf %.4f, lift %.4f)",
		r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift)
}

// Derive enumerates, for every frequent itemset F of size >= 2, every
// nonempty proper split of F into antecedent and consequent, scores the
// split against the flattened level supports, and keeps the rules whose
// confidence meets minConfidence. Splits whose antecedent or consequent
// support is unknown or zero cannot be scored and are skipped.
func Derive(levels []*itemset.Level, txs itemset.Transactions, minConfidence float64) ([]*Rule, error) {
	if minConfidence < 0 || minConfidence > 1 {
		return nil, &itemset.InvalidThreshold{Name: "confidence", Value: minConfidence}
	}
	if len(txs) == 0 {
		return nil, &itemset.EmptyTransactions{}
	}
	flat := hashtable.NewLinearHash()
	for _, level := range levels {
		err := level.Do(func(items *itemset.Itemset, count int) error {
			return flat.Put(items, count)
		})
		if err != nil {
			return nil, err
		}
	}
	supp := func(items *itemset.Itemset) (float64, bool) {
		if !flat.Has(items) {
			return 0, false
		}
		count, err := flat.Get(items)
		if err != nil {
			return 0, false
		}
		return float64(count.(int)) / float64(txs.Len()), true
	}
	derived := make([]*Rule, 0, 10)
	for _, level := range levels {
		if level.K < 2 {
			continue
		}
		for _, f := range level.Itemsets() {
			suppF, _ := supp(f)
			for _, a := range splits(f) {
				c := f.Subtract(a)
				suppA, okA := supp(a)
				suppC, okC := supp(c)
				if !okA || !okC || suppA == 0 || suppC == 0 {
					continue
				}
				confidence := suppF / suppA
				if confidence < minConfidence {
					continue
				}
				derived = append(derived, score(a, c, suppF, suppA, suppC))
			}
		}
	}
	return derived, nil
}

func score(a, c *itemset.Itemset, suppF, suppA, suppC float64) *Rule {
	confidence := suppF / suppA
	conviction := math.Inf(1)
	if confidence < 1 {
		conviction = (1 - suppC) / (1 - confidence)
	}
	zhangs := 0.0
	if denom := stats.Max(suppF*(1-suppA), suppA*(suppC-suppF)); denom != 0 {
		zhangs = (suppF - suppA*suppC) / denom
	}
	certainty := 0.0
	if suppC < 1 {
		certainty = (confidence - suppC) / (1 - suppC)
	}
	return &Rule{
		Antecedent: a,
		Consequent: c,
		Support:    suppF,
		Confidence: confidence,
		Lift:       confidence / suppC,
		Leverage:   suppF - suppA*suppC,
		Conviction: conviction,
		Zhangs:     zhangs,
		Jaccard:    suppF / (suppA + suppC - suppF),
		Certainty:  certainty,
		Kulczynski: 0.5 * (suppF/suppA + suppF/suppC),
	}
}

// splits lists every nonempty proper subset of f, each a candidate
// antecedent. The complement within f is the matching consequent.
func splits(f *itemset.Itemset) []*itemset.Itemset {
	items := f.Items()
	subsets := make([]*itemset.Itemset, 0, (1<<len(items))-2)
	for mask := 1; mask < (1<<len(items))-1; mask++ {
		sub := make([]string, 0, len(items))
		for i, item := range items {
			if mask&(1<<i) != 0 {
				sub = append(sub, item)
			}
		}
		subsets = append(subsets, itemset.NewItemset(sub...))
	}
	return subsets
}
