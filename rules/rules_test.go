package rules

import "testing"
import "math"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/miners/levelwise"
	"github.com/timtadh/assoc/types/itemset"
)

var baskets = [][]string{
	{"a", "b", "c"},
	{"a", "c"},
	{"b", "c", "d"},
	{"a", "c", "d"},
	{"b", "c"},
}

func transactions(baskets [][]string) itemset.Transactions {
	txs := make(itemset.Transactions, 0, len(baskets))
	for i, items := range baskets {
		txs = append(txs, itemset.NewTransaction(i, items))
	}
	return txs
}

type discard struct{}

func (r *discard) Report(items *itemset.Itemset, count int) error { return nil }
func (r *discard) Close() error                                   { return nil }

func mined(t *assert.Assertions, support float64) ([]*itemset.Level, itemset.Transactions) {
	txs := transactions(baskets)
	m := levelwise.NewMiner(&config.Config{Support: support})
	levels, err := m.Mine(txs, &discard{})
	t.Nil(err)
	return levels, txs
}

func find(rules []*Rule, a, c *itemset.Itemset) *Rule {
	for _, r := range rules {
		if r.Antecedent.Equals(a) && r.Consequent.Equals(c) {
			return r
		}
	}
	return nil
}

func TestDerive(x *testing.T) {
	t := assert.New(x)
	levels, txs := mined(t, .6)
	rules, err := Derive(levels, txs, .6)
	t.Nil(err)
	t.Equal(4, len(rules))

	a, c, b := itemset.NewItemset("a"), itemset.NewItemset("c"), itemset.NewItemset("b")

	ac := find(rules, a, c)
	if t.NotNil(ac, "missing a -> c") {
		t.InDelta(.6, ac.Support, 1e-9)
		t.InDelta(1.0, ac.Confidence, 1e-9)
		t.InDelta(1.0, ac.Lift, 1e-9)
		t.InDelta(0.0, ac.Leverage, 1e-9)
		t.True(math.IsInf(ac.Conviction, 1), "conviction should be +Inf at confidence 1")
		t.InDelta(0.0, ac.Zhangs, 1e-9)
		t.InDelta(.6, ac.Jaccard, 1e-9)
		t.InDelta(0.0, ac.Certainty, 1e-9) // supp(c) is 1
		t.InDelta(.8, ac.Kulczynski, 1e-9)
	}

	ca := find(rules, c, a)
	if t.NotNil(ca, "missing c -> a") {
		t.InDelta(.6, ca.Support, 1e-9)
		t.InDelta(.6, ca.Confidence, 1e-9)
		t.InDelta(1.0, ca.Lift, 1e-9)
		t.InDelta(1.0, ca.Conviction, 1e-9)
		t.InDelta(0.0, ca.Certainty, 1e-9)
	}

	bc := find(rules, b, c)
	if t.NotNil(bc, "missing b -> c") {
		t.InDelta(1.0, bc.Confidence, 1e-9)
	}
	cb := find(rules, c, b)
	if t.NotNil(cb, "missing c -> b") {
		t.InDelta(.6, cb.Confidence, 1e-9)
	}
}

func TestDeriveBounds(x *testing.T) {
	t := assert.New(x)
	levels, txs := mined(t, .4)
	rules, err := Derive(levels, txs, 0)
	t.Nil(err)
	t.True(len(rules) > 0)
	n := float64(txs.Len())
	flat := make(map[string]int)
	for _, level := range levels {
		level.Do(func(items *itemset.Itemset, count int) error {
			flat[string(items.Label())] = count
			return nil
		})
	}
	for _, r := range rules {
		t.True(r.Confidence >= 0 && r.Confidence <= 1, "confidence %v out of range", r.Confidence)
		suppA := float64(flat[string(r.Antecedent.Label())]) / n
		suppC := float64(flat[string(r.Consequent.Label())]) / n
		t.True(r.Support <= suppA+1e-9, "%v: support > antecedent support", r)
		t.True(r.Support <= suppC+1e-9, "%v: support > consequent support", r)
	}
}

func TestDeriveConfidenceFilter(x *testing.T) {
	t := assert.New(x)
	levels, txs := mined(t, .6)
	all, err := Derive(levels, txs, 0)
	t.Nil(err)
	strict, err := Derive(levels, txs, .9)
	t.Nil(err)
	t.True(len(strict) < len(all))
	for _, r := range strict {
		t.True(r.Confidence >= .9, "%v below confidence filter", r)
	}
}

func TestDeriveEmptyLevels(x *testing.T) {
	t := assert.New(x)
	txs := transactions(baskets)
	rules, err := Derive(nil, txs, .5)
	t.Nil(err)
	t.Equal(0, len(rules))
}

func TestDeriveSkipsMissingSubsets(x *testing.T) {
	t := assert.New(x)
	// {a, b} is frequent but {b} was never recorded: the b-sided splits
	// cannot be scored and must be skipped, not fabricated
	l1 := itemset.NewLevel(1)
	l1.Add(itemset.NewItemset("a"), 3)
	l2 := itemset.NewLevel(2)
	l2.Add(itemset.NewItemset("a", "b"), 2)
	rules, err := Derive([]*itemset.Level{l1, l2}, transactions(baskets), 0)
	t.Nil(err)
	t.Equal(0, len(rules))
}

func TestDeriveBadThreshold(x *testing.T) {
	t := assert.New(x)
	levels, txs := mined(t, .6)
	for _, confidence := range []float64{-.1, 1.1} {
		_, err := Derive(levels, txs, confidence)
		if t.NotNil(err) {
			_, ok := err.(*itemset.InvalidThreshold)
			t.True(ok, "expected InvalidThreshold, got %v", err)
		}
	}
}

func TestDeriveNoTransactions(x *testing.T) {
	t := assert.New(x)
	_, err := Derive(nil, itemset.Transactions{}, .5)
	if t.NotNil(err) {
		_, ok := err.(*itemset.EmptyTransactions)
		t.True(ok, "expected EmptyTransactions, got %v", err)
	}
}

func TestSplits(x *testing.T) {
	t := assert.New(x)
	f := itemset.NewItemset("a", "b", "c")
	subs := splits(f)
	t.Equal(6, len(subs))
	for _, a := range subs {
		t.True(a.Size() >= 1 && a.Size() < f.Size(), "%v not a proper split", a)
		c := f.Subtract(a)
		t.True(a.Union(c).Equals(f))
	}
}
