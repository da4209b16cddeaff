package reporters

import ()

import (
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/types/itemset"
)

type Chain struct {
	Reporters []miners.Reporter
}

func (r *Chain) Report(items *itemset.Itemset, count int) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(items, count)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
