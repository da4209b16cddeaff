package miners

import (
	"github.com/timtadh/assoc/types/itemset"
)

// Note: reporters are owned by the caller; the miner's Close only releases
// the miner's own resources.
type Miner interface {
	Mine(txs itemset.Transactions, rpt Reporter) ([]*itemset.Level, error)
	Close() error
}

type Reporter interface {
	Report(items *itemset.Itemset, count int) error
	Close() error
}
