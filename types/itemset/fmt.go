package itemset

import (
	"fmt"
)

type Formatter struct {
	N int // total transaction count, for relative support
}

func (f Formatter) FileExt() string {
	return ".items"
}

func (f Formatter) PatternName(items *Itemset) string {
	return items.String()
}

func (f Formatter) FormatPattern(items *Itemset, count int) string {
	if f.N > 0 {
		return fmt.Sprintf("%v %d %.4f", items, count, float64(count)/float64(f.N))
	}
	return fmt.Sprintf("%v %d", items, count)
}
