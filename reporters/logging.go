package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/assoc/types/itemset"
)

type Log struct {
	fmtr   itemset.Formatter
	level  string
	prefix string
	count  int
}

func NewLog(fmtr itemset.Formatter, level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{fmtr: fmtr, level: level, prefix: prefix}
}

func (lr *Log) Report(items *itemset.Itemset, count int) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s %v %v", lr.prefix, lr.count, lr.fmtr.FormatPattern(items, count))
	} else {
		errors.Logf(lr.level, "%v %v", lr.count, lr.fmtr.FormatPattern(items, count))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
