package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/types/itemset"
)

type File struct {
	config   *config.Config
	fmtr     itemset.Formatter
	patterns io.WriteCloser
}

func NewFile(c *config.Config, fmtr itemset.Formatter, patternsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		patterns: patterns,
	}
	return r, nil
}

func (r *File) Report(items *itemset.Itemset, count int) error {
	_, err := fmt.Fprintln(r.patterns, r.fmtr.FormatPattern(items, count))
	return err
}

func (r *File) Close() error {
	return r.patterns.Close()
}
