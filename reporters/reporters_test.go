package reporters

import "testing"
import "os"
import "strings"
import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/types/itemset"
)

func TestCount(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	r, err := NewCount(conf, "count.txt")
	t.Nil(err)
	t.Nil(r.Report(itemset.NewItemset("a"), 3))
	t.Nil(r.Report(itemset.NewItemset("b"), 2))
	t.Nil(r.Close())
	bytes, err := os.ReadFile(conf.OutputFile("count.txt"))
	t.Nil(err)
	t.Equal("2\n", string(bytes))
}

func TestFile(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	fmtr := itemset.Formatter{N: 5}
	r, err := NewFile(conf, fmtr, "patterns")
	t.Nil(err)
	t.Nil(r.Report(itemset.NewItemset("a", "c"), 3))
	t.Nil(r.Close())
	bytes, err := os.ReadFile(conf.OutputFile("patterns" + fmtr.FileExt()))
	t.Nil(err)
	line := strings.TrimSpace(string(bytes))
	t.Equal("{a, c} 3 0.6000", line)
}

func TestChain(x *testing.T) {
	t := assert.New(x)
	conf := &config.Config{Output: x.TempDir()}
	count, err := NewCount(conf, "count.txt")
	t.Nil(err)
	chain := &Chain{Reporters: []miners.Reporter{
		NewLog(itemset.Formatter{N: 5}, "DEBUG", "test"),
		count,
	}}
	t.Nil(chain.Report(itemset.NewItemset("a"), 3))
	t.Nil(chain.Close())
	bytes, err := os.ReadFile(conf.OutputFile("count.txt"))
	t.Nil(err)
	t.Equal("1\n", string(bytes))
}
