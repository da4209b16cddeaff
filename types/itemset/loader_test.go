package itemset

import "testing"
import "strings"
import "github.com/stretchr/testify/assert"

func TestBasketLoader(x *testing.T) {
	t := assert.New(x)
	input := "milk bread eggs\n\nbread butter\nmilk bread butter eggs\n"
	txs, err := NewBasketLoader().Load(strings.NewReader(input))
	t.Nil(err)
	t.Equal(3, txs.Len())
	t.Equal(0, txs[0].Pos())
	t.True(txs[0].Has("eggs"))
	t.True(!txs[1].Has("eggs"))
	t.Equal(4, txs[2].Size())
}

func TestCsvLoader(x *testing.T) {
	t := assert.New(x)
	input := "weather,temp\nsunny,hot\nrainy,\nsunny,mild\n"
	txs, err := NewCsvLoader().Load(strings.NewReader(input))
	t.Nil(err)
	t.Equal(3, txs.Len())
	t.True(txs[0].Has("weather=sunny"))
	t.True(txs[0].Has("temp=hot"))
	t.Equal(1, txs[1].Size())
	t.True(txs[1].Has("weather=rainy"))
	t.True(txs[2].Has("temp=mild"))
}

func TestCsvLoaderEmpty(x *testing.T) {
	t := assert.New(x)
	txs, err := NewCsvLoader().Load(strings.NewReader(""))
	t.Nil(err)
	t.Equal(0, txs.Len())
}
