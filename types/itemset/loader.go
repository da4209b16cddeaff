package itemset

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

type Loader interface {
	Load(input io.Reader) (Transactions, error)
}

// BasketLoader reads one transaction per line, item labels separated by
// whitespace.
type BasketLoader struct{}

func NewBasketLoader() Loader {
	return &BasketLoader{}
}

func (l *BasketLoader) Load(input io.Reader) (Transactions, error) {
	txs := make(Transactions, 0, 10)
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		items := strings.Fields(scanner.Text())
		if len(items) == 0 {
			continue
		}
		txs = append(txs, NewTransaction(len(txs), items))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}

// CsvLoader reads a csv with a header row. Each row becomes a transaction
// whose items are "column=value" labels. Empty cells are skipped.
type CsvLoader struct{}

func NewCsvLoader() Loader {
	return &CsvLoader{}
}

func (l *CsvLoader) Load(input io.Reader) (Transactions, error) {
	r := csv.NewReader(input)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return Transactions{}, nil
	} else if err != nil {
		return nil, err
	}
	txs := make(Transactions, 0, 10)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(row) > len(header) {
			errors.Logf("WARN", "row %d has %d columns, header has %d", len(txs), len(row), len(header))
		}
		items := make([]string, 0, len(row))
		for col, value := range row {
			if col >= len(header) {
				break
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			items = append(items, header[col]+"="+value)
		}
		txs = append(txs, NewTransaction(len(txs), items))
	}
	return txs, nil
}
