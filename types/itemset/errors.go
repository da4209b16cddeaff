package itemset

import (
	"fmt"
)

type InvalidThreshold struct {
	Name  string
	Value float64
}

func (e *InvalidThreshold) Error() string {
	return fmt.Sprintf("invalid %v %v, must be in [0, 1]", e.Name, e.Value)
}

type EmptyTransactions struct{}

func (e *EmptyTransactions) Error() string {
	return "no transactions given, relative support is undefined"
}
