package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, 0, (&StatementRow{}).NonEmpty())

	row := StatementRow{ID: "1", Datetime: "2023-05-01", AmountTotal: "- $1.00"}
	assert.Equal(t, 3, row.NonEmpty())

	row.Placeholders = []string{"$250.00"}
	assert.Equal(t, 4, row.NonEmpty())
}

func TestResultWritten(t *testing.T) {
	r := Result{Transactions: []Transaction{{}, {}}}
	assert.Equal(t, 2, r.Written())
}
