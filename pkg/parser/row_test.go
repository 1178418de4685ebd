package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/venmoq/venmoq/pkg/models"
)

func TestClassifyOrder(t *testing.T) {
	tests := []struct {
		name string
		row  models.StatementRow
		want action
	}{
		{
			name: "blank row discarded",
			row:  models.StatementRow{},
			want: actionDiscard,
		},
		{
			name: "lone placeholder value is a balance",
			row:  models.StatementRow{Placeholders: []string{"$250.00"}},
			want: actionCountBalance,
		},
		{
			name: "lone amount is a balance",
			row:  models.StatementRow{AmountTotal: "$250.00"},
			want: actionCountBalance,
		},
		{
			name: "no datetime discarded",
			row:  models.StatementRow{ID: "123", Note: "Dinner"},
			want: actionDiscard,
		},
		{
			name: "balance rule wins over datetime rule",
			row:  models.StatementRow{Placeholders: []string{"$250.00"}},
			want: actionCountBalance,
		},
		{
			name: "transaction kept",
			row:  models.StatementRow{ID: "123", Datetime: "2023-05-01 10:15:00", AmountTotal: "- $12.50"},
			want: actionKeep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := classify(&tt.row)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChoosePayee(t *testing.T) {
	neg := decimal.RequireFromString("-12.50")
	pos := decimal.RequireFromString("12.50")

	tests := []struct {
		name   string
		row    models.StatementRow
		amount decimal.Decimal
		want   string
	}{
		{"sent money goes to To", models.StatementRow{To: "Alice"}, neg, "Alice"},
		{"received money comes from From", models.StatementRow{From: "Bob"}, pos, "Bob"},
		{"negative with empty To falls back to From", models.StatementRow{From: "Carl"}, decimal.RequireFromString("-5.00"), "Carl"},
		{"positive with empty From falls back to To", models.StatementRow{To: "Dana"}, pos, "Dana"},
		{"note as last named fallback", models.StatementRow{Note: "Groceries"}, pos, "Groceries"},
		{"platform name when nothing else", models.StatementRow{}, pos, "Venmo"},
		{"zero counts as received", models.StatementRow{From: "Bob", To: "Alice"}, decimal.Zero, "Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, choosePayee(&tt.row, tt.amount))
		})
	}
}

func TestBuildMemo(t *testing.T) {
	row := models.StatementRow{
		Note:   "Dinner",
		Type:   "Payment",
		Status: "Complete",
		From:   "Bob",
		To:     "Alice",
	}
	assert.Equal(t,
		"Note: Dinner | Type: Payment | Status: Complete | From: Bob | To: Alice",
		buildMemo(&row))
}

func TestBuildMemoOmitsEmptyFields(t *testing.T) {
	row := models.StatementRow{Note: "Dinner", Type: "Payment"}
	assert.Equal(t, "Note: Dinner | Type: Payment", buildMemo(&row))

	assert.Equal(t, "", buildMemo(&models.StatementRow{}))
}

func TestBuildMemoFullOrder(t *testing.T) {
	row := models.StatementRow{
		Note:          "Rent",
		Type:          "Payment",
		Status:        "Complete",
		From:          "Bob",
		To:            "Alice",
		AmountFee:     "$1.00",
		FundingSource: "Venmo balance",
		Destination:   "Checking",
	}
	assert.Equal(t,
		"Note: Rent | Type: Payment | Status: Complete | From: Bob | To: Alice | "+
			"Amount (fee): $1.00 | Funding Source: Venmo balance | Destination: Checking",
		buildMemo(&row))
}
