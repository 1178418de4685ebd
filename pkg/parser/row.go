package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/venmoq/venmoq/pkg/models"
)

// bindRow maps one parsed CSV record onto the located header. line is the
// 1-based data row ordinal below the header.
func bindRow(l layout, rec []string, line int) models.StatementRow {
	row := models.StatementRow{
		ID:            l.cell(rec, colID),
		Datetime:      l.cell(rec, colDatetime),
		Type:          l.cell(rec, colType),
		Status:        l.cell(rec, colStatus),
		Note:          l.cell(rec, colNote),
		From:          l.cell(rec, colFrom),
		To:            l.cell(rec, colTo),
		AmountTotal:   l.cell(rec, colAmountTotal),
		AmountFee:     l.cell(rec, colAmountFee),
		FundingSource: l.cell(rec, colFundingSource),
		Destination:   l.cell(rec, colDestination),
		Line:          line,
	}
	for _, i := range l.placeholders {
		if i >= len(rec) {
			continue
		}
		if v := strings.TrimSpace(rec[i]); v != "" {
			row.Placeholders = append(row.Placeholders, v)
		}
	}
	return row
}

// action is what the filter decides for a row.
type action int

const (
	actionKeep action = iota
	actionDiscard
	actionCountBalance
)

// filterRules are evaluated in order; the first match wins. Both balance
// signatures (lone placeholder value, lone amount value) must come before the
// missing-datetime rule, since balance lines may or may not carry a datetime.
var filterRules = []struct {
	name  string
	match func(*models.StatementRow) bool
	act   action
}{
	{
		name:  "blank line",
		match: func(r *models.StatementRow) bool { return r.NonEmpty() == 0 },
		act:   actionDiscard,
	},
	{
		name:  "balance in placeholder column",
		match: func(r *models.StatementRow) bool { return r.NonEmpty() == 1 && len(r.Placeholders) == 1 },
		act:   actionCountBalance,
	},
	{
		name:  "balance as lone amount",
		match: func(r *models.StatementRow) bool { return r.NonEmpty() == 1 && r.AmountTotal != "" },
		act:   actionCountBalance,
	},
	{
		name:  "no datetime",
		match: func(r *models.StatementRow) bool { return r.Datetime == "" },
		act:   actionDiscard,
	},
}

// classify runs the filter rules against a row and returns the action to
// take plus the name of the matched rule, for logging.
func classify(row *models.StatementRow) (action, string) {
	for _, rule := range filterRules {
		if rule.match(row) {
			return rule.act, rule.name
		}
	}
	return actionKeep, ""
}

// memoSources lists the columns folded into the memo, in output order.
var memoSources = []struct {
	label string
	value func(*models.StatementRow) string
}{
	{colNote, func(r *models.StatementRow) string { return r.Note }},
	{colType, func(r *models.StatementRow) string { return r.Type }},
	{colStatus, func(r *models.StatementRow) string { return r.Status }},
	{colFrom, func(r *models.StatementRow) string { return r.From }},
	{colTo, func(r *models.StatementRow) string { return r.To }},
	{colAmountFee, func(r *models.StatementRow) string { return r.AmountFee }},
	{colFundingSource, func(r *models.StatementRow) string { return r.FundingSource }},
	{colDestination, func(r *models.StatementRow) string { return r.Destination }},
}

// buildMemo joins "Label: value" fragments with " | ", skipping empty fields.
func buildMemo(row *models.StatementRow) string {
	var parts []string
	for _, src := range memoSources {
		if v := src.value(row); v != "" {
			parts = append(parts, src.label+": "+v)
		}
	}
	return strings.Join(parts, " | ")
}

// choosePayee infers the counterparty from transfer direction: money sent
// goes to To, money received comes from From. When the directional field is
// empty the fallback chain is From, To, Note, then the platform name.
func choosePayee(row *models.StatementRow, amount decimal.Decimal) string {
	if amount.Sign() < 0 && row.To != "" {
		return row.To
	}
	if amount.Sign() >= 0 && row.From != "" {
		return row.From
	}
	for _, v := range []string{row.From, row.To, row.Note} {
		if v != "" {
			return v
		}
	}
	return "Venmo"
}

// transform derives the output record for a row that passed filtering.
func (p *Parser) transform(row *models.StatementRow) (models.Transaction, error) {
	date, err := parseDatetime(row.Datetime)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("row %d: datetime %q: %w", row.Line, row.Datetime, err)
	}

	amount, err := parseAmount(row.AmountTotal)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("row %d: amount %q: %w", row.Line, row.AmountTotal, err)
	}

	return models.Transaction{
		Date:    date.Format(p.dateLayout),
		Payee:   choosePayee(row, amount),
		Amount:  amount.StringFixed(2),
		Account: p.account,
		Memo:    buildMemo(row),
	}, nil
}
