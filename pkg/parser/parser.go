// Package parser converts Venmo transaction-history statements into Quicken
// import records. The work happens in two stages: locate the transaction
// header among the statement preamble, then classify and transform each data
// row under the located header.
package parser

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/unicode"

	"github.com/venmoq/venmoq/pkg/models"
)

type Parser struct {
	logger     *log.Logger
	account    string
	dateLayout string
}

// New creates a Parser. account fills the output Account column; dateFormat
// is a MM/dd/yyyy-style pattern for the output Date column.
func New(logger *log.Logger, account, dateFormat string) *Parser {
	return &Parser{
		logger:     logger,
		account:    account,
		dateLayout: translateDateFormat(dateFormat),
	}
}

// Parse converts a whole statement file. Rows matching a filter rule are
// dropped and counted; any other malformed row aborts the run.
func (p *Parser) Parse(data []byte) (*models.Result, error) {
	text, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding statement: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(text), "\r\n", "\n"), "\n")

	headerIdx, header, err := locateHeader(lines)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("located header", "line", headerIdx+1, "columns", len(header))
	l := bindLayout(header)

	r := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx+1:], "\n")))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement rows: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyPayload
	}

	result := &models.Result{}
	for i, rec := range records {
		row := bindRow(l, rec, i+1)

		switch act, rule := classify(&row); act {
		case actionDiscard:
			result.Discarded++
			p.logger.Debug("dropping row", "line", row.Line, "rule", rule)
			continue
		case actionCountBalance:
			result.BalancesSkipped++
			p.logger.Debug("skipping balance line", "line", row.Line, "rule", rule)
			continue
		}

		tx, err := p.transform(&row)
		if err != nil {
			return nil, err
		}
		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}
