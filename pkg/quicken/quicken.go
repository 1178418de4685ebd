// Package quicken encodes transactions as a Quicken-importable CSV file.
package quicken

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/venmoq/venmoq/pkg/models"
)

// Header is the fixed output column set, in order.
const Header = "Date,Payee,FI Payee,Amount,Debit/Credit,Category,Account,Tag,Memo,Chknum"

// Write encodes transactions to w as UTF-8 with a byte-order marker, CRLF
// line endings and minimal field quoting. The header row is always written,
// even for an empty transaction list.
func Write(w io.Writer, transactions []models.Transaction) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	cw := csv.NewWriter(bw)
	cw.UseCRLF = true

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("encoding quicken csv: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("flushing quicken csv: %w", err)
	}
	return nil
}
