package parser

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Column names as they appear in Venmo statement exports.
const (
	colID            = "ID"
	colDatetime      = "Datetime"
	colType          = "Type"
	colStatus        = "Status"
	colNote          = "Note"
	colFrom          = "From"
	colTo            = "To"
	colAmountTotal   = "Amount (total)"
	colAmountFee     = "Amount (fee)"
	colFundingSource = "Funding Source"
	colDestination   = "Destination"
)

// placeholderPrefix names header cells that were blank in the export.
const placeholderPrefix = "Ignore"

// requiredColumns is the header signature, in order. A statement header may
// lead with one empty cell before these and carry any columns after them.
var requiredColumns = []string{
	colID, colDatetime, colType, colStatus,
	colNote, colFrom, colTo, colAmountTotal,
}

// locateHeader scans lines for the transaction header and returns its
// zero-based index together with the corrected cell list: cells are trimmed
// to match the names the binder looks up, and blank cells are renamed
// Ignore<n> (1-based column index) so no column is lost when the payload is
// parsed by name.
func locateHeader(lines []string) (int, []string, error) {
	for i, line := range lines {
		cells, err := splitLine(line)
		if err != nil || !matchesHeader(cells) {
			continue
		}
		for j, c := range cells {
			c = strings.TrimSpace(c)
			if c == "" {
				c = fmt.Sprintf("%s%d", placeholderPrefix, j+1)
			}
			cells[j] = c
		}
		return i, cells, nil
	}
	return 0, nil, ErrHeaderNotFound
}

// matchesHeader reports whether cells start with the required column names,
// optionally after a single empty leading cell.
func matchesHeader(cells []string) bool {
	start := 0
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		start = 1
	}
	if len(cells)-start < len(requiredColumns) {
		return false
	}
	for i, want := range requiredColumns {
		if strings.TrimSpace(cells[start+i]) != want {
			return false
		}
	}
	return true
}

// splitLine parses a single raw line as one CSV record.
func splitLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	return r.Read()
}

// layout is the header bound to column positions: where each recognized
// column sits and which positions are placeholders.
type layout struct {
	index        map[string]int
	placeholders []int
}

func bindLayout(header []string) layout {
	l := layout{index: make(map[string]int, len(header))}
	for i, name := range header {
		if strings.HasPrefix(name, placeholderPrefix) {
			l.placeholders = append(l.placeholders, i)
			continue
		}
		l.index[name] = i
	}
	return l
}

// cell returns the trimmed value of the named column in rec, or "" when the
// column is absent or the record is short.
func (l layout) cell(rec []string, name string) string {
	i, ok := l.index[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
