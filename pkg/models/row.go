package models

// StatementRow is one data line of a Venmo statement, bound to named fields
// by the located header. Columns missing from the export stay empty.
type StatementRow struct {
	ID            string
	Datetime      string
	Type          string
	Status        string
	Note          string
	From          string
	To            string
	AmountTotal   string
	AmountFee     string
	FundingSource string
	Destination   string

	// Placeholders holds the non-empty values found under synthesized
	// Ignore<n> columns. Venmo statements park running balances there.
	Placeholders []string

	// Line is the 1-based data row ordinal below the header, for error
	// context.
	Line int
}

// NonEmpty returns how many fields of the row carry a value, placeholder
// columns included.
func (r *StatementRow) NonEmpty() int {
	n := len(r.Placeholders)
	for _, v := range []string{
		r.ID, r.Datetime, r.Type, r.Status, r.Note, r.From, r.To,
		r.AmountTotal, r.AmountFee, r.FundingSource, r.Destination,
	} {
		if v != "" {
			n++
		}
	}
	return n
}
