package parser

import "errors"

// Conversion is fail-fast: any of these aborts the whole run. The only rows
// dropped without error are the ones the classification rules name.
var (
	// ErrHeaderNotFound means no line of the input matched the Venmo
	// transaction header pattern.
	ErrHeaderNotFound = errors.New("transaction header not found")

	// ErrEmptyPayload means the header was located but no data rows
	// followed it.
	ErrEmptyPayload = errors.New("no data rows after header")

	// ErrMissingField means a row that passed filtering is missing a
	// required value (Datetime or Amount).
	ErrMissingField = errors.New("required field is empty")

	// ErrBadDate means a Datetime value matched none of the accepted
	// layouts.
	ErrBadDate = errors.New("unparseable datetime")

	// ErrBadAmount means an amount value was not a valid decimal after
	// cleaning.
	ErrBadAmount = errors.New("unparseable amount")
)
