package models

// Transaction is a single row of the Quicken import CSV. Field order matches
// the column order Quicken expects, and the csv tags carry the exact header
// names, punctuation included.
type Transaction struct {
	Date        string `csv:"Date"`
	Payee       string `csv:"Payee"`
	FIPayee     string `csv:"FI Payee"`
	Amount      string `csv:"Amount"`
	DebitCredit string `csv:"Debit/Credit"`
	Category    string `csv:"Category"`
	Account     string `csv:"Account"`
	Tag         string `csv:"Tag"`
	Memo        string `csv:"Memo"`
	Chknum      string `csv:"Chknum"`
}

// Result holds the outcome of converting one statement: the transactions in
// source order plus the counts of rows that were filtered out along the way.
type Result struct {
	Transactions []Transaction

	// BalancesSkipped counts running-balance artifact rows that were
	// recognized and dropped.
	BalancesSkipped int

	// Discarded counts blank rows and rows without a datetime, dropped
	// without comment.
	Discarded int
}

// Written returns how many transactions the conversion produced.
func (r *Result) Written() int {
	return len(r.Transactions)
}
