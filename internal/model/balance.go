package model

// Settlement is one suggested payment that reduces outstanding group debt.
// From owes, To is owed. Raw carries the server's original instruction text
// when the transaction arrived as a plain string rather than an object.
type Settlement struct {
	From   string
	To     string
	Amount Amount
	Raw    string
}

// BalanceSheet is the wholesale result of one /calculate-balance fetch.
// It replaces any previously cached sheet; there is no incremental update.
type BalanceSheet struct {
	Expenses    []Expense
	Settlements []Settlement
	Balances    map[string]Amount
}

// Settled reports whether the fetch produced no outstanding settlements.
func (s BalanceSheet) Settled() bool {
	return len(s.Settlements) == 0
}
