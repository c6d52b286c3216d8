package model

// SettlementView is the render-ready form of one settlement instruction.
// NagURL and PayURL are the two affordances a presentation layer exposes
// per instruction; both are derived from the view data alone so they can
// be invoked without reading anything back from the rendered output.
type SettlementView struct {
	From   string
	To     string
	Amount Amount
	NagURL string
	PayURL string
	Raw    string // original instruction text for string-form transactions
}

// Title returns the one-line instruction, preferring structured fields.
func (v SettlementView) Title() string {
	if v.From == "" && v.To == "" {
		return v.Raw
	}
	return v.From + " pays " + v.To
}

// BalanceView is one member's signed net position, ready to render.
// Positive means the member is owed money; zero styles as positive.
type BalanceView struct {
	Member    string
	Positive  bool
	Magnitude float64
	Display   string
	Avatar    string
}

// CategoryTotal is one chart bucket: a verbatim category label and the
// sum of parseable amounts filed under it.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Dashboard is everything the presentation layer needs after a fetch.
type Dashboard struct {
	Settlements []SettlementView
	Balances    []BalanceView
	Categories  []CategoryTotal
	TotalSpend  float64
	AllSettled  bool
}
