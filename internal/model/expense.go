package model

// SplitType is the method used to divide one expense among members.
type SplitType string

const (
	SplitEqual      SplitType = "equal"
	SplitPercentage SplitType = "percentage"
	SplitRatio      SplitType = "ratio"
	SplitItemized   SplitType = "itemized"
)

// SplitTypes lists the supported split methods in UI order.
var SplitTypes = []SplitType{SplitEqual, SplitPercentage, SplitRatio, SplitItemized}

// Valid reports whether t is a known split type.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqual, SplitPercentage, SplitRatio, SplitItemized:
		return true
	}
	return false
}

// Item is one row of an itemized expense. Price stays a raw string and
// the server owns validation; Name is optional and server-tolerant.
type Item struct {
	Name      string
	Price     string
	Consumers []string
}

// Expense is a cached copy of one expense as reported by the balance
// service. The client reads it only for chart aggregation and display;
// the server owns the authoritative record.
type Expense struct {
	Title    string
	Amount   Amount
	Payer    string
	Category string
	Split    SplitType
}

// Group is the current group's identity and roster. Member identity is
// the display name; there is no numeric ID.
type Group struct {
	Name    string
	Members []string
}

// HasMember reports whether name is in the roster (exact match).
func (g Group) HasMember(name string) bool {
	for _, m := range g.Members {
		if m == name {
			return true
		}
	}
	return false
}
