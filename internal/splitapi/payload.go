package splitapi

import (
	"math"

	"splitsnap/internal/model"
)

// ExpenseForm is the structured, presentation-free form state a payload
// is built from. Splits and item prices stay raw strings: the service
// owns numeric validation (including whether percentages sum to 100).
type ExpenseForm struct {
	Title    string
	Amount   float64
	Payer    string
	Category string
	Split    model.SplitType
	Splits   map[string]string // percentage/ratio: member -> raw entry
	Items    []model.Item      // itemized rows in entry order
}

// ExpensePayload is the /add-expense request body.
type ExpensePayload struct {
	Title     string            `json:"title"`
	Amount    float64           `json:"amount"`
	Payer     string            `json:"payer"`
	Category  string            `json:"category"`
	SplitType string            `json:"split_type"`
	Splits    map[string]string `json:"splits,omitempty"`
	Items     []ItemPayload     `json:"items,omitempty"`
}

// ItemPayload is one itemized row on the wire. Name is optional and
// omitted when blank; servers tolerate both shapes.
type ItemPayload struct {
	Name      string   `json:"name,omitempty"`
	Price     string   `json:"price"`
	Consumers []string `json:"consumers"`
}

// BuildExpensePayload assembles the request body for the selected split
// type. It is total: unparseable rows pass through as-is and nothing here
// can fail. Equal splits carry no extra fields — the server divides over
// the full roster.
func BuildExpensePayload(form ExpenseForm) ExpensePayload {
	p := ExpensePayload{
		Title:     form.Title,
		Amount:    form.Amount,
		Payer:     form.Payer,
		Category:  form.Category,
		SplitType: string(form.Split),
	}

	switch form.Split {
	case model.SplitPercentage, model.SplitRatio:
		if len(form.Splits) > 0 {
			p.Splits = form.Splits
		}
	case model.SplitItemized:
		p.Items = make([]ItemPayload, 0, len(form.Items))
		for _, item := range form.Items {
			p.Items = append(p.Items, ItemPayload{
				Name:      item.Name,
				Price:     item.Price,
				Consumers: item.Consumers,
			})
		}
	}

	return p
}

// ApplySurcharge inflates an amount by GST and tip percentages, rounded
// to two decimals. Both percentages apply to the base amount.
func ApplySurcharge(amount, gstPercent, tipPercent float64) float64 {
	total := amount + amount*gstPercent/100 + amount*tipPercent/100
	return math.Round(total*100) / 100
}
