package splitapi

import (
	"encoding/json"
	"strings"

	"splitsnap/internal/model"
)

// balanceResponse is the raw /calculate-balance body. Field shapes vary
// across server versions, so each element decodes defensively.
type balanceResponse struct {
	Expenses     []wireExpense          `json:"expenses"`
	Transactions []wireTransaction      `json:"transactions"`
	Balances     map[string]model.Amount `json:"balances"`
}

// wireExpense tolerates both "type" and "split_type" keys.
type wireExpense struct {
	Title     string       `json:"title"`
	Amount    model.Amount `json:"amount"`
	Payer     string       `json:"payer"`
	Category  string       `json:"category"`
	Type      string       `json:"type"`
	SplitType string       `json:"split_type"`
}

func (w wireExpense) toModel() model.Expense {
	split := w.SplitType
	if split == "" {
		split = w.Type
	}
	return model.Expense{
		Title:    w.Title,
		Amount:   w.Amount,
		Payer:    w.Payer,
		Category: w.Category,
		Split:    model.SplitType(split),
	}
}

// wireTransaction decodes one settlement instruction. Servers have been
// observed sending three shapes: {from,to}, {debtor,creditor}, and a bare
// instruction string ("A pays B: ₹50"). Explicit from/to wins over
// debtor/creditor; a string falls back to pattern parsing with the
// original text kept for display.
type wireTransaction struct {
	model.Settlement
}

func (w *wireTransaction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		w.Settlement = parseInstruction(s)
		return nil
	}

	var obj struct {
		From     string       `json:"from"`
		To       string       `json:"to"`
		Debtor   string       `json:"debtor"`
		Creditor string       `json:"creditor"`
		Amount   model.Amount `json:"amount"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		w.Settlement = model.Settlement{Raw: string(data)}
		return nil
	}

	from, to := obj.From, obj.To
	if from == "" {
		from = obj.Debtor
	}
	if to == "" {
		to = obj.Creditor
	}
	w.Settlement = model.Settlement{From: from, To: to, Amount: obj.Amount}
	return nil
}

// parseInstruction extracts from/to/amount out of "A pays B: ₹50".
// Anything that doesn't match stays raw-only and still renders.
func parseInstruction(s string) model.Settlement {
	st := model.Settlement{Raw: s}

	rest, amountPart, ok := strings.Cut(s, ":")
	if !ok {
		return st
	}
	from, to, ok := strings.Cut(rest, " pays ")
	if !ok {
		return st
	}

	st.From = strings.TrimSpace(from)
	st.To = strings.TrimSpace(to)
	st.Amount = model.ParseAmount(trimCurrencyPrefix(amountPart))
	return st
}

// trimCurrencyPrefix drops everything before the first digit so currency
// symbols (and their occasional encoding damage) don't break parsing.
func trimCurrencyPrefix(s string) string {
	for i, r := range s {
		if r >= '0' && r <= '9' {
			return s[i:]
		}
	}
	return s
}

// ScanResult is the /scan-bill response. The client keys off DetectedTotal;
// the raw OCR text and candidate list are display-only extras.
type ScanResult struct {
	DetectedTotal float64   `json:"detected_total"`
	RawText       string    `json:"raw_text"`
	AllFound      []float64 `json:"all_found"`
}
