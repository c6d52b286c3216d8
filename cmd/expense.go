package cmd

import (
	"errors"
	"fmt"
	"strings"

	"splitsnap/internal/cli"
	"splitsnap/internal/model"
	"splitsnap/internal/splitapi"

	"github.com/spf13/cobra"
)

var (
	flagTitle    string
	flagAmount   float64
	flagPayer    string
	flagCategory string
	flagSplit    string
	flagShares   []string
	flagItems    []string
	flagSmartTax bool
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Add expenses to the group ledger",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit one expense",
	Long: `Submit an expense to the balance service.

Split types:
  equal       everyone pays the same share (default)
  percentage  --share Alice=60 --share Bob=40
  ratio       --share Alice=2 --share Bob=1
  itemized    --item "momos:120:Alice+Bob" --item "chai:30:Bob"

Share and item values are sent as entered; the server validates them.`,
	RunE: runExpenseAdd,
}

func init() {
	f := expenseAddCmd.Flags()
	f.StringVarP(&flagTitle, "title", "t", "", "What the money went on")
	f.Float64VarP(&flagAmount, "amount", "a", 0, "Total amount")
	f.StringVarP(&flagPayer, "payer", "p", "", "Who fronted the money")
	f.StringVarP(&flagCategory, "category", "c", "Misc", "Category label for the chart")
	f.StringVar(&flagSplit, "split", string(model.SplitEqual), "Split type: equal, percentage, ratio, itemized")
	f.StringArrayVar(&flagShares, "share", nil, "member=value share entry (repeatable)")
	f.StringArrayVar(&flagItems, "item", nil, "name:price:member+member item entry (repeatable)")
	f.BoolVar(&flagSmartTax, "smart-tax", false, "Add GST and tip before submitting")

	expenseCmd.AddCommand(expenseAddCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, _ []string) error {
	if flagTitle == "" {
		return errors.New("--title is required")
	}
	if flagAmount <= 0 {
		return errors.New("--amount must be positive")
	}
	if flagPayer == "" {
		return errors.New("--payer is required")
	}

	split := model.SplitType(flagSplit)
	if !split.Valid() {
		return fmt.Errorf("unknown split type %q (want one of %s)", flagSplit, splitTypeList())
	}

	form := splitapi.ExpenseForm{
		Title:    flagTitle,
		Amount:   flagAmount,
		Payer:    flagPayer,
		Category: flagCategory,
		Split:    split,
	}

	switch split {
	case model.SplitPercentage, model.SplitRatio:
		shares, err := parseShares(flagShares)
		if err != nil {
			return err
		}
		if len(shares) == 0 {
			return fmt.Errorf("%s split needs --share entries", split)
		}
		form.Splits = shares
	case model.SplitItemized:
		items, err := parseItems(flagItems)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errors.New("itemized split needs --item entries")
		}
		form.Items = items
	}

	cfg := loadConfig()
	if flagSmartTax || cfg.Surcharge.Enabled {
		before := form.Amount
		form.Amount = splitapi.ApplySurcharge(before, cfg.Surcharge.GSTPercent, cfg.Surcharge.TipPercent)
		fmt.Printf("  Smart tax: %s → %s (+%.0f%% GST, +%.0f%% tip)\n",
			cli.FormatFloat(cfg.Currency.Symbol, before),
			cli.FormatFloat(cfg.Currency.Symbol, form.Amount),
			cfg.Surcharge.GSTPercent, cfg.Surcharge.TipPercent)
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := newClient(cfg).AddExpense(ctx, splitapi.BuildExpensePayload(form)); err != nil {
		return err
	}

	fmt.Printf("\n  Added %q: %s paid by %s (%s, %s split)\n\n",
		form.Title,
		cli.FormatFloat(cfg.Currency.Symbol, form.Amount),
		form.Payer, form.Category, form.Split)
	return nil
}

func splitTypeList() string {
	names := make([]string, len(model.SplitTypes))
	for i, s := range model.SplitTypes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// parseShares turns repeated member=value flags into the raw splits map.
// Values are not validated numerically; the server owns that.
func parseShares(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	shares := make(map[string]string, len(entries))
	for _, entry := range entries {
		member, value, ok := strings.Cut(entry, "=")
		member = strings.TrimSpace(member)
		if !ok || member == "" {
			return nil, fmt.Errorf("bad --share %q (want member=value)", entry)
		}
		shares[member] = strings.TrimSpace(value)
	}
	return shares, nil
}

// parseItems turns name:price:a+b entries into item rows. The name may be
// empty ("":price form) but the price and consumer list may not.
func parseItems(entries []string) ([]model.Item, error) {
	items := make([]model.Item, 0, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("bad --item %q (want name:price:member+member)", entry)
		}
		price := strings.TrimSpace(parts[1])
		if price == "" {
			return nil, fmt.Errorf("bad --item %q: missing price", entry)
		}

		var consumers []string
		for _, c := range strings.Split(parts[2], "+") {
			if c = strings.TrimSpace(c); c != "" {
				consumers = append(consumers, c)
			}
		}
		if len(consumers) == 0 {
			return nil, fmt.Errorf("bad --item %q: nobody consumed it", entry)
		}

		items = append(items, model.Item{
			Name:      strings.TrimSpace(parts[0]),
			Price:     price,
			Consumers: consumers,
		})
	}
	return items, nil
}
