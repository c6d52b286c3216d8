package cmd

import (
	"fmt"

	"splitsnap/internal/cli"
	"splitsnap/internal/pipeline"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show category spending breakdown",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	sheet, err := fetchSheet(cfg)
	if err != nil {
		return err
	}

	totals := pipeline.CategoryTotals(sheet.Expenses)
	buckets := pipeline.SortedCategories(totals)
	total := pipeline.TotalSpend(sheet.Expenses)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()

	if len(buckets) == 0 {
		fmt.Println("  Nothing spent yet. The chart is as empty as your social life.")
		fmt.Println()
		return nil
	}

	for i, b := range buckets {
		share := 0.0
		if total > 0 {
			share = b.Total / total
		}
		fmt.Println(cli.RenderHorizontalBar(i, b.Category, cli.FormatFloat(cfg.Currency.Symbol, b.Total), share, 28))
	}

	// Expense amounts in entry order, as a quick trend glance.
	var trail []float64
	for _, e := range sheet.Expenses {
		if e.Amount.Valid {
			trail = append(trail, e.Amount.Value)
		}
	}

	fmt.Println()
	if len(trail) > 1 {
		fmt.Printf("  Spend trail: %s\n", cli.RenderSparkline(trail))
	}
	fmt.Printf("  Total: %s across %d expenses\n\n",
		cli.FormatFloat(cfg.Currency.Symbol, total), len(sheet.Expenses))
	return nil
}
