package cmd

import (
	"errors"
	"fmt"

	"splitsnap/internal/cli"
	"splitsnap/internal/pipeline"

	"github.com/spf13/cobra"
)

var roastCmd = &cobra.Command{
	Use:   "roast",
	Short: "Judge the group's spending habits",
	RunE:  runRoast,
}

func init() {
	rootCmd.AddCommand(roastCmd)
}

func runRoast(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	sheet, err := fetchSheet(cfg)
	if err != nil {
		return err
	}

	totals := pipeline.CategoryTotals(sheet.Expenses)
	verdict, err := pipeline.Roast(len(sheet.Expenses), totals, pipeline.TotalSpend(sheet.Expenses))
	if errors.Is(err, pipeline.ErrNoExpenses) {
		fmt.Println("\n  Nothing to roast yet. Add some expenses first.")
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("GROUP ROAST"))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RoastStyle.Render(verdict))
	return nil
}
