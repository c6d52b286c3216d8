package cmd

import (
	"fmt"
	"os"
	"strconv"

	"splitsnap/internal/cli"
	"splitsnap/internal/config"
	"splitsnap/internal/model"

	"github.com/spf13/cobra"
)

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Fetch and show who owes whom",
	RunE:  runBalances,
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}

func runBalances(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	sheet, err := fetchSheet(cfg)
	if err != nil {
		return err
	}

	dash := newBuilder(cfg).Dashboard(sheet)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPLITSNAP"))
	fmt.Println()

	if dash.AllSettled {
		fmt.Println(cli.RenderBanner("🎉 All settled up! Friendship intact."))
		fmt.Println()
	} else {
		rows := make([][]string, 0, len(dash.Settlements))
		for i, v := range dash.Settlements {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				v.Title(),
				cli.FormatMoney(cfg.Currency.Symbol, v.Amount),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Settle Up",
			Headers: []string{"#", "Who pays whom", "Amount"},
			Rows:    rows,
		}))
		fmt.Println(cli.RoastStyle.Render("  Use `splitsnap settle <#>` for a payment QR, `splitsnap remind <#>` to nag."))
		fmt.Println()
	}

	if len(dash.Balances) > 0 {
		rows := make([][]string, 0, len(dash.Balances))
		for _, b := range dash.Balances {
			status := cli.PositiveStyle.Render("collects")
			if !b.Positive {
				status = cli.NegativeStyle.Render("owes")
			}
			rows = append(rows, []string{b.Member, status, cfg.Currency.Symbol + b.Display})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Net Balances",
			Headers: []string{"Member", "Status", "Amount"},
			Rows:    rows,
		}))
	}

	if dash.TotalSpend > 0 {
		fmt.Printf("  Total damage: %s across %d categories\n",
			cli.FormatFloat(cfg.Currency.Symbol, dash.TotalSpend), len(dash.Categories))
	}
	fmt.Println()

	return nil
}

// fetchSheet pulls the balance sheet from the server and refreshes the
// local session. When the server is unreachable and a session exists,
// the cached sheet is shown instead, clearly marked stale.
func fetchSheet(cfg config.Config) (model.BalanceSheet, error) {
	ctx, cancel := cmdContext()
	defer cancel()

	sheet, err := newClient(cfg).FetchBalances(ctx)
	if err == nil {
		if sess := openSession(); sess != nil {
			defer sess.Close()
			if serr := sess.SaveSheet(sheet); serr != nil && !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Session not updated: %v\n", serr)
			}
		}
		return sheet, nil
	}

	sess := openSession()
	if sess == nil {
		return model.BalanceSheet{}, err
	}
	defer sess.Close()

	cached, cerr := sess.LoadSheet()
	if cerr != nil || (len(cached.Expenses) == 0 && len(cached.Balances) == 0) {
		return model.BalanceSheet{}, err
	}
	fmt.Fprintf(os.Stderr, "  Server unreachable (%v) — showing cached session data\n", err)
	return cached, nil
}
