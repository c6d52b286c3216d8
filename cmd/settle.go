package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"splitsnap/internal/cli"
	"splitsnap/internal/pay"

	"github.com/spf13/cobra"
)

var flagPaid bool

var settleCmd = &cobra.Command{
	Use:   "settle <#>",
	Short: "Show a payment QR for one settlement",
	Long: "Render the UPI deep link for settlement <#> (from the balances list)\n" +
		"as a scannable QR code. With --paid the instruction is also dropped\n" +
		"from the local session; the server recomputes the truth on next fetch.",
	Args: cobra.ExactArgs(1),
	RunE: runSettle,
}

func init() {
	settleCmd.Flags().BoolVar(&flagPaid, "paid", false, "Mark this settlement paid locally")
	rootCmd.AddCommand(settleCmd)
}

func runSettle(_ *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 {
		return fmt.Errorf("bad settlement number %q", args[0])
	}

	cfg := loadConfig()
	sheet, err := fetchSheet(cfg)
	if err != nil {
		return err
	}

	views := newBuilder(cfg).Settlements(sheet.Settlements)
	if len(views) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderBanner("🎉 All settled up! Friendship intact."))
		fmt.Println()
		return nil
	}
	if idx > len(views) {
		return fmt.Errorf("settlement %d does not exist (only %d open)", idx, len(views))
	}

	v := views[idx-1]

	fmt.Println()
	fmt.Printf("  %s — %s\n", v.Title(), cli.FormatMoney(cfg.Currency.Symbol, v.Amount))
	fmt.Println()
	pay.WriteQR(os.Stdout, v.PayURL)
	fmt.Println()
	fmt.Printf("  Link: %s\n", v.PayURL)
	fmt.Println()

	if flagPaid {
		sess := openSession()
		if sess == nil {
			return errors.New("cannot mark paid: session unavailable")
		}
		defer sess.Close()
		if err := sess.DropSettlement(idx - 1); err != nil {
			return err
		}
		fmt.Printf("  Marked paid locally. %s owes %s nothing (until the next dinner).\n\n", v.From, v.To)
	}

	return nil
}
