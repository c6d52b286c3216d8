package cmd

import (
	"fmt"
	"strconv"

	"splitsnap/internal/cli"

	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind <#>",
	Short: "Get a WhatsApp nag link for one settlement",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemind,
}

func init() {
	rootCmd.AddCommand(remindCmd)
}

func runRemind(_ *cobra.Command, args []string) error {
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
	if idx > len(views) {
		return fmt.Errorf("settlement %d does not exist (only %d open)", idx, len(views))
	}

	v := views[idx-1]
	fmt.Println()
	fmt.Printf("  Nagging %s about %s:\n", v.From, cli.FormatMoney(cfg.Currency.Symbol, v.Amount))
	fmt.Println()
	fmt.Printf("  %s\n\n", v.NagURL)
	return nil
}
