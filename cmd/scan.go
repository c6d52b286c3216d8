package cmd

import (
	"fmt"
	"os"
	"strconv"

	"splitsnap/internal/cli"
	"splitsnap/internal/model"
	"splitsnap/internal/splitapi"

	"github.com/spf13/cobra"
)

var (
	flagScanPayer string
	flagScanTitle string
	flagShowText  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "OCR a receipt and add the detected total",
	Long: "Upload a receipt photo for server-side OCR. The detected total is\n" +
		"shown with every other number found; pass --payer to submit it as an\n" +
		"equal-split expense in one step.",
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagScanPayer, "payer", "", "Submit the detected total, fronted by this member")
	scanCmd.Flags().StringVar(&flagScanTitle, "title", "Scanned Bill", "Title for the submitted expense")
	scanCmd.Flags().BoolVar(&flagShowText, "text", false, "Dump the raw OCR text")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	cfg := loadConfig()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Uploading %s for OCR...\n", args[0])
	}

	ctx, cancel := cmdContext()
	defer cancel()

	client := newClient(cfg)
	result, err := client.ScanReceipt(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	if result.DetectedTotal <= 0 {
		fmt.Println("  No total detected. Either the photo is blurry or the bill is free.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  Detected total: %s\n", cli.FormatFloat(cfg.Currency.Symbol, result.DetectedTotal))
	if len(result.AllFound) > 1 {
		candidates := make([]string, len(result.AllFound))
		for i, v := range result.AllFound {
			candidates[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		fmt.Printf("  Also found: %v\n", candidates)
	}
	if flagShowText && result.RawText != "" {
		fmt.Println()
		fmt.Println(result.RawText)
	}
	fmt.Println()

	if flagScanPayer == "" {
		fmt.Println("  Re-run with --payer <member> to add it, or use `splitsnap expense add`.")
		fmt.Println()
		return nil
	}

	form := splitapi.ExpenseForm{
		Title:    flagScanTitle,
		Amount:   result.DetectedTotal,
		Payer:    flagScanPayer,
		Category: "Misc",
		Split:    model.SplitEqual,
	}
	if err := client.AddExpense(ctx, splitapi.BuildExpensePayload(form)); err != nil {
		return err
	}

	fmt.Printf("  Added %q: %s paid by %s (equal split)\n\n",
		form.Title, cli.FormatFloat(cfg.Currency.Symbol, form.Amount), form.Payer)
	return nil
}
