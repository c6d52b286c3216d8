package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagOutput string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Download the expense report CSV",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagOutput, "output", "o", "expense_report.csv", "Destination file, or - for stdout")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ctx, cancel := cmdContext()
	defer cancel()

	client := newClient(cfg)

	if flagOutput == "-" {
		return client.DownloadReport(ctx, os.Stdout)
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagOutput, err)
	}
	defer f.Close()

	if err := client.DownloadReport(ctx, f); err != nil {
		// Don't leave a half-written file behind.
		_ = os.Remove(flagOutput)
		return err
	}

	fmt.Printf("  Report saved to %s\n", flagOutput)
	return nil
}
