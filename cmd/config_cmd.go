package cmd

import (
	"fmt"

	"splitsnap/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Base URL: %s\n", config.ServerURL(cfg))
	fmt.Println()

	fmt.Println("  [Currency]")
	fmt.Printf("    Symbol: %s\n", cfg.Currency.Symbol)
	fmt.Printf("    Code:   %s\n", cfg.Currency.Code)
	fmt.Println()

	fmt.Println("  [Payment]")
	fmt.Printf("    UPI VPA: %s\n", cfg.Payment.VPA)
	if cfg.Payment.PayeeName != "" {
		fmt.Printf("    Payee:   %s\n", cfg.Payment.PayeeName)
	}
	fmt.Println()

	fmt.Println("  [Surcharge]")
	fmt.Printf("    Enabled: %v\n", cfg.Surcharge.Enabled)
	fmt.Printf("    GST:     %.0f%%\n", cfg.Surcharge.GSTPercent)
	fmt.Printf("    Tip:     %.0f%%\n", cfg.Surcharge.TipPercent)
	fmt.Println()

	fmt.Println("  [Voice]")
	key := config.OpenAIKey(cfg)
	if key != "" {
		fmt.Printf("    OpenAI key: %s\n", maskKey(key))
	} else {
		fmt.Println("    OpenAI key: not configured")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `splitsnap setup` to reconfigure.")
	return nil
}

func maskKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
