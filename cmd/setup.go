package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"splitsnap/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to splitsnap!")
	fmt.Println()

	// 1. Server URL
	fmt.Println("  1. Balance service URL")
	fmt.Printf("     Current: %s\n", cfg.Server.BaseURL)
	fmt.Print("     > ")
	server, _ := reader.ReadString('\n')
	if server = strings.TrimSpace(server); server != "" {
		cfg.Server.BaseURL = strings.TrimRight(server, "/")
	}
	fmt.Println()

	// 2. UPI collection address
	fmt.Println("  2. UPI address for payment QR codes")
	fmt.Printf("     Current: %s\n", cfg.Payment.VPA)
	fmt.Print("     > ")
	vpa, _ := reader.ReadString('\n')
	if vpa = strings.TrimSpace(vpa); vpa != "" {
		cfg.Payment.VPA = vpa
	}
	fmt.Println()

	// 3. Currency
	fmt.Println("  3. Currency")
	fmt.Println("     (1) ₹ INR [default]")
	fmt.Println("     (2) $ USD")
	fmt.Println("     (3) € EUR")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Currency = config.CurrencyConfig{Symbol: "$", Code: "USD"}
	case "3":
		cfg.Currency = config.CurrencyConfig{Symbol: "€", Code: "EUR"}
	default:
		cfg.Currency = config.CurrencyConfig{Symbol: "₹", Code: "INR"}
	}
	fmt.Println()

	// 4. Smart tax
	fmt.Println("  4. Add GST + tip to every expense automatically? (y/N)")
	fmt.Print("     > ")
	tax, _ := reader.ReadString('\n')
	cfg.Surcharge.Enabled = strings.EqualFold(strings.TrimSpace(tax), "y")
	fmt.Println()

	// 5. Theme
	fmt.Println("  5. Color theme")
	fmt.Println("     (1) Snap Dark [default]")
	fmt.Println("     (2) Flexoki Dark")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "flexoki-dark"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "snap-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Next: `splitsnap group create \"Goa Trip\" --members Alice,Bob,Carol`")
	fmt.Println()

	return nil
}
