// Package cmd implements the splitsnap CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"splitsnap/internal/config"
	"splitsnap/internal/pay"
	"splitsnap/internal/render"
	"splitsnap/internal/splitapi"
	"splitsnap/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagServer    string
	flagQuiet     bool
	flagNoSession bool
)

var rootCmd = &cobra.Command{
	Use:   "splitsnap",
	Short: "Group expense dashboard CLI",
	Long:  "Track group expenses, settle debts, and roast your friends' spending.",
	RunE:  runBalances,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagServer, "server", "s", "", "Balance service URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVar(&flagNoSession, "no-session", false, "Skip the local session file")
}

// loadConfig merges config file, env, and the --server flag.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
	}
	if flagServer != "" {
		cfg.Server.BaseURL = flagServer
	}
	return cfg
}

func newClient(cfg config.Config) *splitapi.Client {
	return splitapi.NewClient(config.ServerURL(cfg))
}

func newBuilder(cfg config.Config) render.Builder {
	return render.Builder{
		CurrencySymbol: cfg.Currency.Symbol,
		UPI: pay.UPIOptions{
			VPA:          cfg.Payment.VPA,
			CurrencyCode: cfg.Currency.Code,
		},
	}
}

// sessionPath keeps the session file next to the config.
func sessionPath() string {
	return filepath.Join(config.Dir(), "session.db")
}

// openSession returns the session store, or nil when --no-session is set
// or the store cannot be opened. Callers treat nil as "no local state".
func openSession() *store.Store {
	if flagNoSession {
		return nil
	}
	s, err := store.Open(sessionPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Session unavailable: %v\n", err)
		}
		return nil
	}
	return s
}

// cmdContext bounds one command's worth of server traffic.
func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}
