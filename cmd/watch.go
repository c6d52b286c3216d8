package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"splitsnap/internal/config"
	"splitsnap/internal/daemon"

	"github.com/spf13/cobra"
)

var (
	flagWatchInterval time.Duration
	flagWatchAddr     string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run a background ledger watcher with a local status API",
	Long: `Polls the balance service on an interval and serves the group's
ledger state over HTTP: /healthz, /v1/status, /v1/events and an SSE
stream at /v1/stream. Each poll also refreshes the local session file,
so other splitsnap commands stay usable if the server goes down.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVarP(&flagWatchInterval, "interval", "i", 30*time.Second, "Poll interval")
	watchCmd.Flags().StringVar(&flagWatchAddr, "addr", "127.0.0.1:8787", "Status API listen address")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	sessPath := sessionPath()
	if flagNoSession {
		sessPath = ""
	}

	svc := daemon.New(daemon.Config{
		ServerURL:   config.ServerURL(cfg),
		Interval:    flagWatchInterval,
		Addr:        flagWatchAddr,
		SessionPath: sessPath,
	}, newClient(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !flagQuiet {
		fmt.Printf("Watching %s every %s, status at http://%s/v1/status\n",
			config.ServerURL(cfg), flagWatchInterval, flagWatchAddr)
	}

	return svc.Run(ctx)
}
