package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fadilmartias/bid-analyzer/internal/app"
	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose   bool
	translate bool

	log    *zap.Logger
	bidApp *app.App
)

var rootCmd = &cobra.Command{
	Use:   "bidctl",
	Short: "Procurement bid analysis from the command line",
	Long: `bidctl analyzes tender documents, searches for open tenders and builds
bid preparation checklists using the configured model backend.

Results share the history store used by the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		var err error
		log, err = logger.New(config.LoadAppConfig().IsProduction(), verbose)
		if err != nil {
			return err
		}
		bidApp, err = app.New(cmd.Context(), log)
		return err
	},
}

func init() {
	cobra.OnFinalize(cleanup)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(analyzeCmd, tendersCmd, checklistCmd, historyCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// cleanup closes storage and flushes the logger, also after a failed command.
func cleanup() {
	if bidApp != nil {
		_ = bidApp.Close()
		bidApp = nil
	}
	if log != nil {
		_ = log.Sync()
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
