package main

import (
	"context"
	"time"

	"go-yourtask/internal/app"
	"go-yourtask/internal/shared/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	layoutFile string
	timeout    time.Duration
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "yourtask",
	Short:         "Operator tools for the Your Task spreadsheet",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&layoutFile, "layout", "", "path to sheet layout yaml (default: embedded layout)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout for sheet fetches")
}

func loadStack() (app.SheetStack, error) {
	cfg := config.Load()
	if layoutFile != "" {
		cfg.Sheet.LayoutFile = layoutFile
	}
	return app.NewSheetStack(cfg.Sheet, zap.L())
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
