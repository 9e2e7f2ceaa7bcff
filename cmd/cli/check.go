package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"go-yourtask/internal/sheetcheck"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch every configured sheet table and report row and record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		summaries, err := sheetcheck.NewService(stack.Fetcher, stack.Layout).Summary(ctx)
		if err != nil {
			return err
		}
		return printSummary(cmd.OutOrStdout(), summaries)
	},
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Validate and print the effective sheet layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		stack, err := loadStack()
		if err != nil {
			return err
		}
		return printLayout(cmd.OutOrStdout(), stack.Layout)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(layoutCmd)
}

func printSummary(w io.Writer, summaries []sheetcheck.TableSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tGID\tROWS\tRECORDS")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", s.Table, s.GID, s.Rows, s.Records)
	}
	return tw.Flush()
}

func printLayout(w io.Writer, layout any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return err
	}
	return enc.Close()
}
