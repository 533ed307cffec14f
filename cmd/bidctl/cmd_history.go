package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fadilmartias/bid-analyzer/internal/dto"
	"github.com/spf13/cobra"
)

var (
	clearConfirmed bool
	similarLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear stored analyses",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTIMESTAMP\tSCORE\tRELEVANT\tTITLE")
		for _, item := range dto.NewHistoryItemDTOs(bidApp.History.List()) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%t\t%s\n", item.ID, item.Timestamp, item.RelevanceScore, item.IsRelevant, item.Title)
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print one stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := bidApp.History.Get(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), entry)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bidApp.History.Clear(cmd.Context(), clearConfirmed); err != nil {
			return fmt.Errorf("%w (pass --yes)", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
		return nil
	},
}

var historySimilarCmd = &cobra.Command{
	Use:   "similar [text]",
	Short: "Find stored analyses similar to the given text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := bidApp.History.Similar(cmd.Context(), args[0], similarLimit)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), dto.NewHistoryItemDTOs(entries))
	},
}

func init() {
	historyClearCmd.Flags().BoolVarP(&clearConfirmed, "yes", "y", false, "confirm deletion")
	historySimilarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 5, "maximum results")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd, historySimilarCmd)
}
