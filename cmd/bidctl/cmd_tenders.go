package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var tendersCmd = &cobra.Command{
	Use:   "tenders [keywords]",
	Short: "Search for open tenders matching comma-separated keywords",
	Long: `Searches for open tenders. Without arguments the last successful
keywords are reused.

Example:
  bidctl tenders "Solar, ICT"`,
	RunE: runTenders,
}

func init() {
	tendersCmd.Flags().BoolVar(&translate, "translate", false, "print the translated tender list")
}

func runTenders(cmd *cobra.Command, args []string) error {
	keywords := strings.Join(args, " ")
	if strings.TrimSpace(keywords) == "" {
		keywords = bidApp.Monitor.Keywords(cmd.Context())
	}
	view, err := bidApp.Monitor.Search(cmd.Context(), keywords)
	if err != nil {
		return err
	}
	if translate {
		if view, err = bidApp.Monitor.Translate(cmd.Context()); err != nil {
			return err
		}
	}
	return printJSON(cmd.OutOrStdout(), view)
}
