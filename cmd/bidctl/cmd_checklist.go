package main

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/spf13/cobra"
)

var checklistType string

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Generate a bid preparation checklist for a tender type",
	RunE:  runChecklist,
}

func init() {
	checklistCmd.Flags().StringVarP(&checklistType, "type", "t", model.TenderTypes[0],
		fmt.Sprintf("tender type (%s)", strings.Join(model.TenderTypes, " | ")))
	checklistCmd.Flags().BoolVar(&translate, "translate", false, "print the translated checklist")
}

func runChecklist(cmd *cobra.Command, args []string) error {
	view, err := bidApp.Checklist.Generate(cmd.Context(), checklistType)
	if err != nil {
		return err
	}
	if translate {
		if view, err = bidApp.Checklist.Translate(cmd.Context()); err != nil {
			return err
		}
	}
	return printJSON(cmd.OutOrStdout(), view)
}
