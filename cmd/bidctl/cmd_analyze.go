package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/util"
	"github.com/spf13/cobra"
)

var analyzeFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [bid text]",
	Short: "Analyze a tender document for relevance, risks and actions",
	Long: `Sends the bid text to the model and prints the structured analysis.
The text is read from --file (.pdf, .txt or .md) or taken from the arguments.

Example:
  bidctl analyze --file tender.pdf --translate`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "read the bid from a document")
	analyzeCmd.Flags().BoolVar(&translate, "translate", false, "print the translated analysis")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", analyzeFile, err)
		}
		text, err = util.ExtractDocumentText(filepath.Base(analyzeFile), data, log)
		if err != nil {
			return err
		}
	}

	view, entry, err := bidApp.Analyzer.Analyze(cmd.Context(), text)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "saved as %s (%s)\n", entry.ID, entry.Timestamp)
	if translate {
		if view, err = bidApp.Analyzer.Translate(cmd.Context()); err != nil {
			return err
		}
	}
	return printJSON(cmd.OutOrStdout(), view)
}
