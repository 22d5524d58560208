package main

import (
	"fmt"

	"github.com/ethanbaker/wishes/internal/credentials"
	"github.com/ethanbaker/wishes/internal/sheets"
	"github.com/ethanbaker/wishes/pkg/utils"
	"github.com/ethanbaker/wishes/pkg/wish"
	"github.com/spf13/cobra"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// newCheckCmd reads the first rows of the target sheet with the stored credentials
func newCheckCmd(opts *options, cfg *utils.Config) *cobra.Command {
	var (
		target wish.SpreadsheetTarget
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the stored credentials by reading the wish sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if target.SpreadsheetID == "" {
				return fmt.Errorf("--sheet-id is required (or set SHEET_ID)")
			}

			bundle, err := credentials.Load("sheets", opts.credentialsPath, opts.tokenPath, sheetsapi.SpreadsheetsScope)
			if err != nil {
				return err
			}

			client, err := sheets.NewClient(cmd.Context(), bundle, 0)
			if err != nil {
				return err
			}

			rows, err := client.Read(cmd.Context(), target)
			if err != nil {
				return err
			}

			printRows(cmd, rows, limit)
			return nil
		},
	}

	cmd.Flags().StringVar(&target.SpreadsheetID, "sheet-id", cfg.Get("SHEET_ID"), "Spreadsheet ID")
	cmd.Flags().StringVar(&target.SheetName, "sheet-name", cfg.GetWithDefault("SHEET_NAME", "Sheet1"), "Sheet (tab) name")
	cmd.Flags().IntVar(&limit, "limit", 5, "Number of rows to print")

	return cmd
}

func printRows(cmd *cobra.Command, rows [][]any, limit int) {
	out := cmd.OutOrStdout()

	if len(rows) == 0 {
		fmt.Fprintln(out, "No data found.")
		return
	}

	fmt.Fprintf(out, "Sample rows (%d total):\n", len(rows))
	for i, row := range rows {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintln(out, row...)
	}
}
