package main

import (
	"fmt"

	"sat-prep/internal/questionbank"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the question bank to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		bank, _, err := openBank(cmd)
		if err != nil {
			return err
		}

		f, err := questionbank.ExportWorkbook(bank)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := f.SaveAs(out); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "questions.xlsx", "Output file")
}
