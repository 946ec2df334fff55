package main

import (
	"fmt"

	"sat-prep/internal/domain"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the dataset and report what was kept and excluded",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, report, err := openBank(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, section := range domain.AllSections {
			fmt.Fprintf(out, "%-8s %5d questions  domains: %v\n", section, bank.Count(section), bank.Domains(section))
		}
		for _, s := range report.MissingSections {
			fmt.Fprintf(out, "missing section: %s\n", s)
		}
		for _, key := range report.UnknownKeys {
			fmt.Fprintf(out, "unknown key: %s\n", key)
		}
		for _, ex := range report.Excluded {
			fmt.Fprintf(out, "excluded %s[%d] id=%q: %s\n", ex.Section, ex.Index, ex.ID, ex.Reason)
		}
		fmt.Fprintf(out, "total %d, excluded %d\n", report.Total(), len(report.Excluded))

		if strict, _ := cmd.Flags().GetBool("strict"); strict && len(report.Excluded) > 0 {
			return fmt.Errorf("%d records excluded", len(report.Excluded))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Exit non-zero when any record is excluded")
}
