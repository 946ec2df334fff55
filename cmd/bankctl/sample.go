package main

import (
	"fmt"

	"sat-prep/internal/domain"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a random practice set",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawSection, _ := cmd.Flags().GetString("section")
		count, _ := cmd.Flags().GetInt("count")
		domainFilter, _ := cmd.Flags().GetString("domain")

		section, ok := domain.ParseSection(rawSection)
		if !ok {
			return domain.NewInvalidSectionError(rawSection)
		}
		if count < 0 {
			return fmt.Errorf("count must not be negative")
		}

		bank, _, err := openBank(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		questions := bank.RandomQuestions(section, count, domainFilter)
		for i, q := range questions {
			fmt.Fprintf(out, "%d. [%s] %s (%s)\n", i+1, q.ID, q.Prompt, q.Domain)
			for _, ch := range q.Choices {
				fmt.Fprintf(out, "   %s) %s\n", ch.Key, ch.Text)
			}
			if showAnswers, _ := cmd.Flags().GetBool("answers"); showAnswers {
				fmt.Fprintf(out, "   answer: %s\n", q.CorrectAnswer)
			}
		}
		if len(questions) == 0 {
			fmt.Fprintln(out, "no questions matched")
		}
		return nil
	},
}

func init() {
	sampleCmd.Flags().String("section", string(domain.SectionMath), "Section (math, reading, writing)")
	sampleCmd.Flags().Int("count", 10, "Number of questions")
	sampleCmd.Flags().String("domain", "", "Case-insensitive domain filter")
	sampleCmd.Flags().Bool("answers", false, "Print the correct answers")
}
