package questionbank

import (
	"fmt"
	"strings"

	"sat-prep/internal/domain"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"ID", "Domain", "Difficulty", "Question", "Choices", "Correct Answer", "Explanation",
}

// ExportWorkbook builds a spreadsheet with one sheet per section. Sections
// without questions still get a sheet with the header row.
func ExportWorkbook(bank *Bank) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, section := range domain.AllSections {
		sheet := string(section)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
			return nil, fmt.Errorf("failed to write header for %s: %w", sheet, err)
		}

		for rowIndex, q := range bank.QuestionsBySection(section) {
			cell, err := excelize.CoordinatesToCellName(1, rowIndex+2)
			if err != nil {
				return nil, err
			}
			row := []interface{}{
				q.ID,
				q.Domain,
				q.Difficulty,
				q.Prompt,
				formatChoices(q.Choices),
				q.CorrectAnswer,
				q.Explanation,
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write question %s: %w", q.ID, err)
			}
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func formatChoices(choices domain.Choices) string {
	lines := make([]string, 0, len(choices))
	for _, ch := range choices {
		lines = append(lines, fmt.Sprintf("%s) %s", ch.Key, ch.Text))
	}
	return strings.Join(lines, "\n")
}
