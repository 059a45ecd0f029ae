package lints

import (
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckTrailingWhitespace flags every line that ends in whitespace, including
// whitespace-only lines. Lines inside multiline string literals are left
// alone; their trailing whitespace is literal content.
func CheckTrailingWhitespace(filename string, file *scan.File, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue

	for _, line := range file.Lines {
		if line.InString {
			continue
		}
		trimmed := strings.TrimRight(line.Text, " \t")
		if len(trimmed) == len(line.Text) || len(line.Text) == 0 {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:     "trailing-whitespace",
			Severity: severity,
			Filename: filename,
			Message:  "line has trailing whitespace",
			Start:    types.Position{Line: line.Number, Column: len(trimmed) + 1},
			End:      types.Position{Line: line.Number, Column: len(line.Text)},
		})
	}

	return issues, nil
}
