package lints

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckLineLength flags lines longer than the configured column limit.
// Trailing whitespace does not count towards the length; that is the
// trailing-whitespace rule's business.
func CheckLineLength(filename string, file *scan.File, limit int, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue

	for _, line := range file.Lines {
		effective := strings.TrimRight(line.Text, " \t")
		length := utf8.RuneCountInString(effective)
		if length <= limit {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:     "line-length",
			Severity: severity,
			Filename: filename,
			Message:  fmt.Sprintf("line is %d characters long, limit is %d", length, limit),
			Start:    types.Position{Line: line.Number, Column: limit + 1},
			End:      types.Position{Line: line.Number, Column: length},
		})
	}

	return issues, nil
}
