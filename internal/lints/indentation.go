package lints

import (
	"fmt"
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckIndentation flags lines whose leading whitespace is not a multiple of
// the configured indent width, and lines that mix tabs with spaces.
// Lines that start inside a block comment or a multiline string are skipped;
// their indentation belongs to the literal, not to the code.
func CheckIndentation(filename string, file *scan.File, width int, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue

	for _, line := range file.Lines {
		if line.InComment || line.InString || line.Trimmed == "" {
			continue
		}
		indent := line.Indent
		if indent == "" {
			continue
		}

		hasTab := strings.ContainsRune(indent, '\t')
		hasSpace := strings.ContainsRune(indent, ' ')

		switch {
		case hasTab && hasSpace:
			issues = append(issues, types.Issue{
				Rule:       "indentation",
				Severity:   severity,
				Filename:   filename,
				Message:    "indentation mixes tabs and spaces",
				Suggestion: fmt.Sprintf("indent with %d spaces per level", width),
				Start:      types.Position{Line: line.Number, Column: 1},
				End:        types.Position{Line: line.Number, Column: len(indent)},
			})
		case hasSpace && len(indent)%width != 0:
			issues = append(issues, types.Issue{
				Rule:     "indentation",
				Severity: severity,
				Filename: filename,
				Message:  fmt.Sprintf("indentation of %d spaces is not a multiple of %d", len(indent), width),
				Start:    types.Position{Line: line.Number, Column: 1},
				End:      types.Position{Line: line.Number, Column: len(indent)},
			})
		}
	}

	return issues, nil
}
