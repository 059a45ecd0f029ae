package formatter

import (
	"fmt"
	"strings"

	tt "github.com/swiftlab/swlin/internal/types"
)

// FormatCompact renders issues one per line in the editor-friendly
// <path>:<line>:<column>: <severity>: <rule>: <message> form used by CI.
func FormatCompact(issues []tt.Issue) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(fmt.Sprintf("%s:%d:%d: %s: %s: %s\n",
			issue.Filename,
			issue.Start.Line,
			issue.Start.Column,
			strings.ToLower(issue.Severity.String()),
			issue.Rule,
			issue.Message,
		))
	}
	return builder.String()
}
