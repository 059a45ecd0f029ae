package formatter

import (
	"fmt"
	"strings"
)

type NestingDepthFormatter struct{}

func (f *NestingDepthFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{depthInfo .Padding .Message }}

{{- if .Suggestion }}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}
{{- end }}
`
}

func depthInfo(padding string, message string) string {
	info := fmt.Sprintf("Nesting: %s", strings.TrimPrefix(message, "conditionals nested "))
	endString := lineStyle.Sprintf("%s| ", padding)
	endString += messageStyle.Sprintf("%s\n", info)

	return endString
}
