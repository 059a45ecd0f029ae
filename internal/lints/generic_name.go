package lints

import (
	"fmt"
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// declarationKeywords introduce a name binding whose identifier is checked
// against the denylist.
var declarationKeywords = map[string]bool{
	"let": true, "var": true, "func": true, "class": true, "struct": true,
	"enum": true, "protocol": true, "typealias": true, "for": true,
}

// CheckGenericNames flags declared identifiers that match the configured
// denylist of overly generic names. Matching is case-insensitive and
// token-exact, so `x` matches but `xOffset` does not.
func CheckGenericNames(filename string, file *scan.File, denylist []string, severity types.Severity) ([]types.Issue, error) {
	if len(denylist) == 0 {
		return nil, nil
	}

	denied := make(map[string]bool, len(denylist))
	for _, name := range denylist {
		denied[strings.ToLower(name)] = true
	}

	var issues []types.Issue
	tokens := file.Tokens

	for i, tok := range tokens {
		if tok.Kind != scan.TokenKeyword || !declarationKeywords[tok.Text] {
			continue
		}
		next := nextMeaningful(tokens, i)
		if next < 0 || tokens[next].Kind != scan.TokenIdent {
			continue
		}
		name := tokens[next].Text
		if !denied[strings.ToLower(name)] {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:       "generic-name",
			Severity:   severity,
			Filename:   filename,
			Message:    fmt.Sprintf("name %q is too generic to convey its role", name),
			Suggestion: "pick a name that describes what the value is for",
			Start:      types.Position{Line: tokens[next].Line, Column: tokens[next].Column},
			End:        types.Position{Line: tokens[next].Line, Column: tokens[next].Column + len(name) - 1},
		})
	}

	return issues, nil
}
