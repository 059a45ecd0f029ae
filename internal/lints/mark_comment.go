package lints

import (
	"fmt"
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckMarkComments requires a section marker comment before extensions that
// add protocol conformance, keeping related methods grouped and navigable:
//
//	// MARK: - UITableViewDataSource
//	extension MyViewController: UITableViewDataSource { ... }
func CheckMarkComments(filename string, file *scan.File, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	tokens := file.Tokens

	for i, tok := range tokens {
		if tok.Kind != scan.TokenKeyword || tok.Text != "extension" {
			continue
		}

		name, end := extendedTypeName(tokens, i)
		if name == "" {
			continue
		}
		// a conformance extension has a colon right after the type name
		colon := nextMeaningful(tokens, end)
		if colon < 0 || tokens[colon].Kind != scan.TokenPunct || tokens[colon].Text != ":" {
			continue
		}

		if hasPrecedingMark(file, tok.Line) {
			continue
		}
		issues = append(issues, types.Issue{
			Rule:       "mark-comment",
			Severity:   severity,
			Filename:   filename,
			Message:    fmt.Sprintf("conformance extension of %s has no section marker", name),
			Suggestion: "add a `// MARK: -` comment naming the protocol above the extension",
			Start:      types.Position{Line: tok.Line, Column: tok.Column},
			End:        types.Position{Line: tok.Line, Column: tok.Column},
		})
	}

	return issues, nil
}

// extendedTypeName reads the (possibly dotted) type name after `extension`
// and returns it with the index of its last token.
func extendedTypeName(tokens []scan.Token, ext int) (string, int) {
	idx := nextMeaningful(tokens, ext)
	if idx < 0 || tokens[idx].Kind != scan.TokenIdent {
		return "", ext
	}
	name := tokens[idx].Text
	for {
		dot := nextMeaningful(tokens, idx)
		if dot < 0 || tokens[dot].Kind != scan.TokenOperator || tokens[dot].Text != "." {
			break
		}
		part := nextMeaningful(tokens, dot)
		if part < 0 || tokens[part].Kind != scan.TokenIdent {
			break
		}
		name += "." + tokens[part].Text
		idx = part
	}
	return name, idx
}

// hasPrecedingMark checks whether the nearest non-blank line above carries a
// MARK comment.
func hasPrecedingMark(file *scan.File, extLine int) bool {
	for i := extLine - 2; i >= 0; i-- {
		line := file.Lines[i]
		if line.Trimmed == "" {
			continue
		}
		if !strings.HasPrefix(line.Trimmed, "//") {
			return false
		}
		return strings.Contains(line.Trimmed, "MARK:")
	}
	return false
}
