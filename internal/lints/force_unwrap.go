package lints

import (
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckForceUnwrap flags postfix force-unwrap operators. The scanner already
// folds comments and string literals into single tokens, so occurrences of
// "!" inside them never reach this check.
//
// A "!" is treated as a force unwrap when it directly follows a value
// (identifier, closing bracket/paren, string literal, or self/super). Prefix
// negation and comparison operators like "!=" are not flagged.
func CheckForceUnwrap(filename string, file *scan.File, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue

	var prev scan.Token
	for _, tok := range file.Tokens {
		if tok.Kind == scan.TokenComment {
			continue
		}
		if tok.Kind == scan.TokenOperator && isForceUnwrapOperator(tok.Text) && followsValue(prev) {
			issues = append(issues, types.Issue{
				Rule:       "force-unwrap",
				Severity:   severity,
				Filename:   filename,
				Message:    "force unwrapping crashes when the value is nil",
				Suggestion: "bind the optional with `if let` or `guard let`, or use optional chaining `?.`",
				Start:      types.Position{Line: tok.Line, Column: tok.Column},
				End:        types.Position{Line: tok.Line, Column: tok.Column},
			})
		}
		prev = tok
	}

	return issues, nil
}

// isForceUnwrapOperator matches operator tokens that begin with a bare "!".
// The scanner munches operator runs greedily, so a force unwrap followed by
// member access arrives as "!." while a comparison arrives as "!=".
func isForceUnwrapOperator(text string) bool {
	if !strings.HasPrefix(text, "!") {
		return false
	}
	return !strings.HasPrefix(text, "!=")
}

func followsValue(prev scan.Token) bool {
	switch prev.Kind {
	case scan.TokenIdent, scan.TokenParenClose, scan.TokenBracketClose, scan.TokenString:
		return true
	case scan.TokenKeyword:
		return prev.Text == "self" || prev.Text == "super"
	default:
		return false
	}
}
