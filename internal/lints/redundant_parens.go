package lints

import (
	"fmt"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckRedundantParens flags conditions after if/while/guard that are wrapped
// in parentheses covering the whole condition. Parentheses that group only a
// part of the condition are fine; they may be needed for precedence.
func CheckRedundantParens(filename string, file *scan.File, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	tokens := file.Tokens

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != scan.TokenKeyword {
			continue
		}
		if tok.Text != "if" && tok.Text != "while" && tok.Text != "guard" {
			continue
		}

		open := nextMeaningful(tokens, i)
		if open < 0 || tokens[open].Kind != scan.TokenParenOpen {
			continue
		}

		closing := matchingParen(tokens, open)
		if closing < 0 {
			continue
		}

		after := nextMeaningful(tokens, closing)
		if after < 0 {
			continue
		}

		// the parens span the whole condition only when the matching close is
		// directly followed by the body (or by `else` for guard)
		followedByBody := tokens[after].Kind == scan.TokenBraceOpen
		followedByElse := tok.Text == "guard" &&
			tokens[after].Kind == scan.TokenKeyword && tokens[after].Text == "else"
		if !followedByBody && !followedByElse {
			continue
		}

		issues = append(issues, types.Issue{
			Rule:       "redundant-parens",
			Severity:   severity,
			Filename:   filename,
			Message:    fmt.Sprintf("parentheses around the `%s` condition are not needed", tok.Text),
			Suggestion: "drop the surrounding parentheses",
			Start:      types.Position{Line: tokens[open].Line, Column: tokens[open].Column},
			End:        types.Position{Line: tokens[closing].Line, Column: tokens[closing].Column},
		})
	}

	return issues, nil
}

// nextMeaningful returns the index of the next non-comment token after i.
func nextMeaningful(tokens []scan.Token, i int) int {
	for j := i + 1; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case scan.TokenComment:
			continue
		case scan.TokenEOF:
			return -1
		default:
			return j
		}
	}
	return -1
}

// matchingParen returns the index of the close paren matching tokens[open].
func matchingParen(tokens []scan.Token, open int) int {
	depth := 0
	for j := open; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case scan.TokenParenOpen:
			depth++
		case scan.TokenParenClose:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}
