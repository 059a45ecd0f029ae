package lints

import (
	"fmt"
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// CheckAccessAndFinal enforces the restrictive-by-default convention:
//   - a class must be `final` or carry a restrictive access modifier,
//   - a function must carry a restrictive access modifier.
//
// Declarations listed in the exempt allowlist are skipped, as are overrides,
// protocol requirements, and nested function literals.
func CheckAccessAndFinal(filename string, file *scan.File, exempt []string, severity types.Severity) ([]types.Issue, error) {
	exemptNames := make(map[string]bool, len(exempt))
	for _, name := range exempt {
		exemptNames[strings.ToLower(name)] = true
	}

	var issues []types.Issue
	tokens := file.Tokens

	braceDepth := 0
	protocolDepth := -1 // brace depth of the innermost protocol body, -1 when outside
	funcDepth := -1     // brace depth of the innermost function body, -1 when outside

	for i, tok := range tokens {
		switch tok.Kind {
		case scan.TokenBraceOpen:
			braceDepth++
			continue
		case scan.TokenBraceClose:
			braceDepth--
			if protocolDepth >= braceDepth {
				protocolDepth = -1
			}
			if funcDepth >= braceDepth {
				funcDepth = -1
			}
			continue
		case scan.TokenKeyword:
		default:
			continue
		}

		switch tok.Text {
		case "protocol":
			if protocolDepth < 0 {
				protocolDepth = braceDepth
			}
		case "class":
			// `class func` declares a type method, not a type
			next := nextMeaningful(tokens, i)
			if next < 0 || tokens[next].Kind != scan.TokenIdent {
				continue
			}
			name := tokens[next].Text
			mods := precedingModifiers(tokens, i)
			if mods["final"] || restrictive(mods) || exemptNames[strings.ToLower(name)] {
				continue
			}
			issues = append(issues, types.Issue{
				Rule:       "access-and-final",
				Severity:   severity,
				Filename:   filename,
				Message:    fmt.Sprintf("class %s can be subclassed and accessed from anywhere", name),
				Suggestion: fmt.Sprintf("declare it `final class %s` or restrict its access", name),
				Start:      types.Position{Line: tok.Line, Column: tok.Column},
				End:        types.Position{Line: tokens[next].Line, Column: tokens[next].Column + len(name) - 1},
			})
		case "func":
			if protocolDepth >= 0 || funcDepth >= 0 {
				// protocol requirements carry no access level and local
				// functions cannot have one
				continue
			}
			funcDepth = braceDepth

			next := nextMeaningful(tokens, i)
			if next < 0 || tokens[next].Kind != scan.TokenIdent {
				continue
			}
			name := tokens[next].Text
			mods := precedingModifiers(tokens, i)
			if restrictive(mods) || mods["override"] || mods["open"] || mods["public"] ||
				exemptNames[strings.ToLower(name)] {
				continue
			}
			issues = append(issues, types.Issue{
				Rule:       "access-and-final",
				Severity:   severity,
				Filename:   filename,
				Message:    fmt.Sprintf("function %s defaults to internal access", name),
				Suggestion: fmt.Sprintf("mark %s `private` unless wider access is required", name),
				Start:      types.Position{Line: tok.Line, Column: tok.Column},
				End:        types.Position{Line: tokens[next].Line, Column: tokens[next].Column + len(name) - 1},
			})
		}
	}

	return issues, nil
}

// modifierKeywords may precede a declaration keyword on the same statement.
var modifierKeywords = map[string]bool{
	"private": true, "fileprivate": true, "internal": true, "public": true,
	"open": true, "final": true, "static": true, "override": true,
	"lazy": true, "weak": true, "unowned": true, "mutating": true,
	"convenience": true, "required": true, "class": true,
}

// precedingModifiers collects the contiguous run of modifier keywords
// directly before the declaration keyword at index i.
func precedingModifiers(tokens []scan.Token, i int) map[string]bool {
	mods := make(map[string]bool)
	for j := i - 1; j >= 0; j-- {
		tok := tokens[j]
		if tok.Kind == scan.TokenComment {
			continue
		}
		if tok.Kind == scan.TokenKeyword && modifierKeywords[tok.Text] {
			mods[tok.Text] = true
			continue
		}
		// access levels can take a scope argument: private(set)
		if tok.Kind == scan.TokenParenClose || tok.Kind == scan.TokenParenOpen ||
			(tok.Kind == scan.TokenIdent && tok.Text == "set") {
			continue
		}
		break
	}
	return mods
}

func restrictive(mods map[string]bool) bool {
	return mods["private"] || mods["fileprivate"]
}
