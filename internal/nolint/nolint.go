// Package nolint handles inline disable directives.
//
// A comment of the form "// swlin:disable" suppresses all rules, and
// "// swlin:disable:rule-a,rule-b" suppresses the listed rules. A trailing
// directive applies to its own line, a standalone directive applies to the
// next source line, and a directive placed before any code applies to the
// whole file.
package nolint

import (
	"strings"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

const directivePrefix = "swlin:disable"

// Manager holds the disable scopes parsed from one file.
type Manager struct {
	scopes []scope
}

// scope represents a line range in which a set of rules is suppressed.
type scope struct {
	rules     map[string]struct{} // empty means all rules
	startLine int
	endLine   int
}

// Parse collects disable directives from the scanned file's comment tokens.
func Parse(file *scan.File) *Manager {
	m := &Manager{}

	for _, tok := range file.Tokens {
		if tok.Kind != scan.TokenComment {
			continue
		}
		rules, ok := parseDirective(tok.Text)
		if !ok {
			continue
		}

		sc := scope{rules: rules}
		first := firstCodeLine(file)
		switch {
		case first == 0 || tok.Line < first:
			// before any code: whole file
			sc.startLine = 1
			sc.endLine = len(file.Lines)
		case isTrailing(file, tok):
			sc.startLine = tok.Line
			sc.endLine = tok.Line
		default:
			// standalone comment: applies to the next source line
			sc.startLine = tok.Line
			sc.endLine = nextCodeLine(file, tok.Line)
		}
		m.scopes = append(m.scopes, sc)
	}

	return m
}

// parseDirective extracts the rule list from a directive comment.
// The second return value is false for ordinary comments.
func parseDirective(comment string) (map[string]struct{}, bool) {
	text := strings.TrimSpace(strings.TrimLeft(comment, "/* "))
	text = strings.TrimSuffix(text, "*/")
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, directivePrefix) {
		return nil, false
	}

	rest := strings.TrimPrefix(text, directivePrefix)
	rules := make(map[string]struct{})
	if rest == "" {
		return rules, true
	}
	if rest[0] != ':' {
		return nil, false
	}
	for _, rule := range strings.Split(rest[1:], ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	if len(rules) == 0 {
		return nil, false
	}
	return rules, true
}

// firstCodeLine returns the line of the first non-comment token,
// or 0 when the file holds no code at all.
func firstCodeLine(file *scan.File) int {
	for _, tok := range file.Tokens {
		if tok.Kind != scan.TokenComment && tok.Kind != scan.TokenEOF {
			return tok.Line
		}
	}
	return 0
}

// isTrailing reports whether the comment shares its line with code.
func isTrailing(file *scan.File, comment scan.Token) bool {
	for _, tok := range file.Tokens {
		if tok.Line == comment.Line && tok.Kind != scan.TokenComment && tok.Kind != scan.TokenEOF {
			return true
		}
	}
	return false
}

// nextCodeLine finds the first line after the given one that carries a token.
func nextCodeLine(file *scan.File, after int) int {
	best := 0
	for _, tok := range file.Tokens {
		if tok.Kind == scan.TokenEOF || tok.Line <= after {
			continue
		}
		if best == 0 || tok.Line < best {
			best = tok.Line
		}
	}
	if best == 0 {
		return after
	}
	return best
}

// IsSuppressed checks whether the given issue falls inside a disable scope.
func (m *Manager) IsSuppressed(issue types.Issue) bool {
	for _, sc := range m.scopes {
		if issue.Start.Line < sc.startLine || issue.Start.Line > sc.endLine {
			continue
		}
		if len(sc.rules) == 0 {
			return true
		}
		if _, ok := sc.rules[issue.Rule]; ok {
			return true
		}
	}
	return false
}
