package lints

import (
	"fmt"

	"github.com/swiftlab/swlin/internal/scan"
	"github.com/swiftlab/swlin/internal/types"
)

// frame kinds for the brace stack
const (
	framePlain = iota
	frameCond
	frameFunc
)

type braceFrame struct {
	kind      int
	line, col int
	condDepth int // conditional nesting level of this frame
	maxDepth  int // deepest conditional nesting observed under a root frame
}

// CheckNestingDepth flags conditional blocks nested beyond the configured
// limit inside a function body. Each offending chain is reported once, at the
// outermost conditional, since that is where restructuring with early returns
// starts. `guard` is the early-return idiom itself and never counts as
// nesting.
func CheckNestingDepth(filename string, file *scan.File, limit int, severity types.Severity) ([]types.Issue, error) {
	var issues []types.Issue
	tokens := file.Tokens

	var stack []braceFrame
	var rootIdx []int // indexes of depth-1 conditional frames in stack

	pending := framePlain
	pendingLine, pendingCol := 0, 0
	pendingParenBase := 0
	parenDepth := 0

	condDepth := func() int {
		if len(stack) == 0 {
			return 0
		}
		return stack[len(stack)-1].condDepth
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case scan.TokenParenOpen:
			parenDepth++
		case scan.TokenParenClose:
			parenDepth--
		case scan.TokenKeyword:
			switch tok.Text {
			case "if", "while", "for", "switch", "else":
				pending = frameCond
				pendingLine, pendingCol = tok.Line, tok.Column
				pendingParenBase = parenDepth
			case "func", "init", "deinit", "subscript":
				pending = frameFunc
				pendingLine, pendingCol = tok.Line, tok.Column
				pendingParenBase = parenDepth
			case "return", "guard":
				pending = framePlain
			}
		case scan.TokenBraceOpen:
			fr := braceFrame{kind: framePlain, line: tok.Line, col: tok.Column, condDepth: condDepth()}
			if pending != framePlain && parenDepth == pendingParenBase {
				fr.kind = pending
				fr.line, fr.col = pendingLine, pendingCol
			}
			pending = framePlain

			switch fr.kind {
			case frameFunc:
				fr.condDepth = 0
			case frameCond:
				fr.condDepth++
				if fr.condDepth == 1 {
					rootIdx = append(rootIdx, len(stack))
				} else if len(rootIdx) > 0 {
					root := &stack[rootIdx[len(rootIdx)-1]]
					if fr.condDepth > root.maxDepth {
						root.maxDepth = fr.condDepth
					}
				}
			}
			stack = append(stack, fr)
		case scan.TokenBraceClose:
			pending = framePlain
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.kind == frameCond && top.condDepth == 1 {
				if len(rootIdx) > 0 && rootIdx[len(rootIdx)-1] == len(stack) {
					rootIdx = rootIdx[:len(rootIdx)-1]
				}
				if top.maxDepth > limit {
					issues = append(issues, types.Issue{
						Rule:       "nesting-depth",
						Severity:   severity,
						Filename:   filename,
						Message:    fmt.Sprintf("conditionals nested %d levels deep, limit is %d", top.maxDepth, limit),
						Suggestion: "flatten the happy path with `guard` and early returns",
						Start:      types.Position{Line: top.line, Column: top.col},
						End:        types.Position{Line: top.line, Column: top.col},
					})
				}
			}
		}
	}

	return issues, nil
}
