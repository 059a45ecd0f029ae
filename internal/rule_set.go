package internal

import (
	"github.com/swiftlab/swlin/internal/lints"
	"github.com/swiftlab/swlin/internal/scan"
	tt "github.com/swiftlab/swlin/internal/types"
)

/*
* Implement each style rule as a separate struct
 */

// StyleRule defines the interface for all style rules.
type StyleRule interface {
	// Check runs the rule on the scanned file and returns a slice of Issues.
	Check(filename string, file *scan.File) ([]tt.Issue, error)

	// Name returns the identifier of the rule.
	Name() string

	// Description returns a one-line summary for `swlin rules`.
	Description() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// baseRule carries the severity plumbing shared by every rule.
type baseRule struct {
	severity tt.Severity
}

func (r *baseRule) Severity() tt.Severity     { return r.severity }
func (r *baseRule) SetSeverity(s tt.Severity) { r.severity = s }

type IndentationRule struct {
	baseRule
	Width int
}

func (r *IndentationRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckIndentation(filename, file, r.Width, r.severity)
}

func (r *IndentationRule) Name() string { return "indentation" }
func (r *IndentationRule) Description() string {
	return "leading whitespace must be a consistent multiple of the indent width"
}

type LineLengthRule struct {
	baseRule
	Limit int
}

func (r *LineLengthRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckLineLength(filename, file, r.Limit, r.severity)
}

func (r *LineLengthRule) Name() string { return "line-length" }
func (r *LineLengthRule) Description() string {
	return "lines must not exceed the configured column limit"
}

type TrailingWhitespaceRule struct {
	baseRule
}

func (r *TrailingWhitespaceRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckTrailingWhitespace(filename, file, r.severity)
}

func (r *TrailingWhitespaceRule) Name() string { return "trailing-whitespace" }
func (r *TrailingWhitespaceRule) Description() string {
	return "lines must not end in whitespace"
}

type ForceUnwrapRule struct {
	baseRule
}

func (r *ForceUnwrapRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckForceUnwrap(filename, file, r.severity)
}

func (r *ForceUnwrapRule) Name() string { return "force-unwrap" }
func (r *ForceUnwrapRule) Description() string {
	return "optionals must be unwrapped with binding or chaining, not `!`"
}

type RedundantParensRule struct {
	baseRule
}

func (r *RedundantParensRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckRedundantParens(filename, file, r.severity)
}

func (r *RedundantParensRule) Name() string { return "redundant-parens" }
func (r *RedundantParensRule) Description() string {
	return "conditions after if/while/guard must not be fully parenthesized"
}

type GenericNameRule struct {
	baseRule
	Denylist []string
}

func (r *GenericNameRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckGenericNames(filename, file, r.Denylist, r.severity)
}

func (r *GenericNameRule) Name() string { return "generic-name" }
func (r *GenericNameRule) Description() string {
	return "declared names must be descriptive, not from the generic-name denylist"
}

type AccessAndFinalRule struct {
	baseRule
	Exempt []string
}

func (r *AccessAndFinalRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckAccessAndFinal(filename, file, r.Exempt, r.severity)
}

func (r *AccessAndFinalRule) Name() string { return "access-and-final" }
func (r *AccessAndFinalRule) Description() string {
	return "classes should be final and declarations private unless exempted"
}

type NestingDepthRule struct {
	baseRule
	Limit int
}

func (r *NestingDepthRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckNestingDepth(filename, file, r.Limit, r.severity)
}

func (r *NestingDepthRule) Name() string { return "nesting-depth" }
func (r *NestingDepthRule) Description() string {
	return "conditionals must not nest beyond the configured depth; prefer early returns"
}

type MarkCommentRule struct {
	baseRule
}

func (r *MarkCommentRule) Check(filename string, file *scan.File) ([]tt.Issue, error) {
	return lints.CheckMarkComments(filename, file, r.severity)
}

func (r *MarkCommentRule) Name() string { return "mark-comment" }
func (r *MarkCommentRule) Description() string {
	return "protocol conformance extensions need a preceding // MARK: - comment"
}
