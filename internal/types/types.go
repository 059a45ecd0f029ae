package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity represents the severity level of a lint rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a config string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "off", "disabled":
		return SeverityOff, nil
	default:
		return SeverityOff, fmt.Errorf("unknown severity %q", s)
	}
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	sev, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return strings.ToLower(s.String()), nil
}

// Position is a 1-based line/column location in a source file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Issue represents a single style violation found in a source file.
type Issue struct {
	Rule       string   `json:"rule"`
	Severity   Severity `json:"severity"`
	Filename   string   `json:"filename"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Note       string   `json:"note,omitempty"`
	Start      Position `json:"start"`
	End        Position `json:"end"`
}

// ConfigRule carries per-rule configuration from the yaml config file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Options holds the tunable knobs shared by the rule catalog.
type Options struct {
	IndentWidth       int      `yaml:"indent-width"`
	MaxLineLength     int      `yaml:"max-line-length"`
	NestingDepthLimit int      `yaml:"nesting-depth-limit"`
	GenericNames      []string `yaml:"generic-names"`
	ExemptNames       []string `yaml:"exempt-names"`
	WarningsFailBuild bool     `yaml:"warnings-fail-build"`
}

// DefaultOptions returns the option values used when no config file is given.
func DefaultOptions() Options {
	return Options{
		IndentWidth:       2,
		MaxLineLength:     100,
		NestingDepthLimit: 1,
		GenericNames: []string{
			"x", "a", "b", "tmp", "temp", "val", "value",
			"label", "button", "view", "number", "string", "obj", "data",
		},
	}
}

// Validate reports the first invalid option value, if any.
func (o Options) Validate() error {
	if o.IndentWidth <= 0 {
		return fmt.Errorf("indent-width must be positive, got %d", o.IndentWidth)
	}
	if o.MaxLineLength <= 0 {
		return fmt.Errorf("max-line-length must be positive, got %d", o.MaxLineLength)
	}
	if o.NestingDepthLimit <= 0 {
		return fmt.Errorf("nesting-depth-limit must be positive, got %d", o.NestingDepthLimit)
	}
	return nil
}

// Report is the outcome of linting a single file.
type Report struct {
	Filename string  `json:"filename"`
	Issues   []Issue `json:"issues"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
}

// NewReport builds a Report from an already sorted issue slice.
func NewReport(filename string, issues []Issue) Report {
	r := Report{Filename: filename, Issues: issues}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			r.Errors++
		case SeverityWarning:
			r.Warnings++
		}
	}
	return r
}

// Failed reports whether this file should fail the build.
func (r Report) Failed(warningsFailBuild bool) bool {
	if r.Errors > 0 {
		return true
	}
	return warningsFailBuild && r.Warnings > 0
}
