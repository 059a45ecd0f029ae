package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/swiftlab/swlin/internal/nolint"
	"github.com/swiftlab/swlin/internal/scan"
	tt "github.com/swiftlab/swlin/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	rules        map[string]StyleRule
	ignoredRules map[string]bool
	ignoredPaths []string
	cache        *Cache

	// watch mode state
	watchDirs  []string
	watcher    *fsnotify.Watcher
	isWatching bool
}

// ruleConstructor builds a rule with its options applied.
type ruleConstructor func(opts tt.Options) StyleRule

type ruleMap map[string]ruleConstructor

// allRuleConstructors maps rule names to their constructors.
var allRuleConstructors = ruleMap{
	"indentation": func(opts tt.Options) StyleRule {
		return &IndentationRule{baseRule: baseRule{severity: tt.SeverityWarning}, Width: opts.IndentWidth}
	},
	"line-length": func(opts tt.Options) StyleRule {
		return &LineLengthRule{baseRule: baseRule{severity: tt.SeverityWarning}, Limit: opts.MaxLineLength}
	},
	"trailing-whitespace": func(opts tt.Options) StyleRule {
		return &TrailingWhitespaceRule{baseRule: baseRule{severity: tt.SeverityWarning}}
	},
	"force-unwrap": func(opts tt.Options) StyleRule {
		return &ForceUnwrapRule{baseRule: baseRule{severity: tt.SeverityError}}
	},
	"redundant-parens": func(opts tt.Options) StyleRule {
		return &RedundantParensRule{baseRule: baseRule{severity: tt.SeverityWarning}}
	},
	"generic-name": func(opts tt.Options) StyleRule {
		return &GenericNameRule{baseRule: baseRule{severity: tt.SeverityWarning}, Denylist: opts.GenericNames}
	},
	"access-and-final": func(opts tt.Options) StyleRule {
		return &AccessAndFinalRule{baseRule: baseRule{severity: tt.SeverityWarning}, Exempt: opts.ExemptNames}
	},
	"nesting-depth": func(opts tt.Options) StyleRule {
		return &NestingDepthRule{baseRule: baseRule{severity: tt.SeverityWarning}, Limit: opts.NestingDepthLimit}
	},
	"mark-comment": func(opts tt.Options) StyleRule {
		return &MarkCommentRule{baseRule: baseRule{severity: tt.SeverityWarning}}
	},
}

// NewEngine creates a new lint engine. Per-rule severities from the config
// override the defaults; SeverityOff disables a rule.
func NewEngine(opts tt.Options, rules map[string]tt.ConfigRule) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	engine := &Engine{rules: make(map[string]StyleRule, len(allRuleConstructors))}
	for name, construct := range allRuleConstructors {
		engine.rules[name] = construct(opts)
	}

	for name, cfg := range rules {
		rule, ok := engine.rules[name]
		if !ok {
			return nil, fmt.Errorf("invalid configuration: unknown rule %q", name)
		}
		if cfg.Severity == tt.SeverityOff {
			engine.IgnoreRule(name)
			continue
		}
		rule.SetSeverity(cfg.Severity)
	}

	return engine, nil
}

// Rules returns the registered rules sorted by name.
func (e *Engine) Rules() []StyleRule {
	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]StyleRule, 0, len(names))
	for _, name := range names {
		rules = append(rules, e.rules[name])
	}
	return rules
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnoredPath(path string) bool {
	cleaned := filepath.Clean(path)
	for _, ignored := range e.ignoredPaths {
		if cleaned == ignored || strings.HasPrefix(cleaned, ignored+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run applies all style rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	if e.cache != nil {
		if issues, ok := e.cache.Get(filename); ok {
			return issues, nil
		}
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	issues, err := e.runScanned(filename, source)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(filename, issues); err != nil {
			return issues, nil // a broken cache must not fail the run
		}
	}
	return issues, nil
}

// RunSource applies all style rules to in-memory source.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runScanned("", source)
}

func (e *Engine) runScanned(filename string, source []byte) ([]tt.Issue, error) {
	file, err := scan.Source(filename, source)
	if err != nil {
		return nil, fmt.Errorf("error scanning file: %w", err)
	}

	suppressions := nolint.Parse(file)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r StyleRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] {
				return
			}
			issues, err := r.Check(filename, file)
			if err != nil {
				return
			}

			kept := make([]tt.Issue, 0, len(issues))
			for _, issue := range issues {
				if !suppressions.IsSuppressed(issue) {
					kept = append(kept, issue)
				}
			}

			mu.Lock()
			allIssues = append(allIssues, kept...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	return normalize(allIssues), nil
}

// normalize sorts issues deterministically and drops exact duplicates
// (same rule, line and column).
func normalize(issues []tt.Issue) []tt.Issue {
	sort.Slice(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		return a.Rule < b.Rule
	})

	deduped := issues[:0]
	var last tt.Issue
	for i, issue := range issues {
		if i > 0 && issue.Rule == last.Rule && issue.Start == last.Start {
			continue
		}
		deduped = append(deduped, issue)
		last = issue
	}
	return deduped
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
