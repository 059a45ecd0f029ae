package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/swiftlab/swlin/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(tt.DefaultOptions(), nil)
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	assert.Len(t, engine.Rules(), 9)
}

func TestNewEngineRejectsInvalidOptions(t *testing.T) {
	t.Parallel()
	opts := tt.DefaultOptions()
	opts.IndentWidth = 0
	_, err := NewEngine(opts, nil)
	assert.Error(t, err)
}

func TestNewEngineRejectsUnknownRule(t *testing.T) {
	t.Parallel()
	_, err := NewEngine(tt.DefaultOptions(), map[string]tt.ConfigRule{
		"no-such-rule": {Severity: tt.SeverityWarning},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-rule")
}

func TestRunSourceSingleViolation(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	issues, err := engine.RunSource([]byte("let x = 5\n"))
	require.NoError(t, err)

	require.Len(t, issues, 1)
	assert.Equal(t, "generic-name", issues[0].Rule)
	assert.Equal(t, 1, issues[0].Start.Line)
	assert.Equal(t, 5, issues[0].Start.Column)
}

func TestRunSourceCleanFile(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	code := "import Foundation\n" +
		"\n" +
		"private func makeGreeting(for person: String) -> String {\n" +
		"  return \"Hello, \\(person)\"\n" +
		"}\n"
	issues, err := engine.RunSource([]byte(code))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestRunSourceSortsAcrossRules(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	code := "let user = fetch()!  \n" +
		"if (ready) {\n" +
		"}\n"
	issues, err := engine.RunSource([]byte(code))
	require.NoError(t, err)

	require.Len(t, issues, 3)
	assert.Equal(t, "force-unwrap", issues[0].Rule)
	assert.Equal(t, "trailing-whitespace", issues[1].Rule)
	assert.Equal(t, "redundant-parens", issues[2].Rule)
}

func TestRunSourceDeterministic(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	code := "let x = user!   \n" +
		"if (a) {\n" +
		"   let tmp = b!\n" +
		"}\n"

	first, err := engine.RunSource([]byte(code))
	require.NoError(t, err)
	for n := 0; n < 10; n++ {
		again, err := engine.RunSource([]byte(code))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRunSourceScanError(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	_, err := engine.RunSource([]byte("let s = \"never closed\n"))
	assert.Error(t, err)
}

func TestIgnoreRule(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	engine.IgnoreRule("generic-name")

	issues, err := engine.RunSource([]byte("let x = 5\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestSeverityOverride(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(tt.DefaultOptions(), map[string]tt.ConfigRule{
		"generic-name": {Severity: tt.SeverityError},
	})
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte("let x = 5\n"))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.SeverityError, issues[0].Severity)
}

func TestSeverityOffDisablesRule(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(tt.DefaultOptions(), map[string]tt.ConfigRule{
		"generic-name": {Severity: tt.SeverityOff},
	})
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte("let x = 5\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestRunSourceRespectsDisableDirective(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	issues, err := engine.RunSource([]byte("let x = 5 // swlin:disable:generic-name\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestRunIgnoredPath(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	engine.IgnorePath("vendor")

	issues, err := engine.Run(filepath.Join("vendor", "thirdparty.swift"))
	require.NoError(t, err)
	assert.Nil(t, issues)
}

func TestRunReadsFromDisk(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.swift")
	require.NoError(t, os.WriteFile(path, []byte("let user = fetch()!\n"), 0o644))

	issues, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "force-unwrap", issues[0].Rule)
	assert.Equal(t, path, issues[0].Filename)
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	_, err := engine.Run(filepath.Join(t.TempDir(), "missing.swift"))
	assert.Error(t, err)
}

func TestNormalizeDedupes(t *testing.T) {
	t.Parallel()
	dup := tt.Issue{Rule: "line-length", Start: tt.Position{Line: 3, Column: 1}}
	out := normalize([]tt.Issue{dup, dup, {Rule: "line-length", Start: tt.Position{Line: 4, Column: 1}}})
	assert.Len(t, out, 2)
}
