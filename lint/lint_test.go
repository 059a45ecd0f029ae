package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlab/swlin/internal"
	tt "github.com/swiftlab/swlin/internal/types"
)

func newTestEngine(t *testing.T) *internal.Engine {
	t.Helper()
	engine, err := internal.NewEngine(tt.DefaultOptions(), nil)
	require.NoError(t, err)
	return engine
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 2, config.Options.IndentWidth)
	assert.Equal(t, 100, config.Options.MaxLineLength)
	assert.Equal(t, 1, config.Options.NestingDepthLimit)
	assert.False(t, config.Options.WarningsFailBuild)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, ".swlin.yaml")
	content := "name: myproject\n" +
		"indent-width: 4\n" +
		"warnings-fail-build: true\n" +
		"rules:\n" +
		"  force-unwrap:\n" +
		"    severity: warning\n" +
		"  mark-comment:\n" +
		"    severity: off\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "myproject", config.Name)
	assert.Equal(t, 4, config.Options.IndentWidth)
	assert.True(t, config.Options.WarningsFailBuild)
	// untouched options keep their defaults
	assert.Equal(t, 100, config.Options.MaxLineLength)
	assert.NotEmpty(t, config.Options.GenericNames)

	assert.Equal(t, tt.SeverityWarning, config.Rules["force-unwrap"].Severity)
	assert.Equal(t, tt.SeverityOff, config.Rules["mark-comment"].Severity)
}

func TestLoadConfigRejectsBadSeverity(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".swlin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  force-unwrap:\n    severity: loud\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestNewFromConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".swlin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  generic-name:\n    severity: off\n"), 0o644))

	engine, err := New(path)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte("let x = 5\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestProcessFilesOverDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	clean := "import Foundation\n" +
		"\n" +
		"private func makeGreeting(for person: String) -> String {\n" +
		"  return \"Hello, \\(person)\"\n" +
		"}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.swift"), []byte(clean), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.swift"), []byte("let x = user!\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not swift\n"), 0o644))

	results, err := ProcessFiles(context.Background(), nil, newTestEngine(t), []string{dir})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(dir, "clean.swift"), results[0].Path)
	assert.Empty(t, results[0].Issues)
	assert.Equal(t, filepath.Join(dir, "dirty.swift"), results[1].Path)
	assert.Len(t, results[1].Issues, 2)
}

func TestProcessFilesSingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "one.swift")
	require.NoError(t, os.WriteFile(path, []byte("let user = fetch()!\n"), 0o644))

	results, err := ProcessFiles(context.Background(), nil, newTestEngine(t), []string{path})
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.Len(t, results[0].Issues, 1)
	assert.Equal(t, "force-unwrap", results[0].Issues[0].Rule)
}

func TestProcessFilesRecordsScanFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.swift"), []byte("let s = \"never closed\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fine.swift"), []byte("let user = fetch()!\n"), 0o644))

	results, err := ProcessFiles(context.Background(), nil, newTestEngine(t), []string{dir})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Len(t, results[1].Issues, 1)
}

func TestProcessFilesMissingPath(t *testing.T) {
	t.Parallel()
	results, err := ProcessFiles(context.Background(), nil, newTestEngine(t), []string{filepath.Join(t.TempDir(), "ghost")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestProcessPathCancelled(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.swift"), []byte("let ok = 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessPath(ctx, nil, newTestEngine(t), dir)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProcessSources(t *testing.T) {
	t.Parallel()
	issues, err := ProcessSources(context.Background(), nil, newTestEngine(t), [][]byte{
		[]byte("let user = fetch()!\n"),
		[]byte("let ok = 1\n"),
	})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "force-unwrap", issues[0].Rule)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	errorIssue := tt.Issue{Rule: "force-unwrap", Severity: tt.SeverityError}
	warnIssue := tt.Issue{Rule: "line-length", Severity: tt.SeverityWarning}

	tests := []struct {
		name              string
		results           []FileResult
		warningsFailBuild bool
		expectedExit      int
	}{
		{
			name:         "clean run",
			results:      []FileResult{{Path: "a.swift"}},
			expectedExit: 0,
		},
		{
			name:         "error fails",
			results:      []FileResult{{Path: "a.swift", Issues: []tt.Issue{errorIssue}}},
			expectedExit: 1,
		},
		{
			name:         "warnings pass by default",
			results:      []FileResult{{Path: "a.swift", Issues: []tt.Issue{warnIssue}}},
			expectedExit: 0,
		},
		{
			name:              "warnings fail when configured",
			results:           []FileResult{{Path: "a.swift", Issues: []tt.Issue{warnIssue}}},
			warningsFailBuild: true,
			expectedExit:      1,
		},
		{
			name:         "read failure fails",
			results:      []FileResult{{Path: "a.swift", Err: errors.New("no such file")}},
			expectedExit: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reports, exitCode := Summarize(tc.results, tc.warningsFailBuild)
			assert.Equal(t, tc.expectedExit, exitCode)
			for _, report := range reports {
				assert.Equal(t, "a.swift", report.Filename)
			}
		})
	}
}
