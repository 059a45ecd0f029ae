// Package lint is the public entry point: it loads configuration, builds the
// engine, and runs it over files and directory trees.
package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/swiftlab/swlin/internal"
	tt "github.com/swiftlab/swlin/internal/types"
)

// LintEngine is the surface the processing helpers need from the engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// Config represents the overall configuration: shared options plus per-rule
// severity overrides.
type Config struct {
	Name    string                   `yaml:"name"`
	Options tt.Options               `yaml:",inline"`
	Rules   map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{Name: "swlin", Options: tt.DefaultOptions()}
}

// New builds an engine from the given configuration file. An empty path
// selects the built-in defaults.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}

	return internal.NewEngine(config.Options, config.Rules)
}

// LoadConfig reads and parses the yaml configuration file.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, fmt.Errorf("error reading configuration: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration: %w", err)
	}

	return config, nil
}

// FileResult pairs a path with the outcome of linting it. Err is set when the
// file could not be read or scanned; its issues are then empty.
type FileResult struct {
	Path   string
	Issues []tt.Issue
	Err    error
}

// ProcessFiles lints each path (file or directory) and returns per-file
// results ordered by path. A scan or read failure on one file is recorded in
// its result and does not stop the batch.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
) ([]FileResult, error) {
	var results []FileResult
	for _, path := range paths {
		pathResults, err := ProcessPath(ctx, logger, engine, path)
		if err != nil {
			return nil, err
		}
		results = append(results, pathResults...)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, nil
}

// ProcessPath lints a single file, or every Swift file under a directory
// using a bounded worker pool.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return []FileResult{{Path: path, Err: fmt.Errorf("error accessing %s: %w", path, err)}}, nil
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return []FileResult{processFile(logger, engine, path)}, nil
	}

	var files []string
	err = filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fileInfo.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// bounded worker pool; results keep the input index so aggregate order
	// stays stable regardless of completion order
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	results := make([]FileResult, len(files))
	done := make(chan int, len(files))

	started := 0
	for i, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			started++
			go func(idx int, fp string) {
				defer func() { <-sem }()
				results[idx] = processFile(logger, engine, fp)
				_ = bar.Add(1)
				done <- idx
			}(i, filePath)
		}
	}

	for n := 0; n < started; n++ {
		<-done
	}
	fmt.Println()

	return results, nil
}

func processFile(logger *zap.Logger, engine LintEngine, path string) FileResult {
	issues, err := engine.Run(path)
	if err != nil {
		if logger != nil {
			logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
		}
		return FileResult{Path: path, Err: err}
	}
	return FileResult{Path: path, Issues: issues}
}

// ProcessSources lints in-memory sources, mostly for tests and embedding.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		issues, err := engine.RunSource(source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// Summarize turns per-file results into reports and an overall exit code.
func Summarize(results []FileResult, warningsFailBuild bool) ([]tt.Report, int) {
	reports := make([]tt.Report, 0, len(results))
	exitCode := 0
	for _, res := range results {
		if res.Err != nil {
			exitCode = 1
			continue
		}
		report := tt.NewReport(res.Path, res.Issues)
		if report.Failed(warningsFailBuild) {
			exitCode = 1
		}
		reports = append(reports, report)
	}
	return reports, exitCode
}

var desiredExtensions = map[string]bool{
	".swift": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
