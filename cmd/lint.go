package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swiftlab/swlin/formatter"
	"github.com/swiftlab/swlin/internal"
	tt "github.com/swiftlab/swlin/internal/types"
	"github.com/swiftlab/swlin/lint"
)

var (
	ignoreRules    string
	ignorePaths    string
	lintJsonOutput bool
	compactOutput  bool
	outPath        string
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run the normal lint process",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := lint.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		engine, err := internal.NewEngine(config.Options, config.Rules)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}
		if cacheDir != "" {
			if err := engine.EnableCache(cacheDir, cfgFile); err != nil {
				logger.Warn("Failed to enable cache", zap.Error(err))
			}
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				engine.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		if ignorePaths != "" {
			for _, path := range strings.Split(ignorePaths, ",") {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		runNormalLintProcess(ctx, logger, engine, args, config.Options.WarningsFailBuild)
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rules to ignore")
	lintCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	lintCmd.Flags().BoolVar(&lintJsonOutput, "json", false, "Output issues in JSON format")
	lintCmd.Flags().BoolVar(&compactOutput, "compact", false, "Output one issue per line for CI consumption")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runNormalLintProcess(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, warningsFailBuild bool) {
	results, err := lint.ProcessFiles(ctx, logger, engine, paths)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(logger, results)

	_, exitCode := lint.Summarize(results, warningsFailBuild)
	os.Exit(exitCode)
}

func printResults(logger *zap.Logger, results []lint.FileResult) {
	if lintJsonOutput {
		printJSON(logger, results)
		return
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		if len(res.Issues) == 0 {
			continue
		}
		if compactOutput {
			fmt.Print(formatter.FormatCompact(res.Issues))
			continue
		}
		sourceCode, err := internal.ReadSourceCode(res.Path)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", res.Path), zap.Error(err))
			continue
		}
		fmt.Println(formatter.GenerateFormattedIssue(res.Issues, sourceCode))
	}
}

func printJSON(logger *zap.Logger, results []lint.FileResult) {
	issuesByFile := make(map[string][]tt.Issue)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		issuesByFile[res.Path] = res.Issues
	}

	d, err := json.Marshal(issuesByFile)
	if err != nil {
		logger.Error("Error marshalling issues to JSON", zap.Error(err))
		return
	}
	if outPath == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
