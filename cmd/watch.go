package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swiftlab/swlin/internal"
	"github.com/swiftlab/swlin/lint"
)

// watchCmd: swlin watch
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-lint Swift files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		config, err := lint.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		engine, err := internal.NewEngine(config.Options, config.Rules)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		engine.WatchDirs(args)
		if err := engine.StartWatching(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer func() { _ = engine.StopWatching() }()

		fmt.Println("watching for changes; press Ctrl+C to stop")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
	},
}
