package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/swiftlab/swlin/lint"
)

// initCmd: swlin init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = ".swlin.yaml"
	}

	d, err := yaml.Marshal(lint.DefaultConfig())
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(configurationPath, d, 0o644); err != nil {
		return "", err
	}

	return configurationPath, nil
}
