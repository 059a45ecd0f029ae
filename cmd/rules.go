package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swiftlab/swlin/internal"
	tt "github.com/swiftlab/swlin/internal/types"
)

// rulesCmd: swlin rules
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all registered style rules",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := internal.NewEngine(tt.DefaultOptions(), nil)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		for _, rule := range engine.Rules() {
			fmt.Printf("%-22s %-8s %s\n",
				rule.Name(),
				strings.ToLower(rule.Severity().String()),
				rule.Description(),
			)
		}
	},
}
