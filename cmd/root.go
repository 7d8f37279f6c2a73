package cmd

import (
	"fmt"
	"os"

	"pipeline-hud/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pipeline-hud",
	Short: "Live build and deploy dashboard sync engine",
	Long: `pipeline-hud keeps a local copy of a build/deploy dashboard view in sync with
the server's view stream and serves it over a small HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the application logger, console encoding for a CLI audience
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
