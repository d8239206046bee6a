package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/infra/logger"
)

type rootFlags struct {
	debug  bool
	config string
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}

	cmd := &cobra.Command{
		Use:          "auditmd",
		Short:        "auditmd: findings summary tooling for markdown audit reports",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&rf.debug, "debug", false, "enable verbose logging on stderr")
	cmd.PersistentFlags().StringVar(&rf.config, "config", "", "path to .auditmd.yaml (default: searched upward from the report)")

	cmd.AddCommand(
		issuesCmd(rf),
		tableCmd(rf),
		overrideCmd(rf),
		browseCmd(rf),
		initCmd(rf),
		versionCmd(),
	)
	return cmd
}

// startLogging installs the global logger for one command run. The --debug
// flag wins over the config value when set.
func startLogging(cmd *cobra.Command, rf *rootFlags, cfg domain.Config) func() {
	cleanup, err := logger.Setup(logger.Config{
		Debug:  rf.debug || cfg.Logging.Debug,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
