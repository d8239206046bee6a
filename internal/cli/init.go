package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/infra/logger"
	"github.com/aalvaropc/auditmd/internal/infra/scaffold"
	"github.com/aalvaropc/auditmd/internal/usecase"
)

func initCmd(rf *rootFlags) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default .auditmd.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			defer startLogging(cmd, rf, domain.DefaultConfig())()

			path, err := usecase.NewInitConfig(scaffold.NewInitializer()).Execute(dir, force)
			if err != nil {
				return err
			}
			logger.L().Infow("config.init", "path", path, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Config ready: %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing .auditmd.yaml")
	return c
}
