package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/auditmd/internal/infra/logger"
	"github.com/aalvaropc/auditmd/internal/usecase"
)

func overrideCmd(rf *rootFlags) *cobra.Command {
	var dryRun bool

	c := &cobra.Command{
		Use:   "override <report>",
		Short: "Regenerate the summary table and write it into the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadReport(args[0], rf.config)
			if err != nil {
				return err
			}
			defer startLogging(cmd, rf, rc.cfg)()

			logger.L().Infow("report.override", "path", rc.path, "dry_run", dryRun)

			res, err := usecase.NewOverrideSummary(rc.store, rc.markers()).Execute(cmd.Context(), rc.path, dryRun)
			if err != nil {
				return err
			}

			if res.Blocks == 0 {
				logger.L().Warnw("report.override.no_summary", "path", rc.path, "marker", rc.cfg.Markers.Summary)
			}
			logger.L().Debugw("report.override.done", "blocks", res.Blocks, "changed", res.Changed, "written", res.Written)

			if dryRun {
				fmt.Fprint(cmd.OutOrStdout(), res.Document.String())
			}
			return nil
		},
	}

	c.Flags().BoolVar(&dryRun, "dry-run", false, "Print the rewritten report instead of writing it")
	return c
}
