package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/auditmd/internal/infra/logger"
	"github.com/aalvaropc/auditmd/internal/ui/tui"
	"github.com/aalvaropc/auditmd/internal/usecase"
)

func browseCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <report>",
		Short: "Browse the findings of a report in a terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadReport(args[0], rf.config)
			if err != nil {
				return err
			}
			defer startLogging(cmd, rf, rc.cfg)()

			logger.L().Infow("report.browse", "path", rc.path)

			return tui.Run(tui.Deps{
				Issues:     usecase.NewListIssues(rc.store, rc.markers()),
				ReportPath: rc.path,
				Logger:     logger.L(),
				Debug:      rf.debug || rc.cfg.Logging.Debug,
			})
		},
	}
}
