package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/infra/logger"
	"github.com/aalvaropc/auditmd/internal/usecase"
)

func tableCmd(rf *rootFlags) *cobra.Command {
	var check bool

	c := &cobra.Command{
		Use:   "table <report>",
		Short: "Print the findings summary table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadReport(args[0], rf.config)
			if err != nil {
				return err
			}
			defer startLogging(cmd, rf, rc.cfg)()

			logger.L().Infow("report.table", "path", rc.path, "check", check)

			if check {
				res, err := usecase.NewOverrideSummary(rc.store, rc.markers()).Execute(cmd.Context(), rc.path, true)
				if err != nil {
					return err
				}
				if res.Blocks == 0 {
					return &domain.OpError{
						Op:   "report.table.check",
						Kind: domain.KindNotFound,
						Path: rc.path,
						Err:  fmt.Errorf("no %q heading to check", rc.cfg.Markers.Summary),
					}
				}
				if res.Changed {
					return &domain.OpError{
						Op:   "report.table.check",
						Kind: domain.KindExecution,
						Path: rc.path,
						Err:  fmt.Errorf("summary table is out of date (run `auditmd override`): %w", domain.ErrExecution),
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			}

			lines, err := usecase.NewGenerateTable(rc.store, rc.markers()).Execute(cmd.Context(), rc.path)
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&check, "check", false, "Fail when the report has no summary or override would change it")
	return c
}
