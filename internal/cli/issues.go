package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/infra/logger"
	"github.com/aalvaropc/auditmd/internal/usecase"
	"github.com/aalvaropc/auditmd/internal/usecase/query"
)

func issuesCmd(rf *rootFlags) *cobra.Command {
	var format string
	var expr string

	c := &cobra.Command{
		Use:   "issues <report>",
		Short: "List the finding headings of a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadReport(args[0], rf.config)
			if err != nil {
				return err
			}
			defer startLogging(cmd, rf, rc.cfg)()

			logger.L().Infow("report.issues", "path", rc.path)

			out, err := resolveFormat(format, rc.cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewListIssues(rc.store, rc.markers())
			findings, err := uc.Execute(cmd.Context(), rc.path)
			if err != nil {
				return err
			}
			logger.L().Debugw("report.issues.done", "count", len(findings))

			if expr != "" {
				return printQuery(cmd.OutOrStdout(), findings, expr)
			}
			return printIssues(cmd.OutOrStdout(), findings, out)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: markdown|json (default from config)")
	c.Flags().StringVar(&expr, "query", "", "JSONPath expression evaluated over the findings as JSON")
	return c
}

func printIssues(w io.Writer, findings []domain.Finding, format string) error {
	switch format {
	case domain.FormatJSON:
		views, err := query.ToViews(findings)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case domain.FormatMarkdown, "":
		for _, f := range findings {
			fmt.Fprintln(w, f.RawLine)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected markdown|json)", format)
	}
}

func printQuery(w io.Writer, findings []domain.Finding, expr string) error {
	views, err := query.ToViews(findings)
	if err != nil {
		return err
	}
	values, err := query.Evaluate(expr, views)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	return nil
}
