package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kidsguard/internal/report"
	"kidsguard/internal/repository"
)

func newReportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export seeded monitoring data to a workbook or JSON snapshot",
		Long: "report writes every active child's sessions, progress and alerts to a file.\n" +
			"The format follows the extension: .xlsx for a workbook, .json for a snapshot.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = report.DefaultPath(time.Now())
			}
			if _, err := report.FormatFor(output); err != nil {
				return err
			}

			r, err := report.Collect(report.Sources{
				Children: repository.NewChildRepository(a.db),
				Sessions: repository.NewSessionRepository(a.db),
				Progress: repository.NewProgressRepository(a.db),
				Alerts:   repository.NewAlertRepository(a.db),
			})
			if err != nil {
				return err
			}

			if err := r.Export(output); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			info, err := os.Stat(output)
			if err != nil {
				return err
			}
			a.logger.Info("report exported", "path", output, "children", len(r.Children), "bytes", info.Size())
			fmt.Fprintf(cmd.OutOrStdout(), "Report for %d children written to %s (%.1f KB)\n",
				len(r.Children), output, float64(info.Size())/1024)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: monitoring_report_YYYYMMDD_HHMMSS.xlsx)")
	return cmd
}
