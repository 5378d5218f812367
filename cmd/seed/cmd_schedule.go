package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kidsguard/internal/generator"
	"kidsguard/internal/scheduler"
	"kidsguard/internal/service"
)

func newScheduleCmd(a *app) *cobra.Command {
	var (
		cronExpr string
		runNow   bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Reseed monitoring data on a cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("cron") {
				cronExpr = a.cfg.ReseedCron
			}
			tl, err := generator.ParseTimeline(a.cfg.Timeline)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reseeder, err := scheduler.New(cronExpr, func() error {
				return a.seedMonitoring(out, service.SeedOptions{Timeline: tl})
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			reseeder.Start()
			fmt.Fprintf(out, "Reseeding on %q, next run at %s. Press Ctrl+C to stop.\n",
				cronExpr, reseeder.NextRun().Format("2006-01-02 15:04 MST"))
			if runNow {
				reseeder.RunNow()
			}

			<-ctx.Done()
			reseeder.Stop()
			fmt.Fprintf(out, "Stopped after %d runs (%d failed)\n", reseeder.Runs(), reseeder.Failures())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cronExpr, "cron", "0 3 * * *", "Five-field cron expression in UTC (default from RESEED_CRON)")
	f.BoolVar(&runNow, "run-now", false, "Also reseed once immediately")
	return cmd
}
