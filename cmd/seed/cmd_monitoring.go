package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kidsguard/internal/generator"
	"kidsguard/internal/repository"
	"kidsguard/internal/service"
)

func newMonitoringCmd(a *app) *cobra.Command {
	var (
		seed     uint64
		timeline string
	)

	cmd := &cobra.Command{
		Use:   "monitoring",
		Short: "Regenerate sessions, progress and alerts for every active child",
		Long: "monitoring clears all sessions, progress records and alerts, then synthesizes\n" +
			"a fresh two-week history for each active child from the published catalog.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("timeline") {
				timeline = a.cfg.Timeline
			}
			tl, err := generator.ParseTimeline(timeline)
			if err != nil {
				return err
			}

			var random *generator.Random
			switch {
			case cmd.Flags().Changed("seed"):
				random = generator.NewSeeded(seed, nil)
			case a.cfg.RandomSeed != nil:
				random = generator.NewSeeded(*a.cfg.RandomSeed, nil)
			}

			return a.seedMonitoring(cmd.OutOrStdout(), service.SeedOptions{Random: random, Timeline: tl})
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&seed, "seed", 0, "Random seed for a reproducible run (default from SEED_RANDOM_SEED, else random)")
	f.StringVar(&timeline, "timeline", string(generator.TimelineSequential), "Activity layout within a session: sequential or indexed")
	return cmd
}

func (a *app) monitoringService() *service.MonitoringService {
	return service.NewMonitoringService(service.MonitoringStores{
		Children:   repository.NewChildRepository(a.db),
		Catalog:    repository.NewCatalogRepository(a.db),
		Sessions:   repository.NewSessionRepository(a.db),
		Progress:   repository.NewProgressRepository(a.db),
		Alerts:     repository.NewAlertRepository(a.db),
		Monitoring: repository.NewMonitoringStore(a.db),
	})
}

// seedMonitoring runs one seeding pass. Missing children or games is not a
// failure: there is simply nothing to seed yet.
func (a *app) seedMonitoring(out io.Writer, opts service.SeedOptions) error {
	opts.Out = out

	summary, err := a.monitoringService().Seed(opts)
	switch {
	case errors.Is(err, service.ErrNoChildren):
		a.logger.Warn("nothing to seed", "reason", err)
		fmt.Fprintln(out, "No active children found. Create some with 'seed children' first.")
		return nil
	case errors.Is(err, service.ErrNoGames):
		a.logger.Warn("nothing to seed", "reason", err)
		fmt.Fprintln(out, "No active published games found. Run 'seed catalog' first.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Seeding complete: %d sessions, %d progress records, %d alerts (run %s)\n",
		summary.Sessions, summary.Progress, summary.Alerts, summary.RunID)
	return nil
}
