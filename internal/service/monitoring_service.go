package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"kidsguard/internal/generator"
	"kidsguard/internal/logging"
	"kidsguard/internal/models"
)

var (
	ErrNoChildren = errors.New("no active children found")
	ErrNoGames    = errors.New("no active published games found")
)

// ChildLister loads the children to seed
type ChildLister interface {
	ListActive() ([]models.Child, error)
}

// ContentLister loads the catalog activities are bound to
type ContentLister interface {
	ListPublishedGames() ([]models.Game, error)
	ListPublishedModules() ([]models.LearningModule, error)
}

// SessionWriter stores sessions and finalizes their points
type SessionWriter interface {
	Create(s *models.Session) error
	UpdatePoints(sessionID int64, points int) error
}

// ProgressWriter stores progress records
type ProgressWriter interface {
	Create(p *models.Progress) error
}

// AlertWriter stores alerts
type AlertWriter interface {
	Create(a *models.Alert) error
}

// MonitoringClearer wipes previously generated monitoring data
type MonitoringClearer interface {
	Clear() error
}

// MonitoringStores groups the persistence the seeder reads from and writes to
type MonitoringStores struct {
	Children   ChildLister
	Catalog    ContentLister
	Sessions   SessionWriter
	Progress   ProgressWriter
	Alerts     AlertWriter
	Monitoring MonitoringClearer
}

// SeedOptions controls one seeding run
type SeedOptions struct {
	Random   *generator.Random // nil seeds from entropy
	Timeline generator.Timeline
	Out      io.Writer // progress lines; nil discards them
}

// ChildSummary is what one child received in a run
type ChildSummary struct {
	ChildID  int64
	Name     string
	Sessions int
	Progress int
	Alerts   int
	Points   int
}

// Summary reports the outcome of a seeding run
type Summary struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Children   []ChildSummary
	Sessions   int
	Progress   int
	Alerts     int
}

// MonitoringService regenerates sessions, progress and alerts for every active child
type MonitoringService struct {
	stores MonitoringStores
}

// NewMonitoringService creates a new monitoring seeder
func NewMonitoringService(stores MonitoringStores) *MonitoringService {
	return &MonitoringService{stores: stores}
}

// Seed clears prior monitoring data and synthesizes a fresh history for each
// active child, one child at a time. It returns ErrNoChildren or ErrNoGames
// without writing anything when there is nothing to seed. A failure part way
// through leaves earlier children's data in place; the returned summary
// covers what was written.
func (s *MonitoringService) Seed(opts SeedOptions) (*Summary, error) {
	summary := &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	logger := logging.New("monitoring").With("run_id", summary.RunID)

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	random := opts.Random
	if random == nil {
		random = generator.New(nil)
	}

	children, err := s.stores.Children.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}
	if len(children) == 0 {
		return nil, ErrNoChildren
	}

	games, err := s.stores.Catalog.ListPublishedGames()
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	if len(games) == 0 {
		return nil, ErrNoGames
	}

	modules, err := s.stores.Catalog.ListPublishedModules()
	if err != nil {
		return nil, fmt.Errorf("failed to load learning modules: %w", err)
	}

	fmt.Fprintf(out, "Found %d children, %d games, %d learning modules\n", len(children), len(games), len(modules))
	logger.Info("seeding monitoring data",
		"children", len(children), "games", len(games), "modules", len(modules), "timeline", opts.Timeline)

	if err := s.stores.Monitoring.Clear(); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "Cleared existing sessions, progress and alerts")

	catalog := generator.Catalog{
		GameIDs:   make([]int64, 0, len(games)),
		ModuleIDs: make([]int64, 0, len(modules)),
	}
	for _, g := range games {
		catalog.GameIDs = append(catalog.GameIDs, g.ID)
	}
	for _, m := range modules {
		catalog.ModuleIDs = append(catalog.ModuleIDs, m.ID)
	}
	synth := generator.NewSynthesizer(random, catalog, opts.Timeline)

	for _, child := range children {
		childSummary, err := s.seedChild(synth, child, logger)
		summary.add(childSummary)
		if err != nil {
			summary.FinishedAt = time.Now()
			return summary, fmt.Errorf("failed to seed child %s: %w", child.Name, err)
		}
		fmt.Fprintf(out, "  %s: %d sessions, %d progress records, %d alerts\n",
			child.Name, childSummary.Sessions, childSummary.Progress, childSummary.Alerts)
	}

	summary.FinishedAt = time.Now()
	logger.Info("seeding complete",
		"sessions", summary.Sessions, "progress", summary.Progress, "alerts", summary.Alerts,
		"duration", summary.FinishedAt.Sub(summary.StartedAt))

	return summary, nil
}

// seedChild persists one child's sessions with their progress, then its alerts.
// The returned summary counts what was stored even when err is set.
func (s *MonitoringService) seedChild(synth *generator.Synthesizer, child models.Child, logger *slog.Logger) (ChildSummary, error) {
	cs := ChildSummary{ChildID: child.ID, Name: child.Name}

	for _, draft := range synth.Sessions(child.ID) {
		session := draft.Session
		session.PointsEarned = 0
		if err := s.stores.Sessions.Create(&session); err != nil {
			return cs, err
		}
		cs.Sessions++

		points := 0
		for _, p := range draft.Progress {
			p.SessionID = session.ID
			if err := s.stores.Progress.Create(&p); err != nil {
				return cs, err
			}
			cs.Progress++
			points += p.PointsEarned
		}

		if err := s.stores.Sessions.UpdatePoints(session.ID, points); err != nil {
			return cs, err
		}
		cs.Points += points
	}

	for _, alert := range synth.Alerts(child.ID) {
		if err := s.stores.Alerts.Create(&alert); err != nil {
			return cs, err
		}
		cs.Alerts++
	}

	logger.Debug("child seeded", "child_id", child.ID, "sessions", cs.Sessions, "progress", cs.Progress, "alerts", cs.Alerts)
	return cs, nil
}

func (s *Summary) add(cs ChildSummary) {
	s.Children = append(s.Children, cs)
	s.Sessions += cs.Sessions
	s.Progress += cs.Progress
	s.Alerts += cs.Alerts
}
