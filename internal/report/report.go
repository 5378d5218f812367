// Package report exports seeded monitoring data so a demo operator can
// inspect what a run produced, either as a workbook or a JSON snapshot.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kidsguard/internal/models"
)

// ChildLister loads the children to report on
type ChildLister interface {
	ListActive() ([]models.Child, error)
}

// SessionLister loads a child's sessions
type SessionLister interface {
	ListByChild(childID int64) ([]models.Session, error)
}

// ProgressLister loads a child's progress records
type ProgressLister interface {
	ListByChild(childID int64) ([]models.Progress, error)
}

// AlertLister loads a child's alerts
type AlertLister interface {
	ListByChild(childID int64) ([]models.Alert, error)
}

// Sources groups the repositories a report reads from
type Sources struct {
	Children ChildLister
	Sessions SessionLister
	Progress ProgressLister
	Alerts   AlertLister
}

// ChildData is everything stored for one child
type ChildData struct {
	Child    models.Child
	Sessions []models.Session
	Progress []models.Progress
	Alerts   []models.Alert
}

// Stats are the per-child totals shown on the summary sheet
type Stats struct {
	Sessions          int
	Activities        int
	GamesPlayed       int
	LessonsViewed     int
	Points            int
	Progress          int
	CompletedProgress int
	Alerts            int
	UnresolvedAlerts  int
}

// Stats totals the child's sessions, progress and alerts
func (d ChildData) Stats() Stats {
	st := Stats{
		Sessions: len(d.Sessions),
		Progress: len(d.Progress),
		Alerts:   len(d.Alerts),
	}
	for _, s := range d.Sessions {
		st.Activities += len(s.Activities)
		st.GamesPlayed += s.TotalGamesPlayed
		st.LessonsViewed += s.TotalLessonsViewed
		st.Points += s.PointsEarned
	}
	for _, p := range d.Progress {
		if p.IsCompleted() {
			st.CompletedProgress++
		}
	}
	for _, a := range d.Alerts {
		if !a.Resolved {
			st.UnresolvedAlerts++
		}
	}
	return st
}

// Report is a point-in-time view of the monitoring tables
type Report struct {
	GeneratedAt time.Time
	Children    []ChildData
}

// Collect reads every active child's monitoring data
func Collect(src Sources) (*Report, error) {
	children, err := src.Children.ListActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load children: %w", err)
	}

	r := &Report{GeneratedAt: time.Now(), Children: make([]ChildData, 0, len(children))}
	for _, child := range children {
		data := ChildData{Child: child}
		if data.Sessions, err = src.Sessions.ListByChild(child.ID); err != nil {
			return nil, fmt.Errorf("failed to load sessions for %s: %w", child.Name, err)
		}
		if data.Progress, err = src.Progress.ListByChild(child.ID); err != nil {
			return nil, fmt.Errorf("failed to load progress for %s: %w", child.Name, err)
		}
		if data.Alerts, err = src.Alerts.ListByChild(child.ID); err != nil {
			return nil, fmt.Errorf("failed to load alerts for %s: %w", child.Name, err)
		}
		r.Children = append(r.Children, data)
	}
	return r, nil
}

// Format is an export file format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// FormatFor picks the export format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported report extension %q (use .xlsx or .json)", filepath.Ext(path))
	}
}

// Write renders the report in the given format
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatXLSX:
		return r.WriteXLSX(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// Export writes the report to path, creating parent directories as needed
func (r *Report) Export(path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := r.Write(file, format); err != nil {
		return err
	}
	return file.Close()
}

// DefaultPath returns a timestamped report file name
func DefaultPath(now time.Time) string {
	return fmt.Sprintf("monitoring_report_%s.xlsx", now.Format("20060102_150405"))
}
