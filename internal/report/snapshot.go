package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"kidsguard/internal/models"
)

const snapshotVersion = "1.0"

// Snapshot is the JSON export of the monitoring tables
type Snapshot struct {
	Version     string          `json:"version"`
	GeneratedAt time.Time       `json:"generated_at"`
	Children    []ChildSnapshot `json:"children"`
}

// ChildSnapshot is one child's exported records
type ChildSnapshot struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Username string             `json:"username"`
	Stats    StatsSnapshot      `json:"stats"`
	Sessions []SessionSnapshot  `json:"sessions"`
	Progress []ProgressSnapshot `json:"progress"`
	Alerts   []AlertSnapshot    `json:"alerts"`
}

// StatsSnapshot mirrors the summary sheet
type StatsSnapshot struct {
	Sessions          int `json:"sessions"`
	Activities        int `json:"activities"`
	GamesPlayed       int `json:"games_played"`
	LessonsViewed     int `json:"lessons_viewed"`
	Points            int `json:"points"`
	Progress          int `json:"progress"`
	CompletedProgress int `json:"completed_progress"`
	Alerts            int `json:"alerts"`
	UnresolvedAlerts  int `json:"unresolved_alerts"`
}

// SessionSnapshot is an exported session with its activities
type SessionSnapshot struct {
	ID                 int64             `json:"id"`
	StartTime          time.Time         `json:"start_time"`
	EndTime            time.Time         `json:"end_time"`
	DurationSeconds    int               `json:"duration_seconds"`
	IsActive           bool              `json:"is_active"`
	DeviceType         models.DeviceType `json:"device_type"`
	TotalGamesPlayed   int               `json:"total_games_played"`
	TotalLessonsViewed int               `json:"total_lessons_viewed"`
	PointsEarned       int               `json:"points_earned"`
	Activities         models.Activities `json:"activities"`
}

// ProgressSnapshot is an exported progress record
type ProgressSnapshot struct {
	ID                   int64                    `json:"id"`
	SessionID            int64                    `json:"session_id"`
	Content              models.ContentRef        `json:"content"`
	Status               models.ProgressStatus    `json:"status"`
	StartedAt            time.Time                `json:"started_at"`
	CompletedAt          *time.Time               `json:"completed_at"`
	Score                int                      `json:"score"`
	BestScore            int                      `json:"best_score"`
	Attempts             int                      `json:"attempts"`
	PointsEarned         int                      `json:"points_earned"`
	CompletionPercentage int                      `json:"completion_percentage"`
	TimeSpentSeconds     int                      `json:"time_spent_seconds"`
	CurrentLevel         *int                     `json:"current_level,omitempty"`
	LevelsCompleted      models.LevelCompletions  `json:"levels_completed,omitempty"`
	CurrentLesson        *int                     `json:"current_lesson,omitempty"`
	LessonsCompleted     models.LessonCompletions `json:"lessons_completed,omitempty"`
}

// AlertSnapshot is an exported alert
type AlertSnapshot struct {
	ID             int64                  `json:"id"`
	Type           models.AlertType       `json:"alert_type"`
	Severity       models.Severity        `json:"severity"`
	Title          string                 `json:"title"`
	Message        string                 `json:"message"`
	TriggeredBy    string                 `json:"triggered_by"`
	ShownToParent  bool                   `json:"shown_to_parent"`
	Resolved       bool                   `json:"resolved"`
	ResolvedAt     *time.Time             `json:"resolved_at"`
	ParentResponse *models.ParentResponse `json:"parent_response"`
	CreatedAt      time.Time              `json:"created_at"`
}

// Snapshot converts the report into its JSON export shape
func (r *Report) Snapshot() Snapshot {
	snap := Snapshot{
		Version:     snapshotVersion,
		GeneratedAt: r.GeneratedAt,
		Children:    make([]ChildSnapshot, 0, len(r.Children)),
	}

	for _, d := range r.Children {
		st := d.Stats()
		cs := ChildSnapshot{
			ID:       d.Child.ID,
			Name:     d.Child.Name,
			Username: d.Child.Username,
			Stats:    StatsSnapshot(st),
			Sessions: make([]SessionSnapshot, 0, len(d.Sessions)),
			Progress: make([]ProgressSnapshot, 0, len(d.Progress)),
			Alerts:   make([]AlertSnapshot, 0, len(d.Alerts)),
		}

		for _, s := range d.Sessions {
			cs.Sessions = append(cs.Sessions, SessionSnapshot{
				ID:                 s.ID,
				StartTime:          s.StartTime,
				EndTime:            s.EndTime,
				DurationSeconds:    s.DurationSeconds,
				IsActive:           s.IsActive,
				DeviceType:         s.DeviceType,
				TotalGamesPlayed:   s.TotalGamesPlayed,
				TotalLessonsViewed: s.TotalLessonsViewed,
				PointsEarned:       s.PointsEarned,
				Activities:         s.Activities,
			})
		}

		for _, p := range d.Progress {
			cs.Progress = append(cs.Progress, ProgressSnapshot{
				ID:                   p.ID,
				SessionID:            p.SessionID,
				Content:              p.Content,
				Status:               p.Status,
				StartedAt:            p.StartedAt,
				CompletedAt:          p.CompletedAt,
				Score:                p.Score,
				BestScore:            p.BestScore,
				Attempts:             p.Attempts,
				PointsEarned:         p.PointsEarned,
				CompletionPercentage: p.CompletionPercentage,
				TimeSpentSeconds:     p.TimeSpentSeconds,
				CurrentLevel:         p.CurrentLevel,
				LevelsCompleted:      p.LevelsCompleted,
				CurrentLesson:        p.CurrentLesson,
				LessonsCompleted:     p.LessonsCompleted,
			})
		}

		for _, a := range d.Alerts {
			cs.Alerts = append(cs.Alerts, AlertSnapshot{
				ID:             a.ID,
				Type:           a.Type,
				Severity:       a.Severity,
				Title:          a.Title,
				Message:        a.Message,
				TriggeredBy:    a.TriggeredBy,
				ShownToParent:  a.ShownToParent,
				Resolved:       a.Resolved,
				ResolvedAt:     a.ResolvedAt,
				ParentResponse: a.ParentResponse,
				CreatedAt:      a.CreatedAt,
			})
		}

		snap.Children = append(snap.Children, cs)
	}

	return snap
}

// WriteJSON writes the snapshot as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.Snapshot()); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
