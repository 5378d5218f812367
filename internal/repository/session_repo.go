package repository

import (
	"fmt"

	"kidsguard/internal/database"
	"kidsguard/internal/models"
)

// SessionRepository handles database operations for monitoring sessions
type SessionRepository struct {
	db database.DBTX
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session together with its activities and sets s.ID
func (r *SessionRepository) Create(s *models.Session) error {
	query := `
		INSERT INTO sessions (
			child_id, start_time, end_time, duration_seconds, is_active, device_type,
			total_games_played, total_lessons_viewed, points_earned, activities
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		s.ChildID, s.StartTime, s.EndTime, s.DurationSeconds, s.IsActive, s.DeviceType,
		s.TotalGamesPlayed, s.TotalLessonsViewed, s.PointsEarned, s.Activities,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	s.ID = id
	return nil
}

// UpdatePoints sets the final points total of a session
func (r *SessionRepository) UpdatePoints(sessionID int64, points int) error {
	result, err := r.db.Exec("UPDATE sessions SET points_earned = ? WHERE id = ?", points, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session points: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update session points: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %d not found", sessionID)
	}
	return nil
}

// ListByChild retrieves a child's sessions, oldest first
func (r *SessionRepository) ListByChild(childID int64) ([]models.Session, error) {
	query := `
		SELECT id, child_id, start_time, end_time, duration_seconds, is_active, device_type,
		       total_games_played, total_lessons_viewed, points_earned, activities, created_at
		FROM sessions
		WHERE child_id = ?
		ORDER BY start_time ASC, id ASC
	`
	var sessions []models.Session
	if err := r.db.Select(&sessions, query, childID); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Count returns the number of stored sessions
func (r *SessionRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM sessions"); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}
