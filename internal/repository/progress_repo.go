package repository

import (
	"database/sql"
	"fmt"

	"kidsguard/internal/database"
	"kidsguard/internal/models"
)

// ProgressRepository handles database operations for progress records
type ProgressRepository struct {
	db database.DBTX
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db database.DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// Create stores a progress record and sets p.ID
func (r *ProgressRepository) Create(p *models.Progress) error {
	if !p.Content.Bound() {
		return fmt.Errorf("progress must reference a game or learning module, got %s", p.Content)
	}
	gameID, moduleID := p.Content.Columns()

	query := `
		INSERT INTO progress (
			child_id, session_id, content_type, game_id, learning_module_id, status,
			started_at, completed_at, last_accessed_at, score, attempts, best_score,
			time_spent_seconds, points_earned, completion_percentage,
			current_level, levels_completed, current_lesson, lessons_completed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		p.ChildID, p.SessionID, p.Content.Type(), gameID, moduleID, p.Status,
		p.StartedAt, p.CompletedAt, p.LastAccessedAt, p.Score, p.Attempts, p.BestScore,
		p.TimeSpentSeconds, p.PointsEarned, p.CompletionPercentage,
		p.CurrentLevel, p.LevelsCompleted, p.CurrentLesson, p.LessonsCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to create progress: %w", err)
	}
	p.ID = id
	return nil
}

const progressColumns = `
	id, child_id, session_id, content_type, game_id, learning_module_id, status,
	started_at, completed_at, last_accessed_at, score, attempts, best_score,
	time_spent_seconds, points_earned, completion_percentage,
	current_level, levels_completed, current_lesson, lessons_completed, created_at
`

// ListBySession retrieves the progress records stamped with a session
func (r *ProgressRepository) ListBySession(sessionID int64) ([]models.Progress, error) {
	query := "SELECT " + progressColumns + " FROM progress WHERE session_id = ? ORDER BY id ASC"
	return r.list(query, sessionID)
}

// ListByChild retrieves all progress records of a child
func (r *ProgressRepository) ListByChild(childID int64) ([]models.Progress, error) {
	query := "SELECT " + progressColumns + " FROM progress WHERE child_id = ? ORDER BY id ASC"
	return r.list(query, childID)
}

func (r *ProgressRepository) list(query string, args ...interface{}) ([]models.Progress, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	var records []models.Progress
	for rows.Next() {
		var p models.Progress
		var contentType models.ContentType
		var gameID, moduleID sql.NullInt64
		var completedAt sql.NullTime
		var currentLevel, currentLesson sql.NullInt64

		err := rows.Scan(
			&p.ID,
			&p.ChildID,
			&p.SessionID,
			&contentType,
			&gameID,
			&moduleID,
			&p.Status,
			&p.StartedAt,
			&completedAt,
			&p.LastAccessedAt,
			&p.Score,
			&p.Attempts,
			&p.BestScore,
			&p.TimeSpentSeconds,
			&p.PointsEarned,
			&p.CompletionPercentage,
			&currentLevel,
			&p.LevelsCompleted,
			&currentLesson,
			&p.LessonsCompleted,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}

		p.Content, err = models.RefFromColumns(contentType, nullInt64Ptr(gameID), nullInt64Ptr(moduleID))
		if err != nil {
			return nil, fmt.Errorf("progress %d: %w", p.ID, err)
		}
		if completedAt.Valid {
			p.CompletedAt = &completedAt.Time
		}
		if currentLevel.Valid {
			level := int(currentLevel.Int64)
			p.CurrentLevel = &level
		}
		if currentLesson.Valid {
			lesson := int(currentLesson.Int64)
			p.CurrentLesson = &lesson
		}

		records = append(records, p)
	}

	return records, rows.Err()
}

// Count returns the number of stored progress records
func (r *ProgressRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM progress"); err != nil {
		return 0, fmt.Errorf("failed to count progress: %w", err)
	}
	return count, nil
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
