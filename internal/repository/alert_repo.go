package repository

import (
	"fmt"
	"strings"

	"kidsguard/internal/database"
	"kidsguard/internal/models"
)

// AlertRepository handles database operations for safety alerts
type AlertRepository struct {
	db database.DBTX
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db database.DBTX) *AlertRepository {
	return &AlertRepository{db: db}
}

// Create stores an alert and sets a.ID. Resolution columns are only written
// for resolved alerts so unresolved rows keep the column defaults.
func (r *AlertRepository) Create(a *models.Alert) error {
	columns := []string{
		"child_id", "alert_type", "severity", "title", "message",
		"triggered_by", "context", "shown_to_parent", "resolved", "created_at",
	}
	args := []interface{}{
		a.ChildID, a.Type, a.Severity, a.Title, a.Message,
		a.TriggeredBy, a.Context, a.ShownToParent, a.Resolved, a.CreatedAt,
	}
	if a.ResolvedAt != nil {
		columns = append(columns, "resolved_at")
		args = append(args, *a.ResolvedAt)
	}
	if a.ParentResponse != nil {
		columns = append(columns, "parent_response")
		args = append(args, *a.ParentResponse)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO alerts (%s) VALUES (%s)", strings.Join(columns, ", "), placeholders)

	id, err := r.db.ExecReturningID(query, args...)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	a.ID = id
	return nil
}

// ListByChild retrieves a child's alerts, oldest first
func (r *AlertRepository) ListByChild(childID int64) ([]models.Alert, error) {
	query := `
		SELECT id, child_id, alert_type, severity, title, message, triggered_by, context,
		       shown_to_parent, resolved, resolved_at, parent_response, created_at
		FROM alerts
		WHERE child_id = ?
		ORDER BY created_at ASC, id ASC
	`
	var alerts []models.Alert
	if err := r.db.Select(&alerts, query, childID); err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

// Count returns the number of stored alerts
func (r *AlertRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM alerts"); err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}
