package models

import (
	"database/sql/driver"
	"time"
)

// AlertType classifies a safety or screen-time alert
type AlertType string

const (
	AlertScreenTimeWarning AlertType = "screen-time-warning"
	AlertScreenTimeLimit   AlertType = "screen-time-limit"
	AlertEducational       AlertType = "educational"
	AlertExcessiveGaming   AlertType = "excessive-gaming"
)

// Severity of an alert
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
)

// ParentResponse is how a parent handled a resolved alert
type ParentResponse string

const (
	ResponseDismissed    ParentResponse = "dismissed"
	ResponseAcknowledged ParentResponse = "acknowledged"
	ResponseActionTaken  ParentResponse = "action-taken"
)

// ParentResponses lists every response a parent can give
var ParentResponses = []ParentResponse{ResponseDismissed, ResponseAcknowledged, ResponseActionTaken}

// Alert is a safety or screen-time notification raised for a child.
// ResolvedAt and ParentResponse are set iff Resolved is true.
type Alert struct {
	ID             int64           `db:"id"`
	ChildID        int64           `db:"child_id"`
	Type           AlertType       `db:"alert_type"`
	Severity       Severity        `db:"severity"`
	Title          string          `db:"title"`
	Message        string          `db:"message"`
	TriggeredBy    string          `db:"triggered_by"`
	Context        AlertContext    `db:"context"`
	ShownToParent  bool            `db:"shown_to_parent"`
	Resolved       bool            `db:"resolved"`
	ResolvedAt     *time.Time      `db:"resolved_at"`
	ParentResponse *ParentResponse `db:"parent_response"`
	CreatedAt      time.Time       `db:"created_at"`
}

// AlertContext carries free-form details about what triggered an alert
type AlertContext map[string]any

func (c AlertContext) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	return jsonValue(map[string]any(c))
}

func (c *AlertContext) Scan(src any) error {
	return scanJSON(src, (*map[string]any)(c))
}
