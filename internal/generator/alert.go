package generator

import (
	"time"

	"kidsguard/internal/models"
)

const (
	MinAlerts = 0
	MaxAlerts = 3

	MaxAlertDaysAgo = 7

	MinResolveHours = 1
	MaxResolveHours = 24

	alertResolutionRate = 0.5

	systemTrigger = "system"
)

type alertTemplate struct {
	Type     models.AlertType
	Severity models.Severity
	Title    string
	Message  string
}

var alertTemplates = []alertTemplate{
	{models.AlertScreenTimeWarning, models.SeverityLow, "Screen Time Warning", "Approaching daily screen time limit"},
	{models.AlertScreenTimeLimit, models.SeverityMedium, "Screen Time Limit Reached", "Daily screen time limit has been reached"},
	{models.AlertEducational, models.SeverityLow, "Learning Tip", "Great progress! Keep up the good work!"},
	{models.AlertExcessiveGaming, models.SeverityMedium, "Excessive Gaming Detected", "Long gaming session detected"},
}

// Alerts fabricates 0-3 alerts for a child, independent of its sessions.
// Unresolved alerts carry neither ResolvedAt nor ParentResponse.
func (s *Synthesizer) Alerts(childID int64) []models.Alert {
	n := s.rand.Int(MinAlerts, MaxAlerts)
	alerts := make([]models.Alert, 0, n)

	for i := 0; i < n; i++ {
		tmpl := Pick(s.rand, alertTemplates)
		alert := models.Alert{
			ChildID:       childID,
			Type:          tmpl.Type,
			Severity:      tmpl.Severity,
			Title:         tmpl.Title,
			Message:       tmpl.Message,
			TriggeredBy:   systemTrigger,
			Context:       models.AlertContext{},
			ShownToParent: true,
			CreatedAt:     s.rand.PastDate(s.rand.Int(0, MaxAlertDaysAgo)),
		}

		if s.rand.Chance(alertResolutionRate) {
			resolvedAt := alert.CreatedAt.Add(time.Duration(s.rand.Int(MinResolveHours, MaxResolveHours)) * time.Hour)
			response := Pick(s.rand, models.ParentResponses)
			alert.Resolved = true
			alert.ResolvedAt = &resolvedAt
			alert.ParentResponse = &response
		}

		alerts = append(alerts, alert)
	}

	return alerts
}
