package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Summary"
	SessionsSheet = "Sessions"
	ProgressSheet = "Progress"
	AlertsSheet   = "Alerts"
)

var (
	summaryHeader = []interface{}{
		"Child", "Username", "Sessions", "Activities", "Games Played", "Lessons Viewed",
		"Points", "Progress", "Completed Progress", "Alerts", "Unresolved Alerts",
	}
	sessionsHeader = []interface{}{
		"Child", "Session ID", "Start", "End", "Duration (s)", "Device", "Active",
		"Activities", "Games", "Lessons", "Points",
	}
	progressHeader = []interface{}{
		"Child", "Session ID", "Content", "Status", "Score", "Best Score", "Attempts",
		"Points", "Completion %", "Time Spent (s)", "Last Accessed",
	}
	alertsHeader = []interface{}{
		"Child", "Type", "Severity", "Title", "Triggered", "Resolved", "Resolved At", "Parent Response",
	}
)

// WriteXLSX renders a summary sheet plus one detail sheet per table
func (r *Report) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	for _, name := range []string{SessionsSheet, ProgressSheet, AlertsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add %s sheet: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{SummarySheet, summaryHeader, r.summaryRows()},
		{SessionsSheet, sessionsHeader, r.sessionRows()},
		{ProgressSheet, progressHeader, r.progressRows()},
		{AlertsSheet, alertsHeader, r.alertRows()},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows, headerStyle); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
		return fmt.Errorf("failed to size %s columns: %w", sheet, err)
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (r *Report) summaryRows() [][]interface{} {
	rows := make([][]interface{}, 0, len(r.Children))
	for _, d := range r.Children {
		st := d.Stats()
		rows = append(rows, []interface{}{
			d.Child.Name, d.Child.Username, st.Sessions, st.Activities, st.GamesPlayed, st.LessonsViewed,
			st.Points, st.Progress, st.CompletedProgress, st.Alerts, st.UnresolvedAlerts,
		})
	}
	return rows
}

func (r *Report) sessionRows() [][]interface{} {
	var rows [][]interface{}
	for _, d := range r.Children {
		for _, s := range d.Sessions {
			rows = append(rows, []interface{}{
				d.Child.Name, s.ID, formatTime(s.StartTime), formatTime(s.EndTime), s.DurationSeconds,
				string(s.DeviceType), s.IsActive, len(s.Activities), s.TotalGamesPlayed, s.TotalLessonsViewed,
				s.PointsEarned,
			})
		}
	}
	return rows
}

func (r *Report) progressRows() [][]interface{} {
	var rows [][]interface{}
	for _, d := range r.Children {
		for _, p := range d.Progress {
			rows = append(rows, []interface{}{
				d.Child.Name, p.SessionID, p.Content.String(), string(p.Status), p.Score, p.BestScore,
				p.Attempts, p.PointsEarned, p.CompletionPercentage, p.TimeSpentSeconds,
				formatTime(p.LastAccessedAt),
			})
		}
	}
	return rows
}

func (r *Report) alertRows() [][]interface{} {
	var rows [][]interface{}
	for _, d := range r.Children {
		for _, a := range d.Alerts {
			resolvedAt, response := "", ""
			if a.ResolvedAt != nil {
				resolvedAt = formatTime(*a.ResolvedAt)
			}
			if a.ParentResponse != nil {
				response = string(*a.ParentResponse)
			}
			rows = append(rows, []interface{}{
				d.Child.Name, string(a.Type), string(a.Severity), a.Title, formatTime(a.CreatedAt),
				a.Resolved, resolvedAt, response,
			})
		}
	}
	return rows
}

// formatTime keeps timestamps as text so every viewer shows the same value
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
