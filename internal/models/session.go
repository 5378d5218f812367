package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// DeviceType is the kind of device a session was recorded on
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

// DeviceTypes lists every device type a session can report
var DeviceTypes = []DeviceType{DeviceMobile, DeviceTablet, DeviceDesktop}

// Session is one usage period of a child on the platform
type Session struct {
	ID                 int64      `db:"id"`
	ChildID            int64      `db:"child_id"`
	StartTime          time.Time  `db:"start_time"`
	EndTime            time.Time  `db:"end_time"`
	DurationSeconds    int        `db:"duration_seconds"`
	IsActive           bool       `db:"is_active"`
	DeviceType         DeviceType `db:"device_type"`
	TotalGamesPlayed   int        `db:"total_games_played"`
	TotalLessonsViewed int        `db:"total_lessons_viewed"`
	PointsEarned       int        `db:"points_earned"`
	Activities         Activities `db:"activities"`
	CreatedAt          time.Time  `db:"created_at"`
}

// Activity is a single engagement nested inside a session.
// It has no identity of its own; the session owns it.
type Activity struct {
	Content         ContentRef
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int
	Score           int
	Completed       bool
	Level           int
}

type activityJSON struct {
	contentJSON
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"`
	Score     int       `json:"score"`
	Completed bool      `json:"completed"`
	Level     int       `json:"level"`
}

func (a Activity) MarshalJSON() ([]byte, error) {
	return json.Marshal(activityJSON{
		contentJSON: a.Content.toJSON(),
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Duration:    a.DurationSeconds,
		Score:       a.Score,
		Completed:   a.Completed,
		Level:       a.Level,
	})
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw activityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	content, err := RefFromColumns(raw.Type, raw.Game, raw.LearningModule)
	if err != nil {
		return err
	}
	*a = Activity{
		Content:         content,
		StartTime:       raw.StartTime,
		EndTime:         raw.EndTime,
		DurationSeconds: raw.Duration,
		Score:           raw.Score,
		Completed:       raw.Completed,
		Level:           raw.Level,
	}
	return nil
}

// Activities is the ordered activity list stored as a JSON array on the session row
type Activities []Activity

func (l Activities) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue([]Activity(l))
}

func (l *Activities) Scan(src any) error {
	return scanJSON(src, (*[]Activity)(l))
}
