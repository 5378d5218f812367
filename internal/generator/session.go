package generator

import (
	"time"

	"kidsguard/internal/models"
)

const (
	MinSessions = 8
	MaxSessions = 20

	MaxSessionDaysAgo = 14

	MinSessionSeconds = 600
	MaxSessionSeconds = 3600

	activeSessionRate = 0.1
)

// SessionDraft is a generated session together with the progress records
// derived from its activities. Progress.SessionID is left for the caller
// to stamp once the session has been stored.
type SessionDraft struct {
	Session  models.Session
	Progress []models.Progress
}

// Sessions builds 8-20 independent sessions for a child
func (s *Synthesizer) Sessions(childID int64) []SessionDraft {
	n := s.rand.Int(MinSessions, MaxSessions)
	drafts := make([]SessionDraft, 0, n)
	for i := 0; i < n; i++ {
		drafts = append(drafts, s.Session(childID))
	}
	return drafts
}

// Session builds one session with its activities and progress records.
// Counters and points are totals over what the activities produced.
func (s *Synthesizer) Session(childID int64) SessionDraft {
	start := s.rand.PastDate(s.rand.Int(0, MaxSessionDaysAgo))
	duration := s.rand.Int(MinSessionSeconds, MaxSessionSeconds)

	session := models.Session{
		ChildID:         childID,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(duration) * time.Second),
		DurationSeconds: duration,
		IsActive:        s.rand.Chance(activeSessionRate),
		DeviceType:      Pick(s.rand, models.DeviceTypes),
	}

	session.Activities = s.activities(start)

	var progress []models.Progress
	for _, activity := range session.Activities {
		switch activity.Content.Type() {
		case models.ContentGame:
			session.TotalGamesPlayed++
		case models.ContentLearningModule:
			session.TotalLessonsViewed++
		}

		p, ok := s.progressFor(childID, activity)
		if !ok {
			continue
		}
		session.PointsEarned += p.PointsEarned
		progress = append(progress, p)
	}

	return SessionDraft{Session: session, Progress: progress}
}
