package generator

import (
	"time"

	"kidsguard/internal/models"
)

const (
	MinActivities = 2
	MaxActivities = 5

	MinActivitySeconds = 5 * 60
	MaxActivitySeconds = 20 * 60

	MinScore = 60
	MaxScore = 100

	MinLevel = 1
	MaxLevel = 5

	activityCompletionRate = 0.7
)

// activities lays out 2-5 activities for a session starting at start
func (s *Synthesizer) activities(start time.Time) []models.Activity {
	n := s.rand.Int(MinActivities, MaxActivities)
	activities := make([]models.Activity, 0, n)

	cursor := start
	for j := 0; j < n; j++ {
		content := s.pickContent()
		duration := s.rand.Int(MinActivitySeconds, MaxActivitySeconds)
		span := time.Duration(duration) * time.Second

		begin := cursor
		if s.timeline == TimelineIndexed {
			begin = start.Add(time.Duration(j) * span)
		}
		end := begin.Add(span)
		cursor = end

		activities = append(activities, models.Activity{
			Content:         content,
			StartTime:       begin,
			EndTime:         end,
			DurationSeconds: duration,
			Score:           s.rand.Int(MinScore, MaxScore),
			Completed:       s.rand.Chance(activityCompletionRate),
			Level:           s.rand.Int(MinLevel, MaxLevel),
		})
	}

	return activities
}
