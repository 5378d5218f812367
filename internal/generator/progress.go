package generator

import (
	"kidsguard/internal/models"
)

const (
	MinGamePoints   = 50
	MaxGamePoints   = 150
	MinModulePoints = 30
	MaxModulePoints = 100

	MinPartialCompletion = 30
	MaxPartialCompletion = 90

	MinAttempts = 1
	MaxAttempts = 3

	MinStars = 1
	MaxStars = 3

	MinLesson = 1
	MaxLesson = 5
)

// progressFor derives the progress record implied by an activity.
// Unbound (creative) activities produce none.
func (s *Synthesizer) progressFor(childID int64, a models.Activity) (models.Progress, bool) {
	if !a.Content.Bound() {
		return models.Progress{}, false
	}

	p := models.Progress{
		ChildID:              childID,
		Content:              a.Content,
		Status:               models.StatusInProgress,
		StartedAt:            a.StartTime,
		LastAccessedAt:       a.EndTime,
		Score:                a.Score,
		Attempts:             s.rand.Int(MinAttempts, MaxAttempts),
		BestScore:            a.Score,
		TimeSpentSeconds:     a.DurationSeconds,
		LevelsCompleted:      models.LevelCompletions{},
		LessonsCompleted:     models.LessonCompletions{},
		CompletionPercentage: 100,
	}

	if a.Completed {
		p.Status = models.StatusCompleted
		completedAt := a.EndTime
		p.CompletedAt = &completedAt
	} else {
		p.CompletionPercentage = s.rand.Int(MinPartialCompletion, MaxPartialCompletion)
	}

	switch a.Content.Type() {
	case models.ContentGame:
		if a.Completed {
			p.PointsEarned = s.rand.Int(MinGamePoints, MaxGamePoints)
		}
		level := s.rand.Int(MinLevel, MaxLevel)
		p.CurrentLevel = &level
		if a.Completed {
			p.LevelsCompleted = append(p.LevelsCompleted, models.LevelCompletion{
				LevelNumber: level,
				CompletedAt: a.EndTime,
				Score:       a.Score,
				Stars:       s.rand.Int(MinStars, MaxStars),
			})
		}
	case models.ContentLearningModule:
		if a.Completed {
			p.PointsEarned = s.rand.Int(MinModulePoints, MaxModulePoints)
		}
		lesson := s.rand.Int(MinLesson, MaxLesson)
		p.CurrentLesson = &lesson
		if a.Completed {
			p.LessonsCompleted = append(p.LessonsCompleted, models.LessonCompletion{
				LessonNumber: lesson,
				CompletedAt:  a.EndTime,
				Score:        a.Score,
			})
		}
	}

	return p, true
}
