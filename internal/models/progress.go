package models

import (
	"database/sql/driver"
	"time"
)

// ProgressStatus is the state of a child's advancement on one piece of content
type ProgressStatus string

const (
	StatusCompleted  ProgressStatus = "completed"
	StatusInProgress ProgressStatus = "in-progress"
)

// Progress records a child's advancement on a game or learning module,
// derived from one session activity
type Progress struct {
	ID                   int64
	ChildID              int64
	SessionID            int64
	Content              ContentRef
	Status               ProgressStatus
	StartedAt            time.Time
	CompletedAt          *time.Time // set iff Status is completed
	LastAccessedAt       time.Time
	Score                int
	Attempts             int
	BestScore            int
	TimeSpentSeconds     int
	PointsEarned         int
	CompletionPercentage int

	// Game progress
	CurrentLevel    *int
	LevelsCompleted LevelCompletions

	// Learning module progress
	CurrentLesson    *int
	LessonsCompleted LessonCompletions

	CreatedAt time.Time
}

// IsCompleted reports whether the content was finished
func (p Progress) IsCompleted() bool {
	return p.Status == StatusCompleted
}

// LevelCompletion marks a finished game level
type LevelCompletion struct {
	LevelNumber int       `json:"levelNumber"`
	CompletedAt time.Time `json:"completedAt"`
	Score       int       `json:"score"`
	Stars       int       `json:"stars"`
}

// LessonCompletion marks a finished module lesson
type LessonCompletion struct {
	LessonNumber int       `json:"lessonNumber"`
	CompletedAt  time.Time `json:"completedAt"`
	Score        int       `json:"score"`
}

// LevelCompletions is stored as a JSON array
type LevelCompletions []LevelCompletion

func (l LevelCompletions) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue([]LevelCompletion(l))
}

func (l *LevelCompletions) Scan(src any) error {
	return scanJSON(src, (*[]LevelCompletion)(l))
}

// LessonCompletions is stored as a JSON array
type LessonCompletions []LessonCompletion

func (l LessonCompletions) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue([]LessonCompletion(l))
}

func (l *LessonCompletions) Scan(src any) error {
	return scanJSON(src, (*[]LessonCompletion)(l))
}
