package models

import (
	"database/sql/driver"
	"time"
)

// Game is an entry in the educational games catalog
type Game struct {
	ID                  int64      `db:"id" yaml:"-"`
	Title               string     `db:"title" yaml:"title"`
	TitleArabic         string     `db:"title_arabic" yaml:"titleArabic"`
	Description         string     `db:"description" yaml:"description"`
	DescriptionArabic   string     `db:"description_arabic" yaml:"descriptionArabic"`
	Category            string     `db:"category" yaml:"category"`
	GameType            string     `db:"game_type" yaml:"type"`
	AgeGroups           StringList `db:"age_groups" yaml:"ageGroups"`
	Difficulty          string     `db:"difficulty" yaml:"difficulty"`
	Thumbnail           string     `db:"thumbnail" yaml:"thumbnail"`
	GameURL             string     `db:"game_url" yaml:"gameUrl"`
	LearningObjectives  StringList `db:"learning_objectives" yaml:"learningObjectives"`
	Skills              StringList `db:"skills" yaml:"skills"`
	Languages           StringList `db:"languages" yaml:"language"`
	PointsPerCompletion int        `db:"points_per_completion" yaml:"pointsPerCompletion"`
	DurationMinutes     int        `db:"duration_minutes" yaml:"duration"`
	HasLevels           bool       `db:"has_levels" yaml:"hasLevels"`
	NumberOfLevels      int        `db:"number_of_levels" yaml:"numberOfLevels"`
	ContentRating       string     `db:"content_rating" yaml:"contentRating"`
	SafetyChecked       bool       `db:"safety_checked" yaml:"safetyChecked"`
	IsActive            bool       `db:"is_active" yaml:"isActive"`
	IsPublished         bool       `db:"is_published" yaml:"isPublished"`
	IsFeatured          bool       `db:"is_featured" yaml:"isFeatured"`
	CreatedAt           time.Time  `db:"created_at" yaml:"-"`
}

// LearningModule is a structured course made of ordered lessons
type LearningModule struct {
	ID                 int64      `db:"id" yaml:"-"`
	Title              string     `db:"title" yaml:"title"`
	TitleArabic        string     `db:"title_arabic" yaml:"titleArabic"`
	Description        string     `db:"description" yaml:"description"`
	DescriptionArabic  string     `db:"description_arabic" yaml:"descriptionArabic"`
	Subject            string     `db:"subject" yaml:"subject"`
	Topic              string     `db:"topic" yaml:"topic"`
	AgeGroups          StringList `db:"age_groups" yaml:"ageGroups"`
	Difficulty         string     `db:"difficulty" yaml:"difficulty"`
	Thumbnail          string     `db:"thumbnail" yaml:"thumbnail"`
	Lessons            Lessons    `db:"lessons" yaml:"lessons"`
	LearningObjectives StringList `db:"learning_objectives" yaml:"learningObjectives"`
	Skills             StringList `db:"skills" yaml:"skills"`
	Languages          StringList `db:"languages" yaml:"language"`
	PointsPerLesson    int        `db:"points_per_lesson" yaml:"pointsPerLesson"`
	CompletionPoints   int        `db:"completion_points" yaml:"completionPoints"`
	HasQuiz            bool       `db:"has_quiz" yaml:"hasQuiz"`
	PassingScore       int        `db:"passing_score" yaml:"passingScore"`
	IsActive           bool       `db:"is_active" yaml:"isActive"`
	IsPublished        bool       `db:"is_published" yaml:"isPublished"`
	IsFeatured         bool       `db:"is_featured" yaml:"isFeatured"`
	CreatedAt          time.Time  `db:"created_at" yaml:"-"`
}

// Lesson is one step of a learning module
type Lesson struct {
	LessonNumber    int    `json:"lessonNumber" yaml:"lessonNumber"`
	Title           string `json:"title" yaml:"title"`
	TitleArabic     string `json:"titleArabic" yaml:"titleArabic"`
	ContentType     string `json:"contentType" yaml:"contentType"` // video, interactive or quiz
	Content         string `json:"content" yaml:"content"`
	DurationMinutes int    `json:"duration" yaml:"duration"`
	Order           int    `json:"order" yaml:"order"`
}

// Lessons is the ordered lesson list stored as a JSON array
type Lessons []Lesson

func (l Lessons) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return jsonValue([]Lesson(l))
}

func (l *Lessons) Scan(src any) error {
	return scanJSON(src, (*[]Lesson)(l))
}
