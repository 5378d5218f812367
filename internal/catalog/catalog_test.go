package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"kidsguard/internal/models"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var titles []string
	for _, g := range c.Games {
		titles = append(titles, g.Title)
	}
	wantTitles := []string{"Math Adventure", "Word Builder", "Coding Quest", "Science Lab", "Creative Canvas"}
	if diff := cmp.Diff(wantTitles, titles); diff != "" {
		t.Errorf("game titles mismatch (-want +got):\n%s", diff)
	}

	if len(c.Modules) != 3 {
		t.Fatalf("got %d modules, want 3", len(c.Modules))
	}
	for _, m := range c.Modules {
		if !m.IsActive || !m.IsPublished {
			t.Errorf("module %q should be active and published", m.Title)
		}
	}
}

func TestLoadDecodesGameFields(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := c.Games[2]
	want := models.Game{
		Title:             "Coding Quest",
		TitleArabic:       "مهمة البرمجة",
		Description:       "Learn the basics of coding through interactive challenges!",
		DescriptionArabic: "تعلم أساسيات البرمجة من خلال التحديات التفاعلية!",
		Category:          "coding",
		GameType:          "serious",
		AgeGroups:         models.StringList{"9-12"},
		Difficulty:        "intermediate",
		Thumbnail:         "coding-game",
		GameURL:           "https://blockly.games/maze?lang=en",
		LearningObjectives: models.StringList{
			"Understand basic programming concepts",
			"Learn loops and conditions",
			"Create simple programs",
		},
		Skills:              models.StringList{"coding", "logic", "problem-solving"},
		Languages:           models.StringList{"ar", "en"},
		PointsPerCompletion: 150,
		DurationMinutes:     20,
		HasLevels:           true,
		NumberOfLevels:      8,
		ContentRating:       "9+",
		SafetyChecked:       true,
		IsActive:            true,
		IsPublished:         true,
		IsFeatured:          true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Coding Quest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDecodesLessons(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	alphabet := c.Modules[1]
	if alphabet.Title != "English Alphabet" {
		t.Fatalf("Modules[1] = %q, want English Alphabet", alphabet.Title)
	}
	want := models.Lesson{
		LessonNumber:    4,
		Title:           "Practice Test",
		TitleArabic:     "اختبار الممارسة",
		ContentType:     "quiz",
		Content:         "https://www.abcya.com/games/letter_recognition",
		DurationMinutes: 15,
		Order:           4,
	}
	if diff := cmp.Diff(want, alphabet.Lessons[3]); diff != "" {
		t.Errorf("last lesson mismatch (-want +got):\n%s", diff)
	}
	if alphabet.PointsPerLesson != 40 || alphabet.CompletionPoints != 180 || alphabet.PassingScore != 75 {
		t.Errorf("English Alphabet points = %d/%d/%d", alphabet.PointsPerLesson, alphabet.CompletionPoints, alphabet.PassingScore)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{
			name: "valid",
			catalog: Catalog{
				Games:   []models.Game{{Title: "G", Category: "math", GameType: "serious", Difficulty: "beginner", NumberOfLevels: 1}},
				Modules: []models.LearningModule{{Title: "M", Subject: "math", Difficulty: "beginner", Lessons: models.Lessons{{LessonNumber: 1}, {LessonNumber: 2}}}},
			},
		},
		{
			name:    "game without levels",
			catalog: Catalog{Games: []models.Game{{Title: "G", Category: "math", GameType: "serious", Difficulty: "beginner"}}},
			wantErr: true,
		},
		{
			name:    "module missing subject",
			catalog: Catalog{Modules: []models.LearningModule{{Title: "M", Difficulty: "beginner"}}},
			wantErr: true,
		},
		{
			name: "lessons out of order",
			catalog: Catalog{Modules: []models.LearningModule{{
				Title: "M", Subject: "math", Difficulty: "beginner",
				Lessons: models.Lessons{{LessonNumber: 2}, {LessonNumber: 1}},
			}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
