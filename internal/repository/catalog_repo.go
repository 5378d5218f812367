package repository

import (
	"fmt"

	"kidsguard/internal/database"
	"kidsguard/internal/models"
)

// CatalogRepository handles games and learning modules
type CatalogRepository struct {
	db *database.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *database.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const insertGameQuery = `
	INSERT INTO games (
		title, title_arabic, description, description_arabic, category, game_type,
		age_groups, difficulty, thumbnail, game_url, learning_objectives, skills, languages,
		points_per_completion, duration_minutes, has_levels, number_of_levels,
		content_rating, safety_checked, is_active, is_published, is_featured
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// ReplaceGames clears the games table and inserts the given games in one
// transaction. IDs are written back into the slice.
func (r *CatalogRepository) ReplaceGames(games []models.Game) error {
	return r.db.WithTx(func(tx *database.Tx) error {
		if err := tx.DeleteAll("games"); err != nil {
			return err
		}
		for i := range games {
			g := &games[i]
			id, err := tx.ExecReturningID(insertGameQuery,
				g.Title, g.TitleArabic, g.Description, g.DescriptionArabic, g.Category, g.GameType,
				g.AgeGroups, g.Difficulty, g.Thumbnail, g.GameURL, g.LearningObjectives, g.Skills, g.Languages,
				g.PointsPerCompletion, g.DurationMinutes, g.HasLevels, g.NumberOfLevels,
				g.ContentRating, g.SafetyChecked, g.IsActive, g.IsPublished, g.IsFeatured,
			)
			if err != nil {
				return fmt.Errorf("failed to insert game %q: %w", g.Title, err)
			}
			g.ID = id
		}
		return nil
	})
}

const insertModuleQuery = `
	INSERT INTO learning_modules (
		title, title_arabic, description, description_arabic, subject, topic,
		age_groups, difficulty, thumbnail, lessons, learning_objectives, skills, languages,
		points_per_lesson, completion_points, has_quiz, passing_score,
		is_active, is_published, is_featured
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// ReplaceModules clears the learning_modules table and inserts the given
// modules in one transaction. IDs are written back into the slice.
func (r *CatalogRepository) ReplaceModules(modules []models.LearningModule) error {
	return r.db.WithTx(func(tx *database.Tx) error {
		if err := tx.DeleteAll("learning_modules"); err != nil {
			return err
		}
		for i := range modules {
			m := &modules[i]
			id, err := tx.ExecReturningID(insertModuleQuery,
				m.Title, m.TitleArabic, m.Description, m.DescriptionArabic, m.Subject, m.Topic,
				m.AgeGroups, m.Difficulty, m.Thumbnail, m.Lessons, m.LearningObjectives, m.Skills, m.Languages,
				m.PointsPerLesson, m.CompletionPoints, m.HasQuiz, m.PassingScore,
				m.IsActive, m.IsPublished, m.IsFeatured,
			)
			if err != nil {
				return fmt.Errorf("failed to insert learning module %q: %w", m.Title, err)
			}
			m.ID = id
		}
		return nil
	})
}

// ListPublishedGames returns games that are both active and published
func (r *CatalogRepository) ListPublishedGames() ([]models.Game, error) {
	query := `
		SELECT id, title, title_arabic, description, description_arabic, category, game_type,
		       age_groups, difficulty, thumbnail, game_url, learning_objectives, skills, languages,
		       points_per_completion, duration_minutes, has_levels, number_of_levels,
		       content_rating, safety_checked, is_active, is_published, is_featured, created_at
		FROM games
		WHERE is_active = ? AND is_published = ?
		ORDER BY id ASC
	`
	var games []models.Game
	if err := r.db.Select(&games, query, true, true); err != nil {
		return nil, fmt.Errorf("failed to list published games: %w", err)
	}
	return games, nil
}

// ListPublishedModules returns learning modules that are both active and published
func (r *CatalogRepository) ListPublishedModules() ([]models.LearningModule, error) {
	query := `
		SELECT id, title, title_arabic, description, description_arabic, subject, topic,
		       age_groups, difficulty, thumbnail, lessons, learning_objectives, skills, languages,
		       points_per_lesson, completion_points, has_quiz, passing_score,
		       is_active, is_published, is_featured, created_at
		FROM learning_modules
		WHERE is_active = ? AND is_published = ?
		ORDER BY id ASC
	`
	var modules []models.LearningModule
	if err := r.db.Select(&modules, query, true, true); err != nil {
		return nil, fmt.Errorf("failed to list published learning modules: %w", err)
	}
	return modules, nil
}
