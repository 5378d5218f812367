package repository

import (
	"fmt"
	"time"

	"kidsguard/internal/database"
	"kidsguard/internal/models"
)

// ChildRepository handles database operations for children
type ChildRepository struct {
	db database.DBTX
}

// NewChildRepository creates a new child repository
func NewChildRepository(db database.DBTX) *ChildRepository {
	return &ChildRepository{db: db}
}

// Create inserts a new active child profile
func (r *ChildRepository) Create(name, username string) (*models.Child, error) {
	query := "INSERT INTO children (name, username, is_active) VALUES (?, ?, ?)"
	childID, err := r.db.ExecReturningID(query, name, username, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}

	return &models.Child{
		ID:        childID,
		Name:      name,
		Username:  username,
		IsActive:  true,
		CreatedAt: time.Now(),
	}, nil
}

// ListActive retrieves every active child in creation order
func (r *ChildRepository) ListActive() ([]models.Child, error) {
	query := `
		SELECT id, name, username, is_active, created_at
		FROM children
		WHERE is_active = ?
		ORDER BY id ASC
	`
	var children []models.Child
	if err := r.db.Select(&children, query, true); err != nil {
		return nil, fmt.Errorf("failed to list active children: %w", err)
	}
	return children, nil
}

// UsernameExists checks whether a username is already taken
func (r *ChildRepository) UsernameExists(username string) (bool, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM children WHERE username = ?", username); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

// Count returns the number of children
func (r *ChildRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM children"); err != nil {
		return 0, fmt.Errorf("failed to count children: %w", err)
	}
	return count, nil
}
