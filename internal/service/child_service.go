package service

import (
	"errors"
	"fmt"

	"kidsguard/internal/credentials"
	"kidsguard/internal/models"
	"kidsguard/internal/validation"
)

var ErrInvalidCount = errors.New("count must be at least 1")

// sampleNames are display names handed out to demo children in order
var sampleNames = []string{
	"Layla", "Omar", "Sara", "Yusuf", "Mariam",
	"Adam", "Noor", "Zain", "Hana", "Ali",
}

// ChildStore persists child profiles
type ChildStore interface {
	Create(name, username string) (*models.Child, error)
	UsernameExists(username string) (bool, error)
}

// ChildService handles child profile creation
type ChildService struct {
	store ChildStore
}

// NewChildService creates a new child service
func NewChildService(store ChildStore) *ChildService {
	return &ChildService{store: store}
}

// CreateChild validates the name and creates an active child with a fresh username
func (s *ChildService) CreateChild(name string) (*models.Child, error) {
	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}

	username, err := credentials.UniqueUsername(s.store.UsernameExists)
	if err != nil {
		return nil, fmt.Errorf("failed to generate username: %w", err)
	}

	return s.store.Create(name, username)
}

// CreateSampleChildren creates count demo children, cycling through sampleNames
func (s *ChildService) CreateSampleChildren(count int) ([]models.Child, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	children := make([]models.Child, 0, count)
	for i := 0; i < count; i++ {
		child, err := s.CreateChild(sampleNames[i%len(sampleNames)])
		if err != nil {
			return children, err
		}
		children = append(children, *child)
	}
	return children, nil
}
