package service

import (
	"fmt"

	"kidsguard/internal/catalog"
	"kidsguard/internal/logging"
	"kidsguard/internal/models"
)

// CatalogStore replaces catalog content wholesale
type CatalogStore interface {
	ReplaceGames(games []models.Game) error
	ReplaceModules(modules []models.LearningModule) error
}

// CatalogSummary reports what a catalog seed inserted
type CatalogSummary struct {
	Games   int
	Modules int
}

// CatalogService seeds the sample games and learning modules
type CatalogService struct {
	store CatalogStore
	load  func() (*catalog.Catalog, error)
}

// NewCatalogService creates a catalog service over the embedded sample catalog
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store, load: catalog.Load}
}

// Seed replaces all games and learning modules with the sample catalog
func (s *CatalogService) Seed() (*CatalogSummary, error) {
	c, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sample catalog: %w", err)
	}

	if err := s.store.ReplaceGames(c.Games); err != nil {
		return nil, fmt.Errorf("failed to seed games: %w", err)
	}
	if err := s.store.ReplaceModules(c.Modules); err != nil {
		return nil, fmt.Errorf("failed to seed learning modules: %w", err)
	}

	logging.New("catalog").Info("catalog seeded", "games", len(c.Games), "modules", len(c.Modules))
	return &CatalogSummary{Games: len(c.Games), Modules: len(c.Modules)}, nil
}
