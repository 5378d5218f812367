// Package catalog holds the sample games and learning modules used to seed
// a fresh database.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"kidsguard/internal/models"
)

//go:embed *.yaml
var catalogFS embed.FS

// Catalog is the full set of sample content
type Catalog struct {
	Games   []models.Game           `yaml:"games"`
	Modules []models.LearningModule `yaml:"modules"`
}

// Load reads the embedded sample catalog
func Load() (*Catalog, error) {
	var c Catalog
	if err := decode("games.yaml", &c); err != nil {
		return nil, err
	}
	if err := decode("modules.yaml", &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(name string, into *Catalog) error {
	data, err := catalogFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("parse catalog %s: %w", name, err)
	}
	return nil
}

// Validate checks the fields the synthesizer and the schema rely on
func (c *Catalog) Validate() error {
	for i, g := range c.Games {
		if g.Title == "" || g.Category == "" || g.GameType == "" || g.Difficulty == "" {
			return fmt.Errorf("game %d: title, category, type and difficulty are required", i)
		}
		if g.NumberOfLevels < 1 {
			return fmt.Errorf("game %q: numberOfLevels must be at least 1", g.Title)
		}
	}
	for i, m := range c.Modules {
		if m.Title == "" || m.Subject == "" || m.Difficulty == "" {
			return fmt.Errorf("module %d: title, subject and difficulty are required", i)
		}
		for j, l := range m.Lessons {
			if l.LessonNumber != j+1 {
				return fmt.Errorf("module %q: lesson %d is numbered %d", m.Title, j+1, l.LessonNumber)
			}
		}
	}
	return nil
}
