package generator

import (
	"fmt"
	"strings"

	"kidsguard/internal/models"
)

// Timeline selects how activities are laid out inside a session
type Timeline string

const (
	// TimelineSequential places each activity where the previous one ended
	TimelineSequential Timeline = "sequential"
	// TimelineIndexed starts activity j at start + j*duration_j, using each
	// activity's own duration. Windows can overlap or leave gaps.
	TimelineIndexed Timeline = "indexed"
)

// ParseTimeline accepts "sequential" or "indexed"; empty means sequential
func ParseTimeline(s string) (Timeline, error) {
	switch Timeline(strings.ToLower(strings.TrimSpace(s))) {
	case "", TimelineSequential:
		return TimelineSequential, nil
	case TimelineIndexed:
		return TimelineIndexed, nil
	default:
		return "", fmt.Errorf("unknown timeline %q (want sequential or indexed)", s)
	}
}

// Catalog holds the ids of the content activities can be bound to
type Catalog struct {
	GameIDs   []int64
	ModuleIDs []int64
}

// Synthesizer builds monitoring data for one child at a time
type Synthesizer struct {
	rand     *Random
	catalog  Catalog
	timeline Timeline
	kinds    []models.ContentType
}

// NewSynthesizer prepares a synthesizer over the given catalog.
// An activity kind is only drawn when it can be bound, so with no modules
// no learning-module activity is ever produced.
func NewSynthesizer(r *Random, catalog Catalog, timeline Timeline) *Synthesizer {
	var kinds []models.ContentType
	if len(catalog.GameIDs) > 0 {
		kinds = append(kinds, models.ContentGame)
	}
	if len(catalog.ModuleIDs) > 0 {
		kinds = append(kinds, models.ContentLearningModule)
	}
	kinds = append(kinds, models.ContentCreative)

	if timeline == "" {
		timeline = TimelineSequential
	}

	return &Synthesizer{
		rand:     r,
		catalog:  catalog,
		timeline: timeline,
		kinds:    kinds,
	}
}

// pickContent draws an activity kind and binds it to a catalog entry
func (s *Synthesizer) pickContent() models.ContentRef {
	switch Pick(s.rand, s.kinds) {
	case models.ContentGame:
		return models.GameContent(Pick(s.rand, s.catalog.GameIDs))
	case models.ContentLearningModule:
		return models.ModuleContent(Pick(s.rand, s.catalog.ModuleIDs))
	default:
		return models.CreativeContent()
	}
}
