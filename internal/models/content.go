package models

import (
	"encoding/json"
	"fmt"
)

// ContentType tags what an activity or progress record is about
type ContentType string

const (
	ContentGame           ContentType = "game"
	ContentLearningModule ContentType = "learning-module"
	ContentCreative       ContentType = "creative"
)

// ContentRef is a reference to the content an activity engaged with.
// A game ref always carries a game id, a module ref always carries a
// module id and a creative ref carries nothing. The zero value is invalid.
type ContentRef struct {
	kind ContentType
	id   int64
}

// GameContent references a game from the catalog
func GameContent(gameID int64) ContentRef {
	return ContentRef{kind: ContentGame, id: gameID}
}

// ModuleContent references a learning module from the catalog
func ModuleContent(moduleID int64) ContentRef {
	return ContentRef{kind: ContentLearningModule, id: moduleID}
}

// CreativeContent is free-form creative play with no catalog entry
func CreativeContent() ContentRef {
	return ContentRef{kind: ContentCreative}
}

// Type returns the content type tag
func (c ContentRef) Type() ContentType {
	return c.kind
}

// GameID returns the bound game id, if this is a game reference
func (c ContentRef) GameID() (int64, bool) {
	if c.kind != ContentGame {
		return 0, false
	}
	return c.id, true
}

// ModuleID returns the bound learning module id, if this is a module reference
func (c ContentRef) ModuleID() (int64, bool) {
	if c.kind != ContentLearningModule {
		return 0, false
	}
	return c.id, true
}

// Bound reports whether the reference points at a catalog entry
func (c ContentRef) Bound() bool {
	return c.kind == ContentGame || c.kind == ContentLearningModule
}

// IsZero reports whether the reference was never set
func (c ContentRef) IsZero() bool {
	return c.kind == ""
}

// Columns splits the reference into nullable game and module id columns
func (c ContentRef) Columns() (gameID, moduleID *int64) {
	switch c.kind {
	case ContentGame:
		id := c.id
		return &id, nil
	case ContentLearningModule:
		id := c.id
		return nil, &id
	}
	return nil, nil
}

// RefFromColumns rebuilds a reference from its stored tag and id columns
func RefFromColumns(kind ContentType, gameID, moduleID *int64) (ContentRef, error) {
	switch kind {
	case ContentGame:
		if gameID == nil || moduleID != nil {
			return ContentRef{}, fmt.Errorf("game content must carry only a game id")
		}
		return GameContent(*gameID), nil
	case ContentLearningModule:
		if moduleID == nil || gameID != nil {
			return ContentRef{}, fmt.Errorf("learning-module content must carry only a module id")
		}
		return ModuleContent(*moduleID), nil
	case ContentCreative:
		if gameID != nil || moduleID != nil {
			return ContentRef{}, fmt.Errorf("creative content cannot reference a catalog entry")
		}
		return CreativeContent(), nil
	default:
		return ContentRef{}, fmt.Errorf("unknown content type %q", kind)
	}
}

func (c ContentRef) String() string {
	if c.Bound() {
		return fmt.Sprintf("%s:%d", c.kind, c.id)
	}
	return string(c.kind)
}

// contentJSON is the wire shape shared by activities and progress records
type contentJSON struct {
	Type           ContentType `json:"activityType"`
	Game           *int64      `json:"game"`
	LearningModule *int64      `json:"learningModule"`
}

func (c ContentRef) toJSON() contentJSON {
	gameID, moduleID := c.Columns()
	return contentJSON{Type: c.kind, Game: gameID, LearningModule: moduleID}
}

// MarshalJSON encodes the reference with explicit null ids
func (c ContentRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toJSON())
}

// UnmarshalJSON decodes and validates a reference
func (c *ContentRef) UnmarshalJSON(data []byte) error {
	var raw contentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ref, err := RefFromColumns(raw.Type, raw.Game, raw.LearningModule)
	if err != nil {
		return err
	}
	*c = ref
	return nil
}
