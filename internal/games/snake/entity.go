package snake

import (
	"github.com/vovakirdan/badgers-arcade/internal/config"
	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// Entity is anything drawn on the playfield at a single cell.
type Entity interface {
	Position() core.Position
	Sprite() core.Sprite
}

// Category is the kind of a cat.
type Category int

const (
	CategoryOrange Category = iota
	CategoryRed
	CategoryGreen
	CategoryBlackWhite // Special: slows the game, raises the bonus, scores nothing
)

// String returns the config name of the category.
func (c Category) String() string {
	switch c {
	case CategoryOrange:
		return config.CategoryOrange
	case CategoryRed:
		return config.CategoryRed
	case CategoryGreen:
		return config.CategoryGreen
	case CategoryBlackWhite:
		return "black_white"
	default:
		return "unknown"
	}
}

// parseCategory maps a config category name to a Category.
func parseCategory(name string) (Category, bool) {
	switch name {
	case config.CategoryOrange:
		return CategoryOrange, true
	case config.CategoryRed:
		return CategoryRed, true
	case config.CategoryGreen:
		return CategoryGreen, true
	default:
		return 0, false
	}
}

// Cat is a collectible.
type Cat struct {
	pos      core.Position
	category Category
}

// Position returns the cat's cell.
func (c *Cat) Position() core.Position { return c.pos }

// Category returns the cat's category.
func (c *Cat) Category() Category { return c.category }

// Special reports whether this is the black-and-white cat.
func (c *Cat) Special() bool { return c.category == CategoryBlackWhite }

// Sprite returns the draw descriptor for the cat.
func (c *Cat) Sprite() core.Sprite {
	switch c.category {
	case CategoryOrange:
		return core.SpriteCatOrange
	case CategoryRed:
		return core.SpriteCatRed
	case CategoryGreen:
		return core.SpriteCatGreen
	default:
		return core.SpriteCatBlackWhite
	}
}

// ObstacleKind distinguishes badgers by their roaming cadence.
type ObstacleKind int

const (
	KindBadger ObstacleKind = iota
	KindHoneyBadger
)

// String returns the config name of the kind.
func (k ObstacleKind) String() string {
	if k == KindHoneyBadger {
		return config.KindHoneyBadger
	}
	return config.KindBadger
}

// Badger is a roaming obstacle.
type Badger struct {
	pos       core.Position
	kind      ObstacleKind
	moveEvery int // Frames between moves
}

// Position returns the badger's cell.
func (b *Badger) Position() core.Position { return b.pos }

// Kind returns the badger's kind.
func (b *Badger) Kind() ObstacleKind { return b.kind }

// Sprite returns the draw descriptor for the badger.
func (b *Badger) Sprite() core.Sprite {
	if b.kind == KindHoneyBadger {
		return core.SpriteHoneyBadger
	}
	return core.SpriteBadger
}

// dueAt reports whether the badger moves on the given frame.
func (b *Badger) dueAt(frame int) bool {
	return b.moveEvery > 0 && frame%b.moveEvery == 0
}

var (
	_ Entity = (*Cat)(nil)
	_ Entity = (*Badger)(nil)
	_ Entity = (*Body)(nil)
)
