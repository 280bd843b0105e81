package snake

import (
	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// spawner places entities on the grid using the game's random source.
// It does not avoid occupied cells; overlaps resolve on the next collision check.
type spawner struct {
	grid       core.Grid
	rng        core.Rand
	categories []Category
}

// randomCell draws a cell uniformly from the whole grid.
func (s *spawner) randomCell() core.Position {
	return s.grid.At(s.rng.Intn(s.grid.Cols()), s.rng.Intn(s.grid.Rows()))
}

// wander moves p one cell in a uniformly random cardinal direction.
func (s *spawner) wander(p core.Position) core.Position {
	return s.grid.Step(p, core.Directions[s.rng.Intn(len(core.Directions))])
}

// randomDirection draws a heading for a fresh snake.
func (s *spawner) randomDirection() core.Direction {
	return core.Directions[s.rng.Intn(len(core.Directions))]
}

// randomCategory draws one of the configured regular categories.
func (s *spawner) randomCategory() Category {
	if len(s.categories) == 1 {
		return s.categories[0]
	}
	return s.categories[s.rng.Intn(len(s.categories))]
}

// newCat spawns a regular cat, or the special one.
func (s *spawner) newCat(special bool) *Cat {
	c := &Cat{category: CategoryBlackWhite}
	if !special {
		c.category = s.randomCategory()
	}
	c.pos = s.randomCell()
	return c
}

// relocate moves a cat to a fresh cell, redrawing a regular cat's category
// when recolor is set.
func (s *spawner) relocate(c *Cat, recolor bool) {
	if recolor && !c.Special() {
		c.category = s.randomCategory()
	}
	c.pos = s.randomCell()
}
