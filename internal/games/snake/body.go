package snake

import (
	"slices"

	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// Body is the snake: its segments, heading and target length.
// The head is always positions[0].
type Body struct {
	grid      core.Grid
	positions []core.Position
	direction core.Direction
	pending   core.Direction // Zero when no turn is queued
	target    int
	last      core.Position // Tail cell dropped by the latest move
	hasLast   bool
}

// NewBody creates a one-segment snake at start heading in dir.
func NewBody(grid core.Grid, start core.Position, dir core.Direction, length int) *Body {
	b := &Body{grid: grid}
	b.Reset(start, dir, length)
	return b
}

// Reset places a single segment at start and forgets any queued turn.
// The body grows towards length as it moves.
func (b *Body) Reset(start core.Position, dir core.Direction, length int) {
	b.positions = append(b.positions[:0], start)
	b.direction = dir
	b.pending = core.Direction{}
	b.target = length
	b.hasLast = false
}

// SetPending queues a turn for the next move.
// A turn to the exact opposite of the current heading is dropped.
func (b *Body) SetPending(d core.Direction) bool {
	if d.IsZero() || d == b.direction.Opposite() {
		return false
	}
	b.pending = d
	return true
}

// Advance moves the snake one cell, wrapping at the playfield edges.
// It reports collided when the new head would land on the body beyond
// the neck; the body is left untouched in that case.
func (b *Body) Advance() (head core.Position, collided bool) {
	if !b.pending.IsZero() {
		b.direction = b.pending
		b.pending = core.Direction{}
	}

	head = b.grid.Step(b.Head(), b.direction)
	if len(b.positions) > 2 && slices.Contains(b.positions[2:], head) {
		return head, true
	}

	b.positions = slices.Insert(b.positions, 0, head)
	b.hasLast = false
	b.trim()
	return head, false
}

// Grow changes the target length by n.
// It returns false when the target drops to zero or below; the body then
// keeps its last valid segments and the caller must end the run.
func (b *Body) Grow(n int) bool {
	b.target += n
	if b.target <= 0 {
		return false
	}
	b.trim()
	return true
}

func (b *Body) trim() {
	for len(b.positions) > b.target {
		b.last = b.positions[len(b.positions)-1]
		b.hasLast = true
		b.positions = b.positions[:len(b.positions)-1]
	}
}

// Head returns the head position.
func (b *Body) Head() core.Position { return b.positions[0] }

// Position implements Entity.
func (b *Body) Position() core.Position { return b.Head() }

// Sprite implements Entity.
func (b *Body) Sprite() core.Sprite { return core.SpriteSnakeHead }

// Positions returns the segments, head first. The slice must not be modified.
func (b *Body) Positions() []core.Position { return b.positions }

// Len returns the number of segments on the field.
func (b *Body) Len() int { return len(b.positions) }

// Target returns the length the body is trimmed to.
func (b *Body) Target() int { return b.target }

// Direction returns the current heading.
func (b *Body) Direction() core.Direction { return b.direction }

// Pending returns the queued turn, if any.
func (b *Body) Pending() (core.Direction, bool) { return b.pending, !b.pending.IsZero() }

// Last returns the cell vacated by the latest move.
func (b *Body) Last() (core.Position, bool) { return b.last, b.hasLast }
