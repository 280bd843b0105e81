// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a point on the playfield in pixel units.
// Game positions are always multiples of the grid cell size.
type Position struct {
	X, Y int
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Direction is a unit vector along one of the four cardinal axes.
type Direction struct {
	DX, DY int
}

// Cardinal directions. Screen coordinates grow downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the four cardinal directions in a fixed order.
// Random draws index into this slice so seeded runs stay reproducible.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether d is the zero vector (no direction).
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Grid maps continuous pixel space onto square cells of CellSize pixels.
// The playfield is a torus: stepping off one edge re-enters at the opposite edge.
type Grid struct {
	Width    int // Playfield width in pixels
	Height   int // Playfield height in pixels
	CellSize int // Edge length of one cell in pixels
}

// NewGrid creates a grid for the given playfield and cell size.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.Height / g.CellSize
}

// Center returns the cell-aligned position closest to the middle of the playfield.
func (g Grid) Center() Position {
	return g.At(g.Cols()/2, g.Rows()/2)
}

// At returns the pixel position of the cell at (col, row).
func (g Grid) At(col, row int) Position {
	return Position{X: col * g.CellSize, Y: row * g.CellSize}
}

// Cell returns the (col, row) of the cell containing p.
func (g Grid) Cell(p Position) (int, int) {
	if g.CellSize <= 0 {
		return 0, 0
	}
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Wrap folds p back onto the playfield modulo its width and height.
func (g Grid) Wrap(p Position) Position {
	return Position{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p by one cell in direction d, wrapping at the edges.
func (g Grid) Step(p Position, d Direction) Position {
	return g.Wrap(p.Add(Position{X: d.DX * g.CellSize, Y: d.DY * g.CellSize}))
}

// Contains reports whether p lies on the playfield and is cell-aligned.
func (g Grid) Contains(p Position) bool {
	if g.CellSize <= 0 {
		return false
	}
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height &&
		p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// mod is the Euclidean modulo; the result has the sign of m.
func mod(v, m int) int {
	if m <= 0 {
		return v
	}
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
