package core

// DrawCommand places a sprite at a pixel position on the playfield.
type DrawCommand struct {
	Pos    Position
	Sprite Sprite
}

// Overlay is the session summary shown alongside the playfield.
type Overlay struct {
	Length int
	Speed  int
	Score  int
	Bonus  int
}

// Frame is everything a renderer needs to draw one tick.
// Draw commands are ordered back to front.
type Frame struct {
	Grid    Grid
	Draws   []DrawCommand
	Overlay Overlay
	Title   string
	Banner  []string // Centered message lines (pause, game over); empty while running
}
