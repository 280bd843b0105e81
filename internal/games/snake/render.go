package snake

import (
	"fmt"

	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 1

// cellWidth is the number of terminal columns per grid cell.
// Terminal glyphs are roughly twice as tall as they are wide.
const cellWidth = 2

// boardSize returns the character size of the bordered board.
func (g *Game) boardSize() (int, int) {
	return g.grid.Cols()*cellWidth + 2, g.grid.Rows() + 2
}

// Frame describes the current tick as draw commands in pixel space.
// Commands are ordered back to front: trail, cats, badgers, body, head.
func (g *Game) Frame() core.Frame {
	f := core.Frame{
		Grid:    g.grid,
		Overlay: g.Overlay(),
		Title:   g.Title(),
		Banner:  g.banner(),
	}

	if last, ok := g.body.Last(); ok {
		f.Draws = append(f.Draws, core.DrawCommand{Pos: last, Sprite: core.SpriteTrail})
	}
	for _, c := range g.cats {
		f.Draws = append(f.Draws, core.DrawCommand{Pos: c.Position(), Sprite: c.Sprite()})
	}
	for _, b := range g.badgers {
		f.Draws = append(f.Draws, core.DrawCommand{Pos: b.Position(), Sprite: b.Sprite()})
	}
	segments := g.body.Positions()
	for i := len(segments) - 1; i > 0; i-- {
		f.Draws = append(f.Draws, core.DrawCommand{Pos: segments[i], Sprite: core.SpriteSnakeBody})
	}
	f.Draws = append(f.Draws, core.DrawCommand{Pos: g.body.Head(), Sprite: g.body.Sprite()})

	return f
}

// banner returns the message lines for the current loop state.
func (g *Game) banner() []string {
	switch g.state {
	case StatePaused:
		return []string{"Paused", "Press P or Space to continue"}
	case StateGameOver:
		return []string{
			fmt.Sprintf("Game Over: %s", g.result.Reason),
			fmt.Sprintf("Score %d  Length %d", g.result.Score, g.result.Length),
			"Press Space to play again",
		}
	}
	return nil
}

// HUDText formats the session overlay as a single status line.
func HUDText(title string, o core.Overlay) string {
	return fmt.Sprintf(" %s  Length: %d  Speed: %d  Score: %d  Bonus: x%d", title, o.Length, o.Speed, o.Score, o.Bonus)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	f := g.Frame()
	dst.DrawText(0, 0, HUDText(f.Title, f.Overlay))

	if g.tooSmall {
		renderBanner(dst, []string{"Window too small", "Resize to continue"})
		return
	}

	w, h := g.boardSize()
	offX := max((dst.Width()-w)/2, 0)
	dst.DrawBox(core.NewRect(offX, hudHeight, w, h))

	for _, cmd := range f.Draws {
		col, row := g.grid.Cell(cmd.Pos)
		st := cmd.Sprite.Style()
		x := offX + 1 + col*cellWidth
		y := hudHeight + 1 + row
		for i, r := range st.Glyph {
			dst.SetColored(x+i, y, r, st.Color)
		}
	}

	if len(f.Banner) > 0 {
		renderBanner(dst, f.Banner)
	}
}

// renderBanner draws centered message lines inside a box.
func renderBanner(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
