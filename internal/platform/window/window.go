// Package window runs a game in a desktop window with Ebitengine.
// It draws the playfield from the game's draw commands and maps keyboard
// state to the same input frames the terminal frontend produces.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/badgers-arcade/internal/core"
	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

const (
	hudHeight   = 20 // Pixels above the playfield for the status line
	borderWidth = 2
	updateRate  = 60 // Ebitengine updates per second; input is sampled at this rate
)

// Game is what the window needs from a game: the registry contract plus
// pixel-space draw commands.
type Game interface {
	registry.Game
	registry.Framer
}

// Sounder plays a cue for a game event.
type Sounder interface {
	Play(kind core.EventKind)
}

// Options configures the window frontend.
type Options struct {
	Seed   int64       // 0 seeds from the clock
	Scale  int         // Window pixels per playfield pixel; 0 means 1
	Logger *log.Logger // Nil discards logs
	Sound  Sounder     // Nil plays nothing
}

// keyBindings maps keys to game actions.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, core.ActionResume},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, core.ActionQuit},
}

// Runner adapts a game to ebiten.Game.
type Runner struct {
	game   Game
	input  core.InputFrame
	pace   pacer
	logger *log.Logger
	sound  Sounder
}

var _ ebiten.Game = (*Runner)(nil)

// NewRunner wraps a game for the window. The game must describe its frames
// as draw commands.
func NewRunner(game registry.Game, opts Options) (*Runner, error) {
	g, ok := game.(Game)
	if !ok {
		return nil, fmt.Errorf("window: game %q cannot be drawn in a window", game.ID())
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.Reset(core.RuntimeConfig{Seed: seed})
	return &Runner{
		game:   g,
		input:  core.NewInputFrame(),
		pace:   pacer{updateRate: updateRate},
		logger: logger.With("game", game.ID()),
		sound:  opts.Sound,
	}, nil
}

// Update samples input every frame and steps the game at its own speed.
func (r *Runner) Update() error {
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				r.input.Set(b.action)
			}
		}
	}
	if r.input.Has(core.ActionQuit) {
		r.logger.Info("quit", "score", r.game.State().Score)
		return ebiten.Termination
	}

	if !r.pace.due(tickRate(r.game)) {
		return nil
	}

	result := r.game.Step(r.input)
	r.input.Clear()
	if d, ok := r.game.(registry.Debugger); ok && len(result.Events) > 0 {
		r.logger.Debug("tick", "state", d.DebugState())
	}
	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			r.logger.Info("run ended", "score", result.State.Score, "reason", e.Detail)
		} else {
			r.logger.Debug("event", "kind", e.Kind, "delta", e.Delta, "detail", e.Detail)
		}
		if r.sound != nil {
			r.sound.Play(e.Kind)
		}
	}
	return nil
}

// Draw paints the HUD, the bordered board and every draw command.
func (r *Runner) Draw(screen *ebiten.Image) {
	f := r.game.Frame()
	screen.Fill(toColor(core.BoardBackground))

	ox, oy := float32(borderWidth), float32(hudHeight+borderWidth)
	w, h := float32(f.Grid.Width), float32(f.Grid.Height)
	vector.StrokeRect(screen, ox-borderWidth/2, oy-borderWidth/2, w+borderWidth, h+borderWidth, borderWidth, toColor(core.BorderColor), false)

	cell := float32(f.Grid.CellSize)
	for _, cmd := range f.Draws {
		fill := toColor(cmd.Sprite.Style().Fill)
		vector.DrawFilledRect(screen, ox+float32(cmd.Pos.X), oy+float32(cmd.Pos.Y), cell, cell, fill, false)
	}

	o := f.Overlay
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  Length: %d  Speed: %d  Score: %d  Bonus: x%d", f.Title, o.Length, o.Speed, o.Score, o.Bonus),
		borderWidth, 2)

	for i, line := range f.Banner {
		x, y := bannerPos(f.Grid, line, i, len(f.Banner))
		ebitenutil.DebugPrintAt(screen, line, x+borderWidth, y+hudHeight+borderWidth)
	}
}

// Layout fixes the logical screen to the playfield plus HUD and border.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize(r.game.Frame().Grid)
}

// Run opens a window and plays the game until the player quits or closes it.
func Run(game registry.Game, opts Options) error {
	r, err := NewRunner(game, opts)
	if err != nil {
		return err
	}

	scale := max(opts.Scale, 1)
	w, h := windowSize(r.game.Frame().Grid)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(updateRate)

	r.logger.Info("window opened", "width", w, "height", h)
	return ebiten.RunGame(r)
}

// windowSize returns the logical size of the window for a playfield.
func windowSize(g core.Grid) (int, int) {
	return g.Width + 2*borderWidth, g.Height + hudHeight + 2*borderWidth
}

// debugGlyph is the size of one ebitenutil debug font glyph.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// bannerPos centers line i of n on the playfield.
func bannerPos(g core.Grid, line string, i, n int) (int, int) {
	x := (g.Width - len([]rune(line))*debugGlyphW) / 2
	y := (g.Height-n*debugGlyphH)/2 + i*debugGlyphH
	return max(x, 0), max(y, 0)
}

// tickRate returns the game's speed in ticks per second.
func tickRate(g registry.Game) int {
	if p, ok := g.(registry.Paced); ok {
		return p.TickRate()
	}
	return updateRate
}

func toColor(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// pacer spreads game ticks evenly over a fixed update rate.
type pacer struct {
	updateRate int
	acc        int
}

// due advances one update and reports whether a game tick falls on it,
// given the game's current rate in ticks per second.
func (p *pacer) due(rate int) bool {
	p.acc += min(max(rate, 1), p.updateRate)
	if p.acc < p.updateRate {
		return false
	}
	p.acc -= p.updateRate
	return true
}
