package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/badgers-arcade/internal/config"
	"github.com/vovakirdan/badgers-arcade/internal/core"
	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

// testConfig is a 10x10 board with one orange cat, no special cat,
// no badgers and no respawning. Tests place entities by hand.
func testConfig() config.SnakeConfig {
	cfg := config.DefaultBadgersConfig()
	cfg.Playfield = config.Playfield{Width: 200, Height: 200, CellSize: 20}
	cfg.Collectibles.Categories = []string{config.CategoryOrange}
	cfg.Collectibles.Special = 0
	cfg.Collectibles.Recolor = false
	cfg.Obstacles = nil
	cfg.Rules.RespawnAllOnEvent = false
	return cfg
}

// newTestGame builds a game whose random draws are all 3: spawns land on
// cell (3,3) = {60 60} and wandering badgers step right.
func newTestGame(cfg config.SnakeConfig) *Game {
	return NewWithRand(ModeBadgers, cfg, fixedRand{v: 3})
}

var spawnCell = core.Position{X: 60, Y: 60}

func step(g *Game, actions ...core.Action) core.StepResult {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return g.Step(input)
}

func findEvent(res core.StepResult, kind core.EventKind) (core.Event, bool) {
	for _, e := range res.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return core.Event{}, false
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"snake", "badgers"} {
		if !registry.Exists(id) {
			t.Errorf("game %q is not registered", id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{Seed: 12345}

	g1 := New(ModeBadgers, config.DefaultBadgersConfig())
	g1.Reset(cfg)
	g2 := New(ModeBadgers, config.DefaultBadgersConfig())
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := range 300 {
		input.Clear()
		switch i % 40 {
		case 10:
			input.Set(core.ActionDown)
		case 20:
			input.Set(core.ActionLeft)
		case 30:
			input.Set(core.ActionUp)
		case 39:
			input.Set(core.ActionResume)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestInitialState(t *testing.T) {
	g := New(ModeBadgers, config.DefaultBadgersConfig())
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Body().Head() != g.Grid().Center() {
		t.Errorf("Head() = %v, expected %v", g.Body().Head(), g.Grid().Center())
	}
	if g.Body().Direction() != core.Right {
		t.Errorf("Direction() = %s, expected right", g.Body().Direction())
	}
	o := g.Overlay()
	if o.Length != 1 || o.Speed != 3 || o.Score != 0 || o.Bonus != 1 {
		t.Errorf("Overlay() = %+v, expected length 1 speed 3 score 0 bonus 1", o)
	}
	if len(g.Cats()) != 2 {
		t.Errorf("len(Cats()) = %d, expected 2", len(g.Cats()))
	}
	if len(g.Badgers()) != 2 {
		t.Errorf("len(Badgers()) = %d, expected 2", len(g.Badgers()))
	}
	if g.TickRate() != 3 {
		t.Errorf("TickRate() = %d, expected 3", g.TickRate())
	}
	if s := g.DebugState(); !strings.Contains(s, "state=running") || !strings.Contains(s, "len=1") || !strings.Contains(s, "cats=2") {
		t.Errorf("DebugState() = %q, expected running state with length 1 and 2 cats", s)
	}
}

func TestResetDirection(t *testing.T) {
	classic := NewWithRand(ModeClassic, config.DefaultSnakeConfig(), fixedRand{v: 2})
	if d := classic.Body().Direction(); d != core.Left {
		t.Errorf("classic Direction() = %s, expected left", d)
	}

	badgers := NewWithRand(ModeBadgers, config.DefaultBadgersConfig(), fixedRand{v: 2})
	if d := badgers.Body().Direction(); d != core.Right {
		t.Errorf("badgers Direction() = %s, expected right", d)
	}
}

func TestEatCat(t *testing.T) {
	g := newTestGame(testConfig())
	g.cats[0].pos = core.Position{X: 120, Y: 100}

	res := step(g)

	e, ok := findEvent(res, core.EventAte)
	if !ok {
		t.Fatalf("no %s event", core.EventAte)
	}
	if e.Delta != 10 {
		t.Errorf("Delta = %d, expected 10", e.Delta)
	}
	if res.State.Score != 10 {
		t.Errorf("Score = %d, expected 10", res.State.Score)
	}
	if g.Body().Target() != 2 {
		t.Errorf("Target() = %d, expected 2", g.Body().Target())
	}
	if g.TickRate() != 4 {
		t.Errorf("TickRate() = %d, expected 4", g.TickRate())
	}
	if g.cats[0].pos != spawnCell {
		t.Errorf("eaten cat at %v, expected respawn at %v", g.cats[0].pos, spawnCell)
	}
}

func TestSpecialCat(t *testing.T) {
	cfg := testConfig()
	cfg.Collectibles.Special = 1
	cfg.Speed.Initial = 5
	g := newTestGame(cfg)

	special := g.cats[1]
	if !special.Special() {
		t.Fatalf("second cat is %s, expected the special cat", special.Category())
	}
	special.pos = core.Position{X: 120, Y: 100}

	res := step(g)

	if _, ok := findEvent(res, core.EventSlowed); !ok {
		t.Errorf("no %s event", core.EventSlowed)
	}
	if _, ok := findEvent(res, core.EventAte); ok {
		t.Errorf("special cat produced an %s event", core.EventAte)
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0", res.State.Score)
	}
	if g.Session().Eaten != 5 || g.Session().Bonus() != 2 {
		t.Errorf("Eaten = %d, Bonus() = %d, expected 5 and 2", g.Session().Eaten, g.Session().Bonus())
	}
	if g.TickRate() != 4 {
		t.Errorf("TickRate() = %d, expected 4", g.TickRate())
	}
	if g.Body().Target() != 1 {
		t.Errorf("Target() = %d, expected 1", g.Body().Target())
	}
}

func TestObstacleEndsShortRun(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles = []config.ObstacleSpawn{{Kind: config.KindBadger, Count: 1, MoveEvery: 1000}}
	g := newTestGame(cfg)
	g.cats[0].pos = core.Position{X: 120, Y: 100}
	g.badgers[0].pos = core.Position{X: 140, Y: 100}

	if res := step(g); res.State.Score != 10 {
		t.Fatalf("Score after cat = %d, expected 10", res.State.Score)
	}

	res := step(g)
	if e, ok := findEvent(res, core.EventHit); !ok || e.Delta != -200 {
		t.Errorf("hit event = %+v (found %v), expected delta -200", e, ok)
	}
	if _, ok := findEvent(res, core.EventGameOver); !ok {
		t.Fatalf("no %s event", core.EventGameOver)
	}
	if !res.State.GameOver || res.State.Score != -190 {
		t.Errorf("State = %+v, expected game over with score -190", res.State)
	}

	expected := Result{Score: -190, Length: -1, Reason: ReasonTooShort}
	if g.LastResult() != expected {
		t.Errorf("LastResult() = %+v, expected %+v", g.LastResult(), expected)
	}

	// The session is already reset behind the banner.
	o := g.Overlay()
	if o.Score != 0 || o.Speed != 3 || o.Length != 1 {
		t.Errorf("Overlay() = %+v, expected a fresh session", o)
	}

	head := g.Body().Head()
	step(g)
	if g.LoopState() != StateGameOver || g.Body().Head() != head {
		t.Errorf("game advanced without a resume")
	}

	res = step(g, core.ActionResume)
	if _, ok := findEvent(res, core.EventResumed); !ok {
		t.Errorf("no %s event", core.EventResumed)
	}
	if g.LoopState() != StateRunning || res.State.GameOver {
		t.Errorf("LoopState() = %s after resume, expected running", g.LoopState())
	}

	session := g.Session()
	if session.Score != 0 || session.Eaten != 0 || session.Frame != 0 || session.Speed != cfg.Speed.Initial {
		t.Errorf("session after resume = %+v, expected initial values", *session)
	}
	if g.Body().Len() != 1 || g.Body().Target() != cfg.Snake.InitialLength {
		t.Errorf("body after resume: Len() = %d, Target() = %d, expected 1 and %d",
			g.Body().Len(), g.Body().Target(), cfg.Snake.InitialLength)
	}
	if got, expected := len(g.Cats()), cfg.Collectibles.Initial+cfg.Collectibles.Special; got != expected {
		t.Errorf("len(Cats()) after resume = %d, expected %d", got, expected)
	}
	if len(g.Badgers()) != 1 {
		t.Errorf("len(Badgers()) after resume = %d, expected 1", len(g.Badgers()))
	}
}

func TestObstacleShrinksLongSnake(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles = []config.ObstacleSpawn{{Kind: config.KindHoneyBadger, Count: 1, MoveEvery: 1000}}
	cfg.Rules.RespawnAllOnEvent = true
	g := newTestGame(cfg)
	g.Body().Grow(4)
	g.Session().Eaten = 7
	g.cats[0].pos = core.Position{X: 120, Y: 100}
	g.badgers[0].pos = core.Position{X: 120, Y: 100}

	res := step(g)

	e, ok := findEvent(res, core.EventHit)
	if !ok {
		t.Fatalf("no %s event", core.EventHit)
	}
	if e.Detail != config.KindHoneyBadger {
		t.Errorf("Detail = %q, expected %q", e.Detail, config.KindHoneyBadger)
	}
	// The obstacle respawns everything before cats are checked.
	if _, ok := findEvent(res, core.EventAte); ok {
		t.Errorf("cat eaten on the same cell as an obstacle after respawn")
	}
	if res.State.GameOver {
		t.Fatalf("run ended at length %d", g.Body().Target())
	}
	if res.State.Score != -200 {
		t.Errorf("Score = %d, expected -200", res.State.Score)
	}
	if g.Body().Target() != 2 {
		t.Errorf("Target() = %d, expected 2", g.Body().Target())
	}
	if g.Session().Bonus() != 1 {
		t.Errorf("Bonus() = %d, expected 1", g.Session().Bonus())
	}
	if g.badgers[0].pos != spawnCell || g.cats[0].pos != spawnCell {
		t.Errorf("entities at %v and %v, expected respawn at %v", g.badgers[0].pos, g.cats[0].pos, spawnCell)
	}
}

func TestObstacleCheckedBeforeCats(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles = []config.ObstacleSpawn{{Kind: config.KindBadger, Count: 1, MoveEvery: 1000}}
	cfg.Collectibles.Max = 1
	g := newTestGame(cfg)
	g.Body().Grow(4)
	g.cats[0].pos = core.Position{X: 120, Y: 100}
	g.badgers[0].pos = core.Position{X: 120, Y: 100}

	res := step(g)

	var kinds []core.EventKind
	for _, e := range res.Events {
		kinds = append(kinds, e.Kind)
	}
	expected := []core.EventKind{core.EventHit, core.EventAte}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("events = %v, expected %v", kinds, expected)
	}
	if res.State.Score != -190 {
		t.Errorf("Score = %d, expected -190", res.State.Score)
	}
	if g.Body().Target() != 3 {
		t.Errorf("Target() = %d, expected 3", g.Body().Target())
	}
}

func TestSelfCollisionEndsRun(t *testing.T) {
	g := newTestGame(testConfig())
	g.Body().Grow(4)

	for range 4 {
		step(g)
	}
	step(g, core.ActionDown)
	step(g, core.ActionLeft)
	res := step(g, core.ActionUp)

	if !res.State.GameOver {
		t.Fatalf("State = %+v, expected game over", res.State)
	}
	expected := Result{Score: 0, Length: 5, Reason: ReasonSelfCollision}
	if g.LastResult() != expected {
		t.Errorf("LastResult() = %+v, expected %+v", g.LastResult(), expected)
	}
	if g.Body().Head() != g.Grid().Center() || g.Body().Len() != 1 {
		t.Errorf("snake not reset: head %v, len %d", g.Body().Head(), g.Body().Len())
	}
}

func TestBadgerCadence(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles = []config.ObstacleSpawn{{Kind: config.KindBadger, Count: 1, MoveEvery: 2}}
	g := newTestGame(cfg)
	g.badgers[0].pos = core.Position{X: 0, Y: 0}

	expected := []core.Position{
		{X: 0, Y: 0},
		{X: 20, Y: 0},
		{X: 20, Y: 0},
		{X: 40, Y: 0},
	}
	for i, pos := range expected {
		step(g)
		if g.badgers[0].pos != pos {
			t.Errorf("frame %d: badger at %v, expected %v", i+1, g.badgers[0].pos, pos)
		}
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(testConfig())
	head := g.Body().Head()

	res := step(g, core.ActionPause)
	if !res.State.Paused || g.LoopState() != StatePaused {
		t.Fatalf("State = %+v, expected paused", res.State)
	}
	for range 3 {
		step(g, core.ActionDown)
	}
	if g.Body().Head() != head || g.Session().Frame != 0 {
		t.Errorf("game advanced while paused")
	}

	step(g, core.ActionPause)
	if g.LoopState() != StateRunning {
		t.Fatalf("LoopState() = %s, expected running", g.LoopState())
	}
	step(g)
	if g.Body().Head() == head {
		t.Errorf("game did not advance after unpausing")
	}
	if g.Body().Direction() != core.Right {
		t.Errorf("turn pressed while paused was applied")
	}
}

func TestPauseResumesOnContinue(t *testing.T) {
	g := newTestGame(testConfig())

	step(g, core.ActionPause)
	if g.LoopState() != StatePaused {
		t.Fatalf("LoopState() = %s, expected paused", g.LoopState())
	}
	if res := step(g, core.ActionResume); res.State.Paused || g.LoopState() != StateRunning {
		t.Errorf("LoopState() = %s after continue, expected running", g.LoopState())
	}
}

func TestTurnsAppliedInOrder(t *testing.T) {
	tests := []struct {
		name     string
		actions  []core.Action
		expected core.Direction
	}{
		{"reversal after a turn keeps the turn", []core.Action{core.ActionUp, core.ActionLeft}, core.Up},
		{"reversal alone is ignored", []core.Action{core.ActionLeft}, core.Right},
		{"later valid turn wins", []core.Action{core.ActionUp, core.ActionDown}, core.Down},
		{"turn then straight", []core.Action{core.ActionDown, core.ActionRight}, core.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(testConfig())
			step(g, tt.actions...)
			if d := g.Body().Direction(); d != tt.expected {
				t.Errorf("direction after %v = %s, expected %s", tt.actions, d, tt.expected)
			}
		})
	}
}

func TestSpawnLimitCountsSpecialCat(t *testing.T) {
	cfg := testConfig()
	cfg.Speed.Initial = 4
	cfg.Collectibles.Initial = 1
	cfg.Collectibles.Special = 1
	cfg.Collectibles.Max = 2
	g := newTestGame(cfg)
	g.cats[0].pos = core.Position{X: 120, Y: 100}

	res := step(g)
	if g.TickRate() != 5 {
		t.Fatalf("TickRate() = %d, expected 5", g.TickRate())
	}
	if _, ok := findEvent(res, core.EventSpawned); ok || len(g.Cats()) != 2 {
		t.Errorf("len(Cats()) = %d, expected 2 with the special cat counted", len(g.Cats()))
	}
}

func TestSpawnAtSpeedMultiple(t *testing.T) {
	cfg := testConfig()
	cfg.Speed.Initial = 4
	g := newTestGame(cfg)
	g.cats[0].pos = core.Position{X: 120, Y: 100}

	res := step(g)
	if g.TickRate() != 5 {
		t.Fatalf("TickRate() = %d, expected 5", g.TickRate())
	}
	if len(g.Cats()) != 2 {
		t.Errorf("len(Cats()) = %d, expected 2", len(g.Cats()))
	}
	if _, ok := findEvent(res, core.EventSpawned); !ok {
		t.Errorf("no %s event", core.EventSpawned)
	}

	g.cats[0].pos = core.Position{X: 140, Y: 100}
	step(g)
	if len(g.Cats()) != 2 {
		t.Errorf("len(Cats()) at speed %d = %d, expected 2", g.TickRate(), len(g.Cats()))
	}
}

func TestSpawnRespectsLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Speed.Initial = 4
	cfg.Collectibles.Max = 1
	g := newTestGame(cfg)
	g.cats[0].pos = core.Position{X: 120, Y: 100}

	step(g)
	if len(g.Cats()) != 1 {
		t.Errorf("len(Cats()) = %d, expected 1", len(g.Cats()))
	}
}

func TestRespawnAllOnEvent(t *testing.T) {
	tests := []struct {
		name     string
		respawn  bool
		expected core.Position
	}{
		{"enabled", true, spawnCell},
		{"disabled", false, core.Position{X: 0, Y: 180}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Collectibles.Initial = 2
			cfg.Rules.RespawnAllOnEvent = tt.respawn
			g := newTestGame(cfg)
			g.cats[0].pos = core.Position{X: 120, Y: 100}
			g.cats[1].pos = core.Position{X: 0, Y: 180}

			step(g)
			if g.cats[1].pos != tt.expected {
				t.Errorf("other cat at %v, expected %v", g.cats[1].pos, tt.expected)
			}
		})
	}
}

func TestFrame(t *testing.T) {
	g := newTestGame(testConfig())

	f := g.Frame()
	if len(f.Draws) != 2 {
		t.Fatalf("len(Draws) = %d, expected 2", len(f.Draws))
	}
	if f.Draws[0].Sprite != core.SpriteCatOrange {
		t.Errorf("first draw = %v, expected the cat", f.Draws[0].Sprite)
	}
	head := f.Draws[len(f.Draws)-1]
	if head.Sprite != core.SpriteSnakeHead || head.Pos != g.Body().Head() {
		t.Errorf("last draw = %+v, expected the head at %v", head, g.Body().Head())
	}
	if f.Banner != nil {
		t.Errorf("Banner = %v while running", f.Banner)
	}

	prev := g.Body().Head()
	step(g)
	f = g.Frame()
	if f.Draws[0].Sprite != core.SpriteTrail || f.Draws[0].Pos != prev {
		t.Errorf("first draw = %+v, expected the trail at %v", f.Draws[0], prev)
	}

	step(g, core.ActionPause)
	if f = g.Frame(); len(f.Banner) == 0 || f.Banner[0] != "Paused" {
		t.Errorf("Banner = %v, expected the pause banner", f.Banner)
	}
}

func TestRender(t *testing.T) {
	g := New(ModeBadgers, config.DefaultBadgersConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Length: 1") || !strings.Contains(hud, "Badgers & Cats") {
		t.Errorf("HUD = %q", hud)
	}
	// 32 columns of two characters plus borders, centered in 80.
	if r := screen.Get(7, 1); r != '┌' {
		t.Errorf("board corner = %q, expected '┌'", r)
	}
	if r := screen.Get(72, 22); r != '┘' {
		t.Errorf("board corner = %q, expected '┘'", r)
	}
	cell := screen.GetCell(40, 12)
	if cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected a bright green block", cell)
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(testConfig())
	g.Resize(10, 5)
	head := g.Body().Head()

	step(g)
	if g.Body().Head() != head {
		t.Errorf("game advanced on a screen that is too small")
	}

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("missing too-small message:\n%s", screen.String())
	}

	g.Resize(80, 24)
	step(g)
	if g.Body().Head() == head {
		t.Errorf("game did not advance after resizing")
	}
}
