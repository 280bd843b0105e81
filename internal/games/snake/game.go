package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/badgers-arcade/internal/config"
	"github.com/vovakirdan/badgers-arcade/internal/core"
	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

// Mode selects the ruleset variant.
type Mode string

const (
	ModeClassic Mode = "snake"
	ModeBadgers Mode = "badgers"
)

// LoopState is the state of the game loop.
type LoopState int

const (
	StateRunning  LoopState = iota
	StatePaused             // Paused by the player
	StateGameOver           // Waiting for ActionResume
)

// String returns a human-readable name for the loop state.
func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game-over reasons.
const (
	ReasonSelfCollision = "ran into itself"
	ReasonTooShort      = "shrank to nothing"
)

// Result summarizes a finished run for the game-over banner.
type Result struct {
	Score  int
	Length int
	Reason string
}

// Game implements the snake variants.
type Game struct {
	mode  Mode
	cfg   config.SnakeConfig
	grid  core.Grid
	rng   core.Rand
	fixed bool // rng was injected; Reset keeps it

	tick    uint64
	body    *Body
	session *Session
	spawn   spawner
	cats    []*Cat
	badgers []*Badger

	state  LoopState
	result Result
	events []core.Event

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game of the given mode. Call Reset before stepping.
func New(mode Mode, cfg config.SnakeConfig) *Game {
	return &Game{
		mode: mode,
		cfg:  cfg,
		grid: core.NewGrid(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Playfield.CellSize),
	}
}

// NewWithRand creates a game that draws from rng instead of a seeded source.
// The game is reset and ready to step.
func NewWithRand(mode Mode, cfg config.SnakeConfig, rng core.Rand) *Game {
	g := New(mode, cfg)
	g.rng = rng
	g.fixed = true
	g.Reset(core.RuntimeConfig{})
	return g
}

// factory loads the variant's configuration and builds a game.
func factory(mode Mode) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.Load(string(mode), opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, opts.Difficulty)
		return New(mode, cfg), nil
	}
}

func init() {
	registry.Register(string(ModeClassic), "Snake", factory(ModeClassic))
	registry.Register(string(ModeBadgers), "Badgers & Cats", factory(ModeBadgers))
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBadgers {
		return "Badgers & Cats"
	}
	return "Snake"
}

// Reset starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.fixed {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.spawn = spawner{grid: g.grid, rng: g.rng, categories: g.categories()}
	g.session = NewSession(g.cfg.Speed, g.cfg.Scoring)
	g.body = NewBody(g.grid, g.grid.Center(), core.Right, g.cfg.Snake.InitialLength)
	g.tick = 0
	g.state = StateRunning
	g.result = Result{}
	g.events = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// Resize adapts to a new character screen size. Zero sizes disable the
// too-small check, as pixel renderers do not use the character screen.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	w, h := g.boardSize()
	g.tooSmall = width > 0 && height > 0 && (width < w || height < h+hudHeight)
}

// categories resolves the configured regular categories.
func (g *Game) categories() []Category {
	var cats []Category
	for _, name := range g.cfg.Collectibles.Categories {
		if c, ok := parseCategory(name); ok {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		cats = []Category{CategoryRed}
	}
	return cats
}

// restart puts session, snake and entities back to their initial values.
func (g *Game) restart() {
	g.session.Reset()

	dir := core.Right
	if g.cfg.Rules.RandomDirectionOnReset {
		dir = g.spawn.randomDirection()
	}
	g.body.Reset(g.grid.Center(), dir, g.cfg.Snake.InitialLength)

	g.cats = g.cats[:0]
	for range g.cfg.Collectibles.Initial {
		g.cats = append(g.cats, g.spawn.newCat(false))
	}
	for range g.cfg.Collectibles.Special {
		g.cats = append(g.cats, g.spawn.newCat(true))
	}

	g.badgers = g.badgers[:0]
	for _, o := range g.cfg.Obstacles {
		kind := KindBadger
		if o.Kind == config.KindHoneyBadger {
			kind = KindHoneyBadger
		}
		for range o.Count {
			g.badgers = append(g.badgers, &Badger{
				pos:       g.spawn.randomCell(),
				kind:      kind,
				moveEvery: o.MoveEvery,
			})
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	switch g.state {
	case StateGameOver:
		if input.Has(core.ActionResume) {
			g.state = StateRunning
			g.emit(core.Event{Kind: core.EventResumed})
		}
		return g.stepResult()
	case StatePaused:
		if input.Has(core.ActionPause) || input.Has(core.ActionResume) {
			g.state = StateRunning
		}
		return g.stepResult()
	}

	if input.Has(core.ActionPause) {
		g.state = StatePaused
		return g.stepResult()
	}
	if g.tooSmall {
		return g.stepResult()
	}

	for _, d := range input.Directions() {
		g.body.SetPending(d)
	}

	if _, collided := g.body.Advance(); collided {
		g.endRun(ReasonSelfCollision)
		return g.stepResult()
	}

	g.session.Frame++
	g.moveBadgers()

	if g.checkBadgers() {
		return g.stepResult()
	}
	g.checkCats()

	return g.stepResult()
}

// moveBadgers lets each badger wander when its cadence is due.
func (g *Game) moveBadgers() {
	for _, b := range g.badgers {
		if b.dueAt(g.session.Frame) {
			b.pos = g.spawn.wander(b.pos)
		}
	}
}

// checkBadgers applies penalties for badgers under the head.
// It returns true when the run ended.
func (g *Game) checkBadgers() bool {
	head := g.body.Head()
	for _, b := range entitiesAt(g.badgers, head) {
		delta := g.session.HitObstacle()
		g.emit(core.Event{Kind: core.EventHit, Pos: head, Delta: delta, Detail: b.kind.String()})

		if !g.body.Grow(-g.cfg.Snake.ShrinkOnObstacle) {
			g.endRun(ReasonTooShort)
			return true
		}
		b.pos = g.spawn.randomCell()
		g.respawnAll()
	}
	return false
}

// checkCats applies rewards for cats under the head.
func (g *Game) checkCats() {
	head := g.body.Head()
	for _, c := range entitiesAt(g.cats, head) {
		if c.Special() {
			g.session.EatSpecial()
			g.emit(core.Event{Kind: core.EventSlowed, Pos: head, Detail: c.category.String()})
			g.spawn.relocate(c, false)
			g.respawnAll()
			continue
		}

		delta := g.session.EatCat(g.cfg.Scoring.PointsFor(c.category.String()))
		g.emit(core.Event{Kind: core.EventAte, Pos: head, Delta: delta, Detail: c.category.String()})
		g.body.Grow(1)
		g.spawn.relocate(c, g.cfg.Collectibles.Recolor)

		col := g.cfg.Collectibles
		if g.session.ShouldSpawn(len(g.cats), col.Max, col.SpawnEverySpeed) {
			extra := g.spawn.newCat(false)
			g.cats = append(g.cats, extra)
			g.emit(core.Event{Kind: core.EventSpawned, Pos: extra.pos, Detail: extra.category.String()})
		}
		g.respawnAll()
	}
}

// respawnAll scatters every cat and badger after a scoring event,
// when the rules ask for it.
func (g *Game) respawnAll() {
	if !g.cfg.Rules.RespawnAllOnEvent {
		return
	}
	for _, c := range g.cats {
		g.spawn.relocate(c, g.cfg.Collectibles.Recolor)
	}
	for _, b := range g.badgers {
		b.pos = g.spawn.randomCell()
	}
}

// endRun records the result, resets the session and waits for a resume.
func (g *Game) endRun(reason string) {
	g.result = Result{
		Score:  g.session.Score,
		Length: g.body.Target(),
		Reason: reason,
	}
	g.emit(core.Event{Kind: core.EventGameOver, Pos: g.body.Head(), Detail: reason})
	g.restart()
	g.state = StateGameOver
}

// entitiesAt returns the entities standing on p before any of them is moved.
func entitiesAt[E Entity](all []E, p core.Position) []E {
	var hits []E
	for _, e := range all {
		if e.Position() == p {
			hits = append(hits, e)
		}
	}
	return hits
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) stepResult() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.session.Score
	if g.state == StateGameOver {
		score = g.result.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// TickRate returns the current speed in ticks per second.
func (g *Game) TickRate() int {
	return max(g.session.Speed, 1)
}

// LoopState returns the state of the game loop.
func (g *Game) LoopState() LoopState {
	return g.state
}

// LastResult returns the summary of the most recent finished run.
func (g *Game) LastResult() Result {
	return g.result
}

// Overlay returns the session summary.
func (g *Game) Overlay() core.Overlay {
	return core.Overlay{
		Length: g.body.Target(),
		Speed:  g.session.Speed,
		Score:  g.session.Score,
		Bonus:  g.session.Bonus(),
	}
}

// Body returns the snake.
func (g *Game) Body() *Body {
	return g.body
}

// Session returns the live session state.
func (g *Game) Session() *Session {
	return g.session
}

// Cats returns the live collectibles.
func (g *Game) Cats() []*Cat {
	return g.cats
}

// Badgers returns the live obstacles.
func (g *Game) Badgers() []*Badger {
	return g.badgers
}

// Grid returns the playfield geometry.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	o := g.Overlay()
	return fmt.Sprintf("tick=%d state=%s head=%v dir=%s len=%d speed=%d score=%d bonus=%d cats=%d badgers=%d",
		g.tick, g.state, g.body.Head(), g.body.Direction(), o.Length, o.Speed, o.Score, o.Bonus,
		len(g.cats), len(g.badgers))
}
