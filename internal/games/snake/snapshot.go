package snake

import "github.com/vovakirdan/badgers-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	State    LoopState
	Score    int
	Eaten    int
	Bonus    int
	Speed    int
	Frame    int
	Length   int
	Head     core.Position
	Dir      core.Direction
	Cats     []core.Position
	Badgers  []core.Position
	TooSmall bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		State:    g.state,
		Score:    g.session.Score,
		Eaten:    g.session.Eaten,
		Bonus:    g.session.Bonus(),
		Speed:    g.session.Speed,
		Frame:    g.session.Frame,
		Length:   g.body.Target(),
		Head:     g.body.Head(),
		Dir:      g.body.Direction(),
		TooSmall: g.tooSmall,
	}
	for _, c := range g.cats {
		s.Cats = append(s.Cats, c.pos)
	}
	for _, b := range g.badgers {
		s.Badgers = append(s.Badgers, b.pos)
	}
	return s
}
