package snake

import (
	"github.com/vovakirdan/badgers-arcade/internal/config"
	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// Session is the score, bonus and speed bookkeeping of one run.
type Session struct {
	speedRules config.SpeedRules
	scoring    config.Scoring

	Score int // May go negative
	Eaten int // Running count that drives the bonus
	Speed int // Ticks per second
	Frame int // Ticks since the run started; paces badgers
}

// NewSession creates a session at its initial values.
func NewSession(speed config.SpeedRules, scoring config.Scoring) *Session {
	s := &Session{speedRules: speed, scoring: scoring}
	s.Reset()
	return s
}

// Reset restores the initial values.
func (s *Session) Reset() {
	s.Score = 0
	s.Eaten = 0
	s.Speed = s.speedRules.Initial
	s.Frame = 0
}

// Bonus is the multiplier applied to cat points.
func (s *Session) Bonus() int {
	every := max(s.scoring.BonusEvery, 1)
	return s.Eaten/every + 1
}

// EatCat credits a regular cat worth points and returns the score change.
// The bonus in effect before the cat was eaten applies.
func (s *Session) EatCat(points int) int {
	delta := points * s.Bonus()
	s.Score += delta
	s.Eaten++
	s.faster()
	return delta
}

// EatSpecial credits the black-and-white cat: no points, a bigger eaten
// count and a slower game.
func (s *Session) EatSpecial() {
	s.Eaten += s.scoring.SpecialBonus
	s.slower()
}

// HitObstacle applies the badger penalty and returns the score change.
// The bonus collapses back to 1.
func (s *Session) HitObstacle() int {
	s.Score -= s.scoring.ObstaclePenalty
	s.Eaten = 0
	s.faster()
	return -s.scoring.ObstaclePenalty
}

// ShouldSpawn reports whether another cat joins the field after a speed-up,
// given the number of cats currently live.
func (s *Session) ShouldSpawn(live, limit, every int) bool {
	return live < limit && every > 0 && s.Speed%every == 0
}

func (s *Session) faster() {
	s.Speed += s.speedRules.Step
	if s.speedRules.Max > 0 {
		s.Speed = core.Clamp(s.Speed, max(s.speedRules.Min, 1), s.speedRules.Max)
	}
}

func (s *Session) slower() {
	s.Speed = max(s.Speed-s.speedRules.Step, s.speedRules.Min, 1)
}
