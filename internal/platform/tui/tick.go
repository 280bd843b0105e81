// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/badgers-arcade/internal/registry"
)

// defaultTickRate paces games that do not report their own speed.
const defaultTickRate = 60

// lastID is the last tick-chain ID handed out to a game model.
var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is sent to trigger a game simulation tick.
// ID identifies the game model whose tick chain produced it, so a chain
// left over from a previous game does not drive the next one.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick message after one
// interval at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// tickRateOf returns the game's current speed in ticks per second.
// The rate is re-read every tick, so speed changes apply to the next interval.
func tickRateOf(game registry.Game) int {
	if p, ok := game.(registry.Paced); ok {
		return p.TickRate()
	}
	return defaultTickRate
}
