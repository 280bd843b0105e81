package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/badgers-arcade/internal/core"
)

// fixedRand always draws v, reduced modulo n.
type fixedRand struct {
	v int
}

func (r fixedRand) Intn(n int) int {
	return r.v % n
}

func TestSpawnerStaysOnGrid(t *testing.T) {
	s := spawner{
		grid:       testGrid,
		rng:        rand.New(rand.NewSource(7)),
		categories: []Category{CategoryOrange, CategoryRed, CategoryGreen},
	}

	p := testGrid.Center()
	for range 500 {
		if c := s.randomCell(); !testGrid.Contains(c) {
			t.Fatalf("randomCell() = %v is off the grid", c)
		}
		next := s.wander(p)
		if !testGrid.Contains(next) {
			t.Fatalf("wander(%v) = %v is off the grid", p, next)
		}
		p = next
	}
}

func TestSpawnerWanderMovesOneCell(t *testing.T) {
	for i, d := range core.Directions {
		s := spawner{grid: testGrid, rng: fixedRand{v: i}}
		start := core.Position{X: 50, Y: 50}
		expected := testGrid.Step(start, d)
		if got := s.wander(start); got != expected {
			t.Errorf("wander(%v) with draw %d = %v, expected %v", start, i, got, expected)
		}
	}
}

func TestSpawnerCategories(t *testing.T) {
	s := spawner{grid: testGrid, rng: fixedRand{v: 2}, categories: []Category{CategoryOrange, CategoryRed, CategoryGreen}}

	c := s.newCat(false)
	if c.Category() != CategoryGreen {
		t.Errorf("newCat(false) category = %s, expected green", c.Category())
	}

	special := s.newCat(true)
	if !special.Special() {
		t.Errorf("newCat(true) is not special")
	}

	s.rng = fixedRand{v: 0}
	s.relocate(special, true)
	if !special.Special() {
		t.Errorf("relocate recolored the special cat to %s", special.Category())
	}
	s.relocate(c, false)
	if c.Category() != CategoryGreen {
		t.Errorf("relocate without recolor changed category to %s", c.Category())
	}
	s.relocate(c, true)
	if c.Category() != CategoryOrange {
		t.Errorf("relocate with recolor = %s, expected orange", c.Category())
	}
}
