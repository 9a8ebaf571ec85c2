package metrics

import (
	"sync/atomic"
	"time"
)

// Ending is how a rollout of a search episode finished.
type Ending int

const (
	// Won means some player climbed to the third level.
	Won Ending = iota
	// Stalemate means every player got boxed in.
	Stalemate
	// CutOff means the rollout hit its depth limit and was evaluated.
	CutOff
	endings
)

// Search summarises the search behind one move.
type Search struct {
	Goroutines int
	Elapsed    time.Duration
	Cutoff     int // Rollout depth limit
	Episodes   int
	Wins       int
	Stalemates int
	CutOffs    int
}

// Tally counts the rollout endings of one search at a time. Rollout may be
// called from any goroutine between Begin and Summary.
type Tally interface {
	Begin(goroutines, cutoff int)
	Rollout(ending Ending)
	Summary() Search
}

type tally struct {
	goroutines int
	cutoff     int
	began      time.Time
	endings    [endings]atomic.Int64
}

func NewTally() Tally {
	return &tally{}
}

func (t *tally) Begin(goroutines, cutoff int) {
	t.goroutines = goroutines
	t.cutoff = cutoff
	t.began = time.Now()
	for i := range t.endings {
		t.endings[i].Store(0)
	}
}

func (t *tally) Rollout(ending Ending) {
	t.endings[ending].Add(1)
}

// Summary counts one episode per rollout.
func (t *tally) Summary() Search {
	s := Search{
		Goroutines: t.goroutines,
		Elapsed:    time.Since(t.began),
		Cutoff:     t.cutoff,
		Wins:       int(t.endings[Won].Load()),
		Stalemates: int(t.endings[Stalemate].Load()),
		CutOffs:    int(t.endings[CutOff].Load()),
	}
	s.Episodes = s.Wins + s.Stalemates + s.CutOffs
	return s
}

type discard struct{}

// Discard is a Tally that counts nothing.
var Discard Tally = discard{}

func (discard) Begin(int, int)  {}
func (discard) Rollout(Ending)  {}
func (discard) Summary() Search { return Search{} }
