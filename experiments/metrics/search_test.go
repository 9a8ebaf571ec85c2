package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	tl := NewTally()
	tl.Begin(4, 20)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				switch {
				case i%5 == 0:
					tl.Rollout(Won)
				case i == 24:
					tl.Rollout(Stalemate)
				default:
					tl.Rollout(CutOff)
				}
			}
		}()
	}
	wg.Wait()

	s := tl.Summary()
	require.Equal(t, 4, s.Goroutines)
	require.Equal(t, 20, s.Cutoff)
	require.Equal(t, 100, s.Episodes)
	require.Equal(t, 20, s.Wins)
	require.Equal(t, 4, s.Stalemates)
	require.Equal(t, 76, s.CutOffs)
	require.Positive(t, s.Elapsed)

	tl.Begin(1, 5)
	require.Zero(t, tl.Summary().Episodes, "Begin resets the counts")
}

func TestDiscard(t *testing.T) {
	Discard.Begin(4, 20)
	Discard.Rollout(Won)
	require.Equal(t, Search{}, Discard.Summary())
}
