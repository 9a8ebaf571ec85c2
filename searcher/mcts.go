package searcher

import (
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/meta"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// MCTS is a tree-parallel Monte Carlo tree search with virtual loss.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	seed       uint64
	root       *decision
	tally      metrics.Tally
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithCutoff limits rollouts to depth moves before the evaluation function scores them.
func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed seeds the rollout policies. Every goroutine of every search gets its own stream.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// WithMetrics makes Simulate report how its rollouts ended.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.tally = metrics.NewTally()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     meta.MaxCutoff,
		evaluate:   game.EvaluateHeights,
		seed:       uint64(time.Now().UnixNano()),
		tally:      metrics.Discard,
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Simulate searches from pos and returns the visit share of every root action.
func (m *MCTS) Simulate(pos game.Position) (map[game.Action]float64, metrics.Search) {
	m.root = newDecision(nil, game.NoWinner, pos)

	// Run simulations to collect statistics
	m.tally.Begin(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(pos)
	} else {
		m.countdown(pos)
	}
	search := m.tally.Summary()

	policy := m.root.Policy()
	log.Debug().Msgf("searched %d episodes over %d root actions", search.Episodes, len(policy))
	return policy, search
}

// rngs returns a rollout source per goroutine.
func (m *MCTS) rngs() []*rand.Rand {
	rngs := make([]*rand.Rand, m.goroutines)
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(m.seed))
		m.seed++
	}
	return rngs
}

func (m *MCTS) iterate(pos game.Position) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for _, rng := range m.rngs() {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(pos, rng)
			}
		}(rng)
	}

	wg.Wait()
}

func (m *MCTS) countdown(pos game.Position) {
	done := make(chan any)

	var wg sync.WaitGroup
	for _, rng := range m.rngs() {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(pos, rng)
				}
			}
		}(rng)
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(pos game.Position, rng *rand.Rand) {
	newNode, newPos := selectThenExpand(m.root, pos)
	rewards := rollout(newPos, m.cutoff, m.evaluate, rng, m.tally)
	backup(newNode, rewards)
}

func selectThenExpand(root Node, pos game.Position) (Node, game.Position) {
	parent := root
	child, pos, selected := parent.SelectOrExpand(pos)
	for selected && (child != parent) {
		parent = child
		child, pos, selected = parent.SelectOrExpand(pos)
	}
	return child, pos
}

func rollout(pos game.Position, cutoff int, evaluate game.Evaluate, rng *rand.Rand, tally metrics.Tally) [game.MaxPlayers]float64 {
	depth := 0
	// Rollout till game over or for cutoff number of moves
	for !pos.Terminal() && depth < cutoff {
		moves := pos.LegalMoves()
		pos = pos.Play(moves[rng.Intn(len(moves))]) // Random rollout policy
		depth++
	}

	if pos.Terminal() { // Game over before cutoff
		if _, won := pos.Winner(); won {
			tally.Rollout(metrics.Won)
		} else {
			tally.Rollout(metrics.Stalemate)
		}
		return outcome(pos)
	}

	tally.Rollout(metrics.CutOff)
	return evaluate(pos)
}

func backup(newNode Node, rewards [game.MaxPlayers]float64) {
	node := newNode
	for node != nil {
		node = node.Backup(rewards)
	}
}
