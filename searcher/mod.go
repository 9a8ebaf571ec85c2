package searcher

import "santorini/game"

const CSquared = 2.0 // Exploration constant

// Rewards are per slot and lie in [Loss, Win]
const Win = 1.0
const Loss = 0.0

type Node interface {
	// SelectOrExpand descends one level from the node at pos. selected is
	// false when the node expanded a new child or is terminal.
	SelectOrExpand(pos game.Position) (child Node, childPos game.Position, selected bool)
	// Backup records an episode's rewards and returns the parent.
	Backup(rewards [game.MaxPlayers]float64) Node
	Visits() float64
	applyLoss()
	score(policy *uct) float64
}

// outcome returns the rewards of a finished game.
func outcome(pos game.Position) [game.MaxPlayers]float64 {
	var rewards [game.MaxPlayers]float64
	winner, ok := pos.Winner()
	for i := range rewards {
		if ok && i == winner {
			rewards[i] = Win
		} else {
			rewards[i] = Loss
		}
	}
	return rewards
}
