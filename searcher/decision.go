package searcher

import (
	"santorini/game"
	"sync"
)

// decision is a node of the search tree. Its statistics are from the
// perspective of player, the slot whose action led to it.
type decision struct {
	sync.RWMutex
	parent     Node
	player     int
	unexplored []game.Action
	explored   []game.Action
	children   []Node
	rewards    float64
	visits     float64
}

func newDecision(parent Node, player int, pos game.Position) *decision {
	moves := pos.LegalMoves()
	unexplored := make([]game.Action, len(moves))
	copy(unexplored, moves)

	return &decision{
		parent:     parent,
		player:     player,
		unexplored: unexplored,
		explored:   make([]game.Action, 0, len(moves)),
		children:   make([]Node, 0, len(moves)),
	}
}

func (d *decision) SelectOrExpand(pos game.Position) (Node, game.Position, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.unexplored) > 0 { // Expandable node
		move := d.unexplored[0]
		d.unexplored = d.unexplored[1:]
		next := pos.Play(move)

		child := newDecision(d, pos.Player(), next)
		child.applyLoss()
		d.explored = append(d.explored, move)
		d.children = append(d.children, child)
		return child, next, false
	}

	if len(d.children) == 0 { // Terminal node
		return d, pos, false
	}

	// Fully expanded node
	ith := d.selectChild()
	child := d.children[ith]
	child.applyLoss()
	return child, pos.Play(d.explored[ith]), true
}

// selectChild returns the index of the child with the highest UCT score.
// Virtual losses count as visits, so every child has at least one.
func (d *decision) selectChild() int {
	N := 0.0
	for _, child := range d.children {
		N += child.Visits()
	}
	policy := newUCT(CSquared, N)

	maxIndex := 0
	maxScore := d.children[0].score(policy)
	for i, child := range d.children[1:] {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i + 1
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(policy *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.evaluate(d.rewards, d.visits)
}

func (d *decision) Backup(rewards [game.MaxPlayers]float64) Node {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}
	if d.player >= 0 && d.player < game.MaxPlayers {
		d.rewards += rewards[d.player]
	}
	d.visits++

	return d.parent
}

func (d *decision) Visits() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy returns the share of visits of every explored action.
func (d *decision) Policy() map[game.Action]float64 {
	d.RLock()
	defer d.RUnlock()

	total := 0.0
	visits := make([]float64, len(d.children))
	for i, child := range d.children {
		visits[i] = child.Visits()
		total += visits[i]
	}

	policy := make(map[game.Action]float64, len(d.children))
	for i, move := range d.explored {
		if total > 0 {
			policy[move] = visits[i] / total
		} else {
			policy[move] = 0
		}
	}
	return policy
}
