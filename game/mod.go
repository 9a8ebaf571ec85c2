package game

import (
	"hash/fnv"
)

type StateHash uint64

// NoWinner is returned by Position.Winner while nobody has won.
const NoWinner = -1

// Position is a State with the slot to move. It follows the turn engine: a
// player without any legal action is eliminated when its turn comes up, and
// climbing onto a Level3 tower ends the game.
//
// Positions are immutable; Play returns a new one.
type Position struct {
	state  State
	toMove int
	winner int
	moves  []Action
}

// NewPosition returns the position where toMove (or the next slot able to
// act after it) is to move. toMove is taken modulo MaxPlayers.
func NewPosition(state State, toMove int) Position {
	toMove = (toMove%MaxPlayers + MaxPlayers) % MaxPlayers
	p := Position{state: state, toMove: toMove, winner: NoWinner}
	p.settle(toMove)
	return p
}

// settle hands the turn to the first Playing slot from start on that can act,
// eliminating the slots that cannot.
func (p *Position) settle(start int) {
	p.moves = nil
	for i := 0; i < MaxPlayers; i++ {
		slot := (start + i) % MaxPlayers
		if p.state.Statuses[slot] != Playing {
			continue
		}
		moves := p.state.ListPossibleActions(slot)
		if len(moves) == 0 {
			p.state.Statuses[slot] = Dead
			continue
		}
		p.toMove = slot
		p.moves = moves
		return
	}
	// Every slot got eliminated.
	p.toMove = NoWinner
}

func (p Position) State() State {
	return p.state
}

// Player returns the slot to move, or NoWinner when the game is over.
func (p Position) Player() int {
	return p.toMove
}

// LegalMoves returns the actions of the player to move; empty when terminal.
// The returned slice is shared and must not be modified.
func (p Position) LegalMoves() []Action {
	if p.Terminal() {
		return nil
	}
	return p.moves
}

// Play performs a, which must be one of LegalMoves.
func (p Position) Play(a Action) Position {
	next := Position{state: p.state, toMove: p.toMove, winner: NoWinner}
	won, _ := next.state.ApplyAction(p.toMove, a, false)
	if won {
		next.winner = p.toMove
		return next
	}
	next.settle((p.toMove + 1) % MaxPlayers)
	return next
}

// Winner returns the winning slot, if any.
func (p Position) Winner() (int, bool) {
	return p.winner, p.winner != NoWinner
}

func (p Position) Terminal() bool {
	return p.winner != NoWinner || p.toMove == NoWinner
}

// Hash identifies the position by board, live workers and player to move.
func (p Position) Hash() StateHash {
	hasher := fnv.New64a()
	buf := make([]byte, 0, BoardSize*BoardSize+MaxPlayers*5+2)

	for _, row := range p.state.Board {
		for _, t := range row {
			buf = append(buf, byte(t))
		}
	}
	for i, pair := range p.state.Locations {
		if p.state.Statuses[i] != Playing {
			buf = append(buf, 0xff)
			continue
		}
		buf = append(buf, byte(Playing),
			byte(pair[0].Row), byte(pair[0].Col),
			byte(pair[1].Row), byte(pair[1].Col))
	}
	buf = append(buf, byte(p.toMove), byte(p.winner))

	hasher.Write(buf)
	return StateHash(hasher.Sum64())
}
