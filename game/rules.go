package game

// CanMoveToSquare reports whether player's worker may step onto c: the worker
// is on the board, c is an unoccupied king move away, not capped, and at most
// one level higher than the worker's current tower.
func (s *State) CanMoveToSquare(player int, w Worker, c Coord) bool {
	if !s.IsPlaying(player) {
		return false
	}
	from := s.Locations[player].Of(w)
	if !from.InBounds() || !c.InBounds() {
		return false
	}
	if from.Distance(c) > 1 || s.Occupied(c) {
		return false
	}
	dest := s.Board.At(c)
	return dest != Capped && dest.Height() <= s.Board.At(from).Height()+1
}

// canBuildOn reports whether the worker moving from origin to dest may build
// at c. The origin square is vacated by the move; every other worker blocks,
// including the player's own other worker.
func (s *State) canBuildOn(origin, dest, c Coord) bool {
	if !c.InBounds() || c == dest || dest.Distance(c) > 1 {
		return false
	}
	if c != origin && s.Occupied(c) {
		return false
	}
	return s.Board.At(c) != Capped
}

// IsValid reports whether player may perform a. It has no side effects.
func (s *State) IsValid(player int, a Action) bool {
	if a.Worker != One && a.Worker != Two {
		return false
	}
	if !s.CanMoveToSquare(player, a.Worker, a.Move) {
		return false
	}
	return s.canBuildOn(s.Locations[player].Of(a.Worker), a.Move, a.Build)
}

// IsNearPlayer reports whether a worker of another Playing player stands one
// king move away from c.
func (s *State) IsNearPlayer(player int, c Coord) bool {
	for i, pair := range s.Locations {
		if i == player || s.Statuses[i] != Playing {
			continue
		}
		if pair[0].Adjacent(c) || pair[1].Adjacent(c) {
			return true
		}
	}
	return false
}

// WinningActions returns the legal actions of player that climb onto a Level3 tower.
func (s *State) WinningActions(player int) []Action {
	var wins []Action
	for _, a := range s.ListPossibleActions(player) {
		if s.Board.At(a.Move) == Level3 {
			wins = append(wins, a)
		}
	}
	return wins
}

func (s *State) CanWinOnNextTurn(player int) bool {
	if !s.IsPlaying(player) {
		return false
	}
	for _, w := range [2]Worker{One, Two} {
		from := s.Locations[player].Of(w)
		if !from.InBounds() || s.Board.At(from) != Level2 {
			continue
		}
		for _, n := range from.Neighbors() {
			// The vacated origin is always a legal build cell, so reaching
			// the tower is enough.
			if s.Board.At(n) == Level3 && s.CanMoveToSquare(player, w, n) {
				return true
			}
		}
	}
	return false
}
