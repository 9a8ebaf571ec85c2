package game

// ListPossibleActions returns every legal action of player: for each worker,
// each on-board neighbour as destination and each on-board neighbour of the
// destination as build cell, kept when IsValid accepts it. The order is fixed
// for a given state. An empty result means the player is boxed in.
func (s *State) ListPossibleActions(player int) []Action {
	if !s.IsPlaying(player) {
		return nil
	}
	actions := make([]Action, 0, 32)
	for _, w := range [2]Worker{One, Two} {
		from := s.Locations[player].Of(w)
		if !from.InBounds() {
			continue
		}
		for _, move := range from.Neighbors() {
			for _, build := range move.Neighbors() {
				a := Action{Worker: w, Move: move, Build: build}
				if s.IsValid(player, a) {
					actions = append(actions, a)
				}
			}
		}
	}
	return actions
}

// HasPossibleAction is ListPossibleActions(player) != empty without building the slice.
func (s *State) HasPossibleAction(player int) bool {
	if !s.IsPlaying(player) {
		return false
	}
	for _, w := range [2]Worker{One, Two} {
		from := s.Locations[player].Of(w)
		if !from.InBounds() {
			continue
		}
		for _, move := range from.Neighbors() {
			if !s.CanMoveToSquare(player, w, move) {
				continue
			}
			for _, build := range move.Neighbors() {
				if s.canBuildOn(from, move, build) {
					return true
				}
			}
		}
	}
	return false
}
