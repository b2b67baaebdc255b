package engine

import "git.lost.host/meutraa/beatofspace/internal/game"

func (s *State) moveShip(f game.Frame) {
	if f.ShipTarget.Valid() {
		s.Ship.Lane = f.ShipTarget
	} else {
		if f.ShipUp {
			if moved, lane := game.CanMove(s.Ship.Lane, true); moved {
				s.Ship.Lane = lane
			}
		}
		if f.ShipDown {
			if moved, lane := game.CanMove(s.Ship.Lane, false); moved {
				s.Ship.Lane = lane
			}
		}
	}

	ease := shipEase * f.Delta
	if ease > 1 {
		ease = 1
	}
	s.Ship.Position += (s.Ship.Lane.Offset() - s.Ship.Position) * ease
}
