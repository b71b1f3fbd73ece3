// Package effects implements centralized state mutation via the Apply function.
// Every effect kind is one atomic operation. No game logic in effects.
package effects

import (
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// Apply applies a list of effects to the game state, mutating it.
// Returns the output events produced along the way. A fatal EffEndGame
// stops processing; the caller inspects s.GameOver afterwards.
func Apply(s *state.State, effs []types.Effect) []types.OutputEvent {
	var out []types.OutputEvent

	for _, eff := range effs {
		switch eff.Kind {
		case types.EffShowText:
			out = append(out, types.OutputEvent{
				Text:    eff.Text,
				Style:   eff.Style,
				DelayMs: eff.DelayMs,
			})

		case types.EffReveal:
			room := eff.Room
			if room == 0 {
				room = s.CurrentRoom
			}
			s.AddToRoom(room, eff.Object)

		case types.EffSetFlag:
			s.Flags[eff.Flag] = eff.Value

		case types.EffAddFlag:
			s.Flags[eff.Flag] += eff.Value

		case types.EffMoveObject:
			s.RemoveFromRoom(eff.FromRoom, eff.Object)
			s.AddToRoom(eff.Room, eff.Object)

		case types.EffGiveObject:
			s.RemoveFromRoom(s.CurrentRoom, eff.Object)
			if !s.HasItem(eff.Object) {
				s.Inventory = append(s.Inventory, eff.Object)
			}

		case types.EffRemoveObject:
			s.RemoveFromInventory(eff.Object)
			if room := s.RoomWithObject(eff.Object); room != 0 {
				s.RemoveFromRoom(room, eff.Object)
			}

		case types.EffAddMoney:
			s.Money += eff.Value
			if s.Money < 0 {
				s.Money = 0
			}

		case types.EffAddScore:
			s.Score += eff.Value
			if s.Score > state.MaxScore {
				s.Score = state.MaxScore
			}
			if s.Score < 0 {
				s.Score = 0
			}

		case types.EffTeleport:
			s.CurrentRoom = eff.Room

		case types.EffEndGame:
			if eff.Text != "" {
				out = append(out, types.OutputEvent{Text: eff.Text, Style: types.StyleDeath})
			}
			s.GameOver = true
			return out
		}
	}

	return out
}

// Text is a convenience constructor for a plain narrative line.
func Text(s string) types.Effect {
	return types.Effect{Kind: types.EffShowText, Text: s}
}

// Styled is a convenience constructor for a styled narrative line.
func Styled(s string, style types.Style) types.Effect {
	return types.Effect{Kind: types.EffShowText, Text: s, Style: style}
}
