// Package rules holds the data-driven effect tables: what looking at a
// fixture reveals, what dropping a gift triggers, and which room exits
// are gated. The engine consults these tables before its built-in verb
// behavior, so most puzzle wiring lives here as data.
package rules

import (
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// Cond is a single flag predicate.
type Cond struct {
	Flag string
	Op   string // "eq", "ne", "lt", "gt"; "" means "eq"
	Val  int
}

// Holds reports whether the condition is true for the given state.
// "score" and "money" read the dedicated state fields; everything else
// is a named flag.
func (c Cond) Holds(s *state.State) bool {
	var v int
	switch c.Flag {
	case "score":
		v = s.Score
	case "money":
		v = s.Money
	default:
		v = s.Flag(c.Flag)
	}
	switch c.Op {
	case "", "eq":
		return v == c.Val
	case "ne":
		return v != c.Val
	case "lt":
		return v < c.Val
	case "gt":
		return v > c.Val
	}
	return false
}

func holdsAll(conds []Cond, s *state.State) bool {
	for _, c := range conds {
		if !c.Holds(s) {
			return false
		}
	}
	return true
}

// Rule maps (verb, object, optional room, flag predicates) to effects.
// If Once is set, the rule also sets that flag and never fires again.
type Rule struct {
	Verb    string
	Object  int
	Room    int // 0 = any room
	If      []Cond
	Once    string
	Effects []types.Effect
}

// Find returns the effects of the first matching rule, or (nil, false).
// Matching order is table order; the engine applies the returned effects
// through the effects package.
func Find(s *state.State, verb string, object int) ([]types.Effect, bool) {
	for _, r := range Table {
		if r.Verb != verb || r.Object != object {
			continue
		}
		if r.Room != 0 && r.Room != s.CurrentRoom {
			continue
		}
		if r.Once != "" && s.FlagSet(r.Once) {
			continue
		}
		if !holdsAll(r.If, s) {
			continue
		}
		effs := r.Effects
		if r.Once != "" {
			effs = append([]types.Effect{
				{Kind: types.EffSetFlag, Flag: r.Once, Value: 1},
			}, effs...)
		}
		return effs, true
	}
	return nil, false
}

// Gate guards one room exit. Dir "" guards every exit of the room.
// A fatal gate kills the player instead of refusing the move.
type Gate struct {
	Room    int
	Dir     types.Direction
	If      []Cond // gate triggers when ALL conditions hold
	Refusal []string
	Fatal   bool
}

// FindGate returns the first triggered gate for a move, or nil.
func FindGate(s *state.State, room int, dir types.Direction) *Gate {
	for i := range Gates {
		g := &Gates[i]
		if g.Room != room {
			continue
		}
		if g.Dir != "" && g.Dir != dir {
			continue
		}
		if !holdsAll(g.If, s) {
			continue
		}
		return g
	}
	return nil
}
