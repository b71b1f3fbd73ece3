package engine

import (
	"github.com/nmorales/sintown/engine/rules"
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// Objects watched by the pharmacist. Walking out with one is fatal.
var pharmacyStock = map[int]bool{61: true, 68: true, 69: true}

func (e *Engine) handleTake(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("TAKE WHAT?")
	}
	id := e.noun(objectWord)
	if id == 0 {
		return say("I DON'T SEE THAT HERE!!")
	}
	if e.State.HasItem(id) {
		return say("I'VE ALREADY GOT IT!")
	}
	if !e.State.ObjectHere(id) {
		return say("I DON'T SEE IT HERE!!")
	}
	if id < types.PortableMin {
		return say("I CAN'T DO THAT")
	}
	if e.State.CurrentRoom == 24 && pharmacyStock[id] {
		out := say("THE MAN SAYS SHOPLIFTER!! AND SHOOTS ME")
		out[0].Style = types.StyleDeath
		return append(out, e.die()...)
	}
	if len(e.State.Inventory) >= state.MaxCarry {
		return say("I'M CARRYING TOO MUCH!!!")
	}
	e.State.RemoveFromRoom(e.State.CurrentRoom, id)
	e.State.Inventory = append(e.State.Inventory, id)
	return say("OK")
}

func (e *Engine) handleDrop(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("DROP WHAT?")
	}
	id := e.noun(objectWord)
	if id == 0 || !e.State.HasItem(id) {
		return say("I DON'T HAVE IT!!")
	}
	e.State.RemoveFromInventory(id)
	e.State.AddToRoom(e.State.CurrentRoom, id)
	out := say("OK")

	// Gifts left with the disco girl count toward her affection.
	if effs, ok := rules.Find(e.State, "DROP", id); ok {
		out = append(out, e.apply(effs)...)
	}
	if e.State.Flag("girl_points") == 3 && e.State.CurrentRoom == 21 {
		out = append(out, say("SHE SAYS 'SEE YOU AT THE MARRIAGE CENTER!!")...)
		e.State.Flags["girl_points"] = 4
		e.State.RemoveFromRoom(21, 49)
		e.State.AddToRoom(12, 49)
	}
	return out
}
