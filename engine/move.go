package engine

import (
	"fmt"

	"github.com/nmorales/sintown/engine/rules"
	"github.com/nmorales/sintown/types"
)

// handleGo moves the player through an exit, subject to gates.
func (e *Engine) handleGo(direction string) []types.OutputEvent {
	if e.State.FlagSet("tied_to_bed") {
		return say("BUT I'M TIED TO THE BED!!!!!")
	}
	if direction == "" {
		return say("WHICH DIRECTION?")
	}

	dir := types.Direction(direction)
	room := e.Defs.Rooms[e.State.CurrentRoom]
	target, ok := room.Exits[dir]
	if !ok {
		return say("I CAN'T GO IN THAT DIRECTION!!")
	}

	// The pimp guards the stairs up from the lobby. Paying him (or
	// distracting him with channel 6) opens the way.
	var preamble []types.OutputEvent
	if e.State.CurrentRoom == 5 && dir == types.Up {
		out, blocked := e.pimpGate()
		if blocked {
			return out
		}
		preamble = out
	}

	if g := rules.FindGate(e.State, e.State.CurrentRoom, dir); g != nil {
		out := make([]types.OutputEvent, 0, len(g.Refusal))
		for _, line := range g.Refusal {
			out = append(out, types.OutputEvent{Text: line, Style: types.StyleNormal})
		}
		if g.Fatal {
			return append(out, e.die()...)
		}
		return out
	}

	e.State.CurrentRoom = target

	// A safety rope only covers one descent.
	if dir == types.Down && e.State.FlagSet("using_rope") {
		e.State.Flags["using_rope"] = 0
	}

	return append(preamble, e.describeRoom()...)
}

// pimpGate returns refusal output and true while the pimp blocks the stairs.
func (e *Engine) pimpGate() ([]types.OutputEvent, bool) {
	if e.State.FlagSet("pimp_paid") {
		return nil, false
	}
	if e.State.Score == 0 {
		if e.State.Money < 10 {
			return say("THE PIMP SAYS I CAN'T UNTIL I GET $1000"), true
		}
		e.State.Money -= 10
		e.State.Flags["pimp_paid"] = 1
		out := say("THE PIMP TAKES $1000 AND SAYS OK")
		return out, false
	}
	if !e.State.FlagSet("pimp_distracted") {
		return say("THE PIMP SAYS 'NO WAY!!!! LEAVE MY GIRL ALONE!"), true
	}
	return nil, false
}

// handleJump is only interesting on the window ledge.
func (e *Engine) handleJump() []types.OutputEvent {
	if e.State.CurrentRoom != 8 {
		return say("WHOOOPEEEEE!!!")
	}
	if e.State.FlagSet("using_rope") {
		e.State.Flags["using_rope"] = 0
		e.State.CurrentRoom = 4
		out := say("THE ROPE HOLDS! I RAPPEL DOWN TO THE STREET.")
		return append(out, e.describeRoom()...)
	}
	out := []types.OutputEvent{
		{Text: "AAAAAEEEEEIIIIIIII!!!!!!!!!", Style: types.StyleNormal},
		{Text: "SPLAAATTTTT!!!!!", Style: types.StyleDeath},
	}
	return append(out, e.die()...)
}

// handleTaxi hails a cab from a street corner.
func (e *Engine) handleTaxi() []types.OutputEvent {
	switch e.State.CurrentRoom {
	case 4, 11, 22:
	default:
		return say("HAIL ALL YOU WANT- NO TAXI COMES!")
	}
	e.mode = modeTaxi
	return []types.OutputEvent{
		{Text: "A TAXI PULLS UP AND SCREECHES TO A HALT!", Style: types.StyleNormal},
		{Text: "I GET IN THE BACK AND SIT DOWN.", Style: types.StyleNormal},
		{Text: "A SIGN SAYS 'WE SERVICE 3 DESTINATIONS. WHEN ASKED- PLEASE SPECIFY- DISCO.......CASINO....OR BAR.'", Style: types.StyleNormal},
		{Text: "THE DRIVER TURNS AND ASKS 'WHERE TO MAC??'", Style: types.StyleSystem},
	}
}

var taxiStops = map[string]int{
	"BAR":    4,
	"CASINO": 13,
	"DISCO":  22,
}

func (e *Engine) stepTaxi(input string) []types.OutputEvent {
	dest, ok := taxiStops[normalize(input)]
	if !ok {
		return sayStyled("THE DRIVER SAYS 'DISCO, CASINO, OR BAR- PICK ONE MAC!'", types.StyleSystem)
	}
	e.mode = modeNormal
	if e.State.Money < 1 {
		return say("THE DRIVER SEES MY EMPTY WALLET AND THROWS ME OUT!!")
	}
	e.State.Money--
	e.State.CurrentRoom = dest
	out := say("THE CABBIE TAKES $100 AND DRIVES LIKE A MANIAC!")
	return append(out, e.describeRoom()...)
}

func (e *Engine) handleScore() []types.OutputEvent {
	return say(fmt.Sprintf("YOUR SCORE IS %d OUT OF '3'", e.State.Score))
}

func (e *Engine) handleInventory() []types.OutputEvent {
	if len(e.State.Inventory) == 0 {
		return say("I'M CARRYING NOTHING!!")
	}
	out := []types.OutputEvent{{Text: "I'M CARRYING THE FOLLOWING:", Style: types.StyleNormal}}
	for _, id := range e.State.Inventory {
		out = append(out, types.OutputEvent{Text: "- " + e.objectName(id), Style: types.StyleList})
	}
	return out
}

func (e *Engine) handleHelp() []types.OutputEvent {
	lines := []string{
		"THE OBJECT OF THE GAME IS TO SCORE 3 TIMES. GOOD LUCK!",
		"COMMANDS ARE VERB-NOUN, LIKE 'TAKE NEWSPAPER' OR 'OPEN DESK'.",
		"DIRECTIONS: NORTH/SOUTH/EAST/WEST/UP/DOWN (OR N/S/E/W/U/D).",
		"USEFUL WORDS: LOOK, TAKE, DROP, OPEN, PUSH, BUY, USE, CLIMB,",
		"SEDUCE, MARRY, CALL, ANSWER, DANCE, JUMP, TV ON/OFF, WATER ON/OFF,",
		"PLAY SLOTS, PLAY 21, HAIL TAXI, SCORE, INVENTORY, SAVE, QUIT.",
	}
	out := make([]types.OutputEvent, 0, len(lines))
	for _, l := range lines {
		out = append(out, types.OutputEvent{Text: l, Style: types.StyleSystem})
	}
	return out
}
