package engine

import (
	"strings"

	"github.com/nmorales/sintown/types"
)

func (e *Engine) handleOpen(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("OPEN WHAT?")
	}
	id := e.noun(objectWord)
	switch id {
	case 8: // desk
		if e.State.CurrentRoom != 1 {
			break
		}
		if e.State.FlagSet("drawer_opened") {
			return say("IT'S ALREADY OPEN!")
		}
		e.State.Flags["drawer_opened"] = 1
		return say("OK")
	case 30: // disco door
		if e.State.CurrentRoom != 23 {
			break
		}
		if e.State.FlagSet("door_unlocked") {
			return say("IT'S OPEN!")
		}
		if !e.State.HasItem(64) {
			return say("A VOICE SAYS 'NO PASSCARD- NO ENTRY!!'")
		}
		e.State.Flags["door_unlocked"] = 1
		return multi(
			"I SHOW THE PASSCARD",
			"A VOICE SAYS 'WELCOME TO THE DISCO!' AND THE DOOR OPENS!",
		)
	case 35: // closet
		if e.State.CurrentRoom != 29 {
			break
		}
		if e.State.FlagSet("closet_opened") {
			return say("IT'S ALREADY OPEN!")
		}
		e.State.Flags["closet_opened"] = 1
		return say("OK")
	case 42: // cabinet
		if e.State.CurrentRoom != 27 {
			break
		}
		if !e.State.FlagSet("stool_used") {
			return say("I CAN'T REACH IT!!")
		}
		if e.State.FlagSet("cabinet_emptied") {
			return say("IT'S ALREADY OPEN!")
		}
		return say("OK- NOW TRY LOOKING AT IT!")
	case 46: // window
		return say("WON'T BUDGE")
	}
	return say("UMMM..........................HUH??")
}

func (e *Engine) handlePush(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("PUSH WHAT?")
	}
	id := e.noun(objectWord)
	switch id {
	case 14: // button
		switch e.State.CurrentRoom {
		case 3:
			e.mode = modePassword
			return sayStyled("A VOICE ASKS 'WHATS THE PASSWORD?' (ONE WORD)", types.StyleSystem)
		case 19:
			if !e.State.FlagSet("blonde_gone") {
				return say("THE BLONDE IS BLOCKING THE ELEVATOR!")
			}
			e.State.CurrentRoom = 25
			out := say("THE ELEVATOR DOOR OPENS AND I GET IN. UP WE GO!!")
			return append(out, e.describeRoom()...)
		case 25:
			e.State.CurrentRoom = 19
			out := say("DOWN WE GO....")
			return append(out, e.describeRoom()...)
		}
	case 44: // bushes
		if e.State.CurrentRoom == 15 && e.State.FlagSet("bushes_found") {
			e.State.CurrentRoom = 28
			out := say("I PUSH MY WAY THROUGH THE BUSHES......")
			return append(out, e.describeRoom()...)
		}
	case 46: // window
		if e.State.CurrentRoom == 8 {
			return e.handleGo("SOUTH")
		}
	case 49: // girl
		return say("SHE KICKS ME IN THE STOMACH AND LAUGHS!!")
	}
	return say("PUSHY CHUMP, EH???")
}

// stepPassword handles the one-word reply to the speakeasy voice.
func (e *Engine) stepPassword(input string) []types.OutputEvent {
	e.mode = modeNormal
	word := normalize(input)
	if len(word) >= 4 {
		word = word[:4]
	}
	if word == "BELL" {
		e.State.Flags["curtain_open"] = 1
		return say("THE CURTAIN PULLS BACK!!")
	}
	return sayStyled("WRONG!", types.StyleError)
}

func (e *Engine) handleClimb(objectWord string) []types.OutputEvent {
	id := e.noun(objectWord)
	switch id {
	case 77: // stool
		if e.State.ObjectHere(77) {
			e.State.Flags["stool_used"] = 1
			return say("OK")
		}
	case 44: // bushes
		return e.handlePush(objectWord)
	}
	return say("IT'S NOT ON THE FLOOR HERE!")
}

func (e *Engine) handleFill(objectWord string) []types.OutputEvent {
	if !e.State.HasItem(76) {
		return say("GET ME THE PITCHER SO I DON'T SPILL IT!")
	}
	if e.State.CurrentRoom != 27 || !e.State.FlagSet("water_on") {
		return say("NO WATER!!!")
	}
	e.State.Flags["pitcher_full"] = 1
	return say("OK")
}

func (e *Engine) handleBreak(objectWord string) []types.OutputEvent {
	id := e.noun(objectWord)
	if id == 46 && e.State.CurrentRoom == 8 {
		if !e.State.HasItem(55) {
			return say("NOT WITH MY BARE HANDS!")
		}
		out := say("CRAAASSSHHHH!!!! THE GLASS SHATTERS!")
		return append(out, e.handleGo("SOUTH")...)
	}
	return say("I CAN'T BREAK THAT")
}

func (e *Engine) handleCut(objectWord string) []types.OutputEvent {
	if !e.State.HasItem(66) {
		return say("I DON'T HAVE A KNIFE!")
	}
	if e.State.FlagSet("tied_to_bed") && e.State.CurrentRoom == 16 {
		e.State.Flags["tied_to_bed"] = 0
		return say("I DO AND IT WORKED! THANKS!")
	}
	return say("I CAN'T CUT THAT")
}

func (e *Engine) handleInflate(objectWord string) []types.OutputEvent {
	id := e.noun(objectWord)
	if id != 74 {
		return say("INFLATE WHAT????")
	}
	if !e.State.HasItem(74) && !e.State.ObjectHere(74) {
		return say("IT'S NOT HERE!!!!!")
	}
	switch e.State.Flag("doll_state") {
	case 1:
		return say("IT'S ALREADY INFLATED!")
	case 2:
		return say("THE DOLL IS GONE")
	}
	e.State.Flags["doll_state"] = 1
	return say("PSSSSST! PSSSSST! PSSSSST! SHE'S INFLATED!!")
}

func (e *Engine) handleUse(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("USE WHAT?")
	}
	id := e.noun(objectWord)
	switch id {
	case 69: // rubber
		if !e.State.HasItem(69) {
			return say("I DON'T HAVE IT!!")
		}
		e.State.Flags["wearing_rubber"] = 1
		return say("IT TICKLES!!!!")
	case 81: // rope
		if !e.State.HasItem(81) {
			return say("I DON'T HAVE IT!!")
		}
		if e.State.CurrentRoom != 7 && e.State.CurrentRoom != 10 {
			return say("NOTHING TO TIE IT TO HERE!")
		}
		e.State.Flags["using_rope"] = 1
		return say("OK")
	case 64: // passcard
		if e.State.CurrentRoom == 23 {
			return e.handleOpen("DOOR")
		}
	case 66: // knife
		return e.handleCut(objectWord)
	case 76: // pitcher
		if !e.State.HasItem(76) {
			return say("I DON'T HAVE IT!!")
		}
		if !e.State.FlagSet("pitcher_full") {
			return say("IT'S EMPTY!")
		}
		if e.State.CurrentRoom == 28 && e.State.FlagSet("seeds_planted") {
			e.State.Flags["pitcher_full"] = 0
			e.State.AddToRoom(28, 57)
			return multi(
				"I POUR THE WATER ON THE SEEDS.....",
				"AN ENORMOUS GROUP OF FLOWERS SPROUT UP IN SECONDS!!!!!",
			)
		}
		e.State.Flags["pitcher_full"] = 0
		return say("THE WATER SPLASHES ON THE GROUND.")
	}
	return say("I DON'T KNOW HOW TO USE THAT!")
}

func (e *Engine) handleWater(objectWord string) []types.OutputEvent {
	if e.State.CurrentRoom != 27 {
		return say("FIND A WORKING SINK")
	}
	switch strings.ToUpper(strings.TrimSpace(objectWord)) {
	case "ON":
		e.State.Flags["water_on"] = 1
		return say("OK")
	case "OFF":
		e.State.Flags["water_on"] = 0
		return say("OK")
	}
	return say("WATER ON OR OFF?")
}
