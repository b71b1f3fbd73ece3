package engine

import (
	"fmt"

	"github.com/nmorales/sintown/types"
)

func (e *Engine) handleCall(number string) []types.OutputEvent {
	if e.State.CurrentRoom != 20 {
		return say("THERE'S NO PHONE HERE")
	}
	switch number {
	case "555-6969":
		e.mode = modePhoneQA
		e.phoneStep = 0
		e.State.Phone = types.PhoneState{}
		out := say("A VOICE SAYS 'HELLO, PLEASE ANSWER THE QUESTIONS WITH ONE WORD ANSWERS!")
		return append(out, sayStyled("WHAT'S YOUR FAVORITE GIRLS NAME?", types.StyleSystem)...)
	case "555-0987":
		if e.State.Flag("girl_points") == 5 {
			e.State.Flags["girl_points"] = 6
			e.State.AddToRoom(16, 72)
			return say("A VOICE ANSWERS AND SAYS 'WINE FOR THE NERVOUS NEWLYWEDS!! COMING RIGHT UP!!!!")
		}
		return say("SOMEBODY ANSWERS AND HANGS UP!!!!")
	case "555-0439":
		return say("HI THERE!!! THIS IS CHUCK (THE AUTHOR OF THIS ABSURD GAME). IF YOU'RE A VOLUPTOUS BLONDE WHO'S LOOKING FOR A GOOD TIME THEN CALL ME IMMEDIATELY!!!!")
	}
	return say("NOBODY ANSWERS")
}

// stepPhoneQA collects the five answers the 555-6969 voice asks for.
// They come back at the penthouse phone.
func (e *Engine) stepPhoneQA(input string) []types.OutputEvent {
	answer := normalize(input)
	switch e.phoneStep {
	case 0:
		e.State.Phone.Name = answer
		e.phoneStep = 1
		return sayStyled("NAME A NICE PART OF HER ANATOMY.", types.StyleSystem)
	case 1:
		e.State.Phone.HerPart = answer
		e.phoneStep = 2
		return sayStyled("WHAT DO YOU LIKE TO DO WITH HER?", types.StyleSystem)
	case 2:
		e.State.Phone.Activity = answer
		e.phoneStep = 3
		return sayStyled("AND THE BEST PART OF YOUR BODY?!?", types.StyleSystem)
	case 3:
		e.State.Phone.YourPart = answer
		e.phoneStep = 4
		return sayStyled("FINALLY, YOUR FAVORITE OBJECT?", types.StyleSystem)
	}
	e.State.Phone.Object = answer
	e.State.Phone.Ringing = true
	e.mode = modeNormal
	e.phoneStep = 0
	return say("HE HANGS UP!!!!!")
}

func (e *Engine) handleAnswer() []types.OutputEvent {
	if !e.State.ObjectHere(34) {
		return say("NO PHONE HERE")
	}
	if e.State.CurrentRoom != 30 || !e.State.Phone.Ringing {
		return say("IT'S NOT RINGING!")
	}
	p := e.State.Phone
	e.State.Phone.Ringing = false
	return multi(
		fmt.Sprintf("A GIRL SAYS 'HI HONEY! THIS IS %s.", p.Name),
		fmt.Sprintf("DEAR, WHY DON'T YOU FORGET THIS GAME AND %s WITH ME???", p.Activity),
		fmt.Sprintf("AFTER ALL, YOUR %s HAS ALWAYS TURNED ME ON!!!!'", p.YourPart),
		fmt.Sprintf("SO BRING A %s AND COME", p.Object),
		fmt.Sprintf("PLAY WITH MY %s !!!!", p.HerPart),
		"SHE HANGS UP!!",
	)
}
