package engine

import (
	"fmt"

	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

func (e *Engine) handleSeduce(objectWord string) []types.OutputEvent {
	if normalize(objectWord) == "YOU" {
		return say("NOT TONIGHT- I HAVE A HEADACHE!")
	}
	id := e.noun(objectWord)
	if id == 0 {
		return say("I DON'T SEE THAT HERE!!")
	}
	switch id {
	case 17: // hooker
		if e.State.CurrentRoom != 9 {
			break
		}
		if e.State.FlagSet("hooker_done") {
			return say("SHE CAN'T TAKE IT ANY MORE!!!!!")
		}
		if !e.State.FlagSet("wearing_rubber") {
			out := sayStyled("OH NO!!!! I'VE GOT THE DREADED ATOMIC CLAP!!! I'M DEAD!!", types.StyleDeath)
			return append(out, e.die()...)
		}
		e.State.Score = 1
		e.State.Flags["hooker_done"] = 1
		return multi(
			"SHE SAYS 'ME FIRST!!!!!",
			"SHE TAKES MY THROBBING TOOL INTO HER MOUTH!!!! SHE STARTS GOING TO WORK......FEELS SO GOOD!!!!!!",
			"THEN SHE SMILES AS SHE BITES IT OFF! SHE SAYS 'NO ORAL SEX IN THIS GAME!!!!!! SUFFER!!!!!!!'",
		)
	case 74: // doll
		switch e.State.Flag("doll_state") {
		case 0:
			return say("INFLATE IT FIRST- STUPID!!!")
		case 2:
			return say("THE DOLL IS GONE")
		}
		e.State.Flags["doll_state"] = 2
		e.State.RemoveFromInventory(74)
		e.State.RemoveFromRoom(e.State.CurrentRoom, 74)
		return multi(
			"OH BOY!!!!!- IT'S GOT 3 SPOTS TO TRY!!!",
			"I THRUST INTO THE DOLL- KINKY....EH???",
			"I START TO INCREASE MY TEMPO...FASTER AND FASTER I GO!!!!",
			"SUDDENLY THERE'S A FLATULENT NOISE AND THE DOLL BECOMES A POPPED BALLOON SOARING AROUND THE ROOM! IT FLIES OUT OF THE ROOM AND DISAPPEARS!",
		)
	case 49: // girl
		return e.seduceGirl()
	case 32: // waitress
		return say("SHE KICKS ME IN THE GROIN AND SAYS 'WISE UP- BUSTER!!'")
	case 25: // blonde
		return say("SHE SAYS 'I'M WORKING! LEAVE ME ALONE!'")
	case 16: // pimp
		return say("HE SAYS 'YOU'LL NEVER HAVE ENOUGH MONEY FOR ME- FOOL!!!' I GUESS HE'S GAY!")
	case 27: // bum
		return say("TO DO THAT I NEED VASELINE!!")
	case 15: // bartender
		out := sayStyled("HE JUMPS OVER THE BAR AND KILLS ME!!", types.StyleDeath)
		return append(out, e.die()...)
	case 13: // businessman
		return say("NO WAY!!! YOU'RE WIERD!!")
	}
	return say("PERVERT!")
}

func (e *Engine) seduceGirl() []types.OutputEvent {
	switch {
	case e.State.CurrentRoom == 26:
		if !e.State.FlagSet("jacuzzi_apple") {
			return say("NOT YET, BUT MAYBE LATER................")
		}
		e.State.Score = 3
		e.won = true
		out := multi(
			"SHE HOPS OUT OF THE TUB- THE STEAM RISING FROM HER SKIN.......HER BODY IS THE BEST LOOKING I'VE EVER SEEN!!!",
			"THEN SHE COMES UP TO ME AND GIVES THE BEST TIME OF MY LIFE!!!",
			"WELL......I GUESS THAT'S IT! AS YOUR PUPPET IN THIS GAME I THANK YOU FOR THE PLEASURE YOU HAVE BROUGHT ME.... SO LONG......I'VE GOT TO GET BACK TO MY NEW GIRL HERE! KEEP IT UP!",
		)
		out = append(out, types.OutputEvent{
			Text:  fmt.Sprintf("YOUR SCORE IS %d OUT OF '3'", e.State.Score),
			Style: types.StyleWin,
		})
		return out
	case e.State.CurrentRoom == 16 && e.State.Flag("girl_points") >= 5:
		if e.State.Flag("girl_points") != 6 {
			return say("SHE SAYS 'GET ME WINE!!! I'M NERVOUS!!'")
		}
		e.State.Score = 2
		e.State.Flags["tied_to_bed"] = 1
		e.State.AddToRoom(16, 81)
		return multi(
			"SHE SAYS 'LAY DOWN HONEY- LET ME GIVE YOU A SPECIAL SUPRISE!!",
			"I LAY DOWN AND SHE SAYS 'OK- NOW CLOSE YOUR EYES'. I CLOSE MY EYES AND SHE STARTS TO GO TO WORK ON ME.........",
			"I'M REALLY ENJOYING MYSELF WHEN SUDDENLY SHE TIES ME TO THE BED!!!! THEN SHE SAYS 'SO LONG- TURKEY!' AND RUNS OUT OF THE ROOM!!!",
			"WELL- THE SCORE IS NOW '2' OUT OF A POSSIBLE '3'.........BUT I'M ALSO TIED TO THE BED AND CAN'T MOVE.",
		)
	}
	return say("PERVERT!")
}

func (e *Engine) handleMarry(objectWord string) []types.OutputEvent {
	id := e.noun(objectWord)
	if id == 0 {
		return say("MARRY WHO?")
	}
	if id != 49 {
		return say("NO WAY, WIERDO!!")
	}
	if e.State.CurrentRoom != 12 {
		return say("NOT POSSIBLE RIGHT NOW")
	}
	if e.State.Flag("girl_points") != 4 {
		return say("NO GIRL!!")
	}
	if e.State.Money < 30 {
		out := say("THE GIRL SAYS 'BUT YOU'LL NEED $2000 FOR THE HONEYMOON SUITE!")
		if e.State.Money < 20 {
			out = append(out, say("THE PREACHER SAYS 'I'LL NEED $1000 ALSO!'")...)
		}
		return out
	}
	e.State.Money -= 30
	e.State.Flags["girl_points"] = 5
	e.State.RemoveFromRoom(12, 49)
	e.State.AddToRoom(16, 49)
	return multi(
		"OK",
		"WHY AM I DOING THIS!?!?!",
		"THE PREACHER TAKES $1000 AND WINKS!",
		"THE GIRL GRABS $2000 AND SAYS 'MEET ME AT THE HONEYMOON SUITE! I'VE GOT CONNECTIONS TO GET A ROOM THERE!!",
	)
}

func (e *Engine) handleBuy(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("BUY WHAT?")
	}
	if e.State.Money < 1 {
		return say("NO MONEY!!!")
	}
	id := e.noun(objectWord)
	if id == 0 {
		return say("I DON'T SEE THAT HERE!!")
	}
	switch {
	case (id == 52 || id == 53) && e.State.CurrentRoom == 3:
		flag := "whiskey_bought"
		if id == 53 {
			flag = "beer_bought"
		}
		if e.State.FlagSet(flag) {
			return say("SORRY...TEMPORARILY SOLD OUT")
		}
		e.State.Flags[flag] = 1
		e.State.Money--
		e.State.AddToRoom(3, id)
		return say("I GIVE THE BARTENDER $100 AND HE PLACES IT ON THE BAR.")

	case id == 72 && e.State.CurrentRoom == 21:
		if e.State.FlagSet("wine_bought") {
			return say("SORRY....ALL OUT!")
		}
		e.State.Flags["wine_bought"] = 1
		e.State.Money--
		e.State.AddToRoom(21, 72)
		return []types.OutputEvent{
			{Text: "THE WAITRESS TAKES $100 AND SAYS SHE'LL RETURN", Style: types.StyleNormal},
			{Text: "POOR SERVICE!", Style: types.StyleNormal, DelayMs: 2000},
		}

	case id == 69 && e.State.CurrentRoom == 24:
		if e.State.Rubber.Bought {
			return say("ALL OUT!!")
		}
		if len(e.State.Inventory) >= state.MaxCarry {
			return say("I'M CARRYING TOO MUCH!!!")
		}
		e.mode = modeRubberQA
		e.rubberStep = 0
		out := say("THE MAN LEANS OVER THE COUNTER AND WHISPERS:")
		return append(out, sayStyled("WHAT COLOR?", types.StyleSystem)...)

	case id == 68 && e.State.ObjectHere(68):
		if len(e.State.Inventory) >= state.MaxCarry {
			return say("I'M CARRYING TOO MUCH!!!")
		}
		e.State.Money--
		e.State.RemoveFromRoom(e.State.CurrentRoom, 68)
		e.State.Inventory = append(e.State.Inventory, 68)
		return say("HE TAKES $100 AND GIVES ME THE MAGAZINE")

	case id == 61 && e.State.CurrentRoom == 24:
		if e.State.ObjectHere(61) {
			if len(e.State.Inventory) >= state.MaxCarry {
				return say("I'M CARRYING TOO MUCH!!!")
			}
			e.State.Money--
			e.State.RemoveFromRoom(24, 61)
			e.State.Inventory = append(e.State.Inventory, 61)
			return say("HE TAKES $100 AND SLIDES THE BOTTLE ACROSS THE COUNTER.")
		}
	}
	return say("NOT YET, BUT MAYBE LATER................")
}

// stepRubberQA walks the pharmacist's four questions.
func (e *Engine) stepRubberQA(input string) []types.OutputEvent {
	answer := normalize(input)
	switch e.rubberStep {
	case 0:
		e.State.Rubber.Color = answer
		e.rubberStep = 1
		return sayStyled("AND FOR A FLAVOR??", types.StyleSystem)
	case 1:
		e.State.Rubber.Flavor = answer
		e.rubberStep = 2
		return sayStyled("LUBRICATED OR NOT (Y/N)??", types.StyleSystem)
	case 2:
		e.State.Rubber.Lubricated = answer == "Y"
		e.rubberStep = 3
		return sayStyled("RIBBED (Y/N)?", types.StyleSystem)
	}
	e.State.Rubber.Ribbed = answer == "Y"
	e.mode = modeNormal
	e.rubberStep = 0
	if len(e.State.Inventory) >= state.MaxCarry {
		return say("I'M CARRYING TOO MUCH!!!")
	}
	e.State.Rubber.Bought = true
	e.State.Money--
	e.State.Inventory = append(e.State.Inventory, 69)

	lub := "NON-LUBRICATED"
	if e.State.Rubber.Lubricated {
		lub = "LUBRICATED"
	}
	rib := "SMOOTH"
	if e.State.Rubber.Ribbed {
		rib = "RIBBED"
	}
	return multi(
		fmt.Sprintf("HE YELLS- THIS PERVERT JUST BOUGHT A %s, %s-FLAVORED", e.State.Rubber.Color, e.State.Rubber.Flavor),
		fmt.Sprintf("%s, %s RUBBER!!!!!", lub, rib),
		"A LADY WALKS BY AND LOOKS AT ME IN DISGUST!!!!",
	)
}

// talkLines are one-liners for the town's characters.
var talkLines = map[int]string{
	13: "HE SAYS 'I SURE AM THIRSTY!!'",
	15: "HE SAYS 'WHAT'LL IT BE, MAC?'",
	16: "HE SAYS 'BEAT IT- UNLESS YOU GOT MONEY!!'",
	17: "SHE SAYS 'HI THERE, HANDSOME!!'",
	19: "HE SAYS 'COME BACK WHEN YOU'VE FOUND A BRIDE!!'",
	25: "SHE SAYS 'I'M BUSY!! BUZZ OFF!'",
	27: "HE MUMBLES SOMETHING ABOUT WINE.....",
	32: "SHE SAYS 'ORDER SOMETHING OR SCRAM!!'",
	41: "HE SAYS 'PLAY 21 OR MOVE ALONG!'",
	49: "SHE GIGGLES!",
}

func (e *Engine) handleTalk(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return say("TALK TO WHOM?")
	}
	id := e.noun(objectWord)
	if id == 0 || !e.State.ObjectHere(id) {
		return say("THEY'RE NOT HERE!!")
	}
	if line, ok := talkLines[id]; ok {
		return say(line)
	}
	return say("NO ANSWER!")
}

// handlePay covers the one debt in town: the pimp's $1000 toll on the
// hotel stairs. "PIMP" is accepted even though his display name isn't.
func (e *Engine) handlePay(objectWord string) []types.OutputEvent {
	word := normalize(objectWord)
	id := e.noun(objectWord)
	if len(word) >= 4 && word[:4] == "PIMP" {
		id = 16
	}
	if id != 16 {
		return say("I DON'T OWE THEM ANYTHING!")
	}
	if e.State.CurrentRoom != 5 {
		return say("HE'S NOT HERE!!")
	}
	if e.State.FlagSet("pimp_paid") {
		return say("I ALREADY PAID HIM!")
	}
	if e.State.Money < 10 {
		return say("THE PIMP SAYS I CAN'T UNTIL I GET $1000")
	}
	e.State.Money -= 10
	e.State.Flags["pimp_paid"] = 1
	return say("THE PIMP TAKES $1000 AND SAYS OK")
}
