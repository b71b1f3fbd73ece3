package engine

import (
	"fmt"

	"github.com/nmorales/sintown/engine/rules"
	"github.com/nmorales/sintown/types"
)

// Static look texts. Objects with state-dependent looks are handled in
// lookSpecial instead.
var lookMessages = map[int]string{
	8:  "IT'S DRAWER IS SHUT",
	9:  "DEAD COCKROACHES....",
	11: "THERE'S A PERVERT LOOKING BACK AT ME!!!",
	12: "HASN'T BEEN FLUSHED IN AGES! STINKS!!!!",
	13: "HE LOOKS LIKE A WHISKEY DRINKER TO ME!!",
	14: "SAYS PUSH",
	15: "HE'S WAITING FOR ME TO BUY SOMETHING!",
	16: "HE'S WEARING A BUTTON PROCLAIMING- SUPPORT YOUR LOCAL PIMP, GIMME $2000!!!",
	21: "PLAYING THEM MIGHT BE MORE FUN....",
	22: "A FRESH DECK, STILL IN THE WRAPPER.",
	23: "IT'S ON THE EAST WALL",
	26: "IT'S A BED. WHAT DID YOU EXPECT?",
	27: "HE GRUMBLES- I'LL TELL YOU A STORY FOR A BOTTLE OF WINE.....",
	32: "SHE IGNORES YOU!",
	33: "A TABLE. STICKY WITH SPILLED DRINKS.",
	36: "A SIGN SAYS 'WATER ON OR OFF TO OPERATE'",
	41: "HE SHUFFLES THE DECK AND WAITS.",
	44: "ENTERING THEM WOULD BE KINKY!!",
	46: "IT LOOKS OUT OVER THE STREET. LONG WAY DOWN!",
	48: "IT SAYS 'HAIL TAXI HERE'",
	61: "THE LABEL ON THE BOTTLE SAYS 'WANT TO DRIVE SOMEONE CRAZY WITH LUST?? TRY THIS!!!!",
	65: "MAYBE I SHOULD LISTEN....",
}

// handleLook shows the room, or an object's description plus anything
// the look uncovers.
func (e *Engine) handleLook(objectWord string) []types.OutputEvent {
	if objectWord == "" {
		return e.describeRoom()
	}

	id := e.noun(objectWord)
	if id == 0 {
		return say("I DON'T SEE THAT HERE!!")
	}
	if !e.State.ObjectHere(id) && !e.State.HasItem(id) {
		return say("IT'S NOT HERE!!!!!")
	}

	var out []types.OutputEvent
	if special, ok := e.lookSpecial(id); ok {
		out = special
	} else if msg, ok := lookMessages[id]; ok {
		out = say(msg)
	} else if def, ok := e.Defs.Objects[id]; ok && def.Look != "" {
		out = say(def.Look)
	}

	// Hidden-object discoveries ride on LOOK.
	if effs, ok := rules.Find(e.State, "LOOK", id); ok {
		out = append(out, e.apply(effs)...)
	}

	if len(out) == 0 {
		return say("I SEE NOTHING SPECIAL")
	}
	return out
}

// lookSpecial covers objects whose description depends on game state.
func (e *Engine) lookSpecial(id int) ([]types.OutputEvent, bool) {
	switch id {
	case 10: // graffiti
		lines := []string{
			"AT MY APPLE IS WHERE I SIT,",
			"WHEN I FEEL LIKE FONDLING IT'S BITS!",
			"",
			"COMPUTER FREAKS PEEK BEFORE THEY POKE",
			"I'D LIKE TO NIBBLE HER FLOPPIES!",
			"",
			"ASCII, AND YE SHALL RECEIVE",
			"",
			"THE PASSWORD IS:",
			"BELLYBUTTON",
		}
		return styledLines(lines, types.StyleDesc), true

	case 17: // hooker
		return multi(
			"OH NO!!!!! I PAID FOR THIS?!?!?",
			"THIS BEAST IS REALLY UGLY!!!!",
			"JEEZZZZ.....I HOPE I DON'T GET THE CLAP FROM THIS HOOKER.....................",
			"WELL...SHE SEEMS TO BE ANNOYED THAT I HAVEN'T JUMPED ON HER YET....GO TO IT STUD!!!!!",
		), true

	case 18: // billboard
		lines := []string{
			"FOR THOSE WHO DESIRE THE BEST:",
			"ANNOUNCING",
			"THE MOST EXCLUSIVE,",
			"THE EXCITING,",
			"THE HOTTEST SPOT IN TOWN,",
			"SWINGING SINGLE'S DISCO",
		}
		return styledLines(lines, types.StyleDesc), true

	case 20: // TV
		if !e.State.FlagSet("tv_on") {
			return say("ONLY IF YOU TURN IT ON! SAY 'TV ON'"), true
		}
		return e.tvChannel(), true

	case 25: // blonde
		return multi(
			"SHE'S WEARING THE TIGHTEST JEANS!",
			"WOW.......WHAT A BODY!!!!! 36-24-35!! THIS GIRLS DERRIERE IS SENSATIONAL!!",
			"AND THE SHIRT? SEE THROUGH- AND WHAT I SEE I LIKE!",
			"AS MY EYES RELUCTANTLY ROAM FROM HER BODY I SEE BRIGHT BLUE EYES- AND A SMILE THAT DAZZLES ME. I THINK SHE LIKES ME!",
		), true

	case 28: // peephole
		return multi(
			"HMMMM..... THIS IS A PEEPING TOMS PARADISE!!!!",
			"ACROSS THE WAY IS ANOTHER HOTEL. AHAH! THE CURTAINS ARE OPEN AT ONE WINDOW!",
			"THE BATHROOM DOOR OPENS AND A GIRL WALKS OUT. HOLY COW! HER BOOBS ARE HUGE- AND LOOK AT THE WAY THEY SWAY AS SHE STRIDES ACROSS THE ROOM!",
			"NOW SHE'S TAKING A LARGE SAUSAGE SHAPED OBJECT AND LOOKING AT IT LONGINGLY! DAMN! SHE SHUTS THE CURTAIN!",
		), true

	case 30: // disco door
		if e.State.FlagSet("door_unlocked") {
			return say("IT'S UNLOCKED"), true
		}
		return say("A SIGN SAYS 'ENTRY BY SHOWING PASSCARD- CLUB MEMBERS AND THEIR GUESTS ONLY!"), true

	case 34: // telephone
		if e.State.CurrentRoom == 20 {
			return say("A NUMBER IS THERE- 'CALL 555-6969 FOR A GOOD TIME!'"), true
		}
		return say("IT LOOKS LIKE A TELEPHONE!"), true

	case 35: // closet
		if e.State.FlagSet("closet_opened") {
			return say("IT'S OPEN"), true
		}
		return say("IT'S CLOSED"), true

	case 42: // cabinet
		if !e.State.FlagSet("stool_used") {
			return say("IT'S TOO HIGH!"), true
		}
		return nil, false // discovery rule carries the text

	case 47: // plant
		if e.State.FlagSet("bushes_found") {
			return say("IT'S A NICE PLANT."), true
		}
		return nil, false // first look fires the bushes discovery

	case 49: // girl
		return e.lookGirl(), true

	case 50: // newspaper
		return multi(
			"THE NEWS!!!",
			"TODAY THE PRIME RATE WAS RAISED ONCE AGAIN...TO 257%! THIS DOES NOT COME NEAR THE RECORD SET IN 1996- WHEN IT BROKE THE 1000% MARK.........................",
			"THE BIRTH RATE HAS TAKEN A DRAMATIC FALL....THIS IS DUE TO THE INCREASED USAGE OF COMPUTERS AS SEXUAL PARTNERS..",
			"HOWEVER....RAPES OF INNOCENT PEOPLE ARE ON THE INCREASE! AND WHO IS THE RAPIST?? COMPUTERIZED BANKING MACHINES LEAD THE LIST....FOLLOWED BY HOME COMPUTERS.....",
		), true

	case 56: // garbage
		if e.State.FlagSet("dumpster_checked") {
			return say("JUST TRASH"), true
		}
		return nil, false

	case 58: // apple core
		if e.State.FlagSet("core_checked") {
			return say("JUST A CORE"), true
		}
		return nil, false

	case 68: // magazine
		return multi(
			"HMMMMM..... AN INTERESTING MAGAZINE WITH A NICE CENTERFOLD!",
			"THE FEATURE ARTICLE IS ABOUT HOW TO PICK UP AN INNOCENT GIRL AT A DISCO.",
			"IT SAYS- 'SHOWER HER WITH PRESENTS. DANCING WON'T HURT EITHER.",
			"AND WINE IS ALWAYS GOOD TO GET THINGS MOVING!'",
		), true

	case 69: // rubber
		return say(e.describeRubber()), true

	case 73: // wallet
		return say(fmt.Sprintf("IT CONTAINS $%d00", e.State.Money)), true

	case 74: // doll
		switch e.State.Flag("doll_state") {
		case 1:
			return say("IT'S INFLATED"), true
		case 2:
			return say("THE DOLL IS GONE"), true
		}
		return say("IT'S ROLLED UP IN A LITTLE BALL!"), true

	case 76: // pitcher
		if e.State.FlagSet("pitcher_full") {
			return say("IT'S FULL"), true
		}
		return say("IT'S EMPTY"), true
	}
	return nil, false
}

func (e *Engine) lookGirl() []types.OutputEvent {
	if e.State.CurrentRoom == 26 {
		return multi(
			"WHAT A BEAUTIFUL FACE!!! SHE'S LEANING BACK IN THE JACUZZI WITH HER EYES CLOSED AND SEEMS EXTREMELY RELAXED.",
			"THE WATER IS BUBBLING UP AROUND HER....",
			"A '10'!! SHE'S SO BEAUTIFUL.............A GUY REALLY COULD FALL IN LOVE WITH A GIRL LIKE THIS.",
			"I PRESUME HER NAME IS 'EVE'....AT LEAST THATS WHAT THE TOWEL NEXT TO HER HAS EMBROIDERED ON IT.",
		)
	}
	if e.State.Flag("girl_points") > 3 {
		return say("SHE SLAPS ME AND YELLS 'PERVERT!!!!!'")
	}
	return multi(
		"CUTE AND INNOCENT! JUST THE WAY I LIKE MY WOMEN.",
		"OH- THIS GIRL IS GREAT! SHE HAS A BEAUTIFUL CALIFORNIA TAN....AND PERT LITTLE BREASTS...A TRIM WAIST......... AND WELL ROUNDED HIPS!!",
		"I DREAM ABOUT GETTING THIS NICE A GIRL.",
	)
}

func (e *Engine) describeRubber() string {
	r := e.State.Rubber
	if !r.Bought {
		return "IT'S A RUBBER."
	}
	lub := "NON-LUBRICATED"
	if r.Lubricated {
		lub = "LUBRICATED"
	}
	rib := "SMOOTH"
	if r.Ribbed {
		rib = "RIBBED"
	}
	return fmt.Sprintf("IT'S %s, %s-FLAVORED, %s, AND %s", r.Color, r.Flavor, lub, rib)
}

func multi(lines ...string) []types.OutputEvent {
	out := make([]types.OutputEvent, 0, len(lines))
	for _, l := range lines {
		out = append(out, types.OutputEvent{Text: l, Style: types.StyleNormal})
	}
	return out
}

func styledLines(lines []string, style types.Style) []types.OutputEvent {
	out := make([]types.OutputEvent, 0, len(lines))
	for _, l := range lines {
		out = append(out, types.OutputEvent{Text: l, Style: style})
	}
	return out
}
