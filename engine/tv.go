package engine

import (
	"strings"

	"github.com/nmorales/sintown/types"
)

// tvChannels holds what's showing, one entry per channel. Index 4 is the
// cable movie the pimp can't look away from.
var tvChannels = [][]string{
	{
		"A MASKED MAN RUNS ACROSS THE SCREEN.",
		"JUMPING UP HE LANDS ON HIS HORSE AND YELLS 'HI-HO PLUTONIUM!!!!!",
		"HE RIDES OFF INTO A GREEN SKY.......",
		"NOTHING LIKE A GOOD OLD WESTERN TO PASS THE TIME.......",
	},
	{
		"IT'S 'THE PRICE IS FRIGHT!!!!!!",
		"'AND NOW FOR OUR FAVORITE HOST..........HAUNTY MAULE!!!!!!!!!!",
		"HAUNTY JUMPS UP ON THE STAGE- HE ASKS 'AND WHO'S OUR FIRST LUCKY CONTESTANT?'",
		"THE ANNOUNCER POINTS OUT A LADY...THE CROWD SCREAMS IN ECSTACY AS SHE'S DRAGGED TO THE STAGE............",
	},
	{
		"CAPTAIN JERK LOOKS AT THE DOOR FROM WHICH BEHIND THE NOISE IS COMING.",
		"THROWING OPEN THE DOOR- HIS FACE TURNS A DEEP RED!!!!!!!!!",
		"HE SAYS 'SCOTTY! WHAT ARE YOU DOING?? SCOTTY REPLIES 'BUT CAPTAIN!?!? MY GIRL AND I- WE'RE ENGAGED!!!!",
		"JERK COMMANDS 'WELL THEN DISENGAGE!'....AS THE STARSHIP THRUSTED FORWARD........PENETRATING DEEPER INTO SPACE..........",
	},
	{
		"MR. RODJERKS JUMPS UP WITH HIS BIG SNEAKERS AND SAYS IN HIS CHEERY VOICE..",
		"GUESS WHAT- BOYS AND GIRLS?????? TODAY WE'RE GOING TO LEARN ABOUT SUCKERS!!",
		"SUSIE...SEE THE LOLLY-POP???? CAN YOU STICK IT IN YOUR MOUTH??? THAT'S RIGHT!",
		"THAT'S A NICE LOLLY-POP....NICE AND HARD RIGHT?!?!?!?.................",
	},
	{
		"CABLE TV!!!!!!!!",
		"THERE SHOWING THE KINKIEST X-RATED MOVIES!!!!!!! THIS ONE'S TITLED 'DEEP NOSTRIL'.",
		"THE PIMP LIKES THIS ONE!!!!!!",
		"HE'S ENGROSSED IN THE ACTION HE SEES!!!! SEEMS DISTRACTED.................",
	},
	{
		"IT'S HAPPY DAZE!!!!!!!!",
		"RICHIE TURNS TO GONZY AND SAYS 'BUT YOU ALWAYS HAD IT MADE WITH THE GIRLS.......WHAT'S YOUR SECRET???'",
		"THE GONZ SAYS 'AAYYYYYY....I DIDN'T GET MY NAME FOR NUTHIN!'",
		"REACHING INTO HIS POCKET HE PULLS OUT A FUNNY LOOKING CIGARETTE............",
	},
	{
		"MRS. SMITH AND MRS. JONES ARE COMPARING DETERGENTS.......",
		"SEE THIS BLOUSE? WE'RE MAKING IT THIS DIRTY TO SEE WHO'S WORKS BETTER.(A DOG IS THROWN ONTO THE BLOUSE. IN HIS EXCITEMENT HE DEFICATES ALL OVER IT......)",
		"DO YOU THINK YOURS WILL WORK- MRS. SMITH?? (THE CAMERA PANS TO MRS. SMITH. SHE THROWS UP.)",
		"MRS JONES????? (A SHOT SHOWS HER TAKING THE DOG AND...........)",
	},
	{
		"IT'S THE SUPER BOWL!!!!",
		"THE CENTER SNAPS THE BALL! THE QUARTERBACK FADES BACK!!",
		"IT'S A BOMB!!!!!!! THE BALL SAILS THROUGH THE AIR....THE RECIEVER RUNS TO GET IT................",
		"IT EXPLODES IN HIS HANDS!!!! WHAT A BOMB!!!! TELL ME HOWARD- HAVE YOU EVER SEEN THIS BEFORE???",
	},
}

func (e *Engine) handleTV(objectWord string) []types.OutputEvent {
	if e.State.CurrentRoom != 5 {
		return say("NO TV!")
	}
	if !e.State.HasItem(84) {
		return say("I NEED THE REMOTE CONTROL UNIT!")
	}
	switch strings.ToUpper(strings.TrimSpace(objectWord)) {
	case "OFF":
		e.State.Flags["tv_on"] = 0
		e.State.Flags["pimp_distracted"] = 0
		return say("OK")
	case "ON":
		if e.State.Score == 0 {
			return say("THE DUDE WON'T LET ME!!")
		}
		e.State.Flags["tv_on"] = 1
		return e.tvChannel()
	}
	return say("TV ON OR OFF?")
}

// tvChannel picks a random channel and shows it. The cable channel
// leaves the pimp too engrossed to guard the stairs; anything else
// gets his attention back.
func (e *Engine) tvChannel() []types.OutputEvent {
	ch := e.RNG.Intn(len(tvChannels))
	if ch == 4 {
		e.State.Flags["pimp_distracted"] = 1
	} else {
		e.State.Flags["pimp_distracted"] = 0
	}
	return multi(tvChannels[ch]...)
}
