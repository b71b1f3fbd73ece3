package rules

import (
	"github.com/nmorales/sintown/engine/effects"
	"github.com/nmorales/sintown/types"
)

// An EffReveal with Room 0 reveals into the player's current room.

// Table is the master rule table: discoveries fired by LOOK and gift
// reactions fired by DROP. Order matters; the first match wins.
var Table = []Rule{
	// --- Discoveries -----------------------------------------------------

	// The desk drawer hides a newspaper, but only once it has been opened.
	{
		Verb: "LOOK", Object: 8, Room: 1,
		If:   []Cond{{Flag: "drawer_opened", Val: 1}},
		Once: "drawer_examined",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 50},
		},
	},

	// A wedding ring behind the washbasin.
	{
		Verb: "LOOK", Object: 9, Room: 2,
		Once: "basin_examined",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 51},
		},
	},

	// The lobby ashtray holds the disco passcard.
	{
		Verb: "LOOK", Object: 24,
		Once: "ashtray_examined",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 64},
		},
	},

	// The pharmacy display rack stocks the magazine.
	{
		Verb: "LOOK", Object: 29, Room: 24,
		Once: "magazine_found",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 68},
		},
	},

	// The kitchen cabinet holds a pitcher, reachable only from the stool.
	{
		Verb: "LOOK", Object: 42, Room: 27,
		If:   []Cond{{Flag: "stool_used", Val: 1}},
		Once: "cabinet_emptied",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 76},
		},
	},

	// An apple grows on the garden tree.
	{
		Verb: "LOOK", Object: 45, Room: 28,
		Once: "apple_found",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 75},
		},
	},

	// Garbage hides an apple core; the core hides seeds.
	{
		Verb: "LOOK", Object: 56, Room: 6,
		Once: "dumpster_checked",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 58},
		},
	},
	{
		Verb: "LOOK", Object: 58,
		Once: "core_checked",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 59},
		},
	},

	// Examining the lobby plant exposes the bushes behind it.
	{
		Verb: "LOOK", Object: 47, Room: 15,
		Once: "bushes_found",
		Effects: []types.Effect{
			effects.Text("THERE'S A GROUP OF BUSHES BEHIND IT!!"),
		},
	},

	// The living-room closet holds the inflatable doll once opened.
	{
		Verb: "LOOK", Object: 35, Room: 29,
		If:   []Cond{{Flag: "closet_opened", Val: 1}},
		Once: "doll_found",
		Effects: []types.Effect{
			effects.Text("I SEE SOMETHING!!"),
			{Kind: types.EffReveal, Object: 74},
		},
	},

	// --- Gift reactions --------------------------------------------------

	// Candy for the disco girl.
	{
		Verb: "DROP", Object: 60, Room: 21,
		If:   []Cond{{Flag: "girl_points", Op: "lt", Val: 3}},
		Once: "candy_given",
		Effects: []types.Effect{
			effects.Text("SHE SMILES AND EATS A COUPLE!!"),
			{Kind: types.EffAddFlag, Flag: "girl_points", Value: 1},
		},
	},

	// Flowers for the disco girl.
	{
		Verb: "DROP", Object: 57, Room: 21,
		If:   []Cond{{Flag: "girl_points", Op: "lt", Val: 3}},
		Once: "flowers_given",
		Effects: []types.Effect{
			effects.Text("SHE BLUSHES PROFUSELY AND PUTS THEM IN HER HAIR!"),
			{Kind: types.EffAddFlag, Flag: "girl_points", Value: 1},
		},
	},

	// The wedding ring for the disco girl.
	{
		Verb: "DROP", Object: 51, Room: 21,
		If:   []Cond{{Flag: "girl_points", Op: "lt", Val: 3}},
		Once: "ring_given",
		Effects: []types.Effect{
			effects.Text("SHE BLUSHES AND PUTS IT IN HER PURSE."),
			{Kind: types.EffAddFlag, Flag: "girl_points", Value: 1},
		},
	},

	// Wine for the bum, who pays in self-defense gear.
	{
		Verb: "DROP", Object: 72, Room: 22,
		Once: "bum_paid",
		Effects: []types.Effect{
			effects.Text("HE LOOKS AT ME AND STARTS TO SPEAK..."),
			effects.Text("'WELL MY SON....HERE'S MY STORY. I CAME HERE MANY YEARS AGO- AND MY GOALS WERE THE SAME AS YOURS!'"),
			effects.Text("'HERE'S A GIFT....... CARRY IT WITH YOU AT ALL TIMES!!!!! THERE'S SOME KINKY GIRLS IN THIS TOWN!!'"),
			effects.Text("HE THROWS UP AND GIVES ME BACK THE WINE"),
			{Kind: types.EffReveal, Object: 66},
		},
	},

	// An apple for the girl in the jacuzzi.
	{
		Verb: "DROP", Object: 75, Room: 26,
		Once: "jacuzzi_apple",
		Effects: []types.Effect{
			effects.Text("SHE TAKES THE APPLE AND RAISES IT TO HER MOUTH. WITH AN OUTRAGEOUSLY INNOCENT LOOK SHE TAKES A SMALL BITE OUT OF IT."),
			effects.Text("A SMILE COMES ACROSS HER FACE! SHE'S REALLY STARTING TO LOOK QUITE SEXY!!!!"),
			effects.Text("SHE WINKS AND LAYS BACK INTO THE JACUZZI"),
		},
	},

	// Pills for the blonde at the hotel desk. She leaves her post.
	{
		Verb: "DROP", Object: 61, Room: 19,
		If:   []Cond{{Flag: "blonde_gone", Val: 0}},
		Once: "blonde_gone",
		Effects: []types.Effect{
			effects.Text("THE BLONDE LOOKS AT THE PILLS AND SAYS 'THANKS!!! I LOVE THIS STUFF!'"),
			effects.Text("SHE TAKES A PILL..........HER NIPPLES START TO STAND UP! WOW!!!!"),
			effects.Text("SHE SAYS 'SO LONG!!! I'M GOING TO GO SEE MY BOYFRIEND!' SHE DISAPPEARS DOWN THE STAIRS........"),
			{Kind: types.EffRemoveObject, Object: 25},
		},
	},

	// Whiskey for the businessman in the hallway.
	{
		Verb: "DROP", Object: 52, Room: 1,
		Once: "remote_given",
		Effects: []types.Effect{
			effects.Text("THE GUY GIVES ME A TV CONTROLLER!!"),
			{Kind: types.EffRemoveObject, Object: 52},
			{Kind: types.EffReveal, Object: 84},
		},
	},

	// Seeds in the garden soil.
	{
		Verb: "DROP", Object: 59, Room: 28,
		Once: "seeds_planted",
		Effects: []types.Effect{
			effects.Text("THE SEEDS SINK INTO THE MOIST SOIL OF THE GARDEN..."),
			effects.Text("MAYBE A LITTLE WATER WOULD HELP!"),
			{Kind: types.EffRemoveObject, Object: 59},
		},
	},
}

// Gates guards room exits. Checked before the exit table; the first
// triggered gate blocks (or kills). Room 5 UP is handled in the move
// handler because paying the pimp mutates money.
var Gates = []Gate{
	// The hooker insists on being attended to first.
	{
		Room: 9,
		If:   []Cond{{Flag: "score", Val: 0}},
		Refusal: []string{
			"THE HOOKER SAYS 'DON'T GO THERE....DO ME FIRST!!!!'",
		},
	},

	// The honeymoon suite stays locked until the wedding.
	{
		Room: 17, Dir: types.South,
		If:      []Cond{{Flag: "girl_points", Op: "lt", Val: 5}},
		Refusal: []string{"THE DOOR IS LOCKED SHUT!"},
	},

	// The disco's inner door wants a passcard (OPEN DOOR with it in hand).
	{
		Room: 23, Dir: types.West,
		If:      []Cond{{Flag: "door_unlocked", Val: 0}},
		Refusal: []string{"THE DOOR IS CLOSED!"},
	},

	// The bar's back curtain needs the password first.
	{
		Room: 3, Dir: types.East,
		If:      []Cond{{Flag: "curtain_open", Val: 0}},
		Refusal: []string{"THE CURTAIN IS DRAWN SHUT! MAYBE I SHOULD PUSH THE BUTTON...."},
	},

	// Stepping off the balcony without the rope is the short way down.
	{
		Room: 10, Dir: types.West,
		If:    []Cond{{Flag: "using_rope", Val: 0}},
		Fatal: true,
		Refusal: []string{
			"AAAAAEEEEEIIIIIIII!!!!!!!!!",
			"SPLAAATTTTT!!!!!",
			"I SHOULD HAVE USED SAFETY ROPE!!!!!!!!",
		},
	},
}
