// Package parser converts input lines into Command structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nmorales/sintown/types"
)

// Multi-word idioms checked first, against the whole normalized line.
var idioms = map[string]types.Command{
	"TV ON":      {Verb: "TV", Object: "ON"},
	"TV OFF":     {Verb: "TV", Object: "OFF"},
	"WATER ON":   {Verb: "WATER", Object: "ON"},
	"WATER OFF":  {Verb: "WATER", Object: "OFF"},
	"PLAY SLOTS": {Verb: "PLAY", Object: "SLOTS"},
	"PLAY 21":    {Verb: "PLAY", Object: "21"},
	"CALL TAXI":  {Verb: "TAXI"},
	"HAIL TAXI":  {Verb: "TAXI"},
	"SAVE GAME":  {Verb: "SAVE"},
}

// Single-letter and full-word direction shortcuts.
var directionShortcuts = map[string]string{
	"N": "NORTH", "S": "SOUTH", "E": "EAST", "W": "WEST",
	"U": "UP", "D": "DOWN",
	"NORTH": "NORTH", "SOUTH": "SOUTH", "EAST": "EAST", "WEST": "WEST",
	"UP": "UP", "DOWN": "DOWN",
}

// Single-token commands that stand alone as a verb.
var bareVerbs = map[string]string{
	"I":         "INVENTORY",
	"INV":       "INVENTORY",
	"INVENTORY": "INVENTORY",
	"L":         "LOOK",
	"X":         "LOOK",
	"LOOK":      "LOOK",
	"Q":         "QUIT",
	"QUIT":      "QUIT",
	"SAVE":      "SAVE",
	"HELP":      "HELP",
	"SCORE":     "SCORE",
	"DANCE":     "DANCE",
	"JUMP":      "JUMP",
	"ANSWER":    "ANSWER",
}

var verbAliases = map[string]string{
	// Look / Examine
	"EXAMINE": "LOOK",
	"READ":    "LOOK",
	"SEARCH":  "LOOK",

	// Movement
	"WALK": "GO",
	"RUN":  "GO",
	"MOVE": "GO",

	// Take / Get
	"GET":  "TAKE",
	"GRAB": "TAKE",

	// Drop / Give
	"LEAVE": "DROP",
	"PLACE": "DROP",
	"GIVE":  "DROP",

	// Open
	"PULL": "OPEN",

	// Buy
	"ORDER":    "BUY",
	"PURCHASE": "BUY",

	// Use / Wear
	"WEAR": "USE",

	// Push
	"PRESS": "PUSH",

	// Talk
	"SPEAK": "TALK",
	"ASK":   "TALK",

	// Seduce
	"FUCK":  "SEDUCE",
	"SCREW": "SEDUCE",
	"RAPE":  "SEDUCE",

	// Taxi
	"HAIL": "TAXI",

	// Break
	"SMASH": "BREAK",
}

// Parse converts a raw input line into a Command. The whole line is
// trimmed and uppercased; idioms and single-token shortcuts are checked
// before the line is split at the first whitespace run.
func Parse(input string) types.Command {
	input = strings.ToUpper(strings.TrimSpace(input))
	if input == "" {
		return types.Command{}
	}

	// Collapse internal whitespace so idiom matching is exact.
	fields := strings.Fields(input)
	input = strings.Join(fields, " ")

	if cmd, ok := idioms[input]; ok {
		return cmd
	}

	if len(fields) == 1 {
		if dir, ok := directionShortcuts[fields[0]]; ok {
			return types.Command{Verb: "GO", Object: dir}
		}
		if verb, ok := bareVerbs[fields[0]]; ok {
			return types.Command{Verb: verb}
		}
	}

	verb := fields[0]
	object := strings.Join(fields[1:], " ")

	// "GO NORTH" and friends normalize the direction word.
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}
	if verb == "GO" {
		if dir, ok := directionShortcuts[object]; ok {
			object = dir
		}
	}

	return types.Command{Verb: verb, Object: object}
}
