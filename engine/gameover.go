package engine

import (
	"strconv"
	"strings"

	"github.com/nmorales/sintown/types"
)

func normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// die drops the player into purgatory. The score survives; whether the
// game continues depends on the doors.
func (e *Engine) die() []types.OutputEvent {
	e.mode = modeDoors
	e.State.GameOver = true
	lines := []string{
		"WELCOME TO PURGATORY!! HERE AT THIS CROSSROADS YOU HAVE THREE OPTIONS:",
		"BEFORE YOU ARE THREE DOORS. EACH WILL BRING YOU TO A DIFFERENT PLACE-",
		"A- TO HELL (WHERE THE GAME ENDS)",
		"B- BACK TO LIFE, UNHARMED",
		"C- YOU STAY HERE AND MUST CHOOSE AGAIN",
		"THE DOORS ARE RANDOMLY DIFFERENT EACH TIME!!",
	}
	out := make([]types.OutputEvent, 0, len(lines)+1)
	for _, l := range lines {
		out = append(out, types.OutputEvent{Text: l, Style: types.StyleDeath})
	}
	return append(out, types.OutputEvent{Text: "CHOOSE YOUR DOOR: 1, 2, OR 3??", Style: types.StyleSystem})
}

func (e *Engine) stepDoors(input string) []types.OutputEvent {
	door, err := strconv.Atoi(normalize(input))
	if err != nil || door < 1 || door > 3 {
		return sayStyled("CHOOSE 1, 2, OR 3!", types.StyleSystem)
	}

	fate := e.RNG.Intn(4)

	if door == fate {
		// Back to life, in the hallway.
		e.mode = modeNormal
		e.State.GameOver = false
		e.State.CurrentRoom = 1
		out := say("I'M ALIVE!!! WHAT A RELIEF!!")
		return append(out, e.describeRoom()...)
	}

	if door--; door < 1 {
		door = 3
	}
	if door == fate {
		e.mode = modeNormal
		e.State.GameOver = true
		return sayStyled("GAME OVER!", types.StyleDeath)
	}

	out := sayStyled("YOU'RE STILL HERE!", types.StyleDeath)
	return append(out, types.OutputEvent{Text: "CHOOSE YOUR DOOR: 1, 2, OR 3??", Style: types.StyleSystem})
}
