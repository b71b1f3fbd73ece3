// Package engine drives one turn of the game: it parses player input,
// routes pending prompts (password, taxi, phone, casino games, purgatory),
// dispatches verb handlers, and applies the resulting effects.
package engine

import (
	"fmt"

	"github.com/nmorales/sintown/engine/blackjack"
	"github.com/nmorales/sintown/engine/effects"
	"github.com/nmorales/sintown/engine/parser"
	"github.com/nmorales/sintown/engine/resolve"
	"github.com/nmorales/sintown/engine/slots"
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// mode tracks what the next line of input means. Anything other than
// modeNormal bypasses the parser entirely.
type mode int

const (
	modeNormal mode = iota
	modePassword
	modeTaxi
	modePhoneQA
	modeRubberQA
	modeSlots
	modeBlackjack
	modeDoors
)

// Engine holds the game definitions and mutable state.
type Engine struct {
	Defs  *state.Defs
	State *state.State
	RNG   *RNG

	mode       mode
	phoneStep  int
	rubberStep int
	slotGame   *slots.Session
	cardGame   *blackjack.Session
	won        bool
}

// New creates a new engine from definitions and a seed.
func New(defs *state.Defs, seed int64) *Engine {
	s := state.NewState(defs, seed)
	return &Engine{
		Defs:  defs,
		State: s,
		RNG:   NewRNG(seed),
	}
}

// RestoreRNG re-creates the RNG from seed and advances to the saved position.
func (e *Engine) RestoreRNG(seed int64, position int64) {
	e.RNG = RestoreRNG(seed, position)
}

// ResetModes drops any pending prompt, e.g. after loading a save.
func (e *Engine) ResetModes() {
	e.mode = modeNormal
	e.phoneStep = 0
	e.rubberStep = 0
	e.slotGame = nil
	e.cardGame = nil
}

// Prompting reports whether the engine is waiting on a non-command answer.
func (e *Engine) Prompting() bool {
	return e.mode != modeNormal
}

// Intro returns the title banner and the starting room description.
func (e *Engine) Intro() []types.OutputEvent {
	out := []types.OutputEvent{
		{Text: e.Defs.Game.Title, Style: types.StyleTitle},
	}
	if e.Defs.Game.Author != "" {
		out = append(out, types.OutputEvent{Text: e.Defs.Game.Author, Style: types.StyleTitle})
	}
	if e.Defs.Game.Intro != "" {
		out = append(out, types.OutputEvent{Text: e.Defs.Game.Intro, Style: types.StyleNormal})
	}
	return append(out, e.describeRoom()...)
}

// Step processes one line of player input and returns the result.
func (e *Engine) Step(input string) types.Result {
	var res types.Result

	// Pending prompts consume raw input before the parser sees it.
	switch e.mode {
	case modePassword:
		res.Events = e.stepPassword(input)
		return e.finish(res)
	case modeTaxi:
		res.Events = e.stepTaxi(input)
		return e.finish(res)
	case modePhoneQA:
		res.Events = e.stepPhoneQA(input)
		return e.finish(res)
	case modeRubberQA:
		res.Events = e.stepRubberQA(input)
		return e.finish(res)
	case modeSlots:
		res.Events = e.stepSlots(input)
		return e.finish(res)
	case modeBlackjack:
		res.Events = e.stepBlackjack(input)
		return e.finish(res)
	case modeDoors:
		res.Events = e.stepDoors(input)
		return e.finish(res)
	}

	if e.State.GameOver {
		res.Events = sayStyled("THE GAME IS OVER! LOAD A SAVE OR QUIT.", types.StyleSystem)
		return res
	}

	cmd := parser.Parse(input)
	if cmd.Verb == "" {
		return res
	}

	e.State.TurnCount++

	switch cmd.Verb {
	case "GO":
		res.Events = e.handleGo(cmd.Object)
	case "LOOK":
		res.Events = e.handleLook(cmd.Object)
	case "TAKE":
		res.Events = e.handleTake(cmd.Object)
	case "DROP":
		res.Events = e.handleDrop(cmd.Object)
	case "OPEN":
		res.Events = e.handleOpen(cmd.Object)
	case "PUSH":
		res.Events = e.handlePush(cmd.Object)
	case "CLIMB":
		res.Events = e.handleClimb(cmd.Object)
	case "FILL":
		res.Events = e.handleFill(cmd.Object)
	case "BREAK":
		res.Events = e.handleBreak(cmd.Object)
	case "CUT":
		res.Events = e.handleCut(cmd.Object)
	case "INFLATE":
		res.Events = e.handleInflate(cmd.Object)
	case "USE":
		res.Events = e.handleUse(cmd.Object)
	case "BUY":
		res.Events = e.handleBuy(cmd.Object)
	case "SEDUCE":
		res.Events = e.handleSeduce(cmd.Object)
	case "TALK":
		res.Events = e.handleTalk(cmd.Object)
	case "PAY":
		res.Events = e.handlePay(cmd.Object)
	case "MARRY":
		res.Events = e.handleMarry(cmd.Object)
	case "TV":
		res.Events = e.handleTV(cmd.Object)
	case "WATER":
		res.Events = e.handleWater(cmd.Object)
	case "CALL":
		res.Events = e.handleCall(cmd.Object)
	case "ANSWER":
		res.Events = e.handleAnswer()
	case "TAXI":
		res.Events = e.handleTaxi()
	case "PLAY":
		res.Events = e.handlePlay(cmd.Object)
	case "DANCE":
		res.Events = e.handleDance()
	case "JUMP":
		res.Events = e.handleJump()
	case "SCORE":
		res.Events = e.handleScore()
	case "INVENTORY":
		res.Events = e.handleInventory()
	case "HELP":
		res.Events = e.handleHelp()
	case "SAVE":
		res.SaveRequested = true
		return res
	case "QUIT":
		res.QuitRequested = true
		return res
	default:
		res.Events = say(fmt.Sprintf("I DON'T KNOW HOW TO %s SOMETHING!", cmd.Verb))
	}

	return e.finish(res)
}

// finish settles end-of-turn bookkeeping shared by all paths.
func (e *Engine) finish(res types.Result) types.Result {
	res.Won = e.won
	e.State.RNGPosition = e.RNG.Position()
	return res
}

// noun resolves an object word, or 0 when it names nothing known.
func (e *Engine) noun(word string) int {
	return resolve.Noun(e.Defs, word)
}

func say(text string) []types.OutputEvent {
	return []types.OutputEvent{{Text: text, Style: types.StyleNormal}}
}

func sayStyled(text string, style types.Style) []types.OutputEvent {
	return []types.OutputEvent{{Text: text, Style: style}}
}

func (e *Engine) objectName(id int) string {
	return e.Defs.ObjectName(id)
}

// apply runs effects against the state and returns their output.
func (e *Engine) apply(effs []types.Effect) []types.OutputEvent {
	return effects.Apply(e.State, effs)
}

// describeRoom produces the standard room display.
func (e *Engine) describeRoom() []types.OutputEvent {
	room, ok := e.Defs.Rooms[e.State.CurrentRoom]
	if !ok {
		return sayStyled("I'M SOMEWHERE STRANGE!", types.StyleError)
	}

	out := []types.OutputEvent{
		{Text: room.Desc, Style: types.StyleDesc},
	}

	if dirs := e.exitNames(room); dirs != "" {
		out = append(out, types.OutputEvent{Text: "OTHER AREAS ARE: " + dirs, Style: types.StyleList})
	} else {
		out = append(out, types.OutputEvent{Text: "THERE ARE NO OBVIOUS EXITS.", Style: types.StyleList})
	}

	ids := e.State.RoomObjects[e.State.CurrentRoom]
	if len(ids) == 0 {
		return append(out, types.OutputEvent{Text: "THERE ARE NO ITEMS HERE.", Style: types.StyleList})
	}
	names := ""
	for i, id := range ids {
		if i > 0 {
			names += ", "
		}
		names += e.objectName(id)
	}
	return append(out, types.OutputEvent{Text: "ITEMS IN SIGHT ARE: " + names, Style: types.StyleList})
}

// exitNames lists available exits in fixed compass order.
func (e *Engine) exitNames(room types.RoomDef) string {
	order := []types.Direction{types.North, types.South, types.East, types.West, types.Up, types.Down}
	s := ""
	for _, d := range order {
		if _, ok := room.Exits[d]; !ok {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += string(d)
	}
	return s
}
