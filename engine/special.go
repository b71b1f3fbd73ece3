package engine

import (
	"strings"

	"github.com/nmorales/sintown/engine/blackjack"
	"github.com/nmorales/sintown/engine/slots"
	"github.com/nmorales/sintown/types"
)

func (e *Engine) handleDance() []types.OutputEvent {
	if e.State.CurrentRoom != 21 {
		return say("NO ROOM TO DANCE HERE")
	}
	out := say("I START DANCING!")
	if e.State.ObjectInRoom(21, 49) {
		out = append(out, say("THE GIRL WATCHES ME DANCE AND SEEMS IMPRESSED!")...)
	}
	for i := 0; i < 5; i++ {
		out = append(out,
			types.OutputEvent{Text: "BOOGIE WOOGIE!!!!", DelayMs: 500},
			types.OutputEvent{Text: "YEH YEH YEH!!!", DelayMs: 500},
		)
	}
	return append(out, say("I GOT THE STEPS, MAN!!")...)
}

func (e *Engine) handlePlay(gameWord string) []types.OutputEvent {
	switch strings.ToUpper(strings.TrimSpace(gameWord)) {
	case "SLOTS":
		if e.State.CurrentRoom != 13 {
			return say("THERE ARE NO SLOT MACHINES HERE")
		}
		if e.State.Money < 1 {
			return say("I'M BROKE!!!")
		}
		e.slotGame = slots.New(e.State.Money, e.RNG)
		e.mode = modeSlots
		return e.slotGame.Start()
	case "21", "BLACKJACK", "CARDS":
		if e.State.CurrentRoom != 14 {
			return say("THERE ARE NO CARD GAMES HERE")
		}
		if e.State.Money < 1 {
			return say("I'M BROKE!!!")
		}
		e.cardGame = blackjack.New(e.State.Money, e.RNG)
		e.mode = modeBlackjack
		return e.cardGame.Start()
	}
	return say("I DON'T KNOW HOW TO PLAY THAT")
}

func (e *Engine) stepSlots(input string) []types.OutputEvent {
	out := e.slotGame.Step(input)
	e.State.Money = e.slotGame.Money
	if e.slotGame.Phase == slots.PhaseDone {
		broke := e.slotGame.Broke
		e.slotGame = nil
		e.mode = modeNormal
		if broke {
			out = append(out, e.die()...)
		}
	}
	return out
}

func (e *Engine) stepBlackjack(input string) []types.OutputEvent {
	out := e.cardGame.Step(input)
	e.State.Money = e.cardGame.Money
	if e.cardGame.Phase == blackjack.PhaseDone {
		broke := e.cardGame.Broke
		e.cardGame = nil
		e.mode = modeNormal
		if broke {
			out = append(out, e.die()...)
		}
	}
	return out
}
