// Package slots implements the casino slot machine mini-game as a small
// input-driven state machine. The caller feeds it one line of player input
// at a time and syncs the bankroll back when the session ends.
package slots

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmorales/sintown/types"
)

// Roller supplies randomness for the reels.
type Roller interface {
	Roll(sides int) int
}

// Phase is the session's current prompt.
type Phase int

const (
	PhaseBetting Phase = iota
	PhaseAgain
	PhaseDone
)

// maxBet caps a single wager at $1000.
const maxBet = 10

// Stats tracks one session at the machine. Amounts are in $100 units.
type Stats struct {
	Spins             int
	Wins              int
	Losses            int
	TotalWinnings     int
	TotalLosses       int
	BestWin           int
	LongestLossStreak int
	currentLossStreak int
}

// Session is one sitting at the slot machine.
type Session struct {
	Phase Phase
	Money int  // bankroll in $100 units, synced back by the caller
	Broke bool // bankroll hit zero mid-session
	Stats Stats
	rng   Roller
}

// New starts a session with the player's current bankroll.
func New(money int, rng Roller) *Session {
	return &Session{Phase: PhaseBetting, Money: money, rng: rng}
}

// Start returns the opening prompt.
func (g *Session) Start() []types.OutputEvent {
	return []types.OutputEvent{
		{Text: fmt.Sprintf("YOU HAVE $%d00", g.Money), Style: types.StyleNormal},
		{Text: g.betPrompt(), Style: types.StyleSystem},
	}
}

func (g *Session) betPrompt() string {
	return fmt.Sprintf("PLACE YOUR BET (1-%d, IN $100 UNITS)", g.betLimit())
}

func (g *Session) betLimit() int {
	if g.Money < maxBet {
		return g.Money
	}
	return maxBet
}

// Step consumes one line of input and advances the session.
func (g *Session) Step(input string) []types.OutputEvent {
	input = strings.ToUpper(strings.TrimSpace(input))
	switch g.Phase {
	case PhaseBetting:
		return g.stepBet(input)
	case PhaseAgain:
		return g.stepAgain(input)
	}
	return nil
}

func (g *Session) stepBet(input string) []types.OutputEvent {
	bet, err := strconv.Atoi(input)
	if err != nil {
		return []types.OutputEvent{{Text: g.betPrompt(), Style: types.StyleSystem}}
	}
	if bet > maxBet {
		return []types.OutputEvent{
			{Text: "THE HOUSE LIMIT IS $1000!!", Style: types.StyleNormal},
			{Text: g.betPrompt(), Style: types.StyleSystem},
		}
	}
	if bet < 1 || bet > g.Money {
		return []types.OutputEvent{
			{Text: "I DON'T HAVE THAT KIND OF MONEY!!", Style: types.StyleNormal},
			{Text: g.betPrompt(), Style: types.StyleSystem},
		}
	}
	return g.spin(bet)
}

func (g *Session) spin(bet int) []types.OutputEvent {
	g.Money -= bet
	g.Stats.Spins++
	g.Stats.TotalLosses += bet

	// Reel symbols are ASCII 33..42, same glyph set as the arcade original.
	var sym [3]byte
	for i := range sym {
		sym[i] = byte(32 + g.rng.Roll(10))
	}

	out := []types.OutputEvent{
		{Text: "SPINNING...", Style: types.StyleNormal, DelayMs: 500},
		{Text: fmt.Sprintf("%c ? ?", sym[0]), Style: types.StyleNormal, DelayMs: 500},
		{Text: fmt.Sprintf("%c %c ?", sym[0], sym[1]), Style: types.StyleNormal, DelayMs: 500},
		{Text: fmt.Sprintf("%c %c %c", sym[0], sym[1], sym[2]), Style: types.StyleNormal},
	}

	switch {
	case sym[0] == sym[1] && sym[1] == sym[2]:
		win := bet * 15
		g.Money += win
		g.recordWin(win)
		out = append(out,
			types.OutputEvent{Text: fmt.Sprintf("TRIPLES!!!!!! YOU WIN $%d00", win), Style: types.StyleNormal},
			types.OutputEvent{Text: "J A C K P O T ! ! !", Style: types.StyleTitle},
		)
	case sym[0] == sym[1] || sym[1] == sym[2] || sym[0] == sym[2]:
		win := bet * 3
		g.Money += win
		g.recordWin(win)
		out = append(out, types.OutputEvent{Text: fmt.Sprintf("A PAIR! YOU WIN $%d00", win), Style: types.StyleNormal})
	default:
		g.Stats.Losses++
		g.Stats.currentLossStreak++
		if g.Stats.currentLossStreak > g.Stats.LongestLossStreak {
			g.Stats.LongestLossStreak = g.Stats.currentLossStreak
		}
		out = append(out, types.OutputEvent{Text: "YOU LOSE!", Style: types.StyleNormal})
	}

	if g.Money < 1 {
		g.Broke = true
		g.Phase = PhaseDone
		out = append(out, types.OutputEvent{Text: "I'M BROKE!!!- THAT MEANS DEATH!!!!!!!!", Style: types.StyleDeath})
		return append(out, g.summary()...)
	}

	out = append(out,
		types.OutputEvent{Text: fmt.Sprintf("YOU HAVE $%d00", g.Money), Style: types.StyleNormal},
		types.OutputEvent{Text: "PLAY AGAIN? (Y/N)", Style: types.StyleSystem},
	)
	g.Phase = PhaseAgain
	return out
}

func (g *Session) recordWin(win int) {
	g.Stats.Wins++
	g.Stats.TotalWinnings += win
	if win > g.Stats.BestWin {
		g.Stats.BestWin = win
	}
	g.Stats.currentLossStreak = 0
}

func (g *Session) stepAgain(input string) []types.OutputEvent {
	switch input {
	case "Y", "YES":
		g.Phase = PhaseBetting
		return []types.OutputEvent{{Text: g.betPrompt(), Style: types.StyleSystem}}
	case "N", "NO":
		g.Phase = PhaseDone
		out := g.summary()
		return append(out, types.OutputEvent{Text: "MAYBE LATER", Style: types.StyleNormal})
	}
	return []types.OutputEvent{{Text: "PLAY AGAIN? (Y/N)", Style: types.StyleSystem}}
}

func (g *Session) summary() []types.OutputEvent {
	if g.Stats.Spins == 0 {
		return nil
	}
	net := g.Stats.TotalWinnings - g.Stats.TotalLosses
	sign := "+"
	if net < 0 {
		sign = "-"
		net = -net
	}
	lines := []string{
		"SLOT MACHINE SESSION SUMMARY:",
		fmt.Sprintf("  TOTAL SPINS: %d", g.Stats.Spins),
		fmt.Sprintf("  WINS: %d   LOSSES: %d", g.Stats.Wins, g.Stats.Losses),
		fmt.Sprintf("  TOTAL WINNINGS: $%d00   TOTAL SPENT: $%d00", g.Stats.TotalWinnings, g.Stats.TotalLosses),
		fmt.Sprintf("  NET RESULT: %s$%d00", sign, net),
		fmt.Sprintf("  BEST WIN: $%d00", g.Stats.BestWin),
		fmt.Sprintf("  LONGEST LOSING STREAK: %d", g.Stats.LongestLossStreak),
	}
	out := make([]types.OutputEvent, 0, len(lines))
	for _, l := range lines {
		out = append(out, types.OutputEvent{Text: l, Style: types.StyleList})
	}
	return out
}
