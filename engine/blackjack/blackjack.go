// Package blackjack implements the casino 21 table as an input-driven
// state machine. Bets are in $100 units; a natural pays 3:2, the dealer
// stands on 17, and going broke at the table is fatal.
package blackjack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmorales/sintown/types"
)

// Roller supplies randomness for the shoe.
type Roller interface {
	Roll(sides int) int
}

// Phase is the session's current prompt.
type Phase int

const (
	PhaseBetting Phase = iota
	PhasePlayer
	PhaseAgain
	PhaseDone
)

// card is a rank 1..13. Suits don't matter here.
type card int

func (c card) String() string {
	switch c {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	}
	return strconv.Itoa(int(c))
}

func handTotal(cards []card) int {
	total, aces := 0, 0
	for _, c := range cards {
		switch {
		case c == 1:
			total += 11
			aces++
		case c >= 11:
			total += 10
		default:
			total += int(c)
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func handString(cards []card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Stats tracks one sitting at the table. Amounts are in $100 units.
type Stats struct {
	HandsPlayed       int
	Wins              int
	Losses            int
	Pushes            int
	Blackjacks        int
	TotalWinnings     int
	TotalLosses       int
	BestWin           int
	BestHand          int
	LongestLossStreak int
	currentLossStreak int
}

// Session is one sitting at the 21 table.
type Session struct {
	Phase Phase
	Money int  // bankroll in $100 units, synced back by the caller
	Broke bool // bankroll hit zero mid-session
	Stats Stats

	rng    Roller
	bet    int
	player []card
	dealer []card
}

// New starts a session with the player's current bankroll.
func New(money int, rng Roller) *Session {
	return &Session{Phase: PhaseBetting, Money: money, rng: rng}
}

const betPrompt = "HOW MANY DOLLARS WOULD YOU LIKE TO BET? (IN $100 INCREMENTS)"

// maxBet caps a single wager at $1000, same as the slot machine.
const maxBet = 10

// Start returns the opening prompt.
func (g *Session) Start() []types.OutputEvent {
	return []types.OutputEvent{
		{Text: fmt.Sprintf("YOU HAVE $%d00", g.Money), Style: types.StyleNormal},
		{Text: betPrompt, Style: types.StyleSystem},
	}
}

// Step consumes one line of input and advances the session.
func (g *Session) Step(input string) []types.OutputEvent {
	input = strings.ToUpper(strings.TrimSpace(input))
	switch g.Phase {
	case PhaseBetting:
		return g.stepBet(input)
	case PhasePlayer:
		return g.stepPlayer(input)
	case PhaseAgain:
		return g.stepAgain(input)
	}
	return nil
}

func (g *Session) draw() card {
	return card(g.rng.Roll(13))
}

func (g *Session) stepBet(input string) []types.OutputEvent {
	bet, err := strconv.Atoi(input)
	if err == nil && bet > maxBet {
		return []types.OutputEvent{
			{Text: "THE HOUSE LIMIT IS $1000!!", Style: types.StyleNormal},
			{Text: betPrompt, Style: types.StyleSystem},
		}
	}
	if err != nil || bet < 1 || bet > g.Money {
		return []types.OutputEvent{
			{Text: "INVALID BET", Style: types.StyleNormal},
			{Text: betPrompt, Style: types.StyleSystem},
		}
	}
	g.bet = bet
	g.Stats.HandsPlayed++

	g.player = []card{g.draw(), g.draw()}
	g.dealer = []card{g.draw(), g.draw()}
	g.trackBestHand()

	out := []types.OutputEvent{
		{Text: "DEALING...", Style: types.StyleNormal, DelayMs: 1000},
		{Text: fmt.Sprintf("YOUR CARDS: %s", handString(g.player)), Style: types.StyleNormal},
		{Text: fmt.Sprintf("YOUR TOTAL: %d", handTotal(g.player)), Style: types.StyleNormal},
		{Text: fmt.Sprintf("DEALER'S UP CARD: %s", g.dealer[1]), Style: types.StyleNormal},
	}

	if handTotal(g.player) == 21 {
		out = append(out, types.OutputEvent{Text: "YOU'VE GOT ***BLACKJACK***", Style: types.StyleTitle})
		g.Stats.Blackjacks++
		if handTotal(g.dealer) == 21 {
			g.Stats.Pushes++
			out = append(out,
				types.OutputEvent{Text: "DEALER ALSO HAS BLACKJACK!", Style: types.StyleNormal},
				types.OutputEvent{Text: "PUSH - BET RETURNED", Style: types.StyleNormal},
			)
		} else {
			win := g.bet * 3 / 2
			g.Money += win
			g.recordWin(win)
			out = append(out, types.OutputEvent{Text: fmt.Sprintf("YOU WIN $%d00!", win), Style: types.StyleNormal})
		}
		return append(out, g.endHand()...)
	}

	g.Phase = PhasePlayer
	return append(out, g.playerPrompt())
}

func (g *Session) playerPrompt() types.OutputEvent {
	opts := "HIT, STAND"
	if g.Money >= g.bet*2 {
		opts += ", OR DOUBLE DOWN"
	}
	return types.OutputEvent{Text: fmt.Sprintf("WHAT WOULD YOU LIKE TO DO? (%s)", opts), Style: types.StyleSystem}
}

func (g *Session) stepPlayer(input string) []types.OutputEvent {
	switch input {
	case "HIT", "H":
		return g.hit(false)
	case "STAND", "S":
		return g.stand(nil)
	case "DOUBLE", "DOUBLE DOWN", "D":
		return g.double()
	}
	return []types.OutputEvent{g.playerPrompt()}
}

func (g *Session) hit(doubled bool) []types.OutputEvent {
	c := g.draw()
	g.player = append(g.player, c)
	g.trackBestHand()
	total := handTotal(g.player)

	out := []types.OutputEvent{
		{Text: fmt.Sprintf("YOU GET A %s", c), Style: types.StyleNormal},
		{Text: fmt.Sprintf("YOUR TOTAL: %d", total), Style: types.StyleNormal},
	}

	switch {
	case total > 21:
		g.Money -= g.bet
		g.recordLoss(g.bet)
		out = append(out, types.OutputEvent{Text: "BUSTED!", Style: types.StyleNormal})
		return append(out, g.endHand()...)
	case total == 21:
		out = append(out, types.OutputEvent{Text: "21! STANDING...", Style: types.StyleNormal})
		return g.stand(out)
	case doubled:
		return g.stand(out)
	}
	return append(out, g.playerPrompt())
}

func (g *Session) double() []types.OutputEvent {
	if g.Money < g.bet*2 {
		return []types.OutputEvent{
			{Text: "NOT ENOUGH MONEY TO DOUBLE DOWN!", Style: types.StyleNormal},
			g.playerPrompt(),
		}
	}
	g.bet *= 2
	out := []types.OutputEvent{{Text: "DOUBLING DOWN...", Style: types.StyleNormal}}
	return append(out, g.hit(true)...)
}

// stand runs the dealer's hand to completion and settles the bet.
// Any pending output from the caller is prepended.
func (g *Session) stand(out []types.OutputEvent) []types.OutputEvent {
	out = append(out,
		types.OutputEvent{Text: fmt.Sprintf("DEALER'S CARDS: %s", handString(g.dealer)), Style: types.StyleNormal, DelayMs: 1000},
		types.OutputEvent{Text: fmt.Sprintf("DEALER'S TOTAL: %d", handTotal(g.dealer)), Style: types.StyleNormal},
	)

	for handTotal(g.dealer) < 17 {
		c := g.draw()
		g.dealer = append(g.dealer, c)
		out = append(out,
			types.OutputEvent{Text: fmt.Sprintf("DEALER GETS A %s", c), Style: types.StyleNormal, DelayMs: 750},
			types.OutputEvent{Text: fmt.Sprintf("DEALER'S TOTAL: %d", handTotal(g.dealer)), Style: types.StyleNormal},
		)
	}

	player, dealer := handTotal(g.player), handTotal(g.dealer)
	switch {
	case dealer > 21:
		g.Money += g.bet
		g.recordWin(g.bet)
		out = append(out, types.OutputEvent{Text: "DEALER BUSTS! YOU WIN!", Style: types.StyleNormal})
	case dealer > player:
		g.Money -= g.bet
		g.recordLoss(g.bet)
		out = append(out, types.OutputEvent{Text: "DEALER WINS", Style: types.StyleNormal})
	case dealer < player:
		g.Money += g.bet
		g.recordWin(g.bet)
		out = append(out, types.OutputEvent{Text: "YOU WIN!", Style: types.StyleNormal})
	default:
		g.Stats.Pushes++
		out = append(out, types.OutputEvent{Text: "TIE GAME - PUSH", Style: types.StyleNormal})
	}
	return append(out, g.endHand()...)
}

func (g *Session) endHand() []types.OutputEvent {
	if g.Money < 1 {
		g.Broke = true
		g.Phase = PhaseDone
		out := []types.OutputEvent{{Text: "YOU'RE OUT OF MONEY!!", Style: types.StyleDeath}}
		return append(out, g.summary()...)
	}
	g.Phase = PhaseAgain
	return []types.OutputEvent{
		{Text: fmt.Sprintf("YOU HAVE $%d00", g.Money), Style: types.StyleNormal},
		{Text: "PLAY AGAIN? (Y/N)", Style: types.StyleSystem},
	}
}

func (g *Session) stepAgain(input string) []types.OutputEvent {
	switch input {
	case "Y", "YES":
		g.Phase = PhaseBetting
		g.player, g.dealer = nil, nil
		return []types.OutputEvent{{Text: betPrompt, Style: types.StyleSystem}}
	case "N", "NO":
		g.Phase = PhaseDone
		out := g.summary()
		return append(out, types.OutputEvent{Text: "THANKS FOR PLAYING", Style: types.StyleNormal})
	}
	return []types.OutputEvent{{Text: "PLAY AGAIN? (Y/N)", Style: types.StyleSystem}}
}

func (g *Session) recordWin(win int) {
	g.Stats.Wins++
	g.Stats.TotalWinnings += win
	if win > g.Stats.BestWin {
		g.Stats.BestWin = win
	}
	g.Stats.currentLossStreak = 0
}

// recordLoss books a settled losing stake. Pushes never touch the totals,
// so TotalWinnings-TotalLosses always equals the bankroll delta.
func (g *Session) recordLoss(stake int) {
	g.Stats.Losses++
	g.Stats.TotalLosses += stake
	g.Stats.currentLossStreak++
	if g.Stats.currentLossStreak > g.Stats.LongestLossStreak {
		g.Stats.LongestLossStreak = g.Stats.currentLossStreak
	}
}

func (g *Session) trackBestHand() {
	if t := handTotal(g.player); t <= 21 && t > g.Stats.BestHand {
		g.Stats.BestHand = t
	}
}

func (g *Session) summary() []types.OutputEvent {
	if g.Stats.HandsPlayed == 0 {
		return nil
	}
	net := g.Stats.TotalWinnings - g.Stats.TotalLosses
	sign := "+"
	if net < 0 {
		sign = "-"
		net = -net
	}
	lines := []string{
		"BLACKJACK SESSION SUMMARY:",
		fmt.Sprintf("  HANDS PLAYED: %d", g.Stats.HandsPlayed),
		fmt.Sprintf("  WINS: %d   LOSSES: %d   PUSHES: %d", g.Stats.Wins, g.Stats.Losses, g.Stats.Pushes),
		fmt.Sprintf("  BLACKJACKS: %d", g.Stats.Blackjacks),
		fmt.Sprintf("  TOTAL WON: $%d00   TOTAL LOST: $%d00", g.Stats.TotalWinnings, g.Stats.TotalLosses),
		fmt.Sprintf("  NET RESULT: %s$%d00", sign, net),
		fmt.Sprintf("  BEST WIN: $%d00   BEST HAND: %d", g.Stats.BestWin, g.Stats.BestHand),
		fmt.Sprintf("  LONGEST LOSING STREAK: %d", g.Stats.LongestLossStreak),
	}
	out := make([]types.OutputEvent, 0, len(lines))
	for _, l := range lines {
		out = append(out, types.OutputEvent{Text: l, Style: types.StyleList})
	}
	return out
}
