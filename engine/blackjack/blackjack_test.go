package blackjack

import (
	"strings"
	"testing"
)

// scriptRoller deals a fixed sequence of ranks (1=A .. 13=K).
type scriptRoller struct {
	cards []int
	i     int
}

func (r *scriptRoller) Roll(sides int) int {
	v := r.cards[r.i]
	r.i++
	return v
}

func allText(g *Session, input string) string {
	var b strings.Builder
	for _, ev := range g.Step(input) {
		b.WriteString(ev.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestHandTotalAceAdjustment(t *testing.T) {
	tests := []struct {
		cards []card
		want  int
	}{
		{[]card{1, 13}, 21},
		{[]card{1, 1, 9}, 21},
		{[]card{1, 1, 1}, 13},
		{[]card{1, 5}, 16},
		{[]card{10, 9, 5}, 24},
		{[]card{11, 12, 1}, 21},
	}
	for _, tt := range tests {
		if got := handTotal(tt.cards); got != tt.want {
			t.Errorf("handTotal(%v) = %d, want %d", tt.cards, got, tt.want)
		}
	}
}

func TestNaturalPaysThreeToTwo(t *testing.T) {
	// Player: A, K (21). Dealer: 5, 9.
	g := New(25, &scriptRoller{cards: []int{1, 13, 5, 9}})
	g.Start()

	out := allText(g, "2")
	if !strings.Contains(out, "YOU'VE GOT ***BLACKJACK***") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "YOU WIN $300!") {
		t.Fatalf("natural should pay floor(1.5 x bet):\n%s", out)
	}
	if g.Money != 28 {
		t.Errorf("money = %d, want 28", g.Money)
	}
	if g.Stats.Blackjacks != 1 || g.Stats.Wins != 1 {
		t.Errorf("stats = %+v", g.Stats)
	}
}

func TestBothNaturalsPush(t *testing.T) {
	// Player: A, K. Dealer: K, A.
	g := New(25, &scriptRoller{cards: []int{1, 13, 13, 1}})
	out := allText(g, "2")
	if !strings.Contains(out, "DEALER ALSO HAS BLACKJACK!") || !strings.Contains(out, "PUSH - BET RETURNED") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Money != 25 {
		t.Errorf("money = %d, want 25", g.Money)
	}
	if g.Stats.Pushes != 1 {
		t.Errorf("pushes = %d, want 1", g.Stats.Pushes)
	}
}

func TestPlayerBustLosesBet(t *testing.T) {
	// Player: 10, 9 (19). Dealer: 5, 9. Hit: 10 -> 29.
	g := New(25, &scriptRoller{cards: []int{10, 9, 5, 9, 10}})
	allText(g, "3")
	out := allText(g, "HIT")
	if !strings.Contains(out, "BUSTED!") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Money != 22 {
		t.Errorf("money = %d, want 22", g.Money)
	}
	if g.Phase != PhaseAgain {
		t.Errorf("phase = %v, want PhaseAgain", g.Phase)
	}
}

func TestDealerBustIsWin(t *testing.T) {
	// Player: 10, 9 (19). Dealer: 10, 6 (16), hits a 10 -> 26.
	g := New(25, &scriptRoller{cards: []int{10, 9, 10, 6, 10}})
	allText(g, "2")
	out := allText(g, "STAND")
	if !strings.Contains(out, "DEALER BUSTS! YOU WIN!") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Money != 27 {
		t.Errorf("money = %d, want 27", g.Money)
	}
}

func TestDealerStandsOnSeventeen(t *testing.T) {
	// Player: 10, 8 (18). Dealer: 10, 7 (17) - must not hit.
	g := New(25, &scriptRoller{cards: []int{10, 8, 10, 7}})
	allText(g, "2")
	out := allText(g, "STAND")
	if strings.Contains(out, "DEALER GETS A") {
		t.Fatalf("dealer hit on 17:\n%s", out)
	}
	if !strings.Contains(out, "YOU WIN!") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Money != 27 {
		t.Errorf("money = %d, want 27", g.Money)
	}
}

func TestDealerWins(t *testing.T) {
	// Player: 10, 8 (18). Dealer: 10, 9 (19).
	g := New(25, &scriptRoller{cards: []int{10, 8, 10, 9}})
	allText(g, "2")
	out := allText(g, "S")
	if !strings.Contains(out, "DEALER WINS") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Money != 23 {
		t.Errorf("money = %d, want 23", g.Money)
	}
}

func TestTieIsPush(t *testing.T) {
	// Player: 10, 9. Dealer: 10, 9.
	g := New(25, &scriptRoller{cards: []int{10, 9, 10, 9}})
	allText(g, "2")
	out := allText(g, "STAND")
	if !strings.Contains(out, "TIE GAME - PUSH") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Money != 25 {
		t.Errorf("money = %d, want 25", g.Money)
	}
}

func TestDoubleDown(t *testing.T) {
	// Player: 5, 6 (11). Dealer: 10, 7 (17). Double draws a 10 -> 21.
	g := New(25, &scriptRoller{cards: []int{5, 6, 10, 7, 10}})
	allText(g, "2")
	out := allText(g, "DOUBLE")
	if !strings.Contains(out, "DOUBLING DOWN...") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "YOU WIN!") {
		t.Fatalf("output:\n%s", out)
	}
	// Doubled bet of 2 pays 4.
	if g.Money != 29 {
		t.Errorf("money = %d, want 29", g.Money)
	}
}

func TestDoubleDownNeedsBankroll(t *testing.T) {
	// Bet the whole bankroll, then try to double.
	g := New(3, &scriptRoller{cards: []int{5, 6, 10, 7}})
	allText(g, "3")
	out := allText(g, "DOUBLE")
	if !strings.Contains(out, "NOT ENOUGH MONEY TO DOUBLE DOWN!") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Phase != PhasePlayer {
		t.Errorf("phase = %v, want PhasePlayer", g.Phase)
	}
}

func TestGoingBrokeIsFatal(t *testing.T) {
	// Player busts with the last dollar on the table.
	g := New(1, &scriptRoller{cards: []int{10, 9, 5, 9, 10}})
	allText(g, "1")
	out := allText(g, "HIT")
	if !strings.Contains(out, "YOU'RE OUT OF MONEY!!") {
		t.Fatalf("output:\n%s", out)
	}
	if !g.Broke || g.Phase != PhaseDone {
		t.Errorf("Broke = %v, phase = %v", g.Broke, g.Phase)
	}
}

func TestInvalidBetRejected(t *testing.T) {
	g := New(5, &scriptRoller{cards: []int{10, 9, 5, 9}})
	out := allText(g, "6")
	if !strings.Contains(out, "INVALID BET") {
		t.Fatalf("output:\n%s", out)
	}
	out = allText(g, "NOPE")
	if !strings.Contains(out, "INVALID BET") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Phase != PhaseBetting {
		t.Errorf("phase = %v, want PhaseBetting", g.Phase)
	}
}

func TestHouseLimitCapsBet(t *testing.T) {
	// Rich player, but the table only takes $1000 a hand.
	g := New(50, &scriptRoller{cards: []int{10, 9, 5, 9}})
	out := allText(g, "11")
	if !strings.Contains(out, "THE HOUSE LIMIT IS $1000!!") {
		t.Fatalf("output:\n%s", out)
	}
	if g.Phase != PhaseBetting {
		t.Errorf("phase = %v, want PhaseBetting", g.Phase)
	}
	out = allText(g, "10")
	if !strings.Contains(out, "YOUR CARDS:") {
		t.Fatalf("limit bet should deal:\n%s", out)
	}
}

func TestSummaryNetMatchesBankroll(t *testing.T) {
	// Win one even-money hand, lose one, then quit. The summary's net
	// must equal the bankroll delta.
	g := New(25, &scriptRoller{cards: []int{
		10, 9, 10, 6, 10, // hand 1: player 19, dealer 16 busts with a 10
		10, 8, 10, 9, // hand 2: player 18, dealer 19
	}})
	allText(g, "2")
	allText(g, "STAND") // win $200
	allText(g, "Y")
	allText(g, "3")
	allText(g, "STAND") // lose $300
	out := allText(g, "N")

	if g.Money != 24 {
		t.Fatalf("money = %d, want 24", g.Money)
	}
	if !strings.Contains(out, "TOTAL WON: $200") || !strings.Contains(out, "TOTAL LOST: $300") {
		t.Fatalf("summary totals:\n%s", out)
	}
	if !strings.Contains(out, "NET RESULT: -$100") {
		t.Fatalf("net should match the bankroll delta:\n%s", out)
	}
	if net := g.Stats.TotalWinnings - g.Stats.TotalLosses; net != g.Money-25 {
		t.Errorf("net = %d, bankroll delta = %d", net, g.Money-25)
	}
}

func TestQuitShowsSummary(t *testing.T) {
	g := New(25, &scriptRoller{cards: []int{10, 8, 10, 9}})
	allText(g, "2")
	allText(g, "STAND") // dealer wins
	out := allText(g, "N")
	if !strings.Contains(out, "BLACKJACK SESSION SUMMARY:") {
		t.Fatalf("no summary:\n%s", out)
	}
	if !strings.Contains(out, "THANKS FOR PLAYING") {
		t.Fatalf("no sign-off:\n%s", out)
	}
}
