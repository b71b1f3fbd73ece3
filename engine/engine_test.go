package engine

import (
	"strings"
	"testing"

	"github.com/nmorales/sintown/gamedata"
	"github.com/nmorales/sintown/loader"
	"github.com/nmorales/sintown/types"
)

// newTestEngine loads the embedded world and starts an engine on it.
func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	defs, err := loader.LoadFS(gamedata.FS)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	return New(defs, seed)
}

func eventText(events []types.OutputEvent) string {
	var b strings.Builder
	for _, e := range events {
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func stepText(t *testing.T, e *Engine, input string) string {
	t.Helper()
	return eventText(e.Step(input).Events)
}

func TestDrawerDiscovery(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 1

	if got := stepText(t, e, "LOOK DESK"); strings.Contains(got, "I SEE SOMETHING") {
		t.Fatalf("desk revealed newspaper before drawer opened:\n%s", got)
	}
	if got := stepText(t, e, "OPEN DESK"); !strings.Contains(got, "OK") {
		t.Fatalf("OPEN DESK = %q", got)
	}
	if got := stepText(t, e, "LOOK DESK"); !strings.Contains(got, "I SEE SOMETHING") {
		t.Fatalf("LOOK DESK after opening = %q", got)
	}
	if !e.State.ObjectInRoom(1, 50) {
		t.Fatal("newspaper not revealed in room 1")
	}

	// The discovery fires once.
	if got := stepText(t, e, "LOOK DESK"); strings.Contains(got, "I SEE SOMETHING") {
		t.Fatalf("discovery fired twice:\n%s", got)
	}
}

func TestTakeDropConservation(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 1
	e.State.AddToRoom(1, 50)

	stepText(t, e, "TAKE NEWSPAPER")
	if !e.State.HasItem(50) {
		t.Fatal("newspaper not in inventory after TAKE")
	}
	if e.State.ObjectInRoom(1, 50) {
		t.Fatal("newspaper still in room after TAKE")
	}

	stepText(t, e, "DROP NEWSPAPER")
	if e.State.HasItem(50) {
		t.Fatal("newspaper still in inventory after DROP")
	}
	if !e.State.ObjectInRoom(1, 50) {
		t.Fatal("newspaper not back in room after DROP")
	}
}

func TestTakeRefusals(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 2

	// Fixtures stay put.
	if got := stepText(t, e, "TAKE MIRROR"); !strings.Contains(got, "CAN'T DO THAT") {
		t.Fatalf("TAKE MIRROR = %q", got)
	}
	// Absent items.
	if got := stepText(t, e, "TAKE HAMMER"); !strings.Contains(got, "I DON'T SEE IT HERE") {
		t.Fatalf("TAKE HAMMER = %q", got)
	}
}

func TestInventoryCap(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.Inventory = []int{50, 51, 52, 53, 55, 57, 59, 60}
	e.State.AddToRoom(e.State.CurrentRoom, 66)

	got := stepText(t, e, "TAKE KNIFE")
	if !strings.Contains(got, "I'M CARRYING TOO MUCH") {
		t.Fatalf("TAKE over cap = %q", got)
	}
	if len(e.State.Inventory) != 8 {
		t.Fatalf("inventory size = %d, want 8", len(e.State.Inventory))
	}
	if e.State.HasItem(66) {
		t.Fatal("knife taken past the cap")
	}
}

func TestBuyRespectsInventoryCap(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 24
	e.State.Inventory = []int{50, 51, 52, 53, 55, 57, 59, 60}
	e.State.AddToRoom(24, 68)
	money := e.State.Money

	for _, cmd := range []string{"BUY PILLS", "BUY MAGAZINE", "BUY RUBBER"} {
		if got := stepText(t, e, cmd); !strings.Contains(got, "I'M CARRYING TOO MUCH") {
			t.Fatalf("%s = %q", cmd, got)
		}
	}
	if len(e.State.Inventory) != 8 {
		t.Fatalf("inventory size = %d, want 8", len(e.State.Inventory))
	}
	if e.State.Money != money {
		t.Errorf("money = %d, want %d", e.State.Money, money)
	}
	if e.Prompting() {
		t.Error("refused rubber sale should not start the questions")
	}
}

func TestRubberSaleBlockedWhenHandsFill(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 24
	e.State.Inventory = []int{50, 51, 52, 53}

	stepText(t, e, "BUY RUBBER")
	if !e.Prompting() {
		t.Fatal("pharmacist questions did not start")
	}
	stepText(t, e, "RED")
	stepText(t, e, "CHERRY")
	stepText(t, e, "Y")

	// Hands full by the last question.
	e.State.Inventory = []int{50, 51, 52, 53, 55, 57, 59, 60}
	if got := stepText(t, e, "N"); !strings.Contains(got, "I'M CARRYING TOO MUCH") {
		t.Fatalf("final answer = %q", got)
	}
	if e.State.HasItem(69) || e.State.Rubber.Bought {
		t.Error("rubber sold past the cap")
	}
	if e.Prompting() {
		t.Error("questions should end after the refusal")
	}
}

func TestPimpAttentionFollowsTheChannel(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 5
	e.State.Inventory = []int{84}
	e.State.Score = 1

	// Whatever airs, the distraction flag must match the screen.
	for i := 0; i < 50; i++ {
		got := stepText(t, e, "TV ON")
		want := 0
		if strings.Contains(got, "CABLE TV") {
			want = 1
		}
		if e.State.Flag("pimp_distracted") != want {
			t.Fatalf("pimp_distracted = %d, want %d after:\n%s", e.State.Flag("pimp_distracted"), want, got)
		}
	}

	e.State.Flags["pimp_distracted"] = 1
	stepText(t, e, "TV OFF")
	if e.State.FlagSet("pimp_distracted") {
		t.Error("distraction should end with the TV off")
	}
}

func TestEmptyInputIsNoOp(t *testing.T) {
	e := newTestEngine(t, 1)
	turns := e.State.TurnCount
	res := e.Step("   ")
	if len(res.Events) != 0 {
		t.Fatalf("events = %v, want none", res.Events)
	}
	if e.State.TurnCount != turns {
		t.Errorf("turn count = %d, want %d", e.State.TurnCount, turns)
	}
}

func TestFatalMoveWithoutRope(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 10
	e.State.Score = 2

	got := stepText(t, e, "WEST")
	if !strings.Contains(got, "SPLAAATTTTT") {
		t.Fatalf("fatal move output = %q", got)
	}
	if !strings.Contains(got, "PURGATORY") {
		t.Fatalf("no purgatory prompt:\n%s", got)
	}
	if !e.Prompting() {
		t.Fatal("engine not waiting on a door choice")
	}
	if e.State.Score != 2 {
		t.Fatalf("score = %d after death, want 2", e.State.Score)
	}
	if !e.State.GameOver {
		t.Fatal("GameOver not set on fatal move")
	}
}

func TestTalkAndPay(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 3

	if got := stepText(t, e, "TALK BARTENDER"); !strings.Contains(got, "HE SAYS") {
		t.Fatalf("TALK BARTENDER = %q", got)
	}
	if got := stepText(t, e, "TALK PREACHER"); !strings.Contains(got, "THEY'RE NOT HERE") {
		t.Fatalf("TALK to absent character = %q", got)
	}

	e.State.CurrentRoom = 5
	if got := stepText(t, e, "PAY PIMP"); !strings.Contains(got, "TAKES $1000") {
		t.Fatalf("PAY PIMP = %q", got)
	}
	if e.State.Money != 15 {
		t.Fatalf("money = %d after paying, want 15", e.State.Money)
	}
	if !e.State.FlagSet("pimp_paid") {
		t.Fatal("pimp_paid not set")
	}
	if got := stepText(t, e, "PAY PIMP"); !strings.Contains(got, "ALREADY PAID") {
		t.Fatalf("double payment = %q", got)
	}
}

func TestRopeCoversTheDescent(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 10
	e.State.Flags["using_rope"] = 1

	stepText(t, e, "WEST")
	if e.Prompting() {
		t.Fatal("died despite the rope")
	}
	if e.State.CurrentRoom != 8 {
		t.Fatalf("room = %d, want 8", e.State.CurrentRoom)
	}
}

func TestPurgatoryDoors(t *testing.T) {
	e := newTestEngine(t, 7)
	e.State.CurrentRoom = 10
	e.State.Score = 1
	stepText(t, e, "WEST")

	// Garbage answers re-prompt without consuming a door.
	if got := stepText(t, e, "MAYBE"); !strings.Contains(got, "CHOOSE 1, 2, OR 3") {
		t.Fatalf("bad door answer = %q", got)
	}
	if got := stepText(t, e, "9"); !strings.Contains(got, "CHOOSE 1, 2, OR 3") {
		t.Fatalf("out-of-range door = %q", got)
	}

	// Keep choosing until a door resolves the stay.
	var last string
	for i := 0; i < 100 && e.Prompting(); i++ {
		last = stepText(t, e, "1")
	}
	if e.Prompting() {
		t.Fatal("doors never resolved")
	}
	switch {
	case e.State.GameOver:
		if !strings.Contains(last, "GAME OVER") {
			t.Fatalf("game over without message: %q", last)
		}
	default:
		if e.State.CurrentRoom != 1 {
			t.Fatalf("revived in room %d, want 1", e.State.CurrentRoom)
		}
		if !strings.Contains(last, "ALIVE") {
			t.Fatalf("revival without message: %q", last)
		}
	}
	if e.State.Score != 1 {
		t.Fatalf("score = %d after purgatory, want 1", e.State.Score)
	}
}

func TestGameOverBlocksCommands(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.GameOver = true

	got := stepText(t, e, "LOOK")
	if !strings.Contains(got, "THE GAME IS OVER") {
		t.Fatalf("post-game-over step = %q", got)
	}
}

func TestGiftThreshold(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 21
	e.State.Inventory = []int{60, 57, 51}

	if got := stepText(t, e, "GIVE CANDY"); !strings.Contains(got, "SMILES") {
		t.Fatalf("candy gift = %q", got)
	}
	if got := stepText(t, e, "GIVE FLOWERS"); !strings.Contains(got, "BLUSHES") {
		t.Fatalf("flower gift = %q", got)
	}
	got := stepText(t, e, "GIVE RING")
	if !strings.Contains(got, "MARRIAGE CENTER") {
		t.Fatalf("third gift = %q", got)
	}
	if e.State.Flag("girl_points") != 4 {
		t.Fatalf("girl_points = %d, want 4", e.State.Flag("girl_points"))
	}
	if e.State.ObjectInRoom(21, 49) {
		t.Fatal("girl still at the disco")
	}
	if !e.State.ObjectInRoom(12, 49) {
		t.Fatal("girl not at the marriage center")
	}
}

func TestRepeatGiftIgnored(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 21
	e.State.Inventory = []int{60}
	stepText(t, e, "GIVE CANDY")

	// A second box of candy is just a dropped box of candy.
	e.State.Inventory = []int{60}
	e.State.RemoveFromRoom(21, 60)
	if got := stepText(t, e, "GIVE CANDY"); strings.Contains(got, "SMILES") {
		t.Fatalf("candy counted twice: %q", got)
	}
	if e.State.Flag("girl_points") != 1 {
		t.Fatalf("girl_points = %d, want 1", e.State.Flag("girl_points"))
	}
}

func TestPasswordFlow(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 3

	if got := stepText(t, e, "EAST"); !strings.Contains(got, "CURTAIN IS DRAWN SHUT") {
		t.Fatalf("curtain gate = %q", got)
	}

	if got := stepText(t, e, "PUSH BUTTON"); !strings.Contains(got, "PASSWORD") {
		t.Fatalf("PUSH BUTTON = %q", got)
	}
	if !e.Prompting() {
		t.Fatal("engine not waiting for a password")
	}

	if got := stepText(t, e, "SWORDFISH"); !strings.Contains(got, "WRONG") {
		t.Fatalf("wrong password = %q", got)
	}
	if e.Prompting() {
		t.Fatal("wrong password left the prompt open")
	}

	stepText(t, e, "PUSH BUTTON")
	if got := stepText(t, e, "BELLYBUTTON"); !strings.Contains(got, "CURTAIN PULLS BACK") {
		t.Fatalf("right password = %q", got)
	}

	stepText(t, e, "EAST")
	if e.State.CurrentRoom != 5 {
		t.Fatalf("room = %d after password, want 5", e.State.CurrentRoom)
	}
}

func TestPasswordPrefixMatch(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 3
	stepText(t, e, "PUSH BUTTON")

	// Only the first four letters count.
	if got := stepText(t, e, "BELLHOP"); !strings.Contains(got, "CURTAIN PULLS BACK") {
		t.Fatalf("prefix password = %q", got)
	}
}

func TestShopliftingIsFatal(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 24

	got := stepText(t, e, "TAKE PILLS")
	if !strings.Contains(got, "SHOPLIFTER") {
		t.Fatalf("shoplifting = %q", got)
	}
	if !e.Prompting() {
		t.Fatal("shoplifting did not end in purgatory")
	}
}

func TestTiedToBedBlocksMovement(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 16
	e.State.Flags["tied_to_bed"] = 1

	if got := stepText(t, e, "EAST"); !strings.Contains(got, "TIED TO THE BED") {
		t.Fatalf("tied move = %q", got)
	}
	if e.State.CurrentRoom != 16 {
		t.Fatalf("moved while tied: room %d", e.State.CurrentRoom)
	}
}

func TestSlotsSession(t *testing.T) {
	e := newTestEngine(t, 3)
	e.State.CurrentRoom = 13

	if got := stepText(t, e, "PLAY SLOTS"); !strings.Contains(got, "PLACE YOUR BET") {
		t.Fatalf("PLAY SLOTS = %q", got)
	}
	if !e.Prompting() {
		t.Fatal("slots session not prompting")
	}

	got := stepText(t, e, "1")
	if !strings.Contains(got, "SPINNING") {
		t.Fatalf("spin output = %q", got)
	}
	got = stepText(t, e, "N")
	if !strings.Contains(got, "SESSION SUMMARY") {
		t.Fatalf("session end = %q", got)
	}
	if e.Prompting() {
		t.Fatal("slots session still open after N")
	}

	// Bet 1 on a 25 bankroll: lose to 24, pair pays to 27, triple to 39.
	switch e.State.Money {
	case 24, 27, 39:
	default:
		t.Fatalf("money = %d after one $100 spin", e.State.Money)
	}
}

func TestSlotsNeedsTheCasino(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 3
	if got := stepText(t, e, "PLAY SLOTS"); !strings.Contains(got, "NO SLOT MACHINES") {
		t.Fatalf("PLAY SLOTS in bar = %q", got)
	}
}

func TestBlackjackSession(t *testing.T) {
	e := newTestEngine(t, 5)
	e.State.CurrentRoom = 14

	if got := stepText(t, e, "PLAY 21"); !strings.Contains(got, "PLACE YOUR BET") {
		t.Fatalf("PLAY 21 = %q", got)
	}
	stepText(t, e, "1")
	stepText(t, e, "STAND")
	stepText(t, e, "N")
	if e.Prompting() {
		t.Fatal("blackjack session still open after N")
	}
	// Standing a $100 bet can at worst lose it, at best win a natural.
	if e.State.Money < 23 || e.State.Money > 27 {
		t.Fatalf("money = %d after one $100 hand", e.State.Money)
	}
}

func TestTaxiRide(t *testing.T) {
	e := newTestEngine(t, 1)
	e.State.CurrentRoom = 4

	if got := stepText(t, e, "HAIL TAXI"); !strings.Contains(got, "WHERE TO MAC") {
		t.Fatalf("HAIL TAXI = %q", got)
	}
	if got := stepText(t, e, "MOON"); !strings.Contains(got, "PICK ONE MAC") {
		t.Fatalf("bad destination = %q", got)
	}
	stepText(t, e, "CASINO")
	if e.State.CurrentRoom != 13 {
		t.Fatalf("room = %d after taxi, want 13", e.State.CurrentRoom)
	}
	if e.State.Money != 24 {
		t.Fatalf("money = %d after fare, want 24", e.State.Money)
	}
}

func TestUnknownVerb(t *testing.T) {
	e := newTestEngine(t, 1)
	got := stepText(t, e, "DEFENESTRATE BARTENDER")
	if !strings.Contains(got, "I DON'T KNOW HOW TO DEFENESTRATE") {
		t.Fatalf("unknown verb = %q", got)
	}
}

func TestSaveAndQuitRequests(t *testing.T) {
	e := newTestEngine(t, 1)
	if res := e.Step("SAVE"); !res.SaveRequested {
		t.Fatal("SAVE did not request a save")
	}
	if res := e.Step("QUIT"); !res.QuitRequested {
		t.Fatal("QUIT did not request an exit")
	}
}

func TestIntroShowsTitleAndRoom(t *testing.T) {
	e := newTestEngine(t, 1)
	got := eventText(e.Intro())
	if !strings.Contains(got, e.Defs.Game.Title) {
		t.Fatalf("intro missing title:\n%s", got)
	}
	if !strings.Contains(got, "OTHER AREAS ARE") {
		t.Fatalf("intro missing room exits:\n%s", got)
	}
}
