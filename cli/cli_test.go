package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nmorales/sintown/engine"
	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
)

// testDefs returns a tiny two-room town for CLI testing.
func testDefs() *state.Defs {
	defs := &state.Defs{
		Game: types.GameDef{
			Title: "TEST TOWN",
			Start: 1,
			Intro: "WELCOME TO THE TEST.",
		},
		Rooms: map[int]types.RoomDef{
			1: {
				ID:    1,
				Name:  "A HALLWAY",
				Desc:  "I'M IN A HALLWAY.",
				Exits: map[types.Direction]int{types.North: 2},
			},
			2: {
				ID:    2,
				Name:  "A GARDEN",
				Desc:  "I'M IN A GARDEN.",
				Exits: map[types.Direction]int{types.South: 1},
			},
		},
		Objects: map[int]types.ObjectDef{
			50: {ID: 50, Name: "A NEWSPAPER", Location: 1},
		},
	}
	defs.BuildOrder()
	return defs
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	defs := testDefs()
	eng := engine.New(defs, 1)
	out := &bytes.Buffer{}
	return &CLI{
		Engine:  eng,
		Defs:    defs,
		In:      strings.NewReader(input),
		Out:     out,
		SaveDir: t.TempDir(),
		NoDelay: true,
	}, out
}

func TestRun_IntroAndQuit(t *testing.T) {
	c, out := newTestCLI(t, "QUIT\n")
	c.Run()

	got := out.String()
	if !strings.Contains(got, "TEST TOWN") {
		t.Errorf("no title in output:\n%s", got)
	}
	if !strings.Contains(got, "WELCOME TO THE TEST.") {
		t.Errorf("no intro in output:\n%s", got)
	}
	if !strings.Contains(got, "I'M IN A HALLWAY.") {
		t.Errorf("no starting room in output:\n%s", got)
	}
	if !strings.Contains(got, "SEE YOU LATER!") {
		t.Errorf("no farewell in output:\n%s", got)
	}
}

func TestRun_MovesAndLooks(t *testing.T) {
	c, out := newTestCLI(t, "NORTH\nLOOK\nQUIT\n")
	c.Run()

	if got := out.String(); !strings.Contains(got, "I'M IN A GARDEN.") {
		t.Errorf("move not reflected in output:\n%s", got)
	}
}

func TestRun_SkipsBlankAndCommentLines(t *testing.T) {
	c, out := newTestCLI(t, "\n# a script comment\nQUIT\n")
	c.Run()

	if got := out.String(); strings.Contains(got, "TRY AGAIN") {
		t.Errorf("blank or comment line reached the parser:\n%s", got)
	}
}

func TestRun_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "LOOK\nQUIT\n")
	c.EchoInput = true
	c.Run()

	if got := out.String(); !strings.Contains(got, "LOOK\n") {
		t.Errorf("input not echoed:\n%s", got)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c, out := newTestCLI(t, "TAKE NEWSPAPER\nNORTH\nSAVE\nslot1\nQUIT\n")
	c.Run()
	if got := out.String(); !strings.Contains(got, `SAVED AS "slot1"`) {
		t.Fatalf("save not confirmed:\n%s", got)
	}

	// A fresh CLI sharing the save dir resumes where the first left off.
	c2, out2 := newTestCLI(t, "")
	c2.SaveDir = c.SaveDir
	if err := c2.LoadGame("slot1"); err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if c2.Engine.State.CurrentRoom != 2 {
		t.Errorf("room = %d after load, want 2", c2.Engine.State.CurrentRoom)
	}
	if !c2.Engine.State.HasItem(50) {
		t.Error("inventory lost across save/load")
	}
	if got := out2.String(); !strings.Contains(got, `LOADED "slot1"`) {
		t.Errorf("load not confirmed:\n%s", got)
	}
}

func TestLoadGame_MissingSlot(t *testing.T) {
	c, _ := newTestCLI(t, "")
	if err := c.LoadGame("nope"); err == nil {
		t.Fatal("expected error for missing save slot")
	}
}

func TestSanitizeSlot(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"slot1", "slot1"},
		{"  My Save  ", "mysave"},
		{"../../etc/passwd", "etcpasswd"},
		{"a_b-c", "a_b-c"},
	}
	for _, tc := range cases {
		if got := sanitizeSlot(tc.in); got != tc.want {
			t.Errorf("sanitizeSlot(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
