package loader

import (
	"testing"

	"github.com/nmorales/sintown/types"
	lua "github.com/yuin/gopher-lua"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a
// fresh collector.
func newTestVM() (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{}
	registerAPI(L, coll)
	return L, coll
}

func TestCompileGame(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	err := L.DoString(`
Game {
	title = "SIN TOWN",
	author = "C. BENTON",
	version = "2.1",
	start = 3,
	intro = "PLEASE WAIT... INITIALIZING",
}
Room (3) { name = "BAR", desc = "I'M IN A SLEAZY BAR." }
`)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}

	defs, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if defs.Game.Title != "SIN TOWN" || defs.Game.Author != "C. BENTON" {
		t.Errorf("game metadata mismatch: %+v", defs.Game)
	}
	if defs.Game.Start != 3 {
		t.Errorf("expected start 3, got %d", defs.Game.Start)
	}
	if defs.Game.Intro == "" {
		t.Error("expected an intro")
	}
}

func TestCompileExits(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	err := L.DoString(`
Game { title = "T", start = 1 }
Room (1) { name = "A", desc = "D", exits = { N = 2, s = 3, U = 4 } }
Room (2) { name = "B", desc = "D" }
Room (3) { name = "C", desc = "D" }
Room (4) { name = "E", desc = "D" }
`)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}

	defs, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	exits := defs.Rooms[1].Exits
	if exits[types.North] != 2 {
		t.Errorf("expected north 2, got %d", exits[types.North])
	}
	// Lowercase keys are accepted.
	if exits[types.South] != 3 {
		t.Errorf("expected south 3, got %d", exits[types.South])
	}
	if exits[types.Up] != 4 {
		t.Errorf("expected up 4, got %d", exits[types.Up])
	}
}

func TestCompile_BadExitDirection(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	err := L.DoString(`
Game { title = "T", start = 1 }
Room (1) { name = "A", desc = "D", exits = { Q = 2 } }
`)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}
	if _, err := compile(coll); err == nil {
		t.Fatal("expected error for unknown exit direction")
	}
}

func TestCompile_DuplicateRoom(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	err := L.DoString(`
Game { title = "T", start = 1 }
Room (1) { name = "A", desc = "D" }
Room (1) { name = "B", desc = "D" }
`)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}
	if _, err := compile(coll); err == nil {
		t.Fatal("expected error for duplicate room")
	}
}

func TestCompile_DuplicateObject(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	err := L.DoString(`
Game { title = "T", start = 1 }
Room (1) { name = "A", desc = "D" }
Object (50) { name = "A THING", location = 1 }
Object (50) { name = "ANOTHER THING", location = 1 }
`)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}
	if _, err := compile(coll); err == nil {
		t.Fatal("expected error for duplicate object")
	}
}

func TestCompile_NoGameBlock(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	if err := L.DoString(`Room (1) { name = "A", desc = "D" }`); err != nil {
		t.Fatalf("Lua error: %v", err)
	}
	if _, err := compile(coll); err == nil {
		t.Fatal("expected error when Game block is missing")
	}
}

func TestCompile_ObjectLookText(t *testing.T) {
	L, coll := newTestVM()
	defer L.Close()

	err := L.DoString(`
Game { title = "T", start = 1 }
Room (1) { name = "A", desc = "D" }
Object (50) { name = "A MIRROR", location = 1, look = "THERE'S A PERVERT LOOKING BACK AT ME!!!" }
`)
	if err != nil {
		t.Fatalf("Lua error: %v", err)
	}
	defs, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if defs.Objects[50].Look == "" {
		t.Error("expected look text to survive compilation")
	}
}
