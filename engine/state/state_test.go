package state

import (
	"testing"

	"github.com/nmorales/sintown/types"
)

func testDefs() *Defs {
	d := &Defs{
		Game: types.GameDef{Title: "test", Start: 3},
		Rooms: map[int]types.RoomDef{
			1: {ID: 1, Name: "HALLWAY"},
			3: {ID: 3, Name: "BAR", Exits: map[types.Direction]int{types.North: 2}},
		},
		Objects: map[int]types.ObjectDef{
			8:  {ID: 8, Name: "A DESK", Location: 1},
			15: {ID: 15, Name: "THE BARTENDER", Location: 3},
			50: {ID: 50, Name: "A NEWSPAPER", Location: 0},
			52: {ID: 52, Name: "A SHOT OF WHISKEY", Location: 0},
		},
	}
	d.BuildOrder()
	return d
}

func TestNewStatePlacement(t *testing.T) {
	d := testDefs()
	s := NewState(d, 42)

	if s.CurrentRoom != 3 {
		t.Errorf("CurrentRoom = %d, want 3", s.CurrentRoom)
	}
	if s.Money != StartingMoney {
		t.Errorf("Money = %d, want %d", s.Money, StartingMoney)
	}
	if !s.ObjectInRoom(1, 8) || !s.ObjectInRoom(3, 15) {
		t.Error("located objects not placed in their rooms")
	}
	// Location 0 objects stay hidden until revealed.
	for room := range d.Rooms {
		if s.ObjectInRoom(room, 50) {
			t.Errorf("hidden object 50 placed in room %d", room)
		}
	}
	if s.RNGSeed != 42 {
		t.Errorf("RNGSeed = %d, want 42", s.RNGSeed)
	}
}

func TestObjectOrderAscending(t *testing.T) {
	d := testDefs()
	for i := 1; i < len(d.ObjectOrder); i++ {
		if d.ObjectOrder[i-1] >= d.ObjectOrder[i] {
			t.Fatalf("ObjectOrder not ascending: %v", d.ObjectOrder)
		}
	}
}

func TestRoomManipulation(t *testing.T) {
	d := testDefs()
	s := NewState(d, 1)

	s.AddToRoom(3, 50)
	s.AddToRoom(3, 50) // no duplicate
	n := 0
	for _, id := range s.RoomObjects[3] {
		if id == 50 {
			n++
		}
	}
	if n != 1 {
		t.Errorf("object 50 appears %d times in room 3, want 1", n)
	}

	s.RemoveFromRoom(3, 50)
	if s.ObjectInRoom(3, 50) {
		t.Error("object 50 still in room 3 after removal")
	}

	if got := s.RoomWithObject(8); got != 1 {
		t.Errorf("RoomWithObject(8) = %d, want 1", got)
	}
	if got := s.RoomWithObject(99); got != 0 {
		t.Errorf("RoomWithObject(99) = %d, want 0", got)
	}
}

func TestInventory(t *testing.T) {
	d := testDefs()
	s := NewState(d, 1)

	s.Inventory = append(s.Inventory, 50, 52)
	if !s.HasItem(50) || !s.HasItem(52) {
		t.Fatal("HasItem false for carried objects")
	}
	s.RemoveFromInventory(50)
	if s.HasItem(50) {
		t.Error("object 50 still held after removal")
	}
	if !s.HasItem(52) {
		t.Error("object 52 lost by removing 50")
	}
}

func TestSnapshotRestore(t *testing.T) {
	d := testDefs()
	s := NewState(d, 7)
	s.Flags["drawer_opened"] = 1
	s.Inventory = append(s.Inventory, 50)
	s.Money = 12
	s.Score = 2
	s.Rubber.Color = "RED"
	s.Phone.Ringing = true

	snap := s.Snapshot()

	// Mutate the original; snapshot must not move.
	s.Flags["drawer_opened"] = 0
	s.Inventory = s.Inventory[:0]
	s.Money = 0
	s.AddToRoom(3, 52)

	s.Restore(snap)
	if s.Flags["drawer_opened"] != 1 {
		t.Error("flag not restored")
	}
	if !s.HasItem(50) {
		t.Error("inventory not restored")
	}
	if s.Money != 12 || s.Score != 2 {
		t.Errorf("money/score = %d/%d, want 12/2", s.Money, s.Score)
	}
	if s.ObjectInRoom(3, 52) {
		t.Error("room contents not restored")
	}
	if s.Rubber.Color != "RED" || !s.Phone.Ringing {
		t.Error("rubber/phone state not restored")
	}
}

func TestObjectName(t *testing.T) {
	d := testDefs()
	if got := d.ObjectName(15); got != "THE BARTENDER" {
		t.Errorf("ObjectName(15) = %q", got)
	}
	if got := d.ObjectName(999); got != "SOMETHING ODD" {
		t.Errorf("ObjectName(999) = %q, want placeholder", got)
	}
}
