// Package state manages the mutable game state and lookups against the
// immutable world definitions.
package state

import (
	"sort"

	"github.com/nmorales/sintown/types"
)

// Defs holds the immutable world definitions loaded from Lua.
type Defs struct {
	Game    types.GameDef
	Rooms   map[int]types.RoomDef
	Objects map[int]types.ObjectDef

	// ObjectOrder lists object IDs in ascending order. Noun resolution and
	// room listings iterate it so output and matches are deterministic.
	ObjectOrder []int
}

// BuildOrder populates ObjectOrder from the Objects map.
func (d *Defs) BuildOrder() {
	d.ObjectOrder = make([]int, 0, len(d.Objects))
	for id := range d.Objects {
		d.ObjectOrder = append(d.ObjectOrder, id)
	}
	sort.Ints(d.ObjectOrder)
}

// ObjectName returns the display name for an object ID.
func (d *Defs) ObjectName(id int) string {
	if def, ok := d.Objects[id]; ok {
		return def.Name
	}
	return "SOMETHING ODD"
}

// MaxCarry is the inventory capacity.
const MaxCarry = 8

// StartingMoney is the initial bankroll in $100 units.
const StartingMoney = 25

// MaxScore is the winning score.
const MaxScore = 3

// State is the complete mutable game state. Everything here is
// serializable; session-local prompt modes live on the engine.
type State struct {
	CurrentRoom int               `json:"current_room"`
	Inventory   []int             `json:"inventory"`
	RoomObjects map[int][]int     `json:"room_objects"`
	Flags       map[string]int    `json:"flags"`
	Money       int               `json:"money"` // $100 units, never negative
	Score       int               `json:"score"` // 0..3
	GameOver    bool              `json:"game_over"`
	Rubber      types.RubberProps `json:"rubber"`
	Phone       types.PhoneState  `json:"phone"`
	TurnCount   int               `json:"turn_count"`
	RNGSeed     int64             `json:"rng_seed"`
	RNGPosition int64             `json:"rng_position"`
}

// NewState creates a fresh game state from definitions.
func NewState(defs *Defs, seed int64) *State {
	s := &State{
		CurrentRoom: defs.Game.Start,
		Inventory:   []int{},
		RoomObjects: map[int][]int{},
		Flags:       map[string]int{},
		Money:       StartingMoney,
		RNGSeed:     seed,
	}
	for id := range defs.Rooms {
		s.RoomObjects[id] = []int{}
	}
	for _, id := range defs.ObjectOrder {
		def := defs.Objects[id]
		if def.Location != 0 {
			s.RoomObjects[def.Location] = append(s.RoomObjects[def.Location], id)
		}
		for _, room := range def.Locations {
			s.RoomObjects[room] = append(s.RoomObjects[room], id)
		}
	}
	return s
}

// Flag returns the value of a flag. Unset flags return 0.
func (s *State) Flag(name string) int {
	return s.Flags[name]
}

// FlagSet reports whether a flag is nonzero.
func (s *State) FlagSet(name string) bool {
	return s.Flags[name] != 0
}

// HasItem reports whether the player carries the given object.
func (s *State) HasItem(id int) bool {
	for _, v := range s.Inventory {
		if v == id {
			return true
		}
	}
	return false
}

// ObjectInRoom reports whether the object is present in the given room.
func (s *State) ObjectInRoom(room, id int) bool {
	for _, v := range s.RoomObjects[room] {
		if v == id {
			return true
		}
	}
	return false
}

// ObjectHere reports whether the object is in the current room or carried.
func (s *State) ObjectHere(id int) bool {
	return s.ObjectInRoom(s.CurrentRoom, id) || s.HasItem(id)
}

// RoomWithObject returns the room holding the object, or 0.
func (s *State) RoomWithObject(id int) int {
	for room, objs := range s.RoomObjects {
		for _, v := range objs {
			if v == id {
				return room
			}
		}
	}
	return 0
}

// AddToRoom places an object in a room. Duplicates are not added.
func (s *State) AddToRoom(room, id int) {
	if s.ObjectInRoom(room, id) {
		return
	}
	s.RoomObjects[room] = append(s.RoomObjects[room], id)
}

// RemoveFromRoom deletes an object from a room if present.
func (s *State) RemoveFromRoom(room, id int) {
	objs := s.RoomObjects[room]
	for i, v := range objs {
		if v == id {
			s.RoomObjects[room] = append(objs[:i], objs[i+1:]...)
			return
		}
	}
}

// RemoveFromInventory deletes an object from the inventory if carried.
func (s *State) RemoveFromInventory(id int) {
	for i, v := range s.Inventory {
		if v == id {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return
		}
	}
}

// Snapshot returns a deep copy of the state. Restoring the snapshot with
// Restore yields a state identical to the original.
func (s *State) Snapshot() *State {
	cp := *s
	cp.Inventory = append([]int{}, s.Inventory...)
	cp.RoomObjects = make(map[int][]int, len(s.RoomObjects))
	for room, objs := range s.RoomObjects {
		cp.RoomObjects[room] = append([]int{}, objs...)
	}
	cp.Flags = make(map[string]int, len(s.Flags))
	for k, v := range s.Flags {
		cp.Flags[k] = v
	}
	return &cp
}

// Restore overwrites this state with a deep copy of the snapshot.
func (s *State) Restore(snap *State) {
	*s = *snap.Snapshot()
}
