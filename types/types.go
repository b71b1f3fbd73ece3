// Package types defines the shared data structures for the Sintown engine.
// This package contains only type definitions — no logic, no methods.
package types

// Command is the parsed representation of a player input line.
type Command struct {
	Verb   string
	Object string // optional, already uppercased
}

// Style classifies an output line for presentation.
type Style int

const (
	StyleNormal Style = iota
	StyleTitle        // room name / banner
	StyleDesc         // room description
	StyleList         // exits / items / inventory lines
	StyleEcho         // echoed player input
	StyleSystem       // meta-command output
	StyleError        // refusals and parse errors
	StyleDeath        // fatal outcome text
	StyleWin          // ending text
)

// OutputEvent is one line of narrative output with presentation hints.
// DelayMs is advisory pacing metadata; front ends may ignore it.
type OutputEvent struct {
	Text    string
	Style   Style
	DelayMs int
}

// Direction is a canonical movement direction.
type Direction string

const (
	North Direction = "NORTH"
	South Direction = "SOUTH"
	East  Direction = "EAST"
	West  Direction = "WEST"
	Up    Direction = "UP"
	Down  Direction = "DOWN"
)

// EffectKind tags an Effect variant.
type EffectKind int

const (
	EffShowText EffectKind = iota
	EffReveal              // place Object into Room
	EffSetFlag             // Flags[Flag] = Value
	EffAddFlag             // Flags[Flag] += Value
	EffMoveObject          // move Object from FromRoom to Room
	EffGiveObject          // put Object into inventory
	EffRemoveObject        // delete Object from world and inventory
	EffAddMoney            // Money += Value (clamped at 0)
	EffAddScore            // Score += Value (clamped 0..3)
	EffTeleport            // CurrentRoom = Room
	EffEndGame             // fatal: Text is the death line
)

// Effect is a single atomic state mutation instruction.
// Only the fields relevant to its Kind are set.
type Effect struct {
	Kind     EffectKind
	Text     string
	Style    Style
	DelayMs  int
	Object   int
	Room     int
	FromRoom int
	Flag     string
	Value    int
}

// RoomDef is the immutable definition of a room.
type RoomDef struct {
	ID    int
	Name  string
	Desc  string
	Exits map[Direction]int
}

// ObjectDef is the immutable definition of a world object.
// Objects with ID >= PortableMin can be picked up.
type ObjectDef struct {
	ID        int
	Name      string // canonical display name, uppercase
	Look      string // examine text; empty = "I SEE NOTHING SPECIAL"
	Location  int    // initial room; 0 = not placed (hidden or spawned later)
	Locations []int  // fixtures that start in several rooms (phones, signs)
}

// PortableMin is the lowest object ID that can be carried.
const PortableMin = 50

// GameDef holds game metadata from the data files.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Start   int // starting room ID
	Intro   string
}

// RubberProps records the prophylactic customization chosen at the pharmacy.
type RubberProps struct {
	Color      string `json:"color"`
	Flavor     string `json:"flavor"`
	Lubricated bool   `json:"lubricated"`
	Ribbed     bool   `json:"ribbed"`
	Bought     bool   `json:"bought"`
}

// PhoneState holds the answers collected by the 555-6969 question
// sequence and whether the penthouse phone is ringing.
type PhoneState struct {
	Name     string `json:"name"`
	HerPart  string `json:"her_part"`
	Activity string `json:"activity"`
	YourPart string `json:"your_part"`
	Object   string `json:"object"`
	Ringing  bool   `json:"ringing"`
}

// Result is the output of a single game step.
type Result struct {
	Events        []OutputEvent
	SaveRequested bool // player issued SAVE; front end performs the write
	QuitRequested bool // player issued QUIT or the game ended permanently
	Won           bool // score reached 3 this step
}
