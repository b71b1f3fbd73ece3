// Package save implements versioned JSON serialization of game state.
package save

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nmorales/sintown/engine/state"
)

// FormatVersion is written into every save file. Loads of a different
// version succeed with a warning; the state layout is forgiving enough
// that older saves restore with defaults for missing fields.
const FormatVersion = "1.0"

// SaveData is the on-disk save format. The entire mutable game state is
// embedded; session prompt modes are deliberately absent.
type SaveData struct {
	Version   string       `json:"version"`
	Game      string       `json:"game"`
	Timestamp string       `json:"timestamp"`
	State     *state.State `json:"state"`
}

// Save serializes game state to JSON bytes.
func Save(s *state.State, defs *state.Defs) ([]byte, error) {
	data := SaveData{
		Version:   FormatVersion,
		Game:      defs.Game.Title,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		State:     s,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData. A version mismatch is not
// an error; the caller gets a warning string to show the player.
func Load(data []byte) (*SaveData, string, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, "", err
	}
	if sd.State == nil {
		return nil, "", fmt.Errorf("save file has no state")
	}
	normalize(sd.State)
	var warning string
	if sd.Version != FormatVersion {
		warning = fmt.Sprintf("WARNING: SAVE FORMAT %q, EXPECTED %q. LOADING ANYWAY.", sd.Version, FormatVersion)
	}
	return &sd, warning, nil
}

// normalize ensures collections are never nil after load.
func normalize(s *state.State) {
	if s.Inventory == nil {
		s.Inventory = []int{}
	}
	if s.RoomObjects == nil {
		s.RoomObjects = map[int][]int{}
	}
	if s.Flags == nil {
		s.Flags = map[string]int{}
	}
}

// Apply replaces the live state with the loaded one. The caller must
// also restore the RNG stream and clear any pending prompt mode.
func Apply(live *state.State, sd *SaveData) {
	live.Restore(sd.State)
}
