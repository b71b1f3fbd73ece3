// Package resolve maps noun phrases from parsed commands to object IDs.
package resolve

import (
	"strings"

	"github.com/nmorales/sintown/engine/state"
)

// Noun resolves a noun phrase to an object ID, or 0 if nothing matches.
//
// The rule is the classic one: take the first four characters of the
// uppercased phrase and look for them as a substring of each canonical
// object name, walking the registry in ascending ID order. The first hit
// wins, so "WIND" finds the window before anything else that happens to
// contain those letters. Shorter phrases match as-is.
func Noun(defs *state.Defs, noun string) int {
	noun = strings.ToUpper(strings.TrimSpace(noun))
	if noun == "" {
		return 0
	}

	prefix := noun
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	for _, id := range defs.ObjectOrder {
		if strings.Contains(strings.ToUpper(defs.Objects[id].Name), prefix) {
			return id
		}
	}
	return 0
}
