package loader

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/nmorales/sintown/engine/state"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled defs for referential integrity and
// consistency. Warnings go to stderr; errors fail the load.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if defs.Game.Start == 0 {
		ve.Errors = append(ve.Errors, "Game.start is required")
	} else if _, ok := defs.Rooms[defs.Game.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %d not found in defined rooms", defs.Game.Start))
	}

	if len(defs.Rooms) == 0 {
		ve.Errors = append(ve.Errors, "no rooms defined")
	}

	roomIDs := make([]int, 0, len(defs.Rooms))
	for id := range defs.Rooms {
		roomIDs = append(roomIDs, id)
	}
	sort.Ints(roomIDs)

	for _, id := range roomIDs {
		room := defs.Rooms[id]
		if id < 1 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("room %d: ID must be positive", id))
		}
		if room.Name == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("room %d has no name", id))
		}
		if room.Desc == "" {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf("room %d has no description", id))
		}
		for dir, target := range room.Exits {
			if _, ok := defs.Rooms[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %d exit %s points to undefined room %d", id, dir, target))
			}
		}
	}

	for _, id := range defs.ObjectOrder {
		obj := defs.Objects[id]
		if obj.Name == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("object %d has no name", id))
		}
		if obj.Location != 0 {
			if _, ok := defs.Rooms[obj.Location]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"object %d placed in undefined room %d", id, obj.Location))
			}
		}
		for _, room := range obj.Locations {
			if _, ok := defs.Rooms[room]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"object %d placed in undefined room %d", id, room))
			}
		}
	}

	// Noun resolution walks names by four-character prefix; two objects
	// sharing a name would shadow each other.
	seen := map[string]int{}
	for _, id := range defs.ObjectOrder {
		name := defs.Objects[id].Name
		if prev, dup := seen[name]; dup {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"objects %d and %d share the name %q", prev, id, name))
		} else {
			seen[name] = id
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
