package loader

import (
	"fmt"
	"strings"

	"github.com/nmorales/sintown/engine/state"
	"github.com/nmorales/sintown/types"
	lua "github.com/yuin/gopher-lua"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// exitKeys maps the single-letter direction keys used in the data files
// to canonical directions.
var exitKeys = map[string]types.Direction{
	"N": types.North, "S": types.South,
	"E": types.East, "W": types.West,
	"U": types.Up, "D": types.Down,
}

// compileExits converts { N = 2, U = 5 } into a direction map.
func compileExits(tbl *lua.LTable) (map[types.Direction]int, error) {
	exits := map[types.Direction]int{}
	if tbl == nil {
		return exits, nil
	}
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("exit key %v is not a string", k)
			return
		}
		dir, ok := exitKeys[strings.ToUpper(string(ks))]
		if !ok {
			err = fmt.Errorf("unknown exit direction %q", ks)
			return
		}
		vn, ok := v.(lua.LNumber)
		if !ok {
			err = fmt.Errorf("exit %q target %v is not a room ID", ks, v)
			return
		}
		exits[dir] = int(vn)
	})
	return exits, err
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		Rooms:   map[int]types.RoomDef{},
		Objects: map[int]types.ObjectDef{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game block defined")
	}
	defs.Game = types.GameDef{
		Title:   getString(coll.game, "title"),
		Author:  getString(coll.game, "author"),
		Version: getString(coll.game, "version"),
		Start:   getInt(coll.game, "start"),
		Intro:   getString(coll.game, "intro"),
	}

	for _, raw := range coll.rooms {
		if _, dup := defs.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("duplicate room %d", raw.id)
		}
		exits, err := compileExits(getTable(raw.table, "exits"))
		if err != nil {
			return nil, fmt.Errorf("room %d: %w", raw.id, err)
		}
		defs.Rooms[raw.id] = types.RoomDef{
			ID:    raw.id,
			Name:  getString(raw.table, "name"),
			Desc:  getString(raw.table, "desc"),
			Exits: exits,
		}
	}

	for _, raw := range coll.objects {
		if _, dup := defs.Objects[raw.id]; dup {
			return nil, fmt.Errorf("duplicate object %d", raw.id)
		}
		obj := types.ObjectDef{
			ID:       raw.id,
			Name:     strings.ToUpper(getString(raw.table, "name")),
			Look:     getString(raw.table, "look"),
			Location: getInt(raw.table, "location"),
		}
		if locs := getTable(raw.table, "locations"); locs != nil {
			for i := 1; i <= locs.MaxN(); i++ {
				if n, ok := locs.RawGetInt(i).(lua.LNumber); ok {
					obj.Locations = append(obj.Locations, int(n))
				}
			}
		}
		defs.Objects[raw.id] = obj
	}

	defs.BuildOrder()
	return defs, nil
}
