package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// rawRoom and rawObject hold a definition as captured from Lua, before
// compilation into typed defs.
type rawRoom struct {
	id    int
	table *lua.LTable
}

type rawObject struct {
	id    int
	table *lua.LTable
}

// registerAPI registers the Lua constructors as globals.
//
// The data files use a curried style:
//
//	Game { title = "...", start = 3 }
//	Room (1) { name = "HALLWAY", desc = "...", exits = { N = 2 } }
//	Object (50) { name = "A NEWSPAPER", location = 5 }
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.objects = append(coll.objects, rawObject{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
