// Package gamedata embeds the default world definition. The Lua files
// here are data, not scripts: they only call the loader's constructors.
package gamedata

import "embed"

//go:embed *.lua
var FS embed.FS
