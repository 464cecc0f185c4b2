// Package native bridges the catalog capability contract to Lua provider scripts.
package native

import _ "embed"

//go:embed builtin/allanime.lua
var allanimeScript []byte

// BuiltinNames lists the provider scripts shipped embedded in the binary.
// A user script of the same name under the sources dir takes priority.
func BuiltinNames() []string {
	return []string{"allanime"}
}

func builtinScript(name string) ([]byte, bool) {
	switch name {
	case "allanime":
		return allanimeScript, true
	default:
		return nil, false
	}
}
