// Package scraper compiles, executes and updates the Lua provider scripts.
package scraper

import (
	"bytes"
	"sync"

	"github.com/anibridge/anibridge/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// PreCompileAndLoad executes the script at path within the provided LState,
// utilizing a bytecode cache to minimize compilation overhead when several
// states load the same script.
func PreCompileAndLoad(L *lua.LState, scriptPath string) error {
	if cachedProto, exists := bytecodeCache.Load(scriptPath); exists {
		return execProto(L, cachedProto.(*lua.FunctionProto))
	}

	content, err := filesystem.API().ReadFile(scriptPath)
	if err != nil {
		return err
	}

	proto, err := compile(content, scriptPath)
	if err != nil {
		return err
	}

	bytecodeCache.Store(scriptPath, proto)
	return execProto(L, proto)
}

// PreCompileAndLoadBytes executes an in-memory script (the embedded builtin)
// within the provided LState. The chunk name shows up in Lua error messages
// and keys the bytecode cache; builtin names never collide with file paths.
func PreCompileAndLoadBytes(L *lua.LState, chunkName string, content []byte) error {
	if cachedProto, exists := bytecodeCache.Load(chunkName); exists {
		return execProto(L, cachedProto.(*lua.FunctionProto))
	}

	proto, err := compile(content, chunkName)
	if err != nil {
		return err
	}

	bytecodeCache.Store(chunkName, proto)
	return execProto(L, proto)
}

func compile(content []byte, chunkName string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(bytes.NewReader(content), chunkName)
	if err != nil {
		return nil, err
	}

	return lua.Compile(chunk, chunkName)
}

func execProto(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
