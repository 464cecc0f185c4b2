// Package native bridges the catalog capability contract to Lua provider scripts.
package native

import (
	"fmt"
	"sort"
	"sync"

	"github.com/anibridge/anibridge/catalog"
	"github.com/anibridge/anibridge/constant"
	lua "github.com/yuin/gopher-lua"
)

// Adapter serves catalog capabilities from a loaded Lua script. The script
// binds capabilities by defining global functions; the binding is resolved
// once at construction and never re-probed. An LState is not goroutine-safe,
// so a mutex serializes every call into it.
type Adapter struct {
	name  string
	state *lua.LState
	mu    sync.Mutex
	fns   map[string]string
}

// IDfromName generates a canonical provider identifier for a script basename.
func IDfromName(name string) string {
	return name + " native"
}

// Name returns the provider name.
func (a *Adapter) Name() string {
	return a.name
}

// ID returns the provider ID.
func (a *Adapter) ID() string {
	return IDfromName(a.name)
}

// Close releases the underlying Lua state. Only tests and failed loads call
// this; an adapter serving requests lives as long as the process.
func (a *Adapter) Close() {
	a.state.Close()
}

// Capabilities lists the capability names the script binds, sorted.
func (a *Adapter) Capabilities() []string {
	caps := make([]string, 0, len(a.fns))
	for capability := range a.fns {
		caps = append(caps, capability)
	}

	sort.Strings(caps)
	return caps
}

func newAdapter(name string, state *lua.LState) (*Adapter, error) {
	fns := bindCapabilities(state)
	if len(fns) == 0 {
		return nil, fmt.Errorf("script %s defines no known capability function", name)
	}

	return &Adapter{
		name:  name,
		state: state,
		fns:   fns,
	}, nil
}

// bindCapabilities probes the alias list of every capability against the
// script's globals and keeps the first name bound to a function.
func bindCapabilities(state *lua.LState) map[string]string {
	fns := make(map[string]string)
	for capability, aliases := range constant.ScriptAliases {
		for _, alias := range aliases {
			if state.GetGlobal(alias).Type() == lua.LTFunction {
				fns[capability] = alias
				break
			}
		}
	}

	return fns
}

// call executes the global bound to a capability safely. A capability the
// script does not bind reports ErrEmpty; a raised Lua error is wrapped in
// CallError and never propagates as a panic.
func (a *Adapter) call(capability string, args ...lua.LValue) (lua.LValue, error) {
	fn, ok := a.fns[capability]
	if !ok {
		return nil, catalog.ErrEmpty
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	luaFn := a.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, &catalog.CallError{
			Provider:   a.name,
			Capability: capability,
			Err:        fmt.Errorf("global %s is no longer a function", fn),
		}
	}

	err := a.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)

	if err != nil {
		return nil, &catalog.CallError{
			Provider:   a.name,
			Capability: capability,
			Err:        err,
		}
	}

	retval := a.state.Get(-1)
	a.state.Pop(1) // Clean stack

	return retval, nil
}

// callRecords runs a sequence-valued capability and translates the result.
// Scripts return either a bare array of records or a table wrapping one
// under a "results" field; anything else counts as empty.
func (a *Adapter) callRecords(capability string, args ...lua.LValue) ([]catalog.Raw, error) {
	val, err := a.call(capability, args...)
	if err != nil {
		return nil, err
	}

	table, ok := val.(*lua.LTable)
	if !ok {
		return nil, catalog.ErrEmpty
	}

	if inner, ok := unwrapResults(table); ok {
		table = inner
	}

	records := recordsOf(table)
	if len(records) == 0 {
		return nil, catalog.ErrEmpty
	}

	return records, nil
}

// callRecord runs a record-valued capability. A one-element array answer is
// accepted and unwrapped, since some scripts reuse their listing helpers.
func (a *Adapter) callRecord(capability string, args ...lua.LValue) (catalog.Raw, error) {
	val, err := a.call(capability, args...)
	if err != nil {
		return nil, err
	}

	table, ok := val.(*lua.LTable)
	if !ok {
		return nil, catalog.ErrEmpty
	}

	if inner, ok := unwrapResults(table); ok {
		table = inner
	}

	if first, ok := table.RawGetInt(1).(*lua.LTable); ok {
		table = first
	}

	record := recordOf(table)
	if len(record) == 0 {
		return nil, catalog.ErrEmpty
	}

	return record, nil
}

func unwrapResults(table *lua.LTable) (*lua.LTable, bool) {
	inner, ok := table.RawGetString("results").(*lua.LTable)
	return inner, ok
}
