package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package stay closed.
}

// removedGlobals load code from disk or strings outside the sandbox.
var removedGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

func (s *State) installSandbox() {
	for _, name := range removedGlobals {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(s.luaPrint))
}

// luaPrint writes its arguments to the log instead of stdout, which the
// terminal UI owns.
func (s *State) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	s.log.Info("lua print", "text", strings.Join(parts, "\t"))
	return 0
}
