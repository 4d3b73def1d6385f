package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/composable/internal/action"
	"github.com/dshills/composable/internal/engine"
	"github.com/dshills/composable/internal/input"
	"github.com/dshills/composable/internal/motion"
)

// Command kinds accepted by compose.command.
const (
	KindMotion = "motion"
	KindAction = "action"
)

// Host is the editor a script extends.
type Host interface {
	Engine() *engine.Engine

	// DefineMotion registers a motion command.
	DefineMotion(name, description string, fn motion.Func) error

	// DefineAction registers an action as a region command and as a
	// composable wrapper.
	DefineAction(name, description string, fn action.Func) error

	Pair(a, b string) error
	SetDefaultObject(action, motion string)
	Bind(layer, keys, command string) error
}

func (s *State) installAPI() {
	compose := s.L.SetFuncs(s.L.NewTable(), map[string]lua.LGFunction{
		"command":        s.luaCommand,
		"pair":           s.luaPair,
		"bind":           s.luaBind,
		"default_object": s.luaDefaultObject,
	})
	s.L.SetGlobal("compose", compose)

	editor := s.L.SetFuncs(s.L.NewTable(), map[string]lua.LGFunction{
		"point":       s.luaPoint,
		"set_point":   s.luaSetPoint,
		"mark":        s.luaMark,
		"mark_active": s.luaMarkActive,
		"set_mark":    s.luaSetMark,
		"len":         s.luaLen,
		"text":        s.luaText,
		"insert":      s.luaInsert,
		"delete":      s.luaDelete,
		"line_start":  s.luaLineStart,
		"line_end":    s.luaLineEnd,
	})
	s.L.SetGlobal("editor", editor)
}

// compose.command(name, kind, fn [, description])
func (s *State) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	kind := L.CheckString(2)
	fn := L.CheckFunction(3)
	desc := L.OptString(4, "Lua "+kind+" "+name)

	var err error
	switch kind {
	case KindMotion:
		err = s.host.DefineMotion(name, desc, func(_ *engine.Engine, arg input.PrefixArg) error {
			return s.call(name, fn, lua.LNumber(arg.Int()))
		})
	case KindAction:
		err = s.host.DefineAction(name, desc, func(_ *engine.Engine, start, end int, arg input.PrefixArg) error {
			return s.call(name, fn, lua.LNumber(start), lua.LNumber(end), lua.LNumber(arg.Int()))
		})
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err != nil {
		L.RaiseError("compose.command %s: %v", name, err)
	}
	s.log.Debug("command defined", "name", name, "kind", kind)
	return 0
}

// compose.pair(a, b)
func (s *State) luaPair(L *lua.LState) int {
	if err := s.host.Pair(L.CheckString(1), L.CheckString(2)); err != nil {
		L.RaiseError("compose.pair: %v", err)
	}
	return 0
}

// compose.bind(layer, keys, command)
func (s *State) luaBind(L *lua.LState) int {
	if err := s.host.Bind(L.CheckString(1), L.CheckString(2), L.CheckString(3)); err != nil {
		L.RaiseError("compose.bind: %v", err)
	}
	return 0
}

// compose.default_object(action, motion)
func (s *State) luaDefaultObject(L *lua.LState) int {
	s.host.SetDefaultObject(L.CheckString(1), L.OptString(2, ""))
	return 0
}

func (s *State) luaPoint(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.Engine().Point()))
	return 1
}

func (s *State) luaSetPoint(L *lua.LState) int {
	s.host.Engine().SetPoint(L.CheckInt(1))
	return 0
}

// editor.mark() returns nil when no mark was ever set.
func (s *State) luaMark(L *lua.LState) int {
	e := s.host.Engine()
	if !e.HasMark() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(e.Mark()))
	return 1
}

func (s *State) luaMarkActive(L *lua.LState) int {
	L.Push(lua.LBool(s.host.Engine().MarkActive()))
	return 1
}

func (s *State) luaSetMark(L *lua.LState) int {
	s.host.Engine().SetMark(L.CheckInt(1))
	return 0
}

func (s *State) luaLen(L *lua.LState) int {
	L.Push(lua.LNumber(s.host.Engine().Len()))
	return 1
}

// editor.text([start [, end]]) defaults to the whole buffer.
func (s *State) luaText(L *lua.LState) int {
	e := s.host.Engine()
	start := L.OptInt(1, 0)
	end := L.OptInt(2, e.Len())
	L.Push(lua.LString(e.Slice(start, end)))
	return 1
}

func (s *State) luaInsert(L *lua.LState) int {
	if err := s.host.Engine().Insert(L.CheckInt(1), L.CheckString(2)); err != nil {
		L.RaiseError("editor.insert: %v", err)
	}
	return 0
}

// editor.delete(start, end) returns the deleted text.
func (s *State) luaDelete(L *lua.LState) int {
	text, err := s.host.Engine().Delete(L.CheckInt(1), L.CheckInt(2))
	if err != nil {
		L.RaiseError("editor.delete: %v", err)
	}
	L.Push(lua.LString(text))
	return 1
}

func (s *State) luaLineStart(L *lua.LState) int {
	e := s.host.Engine()
	L.Push(lua.LNumber(e.Buffer().LineStart(L.OptInt(1, e.Point()))))
	return 1
}

func (s *State) luaLineEnd(L *lua.LState) int {
	e := s.host.Engine()
	L.Push(lua.LNumber(e.Buffer().LineEnd(L.OptInt(1, e.Point()))))
	return 1
}
