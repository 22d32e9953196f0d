package script

import (
	"log/slog"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// removed globals can load code from outside the engine.
var removed = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

// newSandboxedState creates a state with only the safe libraries open and
// print redirected to logger.
func newSandboxedState(logger *slog.Logger) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range removed {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		logger.Info("script print", "text", strings.Join(parts, "\t"))
		return 0
	}))
	return L
}
