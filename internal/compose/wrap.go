package compose

import (
	"strings"

	"github.com/dshills/composable/internal/dispatcher/execctx"
	"github.com/dshills/composable/internal/dispatcher/handler"
	"github.com/dshills/composable/internal/dispatcher/hook"
	"github.com/dshills/composable/internal/input"
)

// WrapperPrefix prefixes the command name of every composable wrapper.
const WrapperPrefix = "composable-"

// WrapperName returns the composable command name for an action.
func WrapperName(action string) string {
	return WrapperPrefix + action
}

// Registrar is the part of the dispatcher used to install commands.
type Registrar interface {
	RegisterFunc(name, description string, fn handler.Func)
}

// HookRegistrar installs dispatch hooks.
type HookRegistrar interface {
	Register(h hook.Hook)
}

// Install registers the delimiter commands and the controller's dispatch
// hooks.
func (c *Controller) Install(r Registrar, hooks HookRegistrar) {
	for _, name := range []string{CmdBeginArgument, CmdEndArgument} {
		cont := containmentOf(name)
		r.RegisterFunc(name, "Restrict the object to the "+cont.String()+" side of point",
			func(input.Action, *execctx.ExecutionContext) handler.Result {
				if !c.SetContainment(cont) {
					return handler.NoOpWithMessage("no pending composition")
				}
				return handler.Success()
			})
	}
	hooks.Register(c)
}

// Wrap registers the composable wrapper of a under WrapperName(a.Name()).
func (c *Controller) Wrap(r Registrar, a Action, description string) error {
	if a == nil {
		return ErrNilAction
	}
	name := WrapperName(a.Name())
	c.actions[name] = a
	r.RegisterFunc(name, description, func(act input.Action, _ *execctx.ExecutionContext) handler.Result {
		if err := c.Start(a, act.Arg); err != nil {
			return handler.Error(err)
		}
		if c.req != nil {
			return handler.SuccessWithMessage(a.Name() + ": choose an object")
		}
		return handler.Success()
	})
	return nil
}

// IsComposable reports whether name is a registered composable wrapper.
func (c *Controller) IsComposable(name string) bool {
	if !strings.HasPrefix(name, WrapperPrefix) {
		return false
	}
	_, ok := c.actions[name]
	return ok
}

// Composables returns the registered wrapper names.
func (c *Controller) Composables() []string {
	out := make([]string, 0, len(c.actions))
	for name := range c.actions {
		out = append(out, name)
	}
	return out
}
