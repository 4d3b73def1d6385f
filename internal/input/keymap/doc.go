// Package keymap maps key sequences to command names.
//
// A Registry holds named Keymaps arranged in layers. The "global" layer is
// always consulted last; other layers (such as the "object" layer used
// while a composition awaits its object) are activated and deactivated at
// runtime and shadow the layers below them.
//
// # Transient Bindings
//
// ArmOnce installs a single one-shot binding above every layer:
//
//	d := registry.ArmOnce(ev, fire, onExpire)
//	...
//	d.Dispose() // removes the binding and calls onExpire
//
// When the armed key is pressed, TakeTransient removes the binding and
// returns its fire function; onExpire is not called in that case. Only one
// transient binding exists at a time; arming a new one disposes the old.
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	keymap.LoadDefaults(registry)
//
//	seq, _ := key.ParseSequence("C-x C-u")
//	switch cmd, match := registry.Resolve(seq); match {
//	case keymap.MatchFull:
//	    // dispatch cmd
//	case keymap.MatchPrefix:
//	    // wait for more keys
//	}
package keymap
