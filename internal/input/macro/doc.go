// Package macro records key events and replays them as keyboard macros.
//
// A Recorder captures the keys typed between Start and Stop. Stop drops
// the trailing keys that ended the definition, so a macro never contains
// the command that closed it. The last few macros are kept in a ring; the
// head of the ring is the macro that Last returns.
//
//	rec := macro.NewRecorder(macro.DefaultRingSize)
//	rec.Start(false)
//	// ... every key event passed to rec.Record ...
//	rec.Stop(2) // drop "C-x )"
//
// A Player feeds a macro back through a handler a number of times. A
// count of zero repeats until the handler fails or MaxLoops is reached.
// The player refuses to start while it is already playing, so a macro
// cannot call itself.
package macro
