// Package history provides undo/redo for the editor engine.
//
// Each recorded Edit stores the replaced range with its old and new text
// and point before and after the change. Edits recorded between BeginGroup
// and EndGroup undo together, so an entire dispatched command (a motion
// followed by an action, for instance) is a single undo unit:
//
//	h := history.New(1000)
//	h.BeginGroup("composable-kill-region")
//	h.Record(edit)
//	h.EndGroup()
//
//	point, err := h.Undo(buf)
package history
