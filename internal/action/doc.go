// Package action provides the region commands of the reference editor:
// kill, copy, case conversion, comment toggling, rigid indentation,
// deletion and plain selection.
//
// Every action operates on an explicit [start, end) range so it can be
// driven either by the active region or by a composition that has just
// established one. The plain editing commands (self-insert, newline,
// yank, undo) live here too.
package action
