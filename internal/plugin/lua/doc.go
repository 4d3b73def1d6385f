// Package lua runs Lua scripts that extend the editor.
//
// A script defines motions and actions, pairs motions and binds keys
// through the compose module, and reads or edits the buffer through the
// editor module. Positions are 0-based rune offsets.
//
//	compose.command("forward-line-end", "motion", function(n)
//	    editor.set_point(editor.line_end(editor.point()))
//	end)
//
//	compose.command("wrap-parens", "action", function(s, e, n)
//	    editor.insert(e, ")")
//	    editor.insert(s, "(")
//	end)
//
//	compose.pair("forward-line-end", "beginning-of-line")
//	compose.bind("global", "C-c (", "composable-wrap-parens")
//
// Every action a script defines is composable: it is registered both as a
// plain region command and as its composable- wrapper.
//
// Scripts run without the io, os, debug and package libraries, and
// without dofile, loadfile, load or loadstring. print writes to the log.
// Each call into Lua is bounded by the execution timeout.
package lua
