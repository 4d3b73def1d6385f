// Package config loads the editor configuration.
//
// A configuration file is TOML (.toml) or YAML (.yaml, .yml). Loading
// overlays the file on Default, so a file only names what it changes:
//
//	[compose]
//	repeat = true
//	mark_mode = true
//	default_object = "mark-line"
//	indicator_color = "yellow"
//
//	[compose.default_objects]
//	comment-or-uncomment-region = "mark-paragraph"
//
//	[keymap.object]
//	"x" = "mark-url"
//
// Unknown keys are rejected. Maps merge with the defaults; lists such as
// compose.pairs replace them.
//
// The watcher sub-package reports changes to a loaded file so a running
// session can reload it.
package config
