// Package cursor holds the region value the engine hands to actions: the
// mark and point as plain offsets, in whichever order the user made them.
package cursor
