// Package motion provides the editor's motions and marking commands.
//
// A motion moves point, and possibly the mark, by some unit of text:
// words, lines, sentences, paragraphs, balanced expressions. Marking
// commands (mark-line, mark-word, expand-region, ...) select a unit by
// placing point at one end and an active mark at the other.
//
// Every motion takes a prefix argument. Its magnitude is a repeat count
// and a negative value reverses the direction, so forward-word with -2
// moves back two words.
//
// Positions are computed by pure functions over a rune slice; the
// commands apply them to an engine.
package motion
