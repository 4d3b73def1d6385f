// Package buffer provides a thread-safe rune text buffer with markers.
//
// Offsets are rune indexes into the text, 0 <= offset <= Len().
//
// A Marker is a position that follows edits: text inserted before it
// pushes it right, text deleted around it pulls it back to the start of
// the deletion. Markers are how the editor keeps point, mark and any
// remembered position meaningful across edits.
//
// Basic usage:
//
//	buf := buffer.NewFromString("Hello, World!")
//	m := buf.NewMarker(7, buffer.StayBefore)
//	buf.Insert(0, ">> ")  // m.Pos() == 10
//	buf.Delete(0, 3)      // m.Pos() == 7
//	m.Release()
package buffer
