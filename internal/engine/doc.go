// Package engine provides the editing state of a single buffer: text,
// point, mark, mark ring, kill ring and undo history.
//
// Point and mark are buffer markers, so they follow edits made anywhere in
// the buffer. The mark has an active flag; an active mark together with
// point forms the region.
//
//	e := engine.New(engine.WithContent("Hello, World!"))
//	e.SetPoint(7)
//	e.SetMark(12)            // region is [7, 12), mark active
//	killed, _ := e.KillRegion()
//
// # Thread Safety
//
// All Engine operations are thread-safe. The engine uses a read-write mutex
// so the renderer can read while the dispatcher edits.
package engine
