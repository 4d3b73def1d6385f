// Package renderer draws the buffer and status line on a terminal.
//
// The active region is shown in reverse video. While a composition awaits
// its object the status line takes the indicator colour and the cursor
// changes shape, so the pending state is visible without reading the
// status text.
package renderer
