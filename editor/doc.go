// Package editor provides a Bubble Tea host for a notebook.
//
// The package is responsible for input handling, viewport behavior,
// line rendering and host hooks for the clipboard and change events.
// Line-local editing is delegated to the controllers of the line
// package; the host only keeps the active controller in step with the
// notebook.
package editor
