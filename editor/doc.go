// Package editor is the canvas-drawn editing core. It turns host pointer,
// key, and composition events into buffer edits and pushes glyph frames to a
// Surface whenever the document or viewport changed.
//
// Hosts call Editor.Dispatch from a single goroutine. The term package is
// the terminal host.
package editor
