// Package buffer implements the document model of the editor core: a piece
// table of runes with a single cursor and an optional selection.
//
// Offsets count Unicode scalar values (runes), never bytes. Every operation
// clamps out-of-range offsets to the nearest valid boundary instead of
// failing. Ranges are half-open: [Start, End).
package buffer
