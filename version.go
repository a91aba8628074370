// Package scribe is a pixel-canvas text editor core: a piece-table buffer,
// a glyph width model, pixel/offset coordinate mapping, an IME composition
// state machine, and focus routing between an input-capture element and a
// non-interactive render surface.
//
// The packages are:
//
//   - buffer: the document text, cursor and selection
//   - glyph: injectable narrow/wide glyph widths
//   - editor: viewport, coordinate mapping, composition, focus, rendering
//   - document: the file load/save contract
//   - term: a Bubble Tea host for the core
package scribe

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version with a leading `v`, as used for git tags and the
// CLI's -version output.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
