// Package domgen reconciles begin/end calls into a live tree.
//
// Every render re-issues the whole call sequence. The first element placed in
// a session replaces the previous session's root in place, so a node that is
// already displayed keeps its position in its container. Elements are always
// rebuilt, with no attribute-level patching, except those carrying the static
// marker: they are built once, cached by key and reused verbatim on later
// renders without running their body again.
//
// Static elements without an explicit key are keyed by call order within the
// session. The number and order of keyless static calls must be the same on
// every render for the keys to line up. Explicit keys live in their own
// space and may be placed once per render.
package domgen
