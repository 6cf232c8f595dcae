// Package pipefile reads the line-oriented grid format: one record per
// line, "<glyph> <x> <y>", with integer coordinates in raw space (y up).
//
// Lines are trimmed; blank lines are skipped. Any malformed line aborts the
// whole read with a *ParseError that names the line, so no partial record
// list is ever returned.
//
// Errors:
//
//   - ErrFieldCount:    a line does not have exactly three fields.
//   - ErrBadCoordinate: x or y is not an integer.
package pipefile
