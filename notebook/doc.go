// Package notebook implements the document model of a block notebook: an
// ordered, never empty sequence of typed lines with one active line and a
// caret carry handed across line boundaries.
//
// All operations are synchronous and never fail. Navigation that is not
// allowed (past the first or last line, deleting the first line) is a no-op.
package notebook
