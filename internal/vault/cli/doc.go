// Package cli implements the interactive vault shell.
//
// The shell is a plain read–eval–print loop: one command per line, the
// first token selecting the collection or action, interactive prompts for
// record fields. List views re-print automatically while a watch is
// active, driven by the live query layer.
package cli
