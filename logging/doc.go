// SPDX-License-Identifier: MIT

// Package logging provides the leveled, printf-style Logger used by the
// hextile packages.
//
// Library code never writes to a global logger: every component receives a
// Logger through its options and defaults to Nop. Front ends choose a sink:
//
//   - Std(level)       the standard log package (stderr by default).
//   - Config.Open()    a size/age rotated file (lumberjack).
//   - Nop()            discard everything.
//
// Levels are ordered Debug < Info < Warning < Error < Silent; a logger
// prints a message when its level is at or below the message level.
package logging
