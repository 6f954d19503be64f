// Package dice turns tabletop dice expressions such as "2d6+3-1d4" into a
// rolled total plus the attainable minimum and maximum.
//
// An expression moves through four stages, each exported so callers can stop
// early:
//
//  1. Normalize validates the character set and produces a canonical string
//     ("D6 + 3" becomes "1d6+3").
//  2. Segment splits the canonical string into signed terms ("+1d6", "+3").
//  3. ParseTerm turns each signed term into an Entity.
//  4. Evaluate draws dice from a Source and accumulates the Outcome.
//
// Roll composes all four. Every term is validated before the first die is
// drawn, so a failing expression never consumes randomness.
package dice
