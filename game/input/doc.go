// Package input parses the two lines the player types: the comma separated
// car names and the number of rounds.
//
// Both parsers either return a fully validated value or a typed error
// (*NameTooLongError, *InvalidRoundCountError). Both error types match
// ErrInvalidInput with errors.Is, so callers can treat any rejected input
// the same way.
package input
