// Package spellerr defines the sentinel errors shared across the
// dictionary's packages, replacing the original C implementation's
// enumerated error codes (ERR_NOT_FOUND, ERR_ALREADY_PRESENT,
// ERR_MALFORMED_RULE, ERR_IO, ERR_MALFORMED_DICT_FILE,
// ERR_OUT_OF_MEMORY) with wrapped errors usable through errors.Is.
//
// Callers wrap one of these at the point of detection with
// fmt.Errorf("...: %w", spellerr.ErrXxx) so context survives while the
// sentinel remains matchable up the call stack.
package spellerr

import "errors"

var (
	// ErrMalformedRule is returned when a rewrite rule fails the
	// well-formedness check: more than one unbound right-hand
	// placeholder digit, or a same-length zero-length rule that isn't
	// flagged Split.
	ErrMalformedRule = errors.New("spellkeep: malformed rule")

	// ErrIO wraps a failure reading from or writing to an
	// io.Reader/io.Writer while saving or loading a dictionary.
	ErrIO = errors.New("spellkeep: i/o error")

	// ErrMalformedDictFile is returned when a serialized trie does not
	// match the save grammar: a stream that ends before the root
	// marker, a wrong root marker, or a digit where an edge or
	// terminator was expected. End of input inside the tree body is
	// not an error; it closes any open frames.
	ErrMalformedDictFile = errors.New("spellkeep: malformed dictionary file")

	// ErrOutOfMemory names the original's out-of-memory error kind. No
	// function in this module returns it: allocation failure in Go
	// panics instead of returning an error.
	ErrOutOfMemory = errors.New("spellkeep: out of memory")

	// ErrNotFound is returned when a named dictionary is looked up in
	// the registry and no entry matches.
	ErrNotFound = errors.New("spellkeep: not found")

	// ErrAlreadyPresent is returned when a named dictionary is
	// registered under a name that is already taken.
	ErrAlreadyPresent = errors.New("spellkeep: already present")
)
