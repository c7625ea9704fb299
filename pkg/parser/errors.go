package parser

import "errors"

// Sentinel errors returned by Parse and its helpers. All are usable with
// errors.Is; none carry position information, since the grammar itself
// tracks no line/column state.
var (
	ErrLex            = errors.New("parser: invalid character")
	ErrUnexpectedEOF  = errors.New("parser: unexpected end of input")
	ErrExpectedNumber = errors.New("parser: expected a number")
	ErrExpectedTree   = errors.New("parser: expected a tree")
	ErrInvalidClose   = errors.New("parser: invalid closing delimiter")
	ErrExpectedEq     = errors.New("parser: expected '='")
)
