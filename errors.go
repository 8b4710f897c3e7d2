package cubemoves

import "errors"

// Sentinel errors for the cubemoves package.
var (
	// ErrInvalidMove is returned when a move ordinal lies outside the
	// 18-move alphabet.
	ErrInvalidMove = errors.New("cubemoves: invalid move")

	// ErrInvalidArgument is returned for negative counts and malformed
	// combination inputs.
	ErrInvalidArgument = errors.New("cubemoves: invalid argument")
)
