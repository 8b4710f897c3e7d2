// Package cubemoves provides the 18-move face-turn alphabet of a 3x3 cube,
// move sequences, and the combinatorics used to index cube states.
//
// # Moves
//
// Each Move is one of U F R B L D turned clockwise, counter-clockwise or
// 180 degrees:
//
//	cubemoves.MoveR      // Right clockwise
//	cubemoves.MoveRPrime // Right counter-clockwise
//	cubemoves.MoveR2     // Right 180
//
// Moves are small values with a fixed ordinal layout. Conversions that can
// receive an undefined ordinal return ErrInvalidMove instead of guessing.
//
// # Sequences
//
//	seq := cubemoves.NewMoveSequence(cubemoves.MoveU, cubemoves.MoveR, cubemoves.MoveFPrime)
//	fmt.Println(seq) // U R F'
//
//	undo, err := seq.Inverted()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(undo) // F R' U'
//
// # Scrambles
//
// A RandomSource supplies the randomness. SeededSource is deterministic,
// StandardSource is seeded from the operating system:
//
//	scramble, err := cubemoves.RandomSequence(cubemoves.NewStandardSource(), 20)
//
// # Combinatorics
//
// Choose computes binomial coefficients. CombinationIndex and
// CombinationFromIndex rank and unrank position subsets in the combinatorial
// number system, e.g. the positions of the four equatorial edges.
package cubemoves
