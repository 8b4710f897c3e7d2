package cubemoves

// Common algorithms, for convenience and examples.
//
// Example:
//
//	undo, _ := cubemoves.TPerm.Inverted()
//	fmt.Println(undo)
var (
	// Sexy move: R U R' U' - one of the most common algorithms
	SexyMove = NewMoveSequence(MoveR, MoveU, MoveRPrime, MoveUPrime)

	// Inverse sexy move: U R U' R'
	InverseSexyMove = NewMoveSequence(MoveU, MoveR, MoveUPrime, MoveRPrime)

	// T-perm algorithm
	TPerm = NewMoveSequence(
		MoveR, MoveU, MoveRPrime, MoveUPrime, MoveRPrime, MoveF, MoveR2,
		MoveUPrime, MoveRPrime, MoveUPrime, MoveR, MoveU, MoveRPrime, MoveFPrime,
	)
)
