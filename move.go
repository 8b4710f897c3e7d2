package cubemoves

import "fmt"

// Face represents a cube face in standard notation.
type Face uint8

const (
	FaceU Face = iota // Up
	FaceF             // Front
	FaceR             // Right
	FaceB             // Back
	FaceL             // Left
	FaceD             // Down
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Turn represents the direction and magnitude of a face turn.
type Turn uint8

const (
	TurnCW   Turn = iota // Clockwise (90 degrees)
	TurnCCW              // Counter-clockwise (90 degrees)
	TurnHalf             // Half turn (180 degrees)
)

// Move is one of the 18 face turns of a 3x3 cube. The ordinal layout is
// face*3 + turn, with faces in U F R B L D order.
type Move uint8

const (
	MoveU Move = iota
	MoveUPrime
	MoveU2
	MoveF
	MoveFPrime
	MoveF2
	MoveR
	MoveRPrime
	MoveR2
	MoveB
	MoveBPrime
	MoveB2
	MoveL
	MoveLPrime
	MoveL2
	MoveD
	MoveDPrime
	MoveD2
)

// MoveCount is the size of the move alphabet.
const MoveCount = 18

// Fails to compile if a move is added without growing MoveCount.
var _ = [1]struct{}{}[MoveD2+1-MoveCount]

// notations is indexed by move ordinal.
var notations = [MoveCount]string{
	MoveU: "U", MoveUPrime: "U'", MoveU2: "U2",
	MoveF: "F", MoveFPrime: "F'", MoveF2: "F2",
	MoveR: "R", MoveRPrime: "R'", MoveR2: "R2",
	MoveB: "B", MoveBPrime: "B'", MoveB2: "B2",
	MoveL: "L", MoveLPrime: "L'", MoveL2: "L2",
	MoveD: "D", MoveDPrime: "D'", MoveD2: "D2",
}

// inverses is indexed by move ordinal. Quarter turns swap direction,
// half turns map to themselves.
var inverses = [MoveCount]Move{
	MoveU: MoveUPrime, MoveUPrime: MoveU, MoveU2: MoveU2,
	MoveF: MoveFPrime, MoveFPrime: MoveF, MoveF2: MoveF2,
	MoveR: MoveRPrime, MoveRPrime: MoveR, MoveR2: MoveR2,
	MoveB: MoveBPrime, MoveBPrime: MoveB, MoveB2: MoveB2,
	MoveL: MoveLPrime, MoveLPrime: MoveL, MoveL2: MoveL2,
	MoveD: MoveDPrime, MoveDPrime: MoveD, MoveD2: MoveD2,
}

// NewMove builds the move for a face and turn.
func NewMove(face Face, turn Turn) (Move, error) {
	if face > FaceD || turn > TurnHalf {
		return 0, fmt.Errorf("%w: face %d turn %d", ErrInvalidMove, face, turn)
	}
	return Move(uint8(face)*3 + uint8(turn)), nil
}

// MoveFromOrdinal converts an ordinal in [0, MoveCount) to a Move.
func MoveFromOrdinal(n int) (Move, error) {
	if n < 0 || n >= MoveCount {
		return 0, fmt.Errorf("%w: ordinal %d", ErrInvalidMove, n)
	}
	return Move(n), nil
}

// Moves returns the full move alphabet in ordinal order.
func Moves() []Move {
	all := make([]Move, MoveCount)
	for i := range all {
		all[i] = Move(i)
	}
	return all
}

// Valid reports whether m is one of the 18 defined moves.
func (m Move) Valid() bool {
	return m < MoveCount
}

// Face returns the face turned by this move.
func (m Move) Face() Face {
	return Face(m / 3)
}

// Turn returns the direction and amount of this move.
func (m Move) Turn() Turn {
	return Turn(m % 3)
}

// Notation returns the standard cube notation for this move.
// Examples: R, R', R2, U, U', U2
// Returns ErrInvalidMove if m is outside the move alphabet.
func (m Move) Notation() (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("%w: ordinal %d", ErrInvalidMove, uint8(m))
	}
	return notations[m], nil
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() (Move, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: ordinal %d", ErrInvalidMove, uint8(m))
	}
	return inverses[m], nil
}

// String returns the notation, or Move(n) for an undefined ordinal.
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return notations[m]
}

// RandomMove draws one move uniformly from the alphabet. It performs
// exactly one rng.Next(MoveCount) draw.
func RandomMove(rng RandomSource) Move {
	return Move(rng.Next(MoveCount))
}
