package cubemoves

import (
	"fmt"
	"strings"
)

// MoveSequence is an ordered list of moves, in the order they are performed.
// It is not safe for concurrent mutation.
type MoveSequence struct {
	moves []Move
}

// NewMoveSequence creates a sequence holding a copy of moves.
func NewMoveSequence(moves ...Move) MoveSequence {
	s := MoveSequence{moves: make([]Move, len(moves))}
	copy(s.moves, moves)
	return s
}

// RandomSequence draws n independent moves from rng. No same-face or
// cancellation filtering is applied.
func RandomSequence(rng RandomSource, n int) (MoveSequence, error) {
	if n < 0 {
		return MoveSequence{}, fmt.Errorf("%w: sequence length %d", ErrInvalidArgument, n)
	}
	s := MoveSequence{moves: make([]Move, n)}
	for i := range s.moves {
		s.moves[i] = RandomMove(rng)
	}
	return s, nil
}

// Append adds moves to the end of the sequence.
func (s *MoveSequence) Append(moves ...Move) {
	s.moves = append(s.moves, moves...)
}

// Len returns the number of moves.
func (s MoveSequence) Len() int {
	return len(s.moves)
}

// At returns the move at index i.
func (s MoveSequence) At(i int) Move {
	return s.moves[i]
}

// Moves returns a copy of the moves.
func (s MoveSequence) Moves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// Equal reports whether both sequences hold the same moves in the same order.
func (s MoveSequence) Equal(other MoveSequence) bool {
	if len(s.moves) != len(other.moves) {
		return false
	}
	for i, m := range s.moves {
		if other.moves[i] != m {
			return false
		}
	}
	return true
}

// Notation formats the sequence as space-separated notation, e.g. "R U R' U'".
// An empty sequence formats as "". Returns ErrInvalidMove for the first
// move outside the alphabet.
func (s MoveSequence) Notation() (string, error) {
	if len(s.moves) == 0 {
		return "", nil
	}

	parts := make([]string, len(s.moves))
	for i, m := range s.moves {
		n, err := m.Notation()
		if err != nil {
			return "", fmt.Errorf("move %d: %w", i, err)
		}
		parts[i] = n
	}

	return strings.Join(parts, " "), nil
}

// String formats the sequence like Notation. Invalid moves render as Move(n).
func (s MoveSequence) String() string {
	parts := make([]string, len(s.moves))
	for i, m := range s.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Inverted returns a new sequence that undoes s: the moves in reverse
// order, each replaced by its inverse. s is not modified.
func (s MoveSequence) Inverted() (MoveSequence, error) {
	result := MoveSequence{moves: make([]Move, 0, len(s.moves))}
	for i := len(s.moves) - 1; i >= 0; i-- {
		inv, err := s.moves[i].Inverse()
		if err != nil {
			return MoveSequence{}, fmt.Errorf("move %d: %w", i, err)
		}
		result.moves = append(result.moves, inv)
	}
	return result, nil
}
