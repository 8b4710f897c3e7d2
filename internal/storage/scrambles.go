package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubemoves"
)

// Scramble is a stored move sequence.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Seed       *uint64
	Moves      cubemoves.MoveSequence
	Text       string
	Inverse    string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble and returns its ID. seed is nil for scrambles
// drawn from an unseeded source.
func (r *ScrambleRepository) Create(seq cubemoves.MoveSequence, seed *uint64) (string, error) {
	text, err := seq.Notation()
	if err != nil {
		return "", fmt.Errorf("failed to format scramble: %w", err)
	}
	inv, err := seq.Inverted()
	if err != nil {
		return "", fmt.Errorf("failed to invert scramble: %w", err)
	}

	codes := make([]byte, seq.Len())
	for i, m := range seq.Moves() {
		codes[i] = byte(m)
	}

	var seedVal sql.NullInt64
	if seed != nil {
		seedVal = sql.NullInt64{Int64: int64(*seed), Valid: true}
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err = r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, seed, length, move_codes, scramble_text, inverse_text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeLayout), seedVal, seq.Len(), codes, text, inv.String())

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// timeLayout has fixed-width fractional seconds so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const scrambleColumns = `scramble_id, created_at, seed, move_codes, scramble_text, inverse_text`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var createdAtStr string
	var seed sql.NullInt64
	var codes []byte

	if err := row.Scan(&s.ScrambleID, &createdAtStr, &seed, &codes, &s.Text, &s.Inverse); err != nil {
		return nil, err
	}

	s.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
	if seed.Valid {
		v := uint64(seed.Int64)
		s.Seed = &v
	}

	for i, c := range codes {
		m, err := cubemoves.MoveFromOrdinal(int(c))
		if err != nil {
			return nil, fmt.Errorf("scramble %s move %d: %w", s.ScrambleID, i, err)
		}
		s.Moves.Append(m)
	}

	return &s, nil
}

// Get retrieves a scramble by ID. It returns nil if no scramble matches.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`SELECT `+scrambleColumns+` FROM scrambles WHERE scramble_id = ?`, scrambleID)

	s, err := scanScramble(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	return s, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	row := r.db.QueryRow(`SELECT ` + scrambleColumns + ` FROM scrambles ORDER BY created_at DESC, rowid DESC LIMIT 1`)

	s, err := scanScramble(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}

	return s, nil
}

// List retrieves recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`SELECT `+scrambleColumns+` FROM scrambles ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}

	return scrambles, nil
}

// Delete deletes a scramble.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}
