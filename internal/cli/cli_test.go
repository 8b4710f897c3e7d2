package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubemoves"
)

// run executes the command tree and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CUBEMOVES_DB", filepath.Join(t.TempDir(), "env.db"))
	t.Setenv("CUBEMOVES_SCRAMBLE_LENGTH", "20")
	t.Setenv("CUBEMOVES_SEED", "")
	os.Unsetenv("CUBEMOVES_SEED")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScrambleSeeded(t *testing.T) {
	a, err := run(t, "scramble", "--seed", "42", "--length", "5")
	if err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}
	b, err := run(t, "scramble", "--seed", "42", "--length", "5")
	if err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}

	want, _ := cubemoves.Scramble(cubemoves.WithSeed(42), cubemoves.WithLength(5))
	if got := strings.TrimSpace(a); got != want.String() {
		t.Errorf("scramble = %q, want %q", got, want.String())
	}
	if n := len(strings.Fields(a)); n != 5 {
		t.Errorf("scramble has %d moves, want 5", n)
	}
}

func TestScrambleInverse(t *testing.T) {
	out, err := run(t, "scramble", "--seed", "7", "--length", "8", "--inverse")
	if err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}

	seq, _ := cubemoves.Scramble(cubemoves.WithSeed(7), cubemoves.WithLength(8))
	inv, _ := seq.Inverted()
	if lines[1] != inv.String() {
		t.Errorf("inverse = %q, want %q", lines[1], inv.String())
	}
}

func TestScrambleLengthFromEnv(t *testing.T) {
	var out bytes.Buffer
	t.Setenv("CUBEMOVES_DB", filepath.Join(t.TempDir(), "env.db"))
	t.Setenv("CUBEMOVES_SCRAMBLE_LENGTH", "3")
	t.Setenv("CUBEMOVES_SEED", "5")

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"scramble"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}

	want, _ := cubemoves.Scramble(cubemoves.WithSeed(5), cubemoves.WithLength(3))
	if got := strings.TrimSpace(out.String()); got != want.String() {
		t.Errorf("scramble = %q, want %q", got, want.String())
	}
}

func TestScrambleNegativeLength(t *testing.T) {
	if _, err := run(t, "scramble", "--length", "-1"); err == nil {
		t.Error("expected error for negative length")
	}
}

func TestMovesTable(t *testing.T) {
	out, err := run(t, "moves")
	if err != nil {
		t.Fatalf("moves returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != cubemoves.MoveCount+1 {
		t.Fatalf("expected %d lines, got %d", cubemoves.MoveCount+1, len(lines))
	}
	for _, tok := range []string{"U'", "F2", "D'"} {
		if !strings.Contains(out, tok) {
			t.Errorf("table missing %q", tok)
		}
	}
}

func TestChooseCommand(t *testing.T) {
	out, err := run(t, "choose", "20", "10")
	if err != nil {
		t.Fatalf("choose returned error: %v", err)
	}
	if strings.TrimSpace(out) != "184756" {
		t.Errorf("choose 20 10 = %q", out)
	}

	if _, err := run(t, "choose", "x", "1"); err == nil {
		t.Error("expected error for non-integer argument")
	}
}

func TestRankUnrank(t *testing.T) {
	out, err := run(t, "rank", "8", "9", "10", "11")
	if err != nil {
		t.Fatalf("rank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "494" {
		t.Errorf("rank = %q, want 494", out)
	}

	out, err = run(t, "unrank", "494", "4")
	if err != nil {
		t.Fatalf("unrank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "8 9 10 11" {
		t.Errorf("unrank = %q, want %q", out, "8 9 10 11")
	}

	if _, err := run(t, "rank", "3", "1"); err == nil {
		t.Error("expected error for unsorted positions")
	}
}

func TestSaveHistoryExport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scrambles.db")

	out, err := run(t, "--db", dbPath, "scramble", "--seed", "3", "--length", "6", "--save")
	if err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}
	text := strings.TrimSpace(out)

	out, err = run(t, "--db", dbPath, "history")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(out, text) || !strings.Contains(out, "seed=3") {
		t.Errorf("history missing scramble: %q", out)
	}

	out, err = run(t, "--db", dbPath, "export", "--last")
	if err != nil {
		t.Fatalf("export returned error: %v", err)
	}
	if strings.TrimSpace(out) != text {
		t.Errorf("export txt = %q, want %q", out, text)
	}

	out, err = run(t, "--db", dbPath, "export", "--last", "--format", "json")
	if err != nil {
		t.Fatalf("export json returned error: %v", err)
	}
	var rec exportRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if rec.Scramble != text || rec.Length != 6 || len(rec.Moves) != 6 {
		t.Errorf("json record = %+v", rec)
	}
	if rec.Seed == nil || *rec.Seed != 3 {
		t.Errorf("json seed = %v, want 3", rec.Seed)
	}

	out, err = run(t, "--db", dbPath, "export", "--id", rec.ScrambleID, "--format", "yaml")
	if err != nil {
		t.Fatalf("export yaml returned error: %v", err)
	}
	var yrec exportRecord
	if err := yaml.Unmarshal([]byte(out), &yrec); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}
	if yrec.ScrambleID != rec.ScrambleID || yrec.Inverse != rec.Inverse {
		t.Errorf("yaml record = %+v, want %+v", yrec, rec)
	}
}

func TestExportErrors(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scrambles.db")

	if _, err := run(t, "--db", dbPath, "export"); err == nil {
		t.Error("expected error without --id or --last")
	}
	if _, err := run(t, "--db", dbPath, "export", "--last"); err == nil {
		t.Error("expected error on empty database")
	}
	if _, err := run(t, "--db", dbPath, "scramble", "--save"); err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}
	if _, err := run(t, "--db", dbPath, "export", "--last", "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestHistoryEmpty(t *testing.T) {
	out, err := run(t, "--db", filepath.Join(t.TempDir(), "empty.db"), "history")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if !strings.Contains(out, "No scrambles saved") {
		t.Errorf("history = %q", out)
	}
}

func TestWatchModel(t *testing.T) {
	m := newWatchModel(cubemoves.NewSeededSource(1), 10)
	if m.count != 1 || m.scramble.Len() != 10 {
		t.Fatalf("initial model count=%d len=%d", m.count, m.scramble.Len())
	}
	first := m.scramble.String()

	back, _ := m.inverse.Inverted()
	if !back.Equal(m.scramble) {
		t.Errorf("inverse does not undo scramble")
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.count != 2 {
		t.Errorf("count after space = %d, want 2", m.count)
	}
	if m.scramble.String() == first {
		t.Errorf("space did not draw a new scramble")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})
	if !m.showInverse {
		t.Error("i did not toggle inverse")
	}
	if !strings.Contains(m.View(), m.inverse.String()) {
		t.Error("view missing inverse")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !m.quitting {
		t.Error("q did not quit")
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, "stats", "--samples", "500", "--seed", "11")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if !strings.Contains(out, "Total moves: 10000") {
		t.Errorf("stats output missing total: %q", out)
	}
	if !strings.Contains(out, "Chi-square:") {
		t.Errorf("stats output missing chi-square: %q", out)
	}
}

func TestStatsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scrambles.db")
	for _, seed := range []string{"1", "2"} {
		if _, err := run(t, "--db", dbPath, "scramble", "--seed", seed, "--length", "5", "--save"); err != nil {
			t.Fatalf("scramble returned error: %v", err)
		}
	}

	out, err := run(t, "--db", dbPath, "stats", "--history")
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if !strings.Contains(out, "Total moves: 10") {
		t.Errorf("stats output missing total: %q", out)
	}
}

func TestNegativeLimitRejected(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scrambles.db")
	if _, err := run(t, "--db", dbPath, "scramble", "--save"); err != nil {
		t.Fatalf("scramble returned error: %v", err)
	}

	for _, args := range [][]string{
		{"--db", dbPath, "history", "--limit", "-1"},
		{"--db", dbPath, "stats", "--history", "--limit", "-1"},
	} {
		_, err := run(t, args...)
		if !errors.Is(err, cubemoves.ErrInvalidArgument) {
			t.Errorf("%v error = %v, want ErrInvalidArgument", args, err)
		}
	}
}

func TestUnrankLargeIndex(t *testing.T) {
	out, err := run(t, "unrank", "1000000000000", "1")
	if err != nil {
		t.Fatalf("unrank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "1000000000000" {
		t.Errorf("unrank = %q, want 1000000000000", out)
	}
}
