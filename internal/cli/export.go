package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubemoves/internal/storage"
)

// exportRecord is the serialized form of a saved scramble.
type exportRecord struct {
	ScrambleID string    `json:"scramble_id" yaml:"scramble_id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
	Seed       *uint64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	Length     int       `json:"length" yaml:"length"`
	Moves      []string  `json:"moves" yaml:"moves"`
	Scramble   string    `json:"scramble" yaml:"scramble"`
	Inverse    string    `json:"inverse" yaml:"inverse"`
}

func newExportRecord(s *storage.Scramble) exportRecord {
	moves := make([]string, 0, s.Moves.Len())
	for _, m := range s.Moves.Moves() {
		moves = append(moves, m.String())
	}
	return exportRecord{
		ScrambleID: s.ScrambleID,
		CreatedAt:  s.CreatedAt,
		Seed:       s.Seed,
		Length:     s.Moves.Len(),
		Moves:      moves,
		Scramble:   s.Text,
		Inverse:    s.Inverse,
	}
}

func writeExport(w io.Writer, s *storage.Scramble, format string) error {
	switch format {
	case "txt":
		_, err := fmt.Fprintln(w, s.Text)
		return err

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newExportRecord(s))

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newExportRecord(s)); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format %q (use txt, json or yaml)", format)
	}
}

func (a *app) newExportCmd() *cobra.Command {
	var (
		scrambleID string
		format     string
		output     string
		last       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a saved scramble",
		Long: `Export a saved scramble in text, JSON or YAML format.

Examples:
  cubemoves export --last
  cubemoves export --id <scramble_id> --format json
  cubemoves export --last --format yaml -o scramble.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if scrambleID == "" && !last {
				return fmt.Errorf("specify --id or --last")
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewScrambleRepository(db)
			var s *storage.Scramble
			if last {
				s, err = repo.GetLast()
			} else {
				s, err = repo.Get(scrambleID)
			}
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("no scramble found")
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := writeExport(w, s, format); err != nil {
				return err
			}

			if output != "" {
				a.logger.Printf("exported %s to %s", s.ScrambleID, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scrambleID, "id", "", "Scramble ID to export")
	cmd.Flags().BoolVar(&last, "last", false, "Export the last saved scramble")
	cmd.Flags().StringVar(&format, "format", "txt", "Export format (txt, json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
