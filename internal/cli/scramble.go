package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves"
	"github.com/SeamusWaldron/cubemoves/internal/storage"
)

// scrambleFlags are shared by the scramble, stats and watch commands.
type scrambleFlags struct {
	length int
	seed   uint64
}

func (f *scrambleFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.length, "length", "n", cubemoves.DefaultScrambleLength, "Number of moves (default: $CUBEMOVES_SCRAMBLE_LENGTH or 20)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for a reproducible scramble (default: $CUBEMOVES_SEED or random)")
}

// scrambleSource resolves flags over environment defaults. The returned
// seed is nil when the source is unseeded.
func (a *app) scrambleSource(cmd *cobra.Command, f *scrambleFlags) (cubemoves.RandomSource, int, *uint64) {
	length := a.cfg.ScrambleLength
	if cmd.Flags().Changed("length") {
		length = f.length
	}

	var seed *uint64
	if cmd.Flags().Changed("seed") {
		s := f.seed
		seed = &s
	} else if a.cfg.Seed != nil {
		s := *a.cfg.Seed
		seed = &s
	}

	if seed != nil {
		return cubemoves.NewSeededSource(*seed), length, seed
	}
	return cubemoves.NewStandardSource(), length, nil
}

func (a *app) newScrambleCmd() *cobra.Command {
	var (
		flags   scrambleFlags
		inverse bool
		save    bool
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a random scramble",
		Long: `Generate a scramble of independent, uniformly random face turns.

Examples:
  cubemoves scramble
  cubemoves scramble --length 25 --seed 42
  cubemoves scramble --inverse --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, length, seed := a.scrambleSource(cmd, &flags)
			seq, err := cubemoves.Scramble(cubemoves.WithSource(rng), cubemoves.WithLength(length))
			if err != nil {
				return err
			}
			a.logger.Printf("drew %d moves", seq.Len())

			text, err := seq.Notation()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if inverse {
				inv, err := seq.Inverted()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), inv)
			}

			if save {
				db, err := a.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				id, err := storage.NewScrambleRepository(db).Create(seq, seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved scramble %s\n", id)
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&inverse, "inverse", "i", false, "Also print the inverse sequence")
	cmd.Flags().BoolVar(&save, "save", false, "Save the scramble to the history database")

	return cmd
}
