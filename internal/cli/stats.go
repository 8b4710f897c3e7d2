package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves"
	"github.com/SeamusWaldron/cubemoves/internal/analysis"
	"github.com/SeamusWaldron/cubemoves/internal/storage"
)

func (a *app) newStatsCmd() *cobra.Command {
	var (
		flags   scrambleFlags
		samples int
		history bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Check move frequencies for uniformity",
		Long: `Draw scrambles (or read saved ones) and report how often each move
appears, with a chi-square test against the uniform distribution.

Examples:
  cubemoves stats --samples 10000 --seed 1
  cubemoves stats --history --limit 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var report analysis.FrequencyReport

			if history {
				if limit < 0 {
					return fmt.Errorf("%w: limit %d", cubemoves.ErrInvalidArgument, limit)
				}

				db, err := a.openDB()
				if err != nil {
					return err
				}
				defer db.Close()

				scrambles, err := storage.NewScrambleRepository(db).List(limit)
				if err != nil {
					return err
				}
				for _, s := range scrambles {
					report.Add(s.Moves)
				}
				a.logger.Printf("analyzed %d saved scrambles", len(scrambles))
			} else {
				if samples < 0 {
					return fmt.Errorf("%w: samples %d", cubemoves.ErrInvalidArgument, samples)
				}
				rng, length, _ := a.scrambleSource(cmd, &flags)
				for i := 0; i < samples; i++ {
					seq, err := cubemoves.RandomSequence(rng, length)
					if err != nil {
						return err
					}
					report.Add(seq)
				}
				a.logger.Printf("drew %d scrambles", samples)
			}

			printFrequencyReport(cmd, &report)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&samples, "samples", 1000, "Number of scrambles to draw")
	cmd.Flags().BoolVar(&history, "history", false, "Analyze saved scrambles instead of drawing new ones")
	cmd.Flags().IntVar(&limit, "limit", 1000, "Maximum number of saved scrambles to analyze")

	return cmd
}

func printFrequencyReport(cmd *cobra.Command, r *analysis.FrequencyReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-6s %8s %8s", "Move", "Count", "Share")))
	for _, m := range cubemoves.Moves() {
		fmt.Fprintf(out, "%s %8d %7.2f%%\n",
			moveStyle.Render(fmt.Sprintf("%-6s", m)),
			r.Counts[m],
			r.Frequency(m)*100)
	}

	fmt.Fprintf(out, "\nTotal moves: %d\n", r.Total)
	fmt.Fprintf(out, "Same-face neighbours: %d\n", r.SameFaceRuns)

	verdict := "uniform"
	if !r.Uniform() {
		verdict = "NOT uniform"
	}
	fmt.Fprintf(out, "Chi-square: %.2f (17 df, 1%% critical %.2f) - %s\n",
		r.ChiSquare(), analysis.ChiSquareCritical1Pct, verdict)
}
