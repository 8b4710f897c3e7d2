package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves"
	"github.com/SeamusWaldron/cubemoves/internal/storage"
)

func (a *app) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved scrambles",
		Long: `List scrambles saved with "cubemoves scramble --save", newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			out := cmd.OutOrStdout()
			if len(scrambles) == 0 {
				fmt.Fprintln(out, "No scrambles saved. Save one with: cubemoves scramble --save")
				return nil
			}

			for _, s := range scrambles {
				seed := "-"
				if s.Seed != nil {
					seed = fmt.Sprintf("%d", *s.Seed)
				}
				fmt.Fprintf(out, "%s  %s  seed=%s\n",
					statusStyle.Render(s.ScrambleID),
					s.CreatedAt.Local().Format(time.DateTime),
					seed)
				fmt.Fprintf(out, "  %s\n", moveStyle.Render(s.Text))
			}
			fmt.Fprintln(out, strings.Repeat("-", 40))
			fmt.Fprintf(out, "%d scramble(s)\n", len(scrambles))

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of scrambles to list")

	return cmd
}
