package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves"
)

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", arg)
		}
		out[i] = n
	}
	return out, nil
}

func (a *app) newChooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose N K",
		Short: "Print the binomial coefficient C(N, K)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nk, err := parseInts(args)
			if err != nil {
				return err
			}
			c, err := cubemoves.Choose(nk[0], nk[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func (a *app) newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank P1 [P2 ...]",
		Short: "Rank a set of positions in the combinatorial number system",
		Long: `Rank a strictly increasing set of positions.

Example (equatorial edges in their home slots):
  cubemoves rank 0 1 2 3   # prints 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positions, err := parseInts(args)
			if err != nil {
				return err
			}
			index, err := cubemoves.CombinationIndex(positions)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), index)
			return nil
		},
	}
}

func (a *app) newUnrankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unrank INDEX K",
		Short: "Print the K positions with the given combination index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ik, err := parseInts(args)
			if err != nil {
				return err
			}
			positions, err := cubemoves.CombinationFromIndex(ik[0], ik[1])
			if err != nil {
				return err
			}
			parts := make([]string, len(positions))
			for i, p := range positions {
				parts[i] = strconv.Itoa(p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}
