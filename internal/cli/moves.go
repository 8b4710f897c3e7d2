package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves"
)

func (a *app) newMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves",
		Short: "List the move alphabet",
		Long:  `List all 18 moves with their ordinal, notation and inverse.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := movesTable()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func movesTable() (string, error) {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-6s %-6s %s", "#", "Move", "Face", "Inverse")))
	b.WriteString("\n")

	for _, m := range cubemoves.Moves() {
		n, err := m.Notation()
		if err != nil {
			return "", err
		}
		inv, err := m.Inverse()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%-4d %s %-6s %s\n",
			int(m),
			moveStyle.Render(fmt.Sprintf("%-6s", n)),
			m.Face(),
			inverseStyle.Render(inv.String()))
	}

	return b.String(), nil
}
