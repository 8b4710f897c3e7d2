package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves"
)

func (a *app) newWatchCmd() *cobra.Command {
	var flags scrambleFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive scramble viewer",
		Long: `Show scrambles one at a time in the terminal.

Controls:
  Space/n - New scramble
  i       - Toggle inverse
  q/Esc   - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, length, _ := a.scrambleSource(cmd, &flags)
			if length < 0 {
				return fmt.Errorf("%w: sequence length %d", cubemoves.ErrInvalidArgument, length)
			}

			p := tea.NewProgram(newWatchModel(rng, length), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("watch error: %w", err)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// Watch model
type watchModel struct {
	rng         cubemoves.RandomSource
	length      int
	scramble    cubemoves.MoveSequence
	inverse     cubemoves.MoveSequence
	count       int
	showInverse bool
	err         error
	quitting    bool
}

func newWatchModel(rng cubemoves.RandomSource, length int) *watchModel {
	m := &watchModel{rng: rng, length: length}
	m.next()
	return m
}

// next draws a new scramble and its inverse.
func (m *watchModel) next() {
	seq, err := cubemoves.RandomSequence(m.rng, m.length)
	if err != nil {
		m.err = err
		return
	}
	inv, err := seq.Inverted()
	if err != nil {
		m.err = err
		return
	}
	m.scramble = seq
	m.inverse = inv
	m.count++
}

func (m *watchModel) Init() tea.Cmd {
	return nil
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			m.next()

		case "i":
			m.showInverse = !m.showInverse
		}
	}

	return m, nil
}

func (m *watchModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Scrambles"))
	b.WriteString("\n\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Scramble #%d (%d moves)", m.count, m.scramble.Len())))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(moveStyle.Render(m.scramble.String()))
		b.WriteString("\n")
		if m.showInverse {
			b.WriteString("\nInverse:\n")
			b.WriteString(inverseStyle.Render(m.inverse.String()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: new scramble • i: toggle inverse • q: quit"))
	b.WriteString("\n")

	return b.String()
}
