// Package cli implements the command-line interface for cubemoves.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubemoves/internal/config"
	"github.com/SeamusWaldron/cubemoves/internal/storage"
)

const version = "0.1.0"

// app carries state shared by all subcommands.
type app struct {
	// Global flags
	dbPath  string
	verbose bool

	cfg    config.Config
	logger *log.Logger
}

// NewRootCmd builds the cubemoves command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: log.New(io.Discard, "", 0)}

	rootCmd := &cobra.Command{
		Use:   "cubemoves",
		Short: "Cube move notation and scramble tool",
		Long: `cubemoves - generate, invert and record 3x3 cube scrambles.

Scrambles are drawn uniformly from the 18 face turns (U F R B L D, each
clockwise, counter-clockwise or 180 degrees). Saved scrambles are kept in a
local SQLite database for later export.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: $CUBEMOVES_DB or ~/.cubemoves/scrambles.db)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		a.newScrambleCmd(),
		a.newMovesCmd(),
		a.newChooseCmd(),
		a.newRankCmd(),
		a.newUnrankCmd(),
		a.newHistoryCmd(),
		a.newExportCmd(),
		a.newStatsCmd(),
		a.newWatchCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		a.logger = log.New(cmd.ErrOrStderr(), "cubemoves: ", log.LstdFlags)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Printf("config: db=%q length=%d seeded=%t", cfg.DBPath, cfg.ScrambleLength, cfg.Seed != nil)
	return nil
}

// getDBPath returns the database path from flag, then environment.
// Empty means the default path.
func (a *app) getDBPath() string {
	if a.dbPath != "" {
		return a.dbPath
	}
	return a.cfg.DBPath
}

func (a *app) openDB() (*storage.DB, error) {
	path := a.getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	a.logger.Printf("opened database %s", db.Path())
	return db, nil
}
