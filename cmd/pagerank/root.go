package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree. Each call returns a fresh tree so
// tests can run commands without sharing flag state.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "pagerank",
		Short:         "Stationary page ranking via Gaussian elimination",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver steps to stderr")

	root.AddCommand(newRankCmd(func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), verbose)
	}))

	return root
}

// newLogger returns a text logger on w; debug records only appear with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
