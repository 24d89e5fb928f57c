package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/gauss"
	"github.com/katalvlaran/lvlalg/pagerank"
)

const defaultRho = 0.15

var errNonFiniteScores = errors.New("scores are not finite")

// rankFlags holds the values bound to the rank command's flags.
type rankFlags struct {
	graph     string
	rho       float64
	dangling  string
	tolerance float64
}

// rankConfig is the effective configuration after merging flags over the
// graph file: an explicitly set flag wins, then the file, then the default.
type rankConfig struct {
	rho       float64
	dangling  pagerank.DanglingPolicy
	tolerance float64
}

func newRankCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var f rankFlags

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the pages of a YAML link graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, &f, logger(cmd))
		},
	}
	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "path to the YAML graph file")
	cmd.Flags().Float64Var(&f.rho, "rho", defaultRho, "teleport probability in [0,1]")
	cmd.Flags().StringVar(&f.dangling, "dangling", pagerank.DanglingReject.String(),
		"policy for pages without outbound links: reject|uniform|teleport-only")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", gauss.DefaultPivotTolerance, "vanishing-pivot threshold")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// resolveConfig merges flags and file settings and validates the result.
func resolveConfig(cmd *cobra.Command, f *rankFlags, g *graphFile) (rankConfig, error) {
	cfg := rankConfig{rho: defaultRho, tolerance: f.tolerance}
	if g.Rho != nil {
		cfg.rho = *g.Rho
	}
	if cmd.Flags().Changed("rho") {
		cfg.rho = f.rho
	}

	name := f.dangling
	if g.Dangling != "" && !cmd.Flags().Changed("dangling") {
		name = g.Dangling
	}
	policy, ok := pagerank.ParseDanglingPolicy(name)
	if !ok {
		return rankConfig{}, fmt.Errorf("unknown dangling policy %q (want reject, uniform or teleport-only)", name)
	}
	cfg.dangling = policy

	if cfg.tolerance < 0 || math.IsNaN(cfg.tolerance) || math.IsInf(cfg.tolerance, 0) {
		return rankConfig{}, fmt.Errorf("invalid tolerance %v", cfg.tolerance)
	}

	return cfg, nil
}

func runRank(cmd *cobra.Command, f *rankFlags, log *slog.Logger) error {
	g, err := loadGraph(f.graph)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, f, g)
	if err != nil {
		return err
	}
	l, err := g.linkMatrix()
	if err != nil {
		return err
	}

	log.Debug("ranking graph",
		slog.String("file", f.graph),
		slog.Int("pages", len(g.Pages)),
		slog.Int("links", len(g.Links)),
		slog.Float64("rho", cfg.rho),
		slog.String("dangling", cfg.dangling.String()),
		slog.Float64("tolerance", cfg.tolerance))

	start := time.Now()
	scores, err := pagerank.Ranking(g.Pages, l, cfg.rho,
		pagerank.WithDanglingPolicy(cfg.dangling),
		pagerank.WithPivotTolerance(cfg.tolerance))
	if err != nil {
		return err
	}
	log.Debug("ranking done", slog.Duration("elapsed", time.Since(start)))

	for _, sc := range scores {
		if math.IsNaN(sc.Score) || math.IsInf(sc.Score, 0) {
			log.Warn("transition matrix has no stationary distribution",
				slog.String("dangling", cfg.dangling.String()),
				slog.Float64("rho", cfg.rho))

			return fmt.Errorf("page %q: %w (try --dangling uniform)", sc.Label, errNonFiniteScores)
		}
	}

	out := cmd.OutOrStdout()
	for _, s := range scores {
		if _, err = fmt.Fprintf(out, "%s\t%.6f\n", s.Label, s.Score); err != nil {
			return err
		}
	}

	return nil
}
