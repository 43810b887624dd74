// Command hopnet solves a TSP instance with a Hopfield–Tank network and
// compares the tour with nearest neighbour, a random tour and, for small
// instances, the exact optimum. The report is printed as JSON on stdout;
// logs go to stderr.
//
// Usage:
//
//	hopnet [flags]                 # random instance of -points cities
//	hopnet -file cities.txt -v     # instance from file, log every attempt
//
// Every flag has a HOPNET_* environment counterpart (HOPNET_MAX_ATTEMPTS for
// -max-attempts, …), optionally read from a .env file (HOPNET_ENV_FILE).
// Flags win over the environment.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/hopnet/compare"
	"github.com/katalvlaran/hopnet/hopfield"
	"github.com/katalvlaran/hopnet/instance"
)

// output is the JSON document written to stdout.
type output struct {
	Source string         `json:"source"`
	Seed   int64          `json:"seed"`
	Config compare.Config `json:"config"`
	Report compare.Report `json:"report"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without process globals; it returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	lookup, err := envLookup(envFilePath())
	if err != nil {
		fmt.Fprintf(stderr, "hopnet: %v\n", err)
		return 2
	}
	cfg, err := parseConfig(args, lookup, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "hopnet: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err = solve(cfg, logger, stdout); err != nil {
		logger.Error("solve failed", "err", err)
		return 1
	}

	return 0
}

func solve(cfg cliConfig, logger *slog.Logger, stdout io.Writer) error {
	pts, source, err := loadPoints(cfg)
	if err != nil {
		return err
	}
	dist, err := instance.DistanceMatrix(pts)
	if err != nil {
		return err
	}
	logger.Info("instance ready", "source", source, "n", len(pts), "runs", cfg.Compare.Runs)

	cc := cfg.Compare
	if cfg.Verbose {
		logger.Debug("distances", "matrix", dist.String())
		cc.Hook = func(a hopfield.Attempt) {
			logger.Debug("attempt",
				"run", a.Run, "index", a.Index, "iterations", a.Iterations,
				"converged", a.Converged, "valid", a.Valid,
				"tour_len", a.TourLen, "energy", a.FinalEnergy)
		}
	}

	start := time.Now()
	rep, err := compare.Run(dist, cc)
	if err != nil {
		return err
	}
	for _, r := range rep.Results {
		logger.Debug("solver", "name", r.Name, "valid", r.Valid, "length", r.Length, "elapsed", r.Elapsed)
	}
	hop, _ := rep.Result(compare.SolverHopfield)
	if !hop.Valid {
		logger.Warn("hopfield found no valid tour", "attempts", hop.Attempts)
	}
	if best, ok := rep.Best(); ok {
		logger.Info("done", "elapsed", time.Since(start), "best", best.Name, "length", best.Length)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(output{Source: source, Seed: cfg.Seed, Config: cfg.Compare, Report: rep})
}

func loadPoints(cfg cliConfig) ([]instance.Point, string, error) {
	if cfg.File != "" {
		pts, err := instance.LoadFile(cfg.File)
		return pts, cfg.File, err
	}
	pts, err := instance.Generate(cfg.Points, instance.WithSeed(cfg.Seed))

	return pts, "random", err
}
