package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/hopnet/compare"
)

// envPrefix namespaces every environment variable the CLI reads.
const envPrefix = "HOPNET_"

// defaultEnvFile is read when HOPNET_ENV_FILE is unset. A missing file is fine.
const defaultEnvFile = ".env"

// cliConfig is the fully resolved command configuration:
// defaults, then environment (process env over the .env file), then flags.
type cliConfig struct {
	File    string // instance file; empty ⇒ random instance
	Points  int    // random instance size
	Seed    int64
	Verbose bool
	Compare compare.Config
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Points:  10,
		Seed:    1,
		Compare: compare.DefaultConfig(),
	}
}

// lookupFunc mirrors os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// envLookup layers the process environment over the variables of envFile.
func envLookup(envFile string) (lookupFunc, error) {
	vars, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]

		return v, ok
	}, nil
}

// applyEnv overrides c with every HOPNET_* variable present in lookup.
func applyEnv(c *cliConfig, lookup lookupFunc) error {
	o := &c.Compare.Hopfield
	floats := map[string]*float64{
		"A": &o.A, "B": &o.B, "C": &o.C, "D": &o.D,
		"NPRIME": &o.NPrime, "U0": &o.U0, "U00": &o.U00,
		"INIT_BAND": &o.InitBand, "DELTA": &o.Delta, "TOLERANCE": &o.Tolerance,
	}
	ints := map[string]*int{
		"POINTS": &c.Points, "RUNS": &c.Compare.Runs, "WORKERS": &c.Compare.Workers,
		"EXACT_LIMIT": &c.Compare.ExactLimit,
		"MAX_ITERATIONS": &o.MaxIterations, "MAX_ATTEMPTS": &o.MaxAttempts,
	}

	for name, dst := range floats {
		if v, ok := lookup(envPrefix + name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, name, err)
			}
			*dst = f
		}
	}
	for name, dst := range ints {
		if v, ok := lookup(envPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", envPrefix, name, err)
			}
			*dst = n
		}
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = s
	}
	if v, ok := lookup(envPrefix + "FILE"); ok {
		c.File = v
	}
	if v, ok := lookup(envPrefix + "VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSE: %w", envPrefix, err)
		}
		c.Verbose = b
	}

	return nil
}

// parseConfig resolves the configuration for args (without the program name).
func parseConfig(args []string, lookup lookupFunc, stderr io.Writer) (cliConfig, error) {
	c := defaultCLIConfig()
	if err := applyEnv(&c, lookup); err != nil {
		return cliConfig{}, err
	}

	o := &c.Compare.Hopfield
	fsFlags := flag.NewFlagSet("hopnet", flag.ContinueOnError)
	fsFlags.SetOutput(stderr)
	fsFlags.StringVar(&c.File, "file", c.File, "instance file (\"n\" or \"idx x y\" first line, then \"idx x y\" lines); empty generates points")
	fsFlags.IntVar(&c.Points, "points", c.Points, "number of random points when no file is given")
	fsFlags.Int64Var(&c.Seed, "seed", c.Seed, "seed for the instance generator and every solver")
	fsFlags.BoolVar(&c.Verbose, "v", c.Verbose, "log every Hopfield attempt")
	fsFlags.IntVar(&c.Compare.Runs, "runs", c.Compare.Runs, "independent Hopfield runs (>1 runs them in parallel)")
	fsFlags.IntVar(&c.Compare.Workers, "workers", c.Compare.Workers, "goroutines for parallel runs")
	fsFlags.IntVar(&c.Compare.ExactLimit, "exact-limit", c.Compare.ExactLimit, "largest n solved by the exact oracle (0 disables)")
	fsFlags.Float64Var(&o.A, "a", o.A, "row penalty A")
	fsFlags.Float64Var(&o.B, "b", o.B, "column penalty B")
	fsFlags.Float64Var(&o.C, "c", o.C, "count penalty C")
	fsFlags.Float64Var(&o.D, "d", o.D, "distance penalty D")
	fsFlags.Float64Var(&o.NPrime, "nprime", o.NPrime, "target active-neuron count n'")
	fsFlags.Float64Var(&o.U0, "u0", o.U0, "activation gain u0")
	fsFlags.Float64Var(&o.U00, "u00", o.U00, "initial potential baseline u00")
	fsFlags.Float64Var(&o.InitBand, "init-band", o.InitBand, "initial potential half-width, in units of u0")
	fsFlags.Float64Var(&o.Delta, "delta", o.Delta, "integration step")
	fsFlags.IntVar(&o.MaxIterations, "max-iterations", o.MaxIterations, "iterations per attempt")
	fsFlags.IntVar(&o.MaxAttempts, "max-attempts", o.MaxAttempts, "attempts before giving up")
	fsFlags.Float64Var(&o.Tolerance, "tolerance", o.Tolerance, "stability tolerance")

	if err := fsFlags.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fsFlags.NArg() > 0 {
		return cliConfig{}, fmt.Errorf("unexpected arguments: %v", fsFlags.Args())
	}
	if c.Compare.Workers < 1 {
		c.Compare.Workers = runtime.GOMAXPROCS(0)
	}
	c.Compare.Seed = c.Seed

	return c, nil
}

// envFilePath returns HOPNET_ENV_FILE or the default.
func envFilePath() string {
	if p, ok := os.LookupEnv(envPrefix + "ENV_FILE"); ok && p != "" {
		return p
	}

	return defaultEnvFile
}

