// Package compare runs the Hopfield–Tank solver next to the classical
// baselines on one instance and reports every tour on the same fitness scale.
//
// The report is plain data with JSON tags, so the CLI can print it as is:
//
//	rep, err := compare.Run(dist, compare.DefaultConfig())
//	if err != nil { … }
//	best, _ := rep.Best()
//
// Every solver draws from its own RNG stream derived from Config.Seed, so a
// report is reproducible for a fixed seed.
package compare
