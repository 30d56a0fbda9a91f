package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/steinerpack/ilp"
	"github.com/katalvlaran/steinerpack/instance"
	"github.com/katalvlaran/steinerpack/logger"
	"github.com/katalvlaran/steinerpack/solution"
	"github.com/katalvlaran/steinerpack/steiner"
	"github.com/katalvlaran/steinerpack/verify"
)

// ErrNoInstances is returned by Run when the instances directory holds
// no usable instance subdirectories.
var ErrNoInstances = errors.New("pipeline: no instance directories found")

// Outcome is the verification verdict for one solution file of one
// instance.
type Outcome struct {
	// SolutionPath is the verified file.
	SolutionPath string

	// Result is the verifier's verdict.
	Result *verify.Result

	// Stats carries reconstruction diagnostics (stale arcs etc).
	Stats *solution.Stats
}

// OK reports whether the outcome is feasible with a matching (or
// unclaimed) objective.
func (o *Outcome) OK() bool {
	if !o.Result.Feasible {
		return false
	}
	if o.Result.ObjectiveMatch != nil && !*o.Result.ObjectiveMatch {
		return false
	}

	return true
}

// Summary aggregates a batch run.
type Summary struct {
	// Instances is the number of instance directories discovered.
	Instances int

	// Processed counts instances that completed without error.
	Processed int

	// Failed counts instances that errored or failed verification.
	Failed int

	// Verified counts solution files that passed verification.
	Verified int

	// Elapsed is the wall time of the batch.
	Elapsed time.Duration
}

// BuildAndVerify processes a single instance directory: load the graph
// files, build the ILP model, and verify every discoverable solution.
// solutionDir may be empty; a missing solution file is not an error.
// opts are forwarded to the verifier.
func BuildAndVerify(instanceDir, solutionDir string, opts ...verify.Option) (*ilp.Model, []Outcome, error) {
	// 1. Load and build.
	in, err := instance.Load(instanceDir)
	if err != nil {
		return nil, nil, err
	}
	m, err := steiner.Build(in)
	if err != nil {
		return nil, nil, err
	}

	// 2. Discover solution files: <name>*.sol next to the batch, plus an
	//    in-instance sol.txt.
	name := filepath.Base(instanceDir)
	var paths []string
	if solutionDir != "" {
		matches, globErr := filepath.Glob(filepath.Join(solutionDir, name+"*.sol"))
		if globErr == nil {
			paths = append(paths, matches...)
		}
	}
	if inTree := filepath.Join(instanceDir, "sol.txt"); fileExists(inTree) {
		paths = append(paths, inTree)
	}

	// 3. Parse, reconstruct and verify each solution.
	outcomes := make([]Outcome, 0, len(paths))
	for _, path := range paths {
		rec, parseErr := solution.ParseFile(path)
		if parseErr != nil {
			return m, outcomes, parseErr
		}
		asg, stats, recErr := solution.Reconstruct(rec, in)
		if recErr != nil {
			return m, outcomes, recErr
		}
		res, verErr := verify.Run(m, in, asg, rec.Objective, opts...)
		if verErr != nil {
			return m, outcomes, verErr
		}
		outcomes = append(outcomes, Outcome{SolutionPath: path, Result: res, Stats: stats})
	}

	return m, outcomes, nil
}

// Run processes every instance under cfg.Instances concurrently and
// aggregates a summary. Per-instance failures (including verification
// failures) are counted and logged, never batch-fatal; ctx cancellation
// stops the batch between instances.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	log := logger.Logger().With().Str("component", "pipeline").Logger()
	start := time.Now()

	// 1. Discover instance directories.
	dirs, err := discoverInstances(cfg)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInstances, cfg.Instances)
	}

	sum := &Summary{Instances: len(dirs)}
	var mu sync.Mutex

	// 2. Fan out; each instance is independent of every other.
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, dir := range dirs {
		dir := dir
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			m, outcomes, runErr := BuildAndVerify(dir, cfg.Solutions, verify.WithEpsilon(cfg.Epsilon))

			mu.Lock()
			defer mu.Unlock()
			if runErr != nil {
				sum.Failed++
				log.Error().Err(runErr).Str("instance", dir).Msg("instance failed")

				return nil
			}

			ok := true
			for i := range outcomes {
				o := &outcomes[i]
				if o.OK() {
					sum.Verified++
					continue
				}
				ok = false
				log.Error().Str("instance", dir).Str("solution", o.SolutionPath).
					Bool("feasible", o.Result.Feasible).
					Strs("violated", o.Result.Violated).
					Msg("solution failed verification")
			}
			if !ok {
				sum.Failed++

				return nil
			}

			sum.Processed++
			log.Info().Str("instance", dir).
				Int("variables", m.NumVariables()).
				Int("constraints", len(m.Constraints())).
				Int("solutions", len(outcomes)).
				Msg("instance processed")

			return nil
		})
	}
	err = g.Wait()

	sum.Elapsed = time.Since(start)
	log.Info().Int("instances", sum.Instances).Int("processed", sum.Processed).
		Int("failed", sum.Failed).Int("verified", sum.Verified).
		Dur("elapsed", sum.Elapsed).Msg("batch finished")

	return sum, err
}

// discoverInstances lists subdirectories of cfg.Instances that contain
// at least one .dat file, skipping hidden entries and instances above
// the node limit.
func discoverInstances(cfg Config) ([]string, error) {
	entries, err := os.ReadDir(cfg.Instances)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(cfg.Instances, e.Name())
		if !hasDatFiles(dir) {
			continue
		}
		if cfg.MaxNodes > 0 {
			if n := nodeCount(dir); n == 0 || n > cfg.MaxNodes {
				continue
			}
		}
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// hasDatFiles reports whether dir contains at least one .dat file.
func hasDatFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".dat" {
			return true
		}
	}

	return false
}

// nodeCount peeks the node count from an instance's param.dat without a
// full load; 0 when the file is absent or unparsable.
func nodeCount(dir string) int {
	f, err := os.Open(filepath.Join(dir, "param.dat"))
	if err != nil {
		return 0
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) >= 2 && fields[0] == "nodes" {
			n, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				return 0
			}

			return n
		}
	}

	return 0
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
