// Command steinerpack batch-processes Steiner Tree Packing instances:
// every instance directory is loaded, turned into its multicommodity ILP
// model, and checked against any solution files found for it.
//
// Usage:
//
//	steinerpack -config batch.yaml
//	steinerpack -instances ./instances -solutions ./solutions
//
// Flags override config-file values.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/katalvlaran/steinerpack/logger"
	"github.com/katalvlaran/steinerpack/pipeline"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		instances  = flag.String("instances", "", "instances directory (overrides config)")
		solutions  = flag.String("solutions", "", "solutions directory (overrides config)")
		workers    = flag.Int("workers", 0, "concurrent instances, 0 = one per CPU")
	)
	flag.Parse()

	log := logger.Logger()

	cfg := pipeline.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(*configPath); err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
	}
	if *instances != "" {
		cfg.Instances = *instances
	}
	if *solutions != "" {
		cfg.Solutions = *solutions
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if cfg.Instances == "" {
		log.Fatal().Msg("no instances directory configured")
	}

	sum, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("batch aborted")
	}
	if sum.Failed > 0 {
		os.Exit(1)
	}
}
