// Command ssmixgen is the reference CLI wrapper around package generate. It
// satisfies spec.md §6's exit-code contract: 0 on a successful run, non-zero
// on a validation failure or any I/O error, logging either way via zerolog.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/ssmixgen/generate"
	"github.com/dshills/ssmixgen/internal/config"
	"github.com/dshills/ssmixgen/internal/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ssmixgen",
		Short: "Generate a synthetic SS-MIX2 HL7 v2.5 data store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate() error {
	env := os.Getenv("SSMIXGEN_ENV")
	log := logging.New(env)

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("loading configuration")
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info().
		Str("source_dir", cfg.SourceDir).
		Str("output_dir", cfg.OutputDir).
		Int("max_workers", cfg.MaxWorkers).
		Bool("already_validated", cfg.AlreadyValidated).
		Msg("starting generation run")

	runCfg := generate.Config{
		SourceDir:        cfg.SourceDir,
		OutputDir:        cfg.OutputDir,
		MaxWorkers:       cfg.MaxWorkers,
		AlreadyValidated: cfg.AlreadyValidated,
		Seed:             cfg.Seed,
		FacilityCode:     cfg.FacilityCode,
		FacilityName:     cfg.FacilityName,
	}

	if err := generate.Run(ctx, runCfg); err != nil {
		if err == generate.ErrValidationFailed {
			log.Error().Err(err).Msg("input validation failed; see validation_errors.json")
		} else {
			log.Error().Err(err).Msg("generation run failed")
		}
		return err
	}

	log.Info().Msg("generation run complete")
	return nil
}
