package main

import (
	"seeder/config"
	"seeder/internal/dataset"
	"seeder/internal/domain/entity"
	"seeder/internal/generate"
	logs "seeder/internal/infra/log"

	"github.com/pkg/errors"
)

func runGenerate(configPath, outDir string, seed uint64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	logger, err := logs.New(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	pools, err := generate.NewOrchestrator(cfg, logger).Generate()
	if err != nil {
		return err
	}

	if err := dataset.Write(outDir, pools); err != nil {
		return err
	}

	total := 0
	for _, kind := range entity.Kinds {
		total += len(pools[kind])
		logger.Info("dataset written",
			"kind", kind.String(),
			"file", dataset.FileName(kind),
			"count", len(pools[kind]))
	}
	logger.Info("generation complete", "dir", outDir, "seed", cfg.Seed, "total", total)

	return nil
}
