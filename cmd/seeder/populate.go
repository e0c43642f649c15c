package main

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"seeder/config"
	"seeder/internal/dataset"
	"seeder/internal/domain/entity"
	"seeder/internal/infra/dynamo"
	logs "seeder/internal/infra/log"
	"seeder/internal/load"

	"github.com/pkg/errors"
)

const (
	modeAppend  = "append"
	modeReplace = "replace"
)

func runPopulate(ctx context.Context, configPath, dir, mode string, timeout time.Duration) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to init logger")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	store, err := dynamo.New(ctx, cfg, logger)
	if err != nil {
		return err
	}

	tables := dataset.Tables(cfg)
	var data []load.TableData
	for _, kind := range entity.Kinds {
		items, err := dataset.Read(dir, kind)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("dataset file missing, skipping",
					"kind", kind.String(), "file", dataset.FileName(kind))

				continue
			}

			return err
		}

		table := tables[kind]
		if err := store.EnsureTable(ctx, table); err != nil {
			return err
		}
		if mode == modeReplace {
			if _, err := store.Purge(ctx, table); err != nil {
				return err
			}
		}

		data = append(data, load.TableData{Table: table, Items: items})
	}
	if len(data) == 0 {
		return errors.Errorf("no dataset files found in %s", dir)
	}

	summary := load.NewEngine(store, cfg.Load, logger).LoadAll(ctx, data)
	printSummary(summary)

	if summary.Failed() {
		return errors.New("load finished with failures")
	}

	return nil
}

func printSummary(summary load.Summary) {
	fmt.Println("Load summary:")
	for _, t := range summary.Tables {
		fmt.Printf("  %-20s written %d/%d", t.Table, t.Written, t.Total)
		if t.Retries > 0 {
			fmt.Printf(", retries %d", t.Retries)
		}
		if t.NotAttempted > 0 {
			fmt.Printf(", not attempted %d", t.NotAttempted)
		}
		if len(t.Failed) > 0 {
			fmt.Printf(", failed %d: %v", len(t.Failed), t.Failed)
		}
		fmt.Println()
	}
	fmt.Printf("Total written: %d\n", summary.Written())
}
