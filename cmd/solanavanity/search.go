package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	vanity "github.com/sava-labs/solanavanity"
	"github.com/sava-labs/solanavanity/internal/config"
	"github.com/sava-labs/solanavanity/internal/ui"
)

func numCPU() int { return runtime.NumCPU() }

const updateRate = 100 * time.Millisecond

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for keypairs matching a base58 prefix and/or suffix",
		RunE:  runSearch,
	}
	flags := cmd.Flags()
	flags.String("begins-with", "", "base58 prefix the public key must start with")
	flags.String("ends-with", "", "base58 suffix the public key must end with")
	flags.Bool("case-sensitive", true, "match case-sensitively")
	flags.Int64("find-keys", 1, "number of matching keypairs to find")
	flags.Int("workers", 0, "number of concurrent workers (0 = number of CPUs)")
	flags.Int("check-every", 262_144, "mismatches accumulated locally before a progress checkpoint")
	flags.Bool("sig-verify", false, "sign and verify a probe message on every candidate")
	flags.String("key-path", "./keys", "directory matched keypairs are written to")
	return cmd
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	workers := cfg.Workers
	if workers <= 0 {
		workers = numCPU()
	}

	gen, err := vanity.NewGenerator(vanity.Options{
		KeyPath:       cfg.KeyPath,
		SigVerify:     cfg.SigVerify,
		NumThreads:    workers,
		BeginsWith:    cfg.BeginsWith,
		EndsWith:      cfg.EndsWith,
		CaseSensitive: cfg.CaseSensitive,
		FindKeys:      cfg.FindKeys,
		CheckEvery:    cfg.CheckEvery,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	ui.ClearScreen()
	ui.PrintBanner(version)
	difficulty := estimateDifficulty(cfg.BeginsWith, cfg.EndsWith, cfg.CaseSensitive)
	ui.PrintSearchInfo(cfg.BeginsWith, cfg.EndsWith, workers, cfg.FindKeys, difficulty)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	matches := make(chan vanity.Result)
	go func() {
		for {
			result, err := gen.Take(ctx)
			if err != nil {
				return
			}
			matches <- result
		}
	}()

	start := time.Now()
	ticker := time.NewTicker(updateRate)
	defer ticker.Stop()
	frame := 0
	found := int64(0)

	for found < cfg.FindKeys {
		select {
		case <-sigCh:
			ui.ClearLine()
			fmt.Println("\n    cancelled")
			gen.BreakOut()
			return nil
		case <-ticker.C:
			searched := uint64(gen.NumSearched())
			elapsed := time.Since(start)
			hashRate := float64(searched) / elapsed.Seconds()
			ui.PrintProgress(gen.NumFound(), searched, hashRate, elapsed, difficulty, frame)
			frame++
		case result := <-matches:
			ui.ClearLine()
			path := cfg.KeyPath + "/" + result.Base58PublicKey + ".json"
			ui.PrintMatch(result.Base58PublicKey, time.Duration(result.DurationNanos), result.AttemptsBySearch, path)
			found++
		}
	}
	return nil
}

// estimateDifficulty returns the expected number of attempts per match,
// used only to size the progress bar; it never gates the search itself.
func estimateDifficulty(beginsWith, endsWith string, caseSensitive bool) uint64 {
	n := len(beginsWith) + len(endsWith)
	if n == 0 {
		return 1
	}
	base := 58.0
	if !caseSensitive {
		base = 58.0 / 1.5 // letters fold roughly two-to-one, digits don't fold at all
	}
	return uint64(math.Pow(base, float64(n)))
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "" // keep CLI output free of timestamps
	return cfg.Build()
}
