// Package main provides the horizon-tail CLI entrypoint.
//
// horizon-tail follows a Horizon resource collection as a live event
// stream and prints each record to stdout as a JSON line. The stream is
// resumed across reconnects from the last delivered cursor.
//
// Usage:
//
//	horizon-tail --horizon https://horizon.stellar.org --resource ledgers
//	horizon-tail --resource transactions --cursor now
//	horizon-tail --config tail.yaml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cenkalti/backoff/v4"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/api/effects"
	"github.com/aurora-rs/horizon-go/api/ledgers"
	"github.com/aurora-rs/horizon-go/api/operations"
	"github.com/aurora-rs/horizon-go/api/payments"
	"github.com/aurora-rs/horizon-go/api/trades"
	"github.com/aurora-rs/horizon-go/api/transactions"
)

const defaultHorizon = "https://horizon.stellar.org"

// fileConfig mirrors the command line flags; flags win over the file.
type fileConfig struct {
	Horizon  string `yaml:"horizon"`
	Resource string `yaml:"resource"`
	Cursor   string `yaml:"cursor"`
}

func main() {
	app := &cli.App{
		Name:    "horizon-tail",
		Usage:   "Follow a Horizon resource collection as a live stream",
		Version: horizon.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "horizon",
				Usage: "Horizon server base URL",
			},
			&cli.StringFlag{
				Name:  "resource",
				Usage: "Collection to follow: ledgers, transactions, operations, payments, effects, trades",
			},
			&cli.StringFlag{
				Name:  "cursor",
				Usage: "Paging token to resume from (\"now\" to start at the tip)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to YAML config file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := fileConfig{
		Horizon:  defaultHorizon,
		Resource: "ledgers",
	}
	if path := c.String("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	if v := c.String("horizon"); v != "" {
		cfg.Horizon = v
	}
	if v := c.String("resource"); v != "" {
		cfg.Resource = v
	}
	if v := c.String("cursor"); v != "" {
		cfg.Cursor = v
	}

	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, err := horizon.NewClient(cfg.Horizon, horizon.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("following collection",
		zap.String("horizon", cfg.Horizon),
		zap.String("resource", cfg.Resource),
		zap.String("cursor", cfg.Cursor))

	err = tail(ctx, client, cfg.Resource, cfg.Cursor)
	if ctx.Err() != nil {
		logger.Info("interrupted")
		return nil
	}
	return err
}

func tail(ctx context.Context, client *horizon.Client, resource, cursor string) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 0

	switch resource {
	case "ledgers":
		return horizon.Tail(ctx, client, ledgers.All().WithCursor(cursor), policy, printRecord)
	case "transactions":
		return horizon.Tail(ctx, client, transactions.All().WithCursor(cursor), policy, printRecord)
	case "operations":
		return horizon.Tail(ctx, client, operations.All().WithCursor(cursor), policy, printRecord)
	case "payments":
		return horizon.Tail(ctx, client, payments.All().WithCursor(cursor), policy, printRecord)
	case "effects":
		return horizon.Tail(ctx, client, effects.All().WithCursor(cursor), policy, printRecord)
	case "trades":
		return horizon.Tail(ctx, client, trades.All().WithCursor(cursor), policy, printRecord)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

func printRecord[R any](record R) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(data))
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
