// Package main provides the CLI entrypoint for jddf-generator.
//
// jddf-generator translates a GraphQL schema introspection document
// into a JDDF schema: it reads introspection JSON from stdin, a file,
// or a live endpoint, converts every type reachable from the query
// root, and writes the resulting definitions document as JSON.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"jddf-generator/internal/convert"
	"jddf-generator/internal/introspection"
	"jddf-generator/internal/jddf"
	"jddf-generator/internal/mapping"
	"jddf-generator/internal/output"
	"jddf-generator/internal/setup/config"
)

var errConflictingInputs = errors.New("--endpoint and --input are mutually exclusive")

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "jddf-generator",
		Usage: "Generate a JDDF schema from a GraphQL introspection document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Introspection JSON file ('-' for stdin)",
			},
			&cli.StringFlag{
				Name:    "endpoint",
				Aliases: []string{"e"},
				Usage:   "GraphQL endpoint to introspect",
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "Bearer token for the endpoint",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (stdout if omitted)",
			},
			&cli.BoolFlag{
				Name:  "indent",
				Usage: "Pretty-print the output document",
			},
			&cli.StringFlag{
				Name:  "scalars",
				Usage: "YAML file mapping custom scalars to JDDF types",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "List nesting budget per field",
				Value: convert.DefaultListDepth,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Dump the decoded introspection model to stderr",
			},
		},
		Action: generate,
	}

	return app.Run(context.Background(), os.Args)
}

func generate(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := newLogger(c.Bool("debug"))
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	doc, err := acquire(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if c.Bool("debug") {
		introspection.Dump(os.Stderr, doc)
	}

	overrides, err := loadOverrides(cfg.Scalars)
	if err != nil {
		return err
	}

	schema, err := convert.Assemble(doc, convert.Options{
		MaxListDepth: cfg.MaxListDepth,
		Scalars:      overrides,
	})
	if err != nil {
		return err
	}

	if err := output.Write(schema, cfg.Output, cfg.Indent); err != nil {
		return err
	}

	logger.Info("schema generated",
		zap.String("root", schema.Ref),
		zap.Int("definitions", len(schema.Definitions)))

	return nil
}

// loadConfig merges the optional config file with CLI flags; flags win.
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if c.IsSet("input") {
		cfg.Input = c.String("input")
	}

	if c.IsSet("endpoint") {
		cfg.Endpoint = c.String("endpoint")
	}

	if c.IsSet("token") {
		cfg.Token = c.String("token")
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}

	if c.IsSet("indent") {
		cfg.Indent = c.Bool("indent")
	}

	if c.IsSet("scalars") {
		cfg.Scalars = c.String("scalars")
	}

	if c.IsSet("max-depth") {
		cfg.MaxListDepth = int(c.Int("max-depth"))
	}

	if cfg.Endpoint != "" && c.IsSet("input") {
		return nil, errConflictingInputs
	}

	return cfg, nil
}

// acquire obtains the introspection document from the configured source.
func acquire(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*introspection.Document, error) {
	if cfg.Endpoint != "" {
		client := introspection.NewClient(cfg.Token, logger)
		return client.Fetch(ctx, cfg.Endpoint)
	}

	if cfg.Input == "" || cfg.Input == "-" {
		doc, err := introspection.Load(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading introspection from stdin: %w", err)
		}

		return doc, nil
	}

	return introspection.LoadFile(cfg.Input)
}

// loadOverrides loads the scalar-override table, if configured.
func loadOverrides(path string) (map[string]jddf.Type, error) {
	if path == "" {
		return nil, nil
	}

	of, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return of.Table(), nil
}

// newLogger builds a stderr logger; debug enables verbose output.
func newLogger(debug bool) *zap.Logger {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.OutputPaths = []string{"stderr"}

	if !debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
