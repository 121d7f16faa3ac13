package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/xyproto/env/v2"

	"go-steamapi-gen/codegen"
	"go-steamapi-gen/config"
	"go-steamapi-gen/jsonmodel"
	"go-steamapi-gen/utils"
	"go-steamapi-gen/watch"
)

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// generate regenerates the whole header. The file is only written once the
// output is complete.
func generate(schemaPath, outputPath string, cfg *config.Config, logger *log.Logger) error {
	api, err := jsonmodel.LoadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	s, err := codegen.New(api, cfg, logger).Generate()
	if err != nil {
		return fmt.Errorf("generating %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, s, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	logger.Println("Done.")
	return nil
}

func main() {
	schemaPath := flag.String("schema", env.Str("STEAMAPI_SCHEMA", "steam_api.json"), "Path to steam_api.json")
	outputPath := flag.String("output", env.Str("STEAMAPI_HEADER", codegen.DefaultHeaderName), "Path of the generated C header")
	configPath := flag.String("config", env.Str("STEAMAPI_CONFIG"), "Optional YAML file overriding exclusions and extra declarations")
	guard := flag.String("guard", "", "Include guard symbol (default: derived from -output)")
	quiet := flag.Bool("quiet", env.Bool("STEAMAPI_QUIET"), "Suppress progress notices")
	watchMode := flag.Bool("watch", false, "Regenerate whenever the schema file changes")
	flag.Parse()

	logger := log.New(os.Stderr, "", 0)
	if *quiet {
		logger.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	if *guard != "" {
		cfg.Guard = *guard
	} else if cfg.Guard == "" {
		cfg.Guard = utils.GuardSymbol(*outputPath)
	}

	if err := generate(*schemaPath, *outputPath, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !*watchMode {
		return
	}

	w, err := watch.New(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Println("Watching", *schemaPath)
	err = w.Watch(ctx, func(path string) {
		logger.Println("Schema changed, regenerating", *outputPath)
		if err := generate(path, *outputPath, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
