package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/lecture-flow/internal/artifact"
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/generator"
	"github.com/nguyentantai21042004/lecture-flow/internal/input"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/pipeline"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcript"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults and environment only when empty)")
	videoURL := flag.String("url", "", "video URL; overrides VIDEO_URL and the input file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, *configPath, *videoURL))
}

func run(ctx context.Context, configPath, videoURL string) int {
	// Load configuration
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript language: %s", cfg.Transcript.Language)
	log.Info(ctx, "LLM: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "Storage: %s", cfg.Storage.Driver)

	if cfg.LLM.APIKey == "" {
		log.Warn(ctx, "%s is not set; FAQ and summary generation will fail", cfg.LLM.APIKeyEnv)
	}

	// Resolve the input; a missing URL is handled by the pipeline as an invalid reference
	rawURL, err := input.New(videoURL, cfg.Input, log).VideoURL(ctx)
	if err != nil {
		log.Error(ctx, "Failed to read input: %v", err)
	}

	// Initialize dependencies
	httpClient := &http.Client{Timeout: cfg.Transcript.HTTPTimeout}

	acq := transcript.New(transcript.NewYouTube(httpClient, ""), cfg.Transcript.Language, log)

	provider, err := generator.NewProvider(cfg.LLM, nil)
	if err != nil {
		log.Error(ctx, "Failed to create LLM provider: %v", err)
		return 1
	}
	gen := generator.New(provider, cfg.LLM, cfg.Transcript.LanguageName, log)

	store, err := artifact.NewStore(ctx, cfg.Storage)
	if err != nil {
		log.Error(ctx, "Failed to open artifact store: %v", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn(ctx, "Failed to close artifact store: %v", err)
		}
	}()
	writer := artifact.NewWriter(store, cfg.Storage.Prefix, log)

	p := pipeline.New(pipeline.Options{
		SequentialGeneration: cfg.Pipeline.SequentialGeneration,
		DOCX:                 cfg.Output.DOCX,
	}, acq, gen, writer, log)

	report, err := p.Run(ctx, rawURL)
	if err != nil {
		log.Error(ctx, "Pipeline aborted (%s): %v", report.State, err)
		return 1
	}

	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
