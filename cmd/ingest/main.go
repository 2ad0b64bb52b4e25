package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"studydeck/internal/common"
	ing "studydeck/internal/ingest"
	"studydeck/internal/llm"
	"studydeck/internal/pdf"
	"studydeck/internal/pipeline"
	"studydeck/internal/repository"
	"studydeck/internal/studygen"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// ingest registers PDFs under a directory as documents of a subject and
// optionally processes them or keeps watching the directory for new files.
func main() {
	var (
		dir         = flag.String("dir", "", "directory to ingest PDFs from (required)")
		subjectStr  = flag.String("subject", "", "subject id to attach documents to (required)")
		watch       = flag.Bool("watch", false, "keep watching the directory for new PDFs")
		process     = flag.Bool("process", false, "run the full pipeline on newly ingested documents")
		concurrency = flag.Int("concurrency", 2, "parallel documents when --process is set")
	)
	flag.Parse()

	if *dir == "" || *subjectStr == "" {
		printError("Error: --dir and --subject are required\n")
		os.Exit(1)
	}
	subjectID, err := uuid.Parse(*subjectStr)
	if err != nil {
		printError("Error: --subject must be a UUID\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		printError("Error: DB_URL env var is required\n")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		printError("Error: opening DB: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	subjects := repository.NewSubjectRepository(entc, logger)
	docs := repository.NewDocumentRepository(entc, logger)
	artifacts := repository.NewArtifactRepository(entc, logger)
	ingestor := ing.NewFSIngestor(subjects, docs, logger)

	var proc *pipeline.Processor
	if *process {
		if cfg.LLM.APIKey == "" {
			printError("Error: OPENAI_API_KEY env var is required with --process\n")
			os.Exit(2)
		}
		extractor := pdf.NewExtractor(pdf.Config{
			MinWords:      cfg.Extract.MinWords,
			MinAlnumRatio: cfg.Extract.MinAlnumRatio,
			MaxPages:      cfg.Extract.MaxPages,
		}, logger)
		client := llm.NewClient(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
			MaxDocChars: cfg.LLM.MaxDocChars,
		}, logger)
		orch := studygen.NewOrchestrator(client, studygen.Config{GlobalTimeout: cfg.LLM.GlobalTimeout}, logger)
		proc = pipeline.NewProcessor(extractor, orch, docs, artifacts, logger)
	}

	runBatch := func(results []ing.IngestionResult) {
		if proc == nil {
			return
		}
		var ids []uuid.UUID
		for _, r := range results {
			if r.Err != "" || r.Deduplicated {
				continue
			}
			if id, err := uuid.Parse(r.DocumentID); err == nil {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return
		}
		if err := proc.ProcessBatch(ctx, ids, *concurrency); err != nil {
			logger.Error("batch processing finished with failures", "error", err)
		}
	}

	results, stats, err := ingestor.IngestDirectory(ctx, subjectID, *dir, true)
	if err != nil {
		printError("Error: ingesting directory: %v\n", err)
		os.Exit(1)
	}
	logger.Info("directory ingested",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)
	runBatch(results)

	if !*watch {
		return
	}

	events, errs, err := ing.StartWatcher(ctx, ing.WatchConfig{
		Roots:    []string{*dir},
		Debounce: 2 * time.Second,
	})
	if err != nil {
		printError("Error: starting watcher: %v\n", err)
		os.Exit(1)
	}
	logger.Info("watching for new PDFs", "dir", *dir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if ok {
				logger.Error("watch error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, subjectID, path)
			if err != nil {
				logger.Error("ingest failed", "path", path, "error", err)
				continue
			}
			logger.Info("ingested", "path", path, "document_id", r.DocumentID, "deduplicated", r.Deduplicated)
			runBatch([]ing.IngestionResult{r})
		}
	}
}
