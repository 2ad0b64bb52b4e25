package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"studydeck/constants"
	"studydeck/internal/chat"
	"studydeck/internal/common"
	"studydeck/internal/export"
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

// studygen runs the whole pipeline for one local PDF against an embedded
// SQLite database: extract, generate, persist, and optionally export XLSX.
func main() {
	var (
		file = flag.String("file", "", "PDF file to process (required)")
		out  = flag.String("out", "", "output XLSX file path (optional)")
		db   = flag.String("db", "file:studygen?mode=memory&cache=shared", "SQLite DSN")
		ask  = flag.String("ask", "", "ask one question about the document after processing")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, err := repository.OpenSQLite(*db, logger)
	if err != nil {
		printError("Error: opening sqlite: %v\n", err)
		os.Exit(1)
	}
	defer entc.Close()
	if err := entc.Schema.Create(ctx); err != nil {
		printError("Error: migrating schema: %v\n", err)
		os.Exit(1)
	}

	docs := repository.NewDocumentRepository(entc, logger)
	artifacts := repository.NewArtifactRepository(entc, logger)
	subjects := repository.NewSubjectRepository(entc, logger)

	extractor := pdf.NewExtractor(pdf.Config{
		MinWords:      cfg.Extract.MinWords,
		MinAlnumRatio: cfg.Extract.MinAlnumRatio,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)
	client := llm.NewClient(llm.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		ChatModel:    cfg.LLM.ChatModel,
		Temperature:  cfg.LLM.Temperature,
		Timeout:      cfg.LLM.Timeout,
		MaxDocChars:  cfg.LLM.MaxDocChars,
		MaxChatChars: cfg.LLM.MaxChatChars,
	}, logger)
	orch := studygen.NewOrchestrator(client, studygen.Config{
		GlobalTimeout: cfg.LLM.GlobalTimeout,
		Preflight:     true,
	}, logger)
	proc := pipeline.NewProcessor(extractor, orch, docs, artifacts, logger)

	subject, err := subjects.CreateSubject(ctx, &repository.CreateSubjectRequest{
		OwnerID: "local",
		Name:    "Local run",
	})
	if err != nil {
		printError("Error: creating subject: %v\n", err)
		os.Exit(1)
	}
	doc, err := docs.CreateDocument(ctx, &repository.CreateDocumentRequest{
		SubjectID: subject.ID,
		Filename:  filepath.Base(*file),
		Title:     constants.DocumentTitle(*file),
		FilePath:  *file,
	})
	if err != nil {
		printError("Error: creating document: %v\n", err)
		os.Exit(1)
	}

	if err := proc.Process(ctx, doc.ID); err != nil {
		printError("Error: processing failed: %v\n", err)
		os.Exit(1)
	}

	set, err := artifacts.GetStudySet(ctx, doc.ID)
	if err != nil {
		printError("Error: loading study set: %v\n", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		printError("Error: encoding study set: %v\n", err)
		os.Exit(1)
	}

	if *ask != "" {
		processed, err := docs.GetByID(ctx, doc.ID)
		if err != nil {
			printError("Error: reloading document: %v\n", err)
			os.Exit(1)
		}
		assistant := chat.NewAssistant(client, client.ChatModel(), client.MaxChatChars(), logger)
		answer := assistant.Respond(ctx, processed.ExtractedText, *ask, nil)
		fmt.Printf("\nQ: %s\nA: %s\n", *ask, answer)
	}

	if *out != "" {
		exporter := export.NewService(docs, artifacts, logger)
		xlsx, err := exporter.ExportStudySetXLSX(ctx, doc.ID)
		if err != nil {
			printError("Error: exporting xlsx: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0o600); err != nil {
			printError("Error: writing %s: %v\n", *out, err)
			os.Exit(1)
		}
		logger.Info("wrote workbook", "path", *out, "bytes", len(xlsx))
	}
}
