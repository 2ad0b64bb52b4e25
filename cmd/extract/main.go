package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"studydeck/internal/common"
	"studydeck/internal/pdf"
)

// extract runs the two-stage text extraction against a local PDF and prints
// the outcome as JSON, without touching a database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: extract <file.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	extractor := pdf.NewExtractor(pdf.Config{
		MinWords:      cfg.Extract.MinWords,
		MinAlnumRatio: cfg.Extract.MinAlnumRatio,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	out := struct {
		Title          string   `json:"title"`
		Author         string   `json:"author"`
		Method         string   `json:"method"`
		TotalPages     int      `json:"total_pages"`
		ExtractedPages int      `json:"extracted_pages"`
		Chars          int      `json:"chars"`
		LowQuality     bool     `json:"low_quality"`
		Warnings       []string `json:"warnings,omitempty"`
		ElapsedMs      int64    `json:"elapsed_ms"`
		Text           string   `json:"text"`
	}{
		Title:          res.Metadata.Title,
		Author:         res.Metadata.Author,
		Method:         string(res.Metadata.Method),
		TotalPages:     res.Metadata.TotalPages,
		ExtractedPages: res.Metadata.ExtractedPages,
		Chars:          len(res.Text),
		LowQuality:     res.LowQuality(),
		Warnings:       res.Warnings,
		ElapsedMs:      res.Duration.Milliseconds(),
		Text:           res.Text,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
