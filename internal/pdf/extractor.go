// Package pdf converts PDF files into plain text for the study pipeline.
//
// Two independent backends run in fallback order: a pure-Go decoder first,
// then MuPDF with a table sub-strategy for stubborn pages. A quality
// heuristic over word-token count and character validity decides whether a
// backend's output is accepted.
package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"studydeck/constants"
)

// Metadata carries document-level descriptive fields plus page accounting.
// Descriptive fields are best-effort and default to "unknown".
type Metadata struct {
	Title          string
	Author         string
	Creator        string
	Producer       string
	Subject        string
	TotalPages     int
	ExtractedPages int
	Method         constants.ExtractionMethod
}

// ExtractionResult is the outcome of one extraction run. Warnings are
// non-fatal: a result that failed the quality gate still carries its
// best-effort text alongside WarnLowQuality.
type ExtractionResult struct {
	Text     string
	Metadata Metadata
	Duration time.Duration
	Warnings []string
}

// LowQuality reports whether the text was returned despite failing the
// quality gate on both backends.
func (r ExtractionResult) LowQuality() bool {
	for _, w := range r.Warnings {
		if w == WarnLowQuality {
			return true
		}
	}
	return false
}

// Config for the extractor. Zero values fall back to defaults in NewExtractor.
type Config struct {
	MinWords      int     // minimum alphabetic word tokens, default 50
	MinAlnumRatio float64 // minimum alphanumeric character ratio, default 0.30
	MaxPages      int     // 0 = no limit
}

type Extractor struct {
	cfg      Config
	primary  backend
	fallback backend
	logger   *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinWords <= 0 {
		cfg.MinWords = 50
	}
	if cfg.MinAlnumRatio <= 0 {
		cfg.MinAlnumRatio = 0.30
	}
	return &Extractor{
		cfg:      cfg,
		primary:  primaryBackend{maxPages: cfg.MaxPages, logger: logger},
		fallback: fallbackBackend{maxPages: cfg.MaxPages, logger: logger},
		logger:   logger,
	}
}

// newExtractorWithBackends is the injection point for tests.
func newExtractorWithBackends(cfg Config, primary, fallback backend, logger *slog.Logger) *Extractor {
	e := NewExtractor(cfg, logger)
	e.primary = primary
	e.fallback = fallback
	return e
}

// Extract runs the two-stage extraction with quality gating.
//
// The primary backend wins outright when its text passes the quality gate.
// Otherwise the fallback backend runs (with the table sub-strategy for
// silent pages). If neither passes, the longer non-empty text is returned
// with a low-quality warning; only when both produce nothing is the
// extraction a terminal failure.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()

	if _, err := os.Stat(path); err != nil {
		e.logger.Error("extract.not_found", "path", path, "error", err)
		return ExtractionResult{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !constants.IsPDFPath(path) {
		e.logger.Error("extract.invalid_format", "path", path)
		return ExtractionResult{}, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}

	pri, priErr := e.primary.extract(ctx, path)
	if priErr != nil {
		e.logger.Warn("extract.primary.failed", "path", path, "error", priErr)
	}
	if e.accept(pri.text) {
		res := e.result(pri, constants.MethodPrimary, start, nil)
		e.logger.Info("extract.ok",
			"path", path,
			"method", res.Metadata.Method,
			"pages", fmt.Sprintf("%d/%d", res.Metadata.ExtractedPages, res.Metadata.TotalPages),
			"elapsed_ms", res.Duration.Milliseconds(),
		)
		return res, nil
	}

	fb, fbErr := e.fallback.extract(ctx, path)
	if fbErr != nil {
		e.logger.Warn("extract.fallback.failed", "path", path, "error", fbErr)
	}
	if e.accept(fb.text) {
		method := constants.MethodFallback
		if fb.usedTable {
			method = constants.MethodTableFallback
		}
		res := e.result(fb, method, start, pri.info)
		e.logger.Info("extract.ok",
			"path", path,
			"method", res.Metadata.Method,
			"pages", fmt.Sprintf("%d/%d", res.Metadata.ExtractedPages, res.Metadata.TotalPages),
			"elapsed_ms", res.Duration.Milliseconds(),
		)
		return res, nil
	}

	// Neither backend cleared the gate: hand back the longer non-empty text
	// with a warning so the caller may still persist degraded content.
	if pri.text != "" || fb.text != "" {
		best, method := pri, constants.MethodPrimary
		if len(fb.text) > len(pri.text) {
			best, method = fb, constants.MethodFallback
			if fb.usedTable {
				method = constants.MethodTableFallback
			}
		}
		res := e.result(best, method, start, pri.info)
		res.Warnings = append(res.Warnings, WarnLowQuality)
		e.logger.Warn("extract.low_quality",
			"path", path,
			"method", res.Metadata.Method,
			"words", wordTokenCount(res.Text),
			"alnum_ratio", fmt.Sprintf("%.2f", alnumRatio(res.Text)),
		)
		return res, nil
	}

	// Terminal: no text from either backend. Metadata still reports the page
	// counts that were observed.
	res := ExtractionResult{
		Metadata: mergeMetadata(backendOutput{
			totalPages: maxInt(pri.totalPages, fb.totalPages),
		}, "", pri.info),
		Duration: time.Since(start),
	}
	err := ErrNoExtractableText
	if priErr != nil && fbErr != nil {
		err = fmt.Errorf("%w (primary: %v; fallback: %v)", ErrNoExtractableText, priErr, fbErr)
	}
	e.logger.Error("extract.failed", "path", path, "error", err)
	return res, err
}

func (e *Extractor) accept(text string) bool {
	return acceptableQuality(text, e.cfg.MinWords, e.cfg.MinAlnumRatio)
}

func (e *Extractor) result(out backendOutput, method constants.ExtractionMethod, start time.Time, extraInfo map[string]string) ExtractionResult {
	return ExtractionResult{
		Text:     out.text,
		Metadata: mergeMetadata(out, method, extraInfo),
		Duration: time.Since(start),
	}
}

// mergeMetadata builds Metadata from a backend output, preferring the
// winning backend's info fields and filling gaps from extraInfo.
func mergeMetadata(out backendOutput, method constants.ExtractionMethod, extraInfo map[string]string) Metadata {
	pick := func(key string) string {
		if v := out.info[key]; v != "" {
			return v
		}
		if v := extraInfo[key]; v != "" {
			return v
		}
		return "unknown"
	}
	return Metadata{
		Title:          pick("title"),
		Author:         pick("author"),
		Creator:        pick("creator"),
		Producer:       pick("producer"),
		Subject:        pick("subject"),
		TotalPages:     out.totalPages,
		ExtractedPages: out.extractedPages,
		Method:         method,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
