// Package pipeline drives a document through its two processing stages:
// text extraction, then study-set generation. Stage boundaries are recorded
// as document status transitions so interrupted work is visible.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"studydeck/constants"
	"studydeck/internal/pdf"
	"studydeck/internal/repository"
	"studydeck/internal/studygen"
)

// Processor coordinates extraction and generation against the repositories.
type Processor struct {
	extractor *pdf.Extractor
	orch      *studygen.Orchestrator
	docs      repository.DocumentRepository
	artifacts repository.ArtifactRepository
	logger    *slog.Logger
}

func NewProcessor(extractor *pdf.Extractor, orch *studygen.Orchestrator, docs repository.DocumentRepository, artifacts repository.ArtifactRepository, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		extractor: extractor,
		orch:      orch,
		docs:      docs,
		artifacts: artifacts,
		logger:    logger,
	}
}

// Process runs both stages for one document. On any stage failure the
// document is marked FAILED with the cause; a failure while recording that
// is logged and the original error still wins.
func (p *Processor) Process(ctx context.Context, documentID uuid.UUID) error {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		p.logger.Error("pipeline.load.failed", "document_id", documentID, "error", err)
		return err
	}

	if err := p.docs.SetStatus(ctx, documentID, constants.DocStatusRunning); err != nil {
		return err
	}

	// stage 1: extraction
	res, err := p.extractor.Extract(ctx, doc.FilePath)
	if err != nil {
		p.fail(ctx, documentID, err)
		return err
	}
	if _, err := p.docs.SaveExtraction(ctx, documentID, res); err != nil {
		p.fail(ctx, documentID, err)
		return err
	}
	p.logger.Info("pipeline.extract.ok",
		"document_id", documentID,
		"method", res.Metadata.Method,
		"pages", res.Metadata.ExtractedPages,
		"low_quality", res.LowQuality(),
	)

	// stage 2: generation
	set, err := p.orch.GenerateAll(ctx, res.Text)
	if err != nil {
		p.fail(ctx, documentID, err)
		return err
	}
	if err := p.artifacts.SaveStudySet(ctx, documentID, set); err != nil {
		p.fail(ctx, documentID, err)
		return err
	}
	if err := p.docs.MarkGenerated(ctx, documentID); err != nil {
		return err
	}

	p.logger.Info("pipeline.ok",
		"document_id", documentID,
		"flashcards", len(set.Flashcards),
		"quiz_questions", len(set.Quiz.Questions),
		"total_tokens", set.Meta.Usage.TotalTokens,
	)
	return nil
}

// ProcessBatch runs Process for each document with bounded concurrency.
// Per-document failures are recorded on the document and do not stop the
// rest of the batch; the first failure is returned once all finish.
func (p *Processor) ProcessBatch(ctx context.Context, documentIDs []uuid.UUID, concurrency int) error {
	if concurrency <= 0 {
		concurrency = 2
	}
	var g errgroup.Group
	g.SetLimit(concurrency)
	for _, id := range documentIDs {
		g.Go(func() error {
			return p.Process(ctx, id)
		})
	}
	return g.Wait()
}

func (p *Processor) fail(ctx context.Context, documentID uuid.UUID, cause error) {
	p.logger.Error("pipeline.failed", "document_id", documentID, "error", cause)
	if err := p.docs.MarkFailed(ctx, documentID, cause.Error()); err != nil {
		p.logger.Error("pipeline.mark_failed.error", "document_id", documentID, "error", err)
	}
}
