// Package export renders a document's study artifacts as an XLSX workbook.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"studydeck/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	docs      repository.DocumentRepository
	artifacts repository.ArtifactRepository
	logger    *slog.Logger
}

func NewService(docs repository.DocumentRepository, artifacts repository.ArtifactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, artifacts: artifacts, logger: logger}
}

// ExportStudySetXLSX returns a workbook with one sheet per artifact type:
// Summary, Flashcards, and Quiz.
func (s *Service) ExportStudySetXLSX(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	start := time.Now()

	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	set, err := s.artifacts.GetStudySet(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load study set: %w", err)
	}

	f := excelize.NewFile()

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	ensureSheet := func(name string) error {
		if index, _ := f.GetSheetIndex(name); index == -1 {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}
		return nil
	}

	// Summary sheet
	const summarySheet = "Summary"
	if err := ensureSheet(summarySheet); err != nil {
		return nil, err
	}
	write(summarySheet, 1, 1, "Document")
	write(summarySheet, 2, 1, doc.Title)
	write(summarySheet, 1, 2, "Summary")
	if set.Summary != nil {
		write(summarySheet, 2, 2, set.Summary.Content)
	}

	// Flashcards sheet
	const cardsSheet = "Flashcards"
	if err := ensureSheet(cardsSheet); err != nil {
		return nil, err
	}
	write(cardsSheet, 1, 1, "#")
	write(cardsSheet, 2, 1, "Subject")
	write(cardsSheet, 3, 1, "Definition")
	for i, card := range set.Flashcards {
		row := i + 2
		write(cardsSheet, 1, row, i+1)
		write(cardsSheet, 2, row, card.Subject)
		write(cardsSheet, 3, row, card.Definition)
	}
	_ = f.SetColWidth(cardsSheet, "B", "B", 30)
	_ = f.SetColWidth(cardsSheet, "C", "C", 80)

	// Quiz sheet
	const quizSheet = "Quiz"
	if err := ensureSheet(quizSheet); err != nil {
		return nil, err
	}
	write(quizSheet, 1, 1, "#")
	write(quizSheet, 2, 1, "Question")
	write(quizSheet, 3, 1, "Options")
	write(quizSheet, 4, 1, "Correct Option")
	if set.Quiz != nil {
		for i, q := range set.Quiz.Questions {
			row := i + 2
			write(quizSheet, 1, row, i+1)
			write(quizSheet, 2, row, q.QuestionText)
			options := ""
			for j, opt := range q.Options {
				if j > 0 {
					options += " | "
				}
				options += opt
			}
			write(quizSheet, 3, row, options)
			write(quizSheet, 4, row, q.CorrectOption)
		}
	}
	_ = f.SetColWidth(quizSheet, "B", "B", 60)
	_ = f.SetColWidth(quizSheet, "C", "C", 60)

	// drop the default sheet so Summary opens first
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}
	if index, _ := f.GetSheetIndex(summarySheet); index != -1 {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"document_id", documentID,
		"flashcards", len(set.Flashcards),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
