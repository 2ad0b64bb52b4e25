package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"studydeck/constants"
	"studydeck/gen/ent"
	"studydeck/gen/ent/document"
	"studydeck/internal/pdf"
)

// CreateDocumentRequest wraps parameters for registering an uploaded PDF.
type CreateDocumentRequest struct {
	SubjectID   uuid.UUID
	Filename    string
	Title       string
	FilePath    string
	ContentHash string
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*ent.Document, error)
	FindByHash(ctx context.Context, subjectID uuid.UUID, hashHex string) (*ent.Document, error)
	ListByStatus(ctx context.Context, status constants.DocStatus, limit int) ([]*ent.Document, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus) error
	SaveExtraction(ctx context.Context, id uuid.UUID, res pdf.ExtractionResult) (*ent.Document, error)
	MarkGenerated(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.client.Document.
		Query().
		Where(document.ID(id)).
		Only(ctx)
}

func (r *documentRepository) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*ent.Document, error) {
	builder := r.client.Document.Create().
		SetSubjectID(req.SubjectID).
		SetFilename(req.Filename).
		SetTitle(req.Title).
		SetFilePath(req.FilePath)
	if req.ContentHash != "" {
		builder = builder.SetContentHash(req.ContentHash)
	}
	d, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "subject_id", req.SubjectID, "filename", req.Filename, "error", err)
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]*ent.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.SubjectID(subjectID)).
		Order(document.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "subject_id", subjectID, "error", err)
		return nil, err
	}
	return docs, nil
}

// FindByHash returns the subject's document with the given content hash, or
// nil when none exists.
func (r *documentRepository) FindByHash(ctx context.Context, subjectID uuid.UUID, hashHex string) (*ent.Document, error) {
	d, err := r.client.Document.Query().
		Where(document.SubjectID(subjectID), document.ContentHash(hashHex)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to look up document by hash", "subject_id", subjectID, "error", err)
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) ListByStatus(ctx context.Context, status constants.DocStatus, limit int) ([]*ent.Document, error) {
	q := r.client.Document.Query().
		Where(document.Status(string(status))).
		Order(document.ByUploadedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	docs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by status", "status", status, "error", err)
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) SetStatus(ctx context.Context, id uuid.UUID, status constants.DocStatus) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update document status", "document_id", id, "status", status, "error", err)
	}
	return err
}

// SaveExtraction stores the extraction outcome and advances the document to
// EXTRACT_OK. Low-quality text is persisted too, flagged for the caller.
func (r *documentRepository) SaveExtraction(ctx context.Context, id uuid.UUID, res pdf.ExtractionResult) (*ent.Document, error) {
	builder := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusExtractOK)).
		SetExtractedText(res.Text).
		SetLowQualityText(res.LowQuality()).
		SetExtractionMethod(string(res.Metadata.Method)).
		SetPageCount(res.Metadata.TotalPages).
		SetExtractedPages(res.Metadata.ExtractedPages)
	if res.Metadata.Author != "" && res.Metadata.Author != "unknown" {
		builder = builder.SetAuthor(res.Metadata.Author)
	}
	if res.Metadata.Creator != "" && res.Metadata.Creator != "unknown" {
		builder = builder.SetCreator(res.Metadata.Creator)
	}
	if res.Metadata.Producer != "" && res.Metadata.Producer != "unknown" {
		builder = builder.SetProducer(res.Metadata.Producer)
	}
	d, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save extraction", "document_id", id, "error", err)
		return nil, err
	}
	return d, nil
}

func (r *documentRepository) MarkGenerated(ctx context.Context, id uuid.UUID) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusGenerateOK)).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark document generated", "document_id", id, "error", err)
	}
	return err
}

func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	err := r.client.Document.UpdateOneID(id).
		SetStatus(string(constants.DocStatusFailed)).
		SetErrorMessage(reason).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark document failed", "document_id", id, "error", err)
	}
	return err
}
