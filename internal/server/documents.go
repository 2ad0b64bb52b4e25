package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydeck/constants"
	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/async"
	"studydeck/internal/common"
	"studydeck/internal/repository"
	"studydeck/internal/utils"
)

// UploadDocument stores the PDF bytes under the upload directory, registers
// the document, and queues it for processing. Ownership of the target
// subject is checked before anything is written. Re-uploading identical
// content to the same subject returns the existing document instead.
func (s *StudyService) UploadDocument(ctx context.Context, req *studyv1.UploadDocumentRequest) (*studyv1.UploadDocumentResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	subjectID, err := uuid.Parse(strings.TrimSpace(req.GetSubjectId()))
	if err != nil {
		return nil, common.InvalidArgumentError("subject_id must be a UUID")
	}
	filename := filepath.Base(strings.TrimSpace(req.GetFilename()))
	if filename == "" || filename == "." {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if !constants.IsPDFPath(filename) {
		return nil, common.InvalidArgumentErrorf("unsupported file type %q, only PDF is accepted", filepath.Ext(filename))
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is empty")
	}

	owned, err := s.subjects.OwnedBy(ctx, subjectID, ownerID)
	if err != nil {
		s.logger.Error("subject ownership check failed", "subject_id", subjectID, "error", err)
		return nil, common.InternalError("subject lookup failed")
	}
	if !owned {
		return nil, common.NotFoundError("subject not found")
	}

	sum := sha256.Sum256(req.GetContent())
	hashHex := hex.EncodeToString(sum[:])
	if existing, err := s.docs.FindByHash(ctx, subjectID, hashHex); err != nil {
		s.logger.Error("dedup lookup failed", "subject_id", subjectID, "error", err)
		return nil, common.InternalError("create document failed")
	} else if existing != nil {
		s.logger.Info("duplicate upload", "subject_id", subjectID, "document_id", existing.ID)
		return &studyv1.UploadDocumentResponse{
			Document: utils.ToPBDocument(existing),
			Queued:   false,
		}, nil
	}

	path := filepath.Join(s.uploadDir, fmt.Sprintf("%s_%s", uuid.New().String(), filename))
	if err := os.MkdirAll(s.uploadDir, 0o750); err != nil {
		s.logger.Error("upload dir create failed", "dir", s.uploadDir, "error", err)
		return nil, common.InternalError("storing upload failed")
	}
	if err := os.WriteFile(path, req.GetContent(), 0o600); err != nil {
		s.logger.Error("upload write failed", "path", path, "error", err)
		return nil, common.InternalError("storing upload failed")
	}

	doc, err := s.docs.CreateDocument(ctx, &repository.CreateDocumentRequest{
		SubjectID:   subjectID,
		Filename:    filename,
		Title:       constants.DocumentTitle(filename),
		FilePath:    path,
		ContentHash: hashHex,
	})
	if err != nil {
		s.logger.Error("create document failed", "subject_id", subjectID, "error", err)
		return nil, common.InternalError("create document failed")
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  doc.ID,
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}); err != nil {
		s.logger.Error("enqueue failed", "document_id", doc.ID, "error", err)
		return nil, common.InternalError("queueing document failed")
	}

	s.logger.Info("document uploaded", "document_id", doc.ID, "subject_id", subjectID, "bytes", len(req.GetContent()))
	return &studyv1.UploadDocumentResponse{
		Document: utils.ToPBDocument(doc),
		Queued:   true,
	}, nil
}

func (s *StudyService) GetDocument(ctx context.Context, req *studyv1.GetDocumentRequest) (*studyv1.GetDocumentResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}
	return &studyv1.GetDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *StudyService) ListDocuments(ctx context.Context, req *studyv1.ListDocumentsRequest) (*studyv1.ListDocumentsResponse, error) {
	subjectID, err := uuid.Parse(strings.TrimSpace(req.GetSubjectId()))
	if err != nil {
		return nil, common.InvalidArgumentError("subject_id must be a UUID")
	}

	docs, err := s.docs.ListBySubject(ctx, subjectID)
	if err != nil {
		s.logger.Error("list documents failed", "subject_id", subjectID, "error", err)
		return nil, common.InternalError("list documents failed")
	}

	out := make([]*studyv1.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, utils.ToPBDocument(doc))
	}
	return &studyv1.ListDocumentsResponse{Documents: out}, nil
}
