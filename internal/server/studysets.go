package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydeck/constants"
	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/async"
	"studydeck/internal/common"
	"studydeck/internal/utils"
)

// GenerateStudySet queues a (re)generation run for a document. Unless force
// is set, a document that already finished generation is left alone.
func (s *StudyService) GenerateStudySet(ctx context.Context, req *studyv1.GenerateStudySetRequest) (*studyv1.GenerateStudySetResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("document not found")
	}

	if doc.Status == string(constants.DocStatusGenerateOK) && !req.GetForce() {
		return &studyv1.GenerateStudySetResponse{Queued: false, Status: doc.Status}, nil
	}
	if doc.Status == string(constants.DocStatusRunning) {
		return &studyv1.GenerateStudySetResponse{Queued: false, Status: doc.Status}, nil
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		DocumentID:  id,
		Force:       req.GetForce(),
		SubmittedAt: time.Now(),
		TraceID:     common.RequestIDFromContext(ctx),
	}); err != nil {
		s.logger.Error("enqueue failed", "document_id", id, "error", err)
		return nil, common.InternalError("queueing document failed")
	}

	return &studyv1.GenerateStudySetResponse{
		Queued: true,
		Status: string(constants.DocStatusQueued),
	}, nil
}

func (s *StudyService) GetStudySet(ctx context.Context, req *studyv1.GetStudySetRequest) (*studyv1.GetStudySetResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	set, err := s.artifacts.GetStudySet(ctx, id)
	if err != nil {
		s.logger.Error("load study set failed", "document_id", id, "error", err)
		return nil, common.InternalError("load study set failed")
	}

	resp := &studyv1.GetStudySetResponse{}
	if set.Summary != nil {
		resp.Summary = utils.ToPBSummary(set.Summary)
	}
	for _, card := range set.Flashcards {
		resp.Flashcards = append(resp.Flashcards, utils.ToPBFlashcard(card))
	}
	if set.Quiz != nil {
		resp.Quiz = utils.ToPBQuiz(set.Quiz)
	}
	return resp, nil
}
