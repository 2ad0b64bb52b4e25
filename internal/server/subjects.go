package server

import (
	"context"
	"strings"

	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/common"
	"studydeck/internal/repository"
	"studydeck/internal/utils"
)

func (s *StudyService) CreateSubject(ctx context.Context, req *studyv1.CreateSubjectRequest) (*studyv1.CreateSubjectResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	subject, err := s.subjects.CreateSubject(ctx, &repository.CreateSubjectRequest{
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(req.GetDescription()),
	})
	if err != nil {
		s.logger.Error("create subject failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalError("create subject failed")
	}
	return &studyv1.CreateSubjectResponse{Subject: utils.ToPBSubject(subject)}, nil
}

func (s *StudyService) ListSubjects(ctx context.Context, req *studyv1.ListSubjectsRequest) (*studyv1.ListSubjectsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}

	subjects, err := s.subjects.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("list subjects failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalError("list subjects failed")
	}

	out := make([]*studyv1.Subject, 0, len(subjects))
	for _, subject := range subjects {
		out = append(out, utils.ToPBSubject(subject))
	}
	return &studyv1.ListSubjectsResponse{Subjects: out}, nil
}
