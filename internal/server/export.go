package server

import (
	"context"
	"strings"

	"github.com/google/uuid"

	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/common"
)

func (s *StudyService) ExportStudySet(ctx context.Context, req *studyv1.ExportStudySetRequest) (*studyv1.ExportStudySetResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetDocumentId()))
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a UUID")
	}

	xlsx, err := s.exporter.ExportStudySetXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "document_id", id, "error", err)
		return nil, common.InternalError("export failed")
	}
	return &studyv1.ExportStudySetResponse{Xlsx: xlsx}, nil
}
