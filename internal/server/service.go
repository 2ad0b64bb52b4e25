// Package server exposes the study pipeline over gRPC.
package server

import (
	"log/slog"

	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/async"
	"studydeck/internal/chat"
	"studydeck/internal/export"
	"studydeck/internal/repository"
)

type StudyService struct {
	studyv1.UnimplementedStudyServiceServer
	subjects  repository.SubjectRepository
	docs      repository.DocumentRepository
	artifacts repository.ArtifactRepository
	chats     repository.ChatRepository
	stats     repository.StatsRepository
	queue     async.Queue
	assistant *chat.Assistant
	exporter  *export.Service
	uploadDir string
	logger    *slog.Logger
}

type Deps struct {
	Subjects  repository.SubjectRepository
	Documents repository.DocumentRepository
	Artifacts repository.ArtifactRepository
	Chats     repository.ChatRepository
	Stats     repository.StatsRepository
	Queue     async.Queue
	Assistant *chat.Assistant
	Exporter  *export.Service
	UploadDir string
}

func NewStudyService(deps Deps, logger *slog.Logger) *StudyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyService{
		subjects:  deps.Subjects,
		docs:      deps.Documents,
		artifacts: deps.Artifacts,
		chats:     deps.Chats,
		stats:     deps.Stats,
		queue:     deps.Queue,
		assistant: deps.Assistant,
		exporter:  deps.Exporter,
		uploadDir: deps.UploadDir,
		logger:    logger,
	}
}
