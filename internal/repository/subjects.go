package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"studydeck/gen/ent"
	"studydeck/gen/ent/subject"
)

// CreateSubjectRequest wraps parameters for creating a subject.
type CreateSubjectRequest struct {
	OwnerID     string
	Name        string
	Description string
}

type SubjectRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Subject, error)
	CreateSubject(ctx context.Context, req *CreateSubjectRequest) (*ent.Subject, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*ent.Subject, error)
	OwnedBy(ctx context.Context, id uuid.UUID, ownerID string) (bool, error)
}

type subjectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSubjectRepository(client *ent.Client, logger *slog.Logger) SubjectRepository {
	return &subjectRepository{
		client: client,
		logger: logger,
	}
}

func (r *subjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Subject, error) {
	return r.client.Subject.
		Query().
		Where(subject.ID(id)).
		Only(ctx)
}

func (r *subjectRepository) CreateSubject(ctx context.Context, req *CreateSubjectRequest) (*ent.Subject, error) {
	builder := r.client.Subject.Create().
		SetOwnerID(req.OwnerID).
		SetName(req.Name)
	if req.Description != "" {
		builder = builder.SetDescription(req.Description)
	}
	s, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create subject", "owner_id", req.OwnerID, "name", req.Name, "error", err)
		return nil, err
	}
	return s, nil
}

func (r *subjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*ent.Subject, error) {
	subjects, err := r.client.Subject.Query().
		Where(subject.OwnerID(ownerID)).
		Order(subject.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list subjects", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return subjects, nil
}

// OwnedBy reports whether the subject exists and belongs to ownerID.
func (r *subjectRepository) OwnedBy(ctx context.Context, id uuid.UUID, ownerID string) (bool, error) {
	owned, err := r.client.Subject.Query().
		Where(subject.ID(id), subject.OwnerID(ownerID)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check subject ownership", "subject_id", id, "error", err)
		return false, err
	}
	return owned, nil
}
