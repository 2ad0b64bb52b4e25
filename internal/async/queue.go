package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (owner, trace, retry, etc).
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // enqueue even if the document already has artifacts
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
