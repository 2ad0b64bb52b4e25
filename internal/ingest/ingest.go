// Package ingest registers PDFs from the local filesystem as documents,
// deduplicating by content hash.
package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	SourcePath   string
	DocumentID   string
	Deduplicated bool
	HashHex      string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the callers depend on.
type Ingestor interface {
	// IngestPath registers a single PDF under the subject.
	IngestPath(ctx context.Context, subjectID uuid.UUID, path string) (IngestionResult, error)
	// IngestDirectory registers all matching files under root.
	IngestDirectory(ctx context.Context, subjectID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
