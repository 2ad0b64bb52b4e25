package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"studydeck/constants"
	"studydeck/internal/repository"
)

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	Subjects repository.SubjectRepository
	Docs     repository.DocumentRepository
	Logger   *slog.Logger
}

func NewFSIngestor(subjects repository.SubjectRepository, docs repository.DocumentRepository, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{
		Subjects: subjects,
		Docs:     docs,
		Logger:   logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, subjectID uuid.UUID, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.Logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}
	if !constants.IsPDFPath(abs) {
		return out, fmt.Errorf("unsupported or missing extension: %q", filepath.Ext(abs))
	}

	if _, err := i.Subjects.GetByID(ctx, subjectID); err != nil {
		return out, fmt.Errorf("subject lookup: %w", err)
	}

	f, err := os.Open(abs)
	if err != nil {
		i.Logger.Error("open error", "path", abs, "error", err)
		return out, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			i.Logger.Warn("close file error", "path", abs, "error", cerr)
		}
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		i.Logger.Error("hash error", "path", abs, "error", err)
		return out, err
	}
	hashHex := hex.EncodeToString(h.Sum(nil))

	// dedup within the subject by content hash
	if existing, err := i.Docs.FindByHash(ctx, subjectID, hashHex); err != nil {
		return out, err
	} else if existing != nil {
		return IngestionResult{
			SourcePath:   abs,
			DocumentID:   existing.ID.String(),
			Deduplicated: true,
			HashHex:      hashHex,
			UploadedAt:   existing.UploadedAt,
		}, nil
	}

	doc, err := i.Docs.CreateDocument(ctx, &repository.CreateDocumentRequest{
		SubjectID:   subjectID,
		Filename:    filepath.Base(abs),
		Title:       constants.DocumentTitle(abs),
		FilePath:    abs,
		ContentHash: hashHex,
	})
	if err != nil {
		return out, err
	}

	return IngestionResult{
		SourcePath: abs,
		DocumentID: doc.ID.String(),
		HashHex:    hashHex,
		UploadedAt: doc.UploadedAt,
	}, nil
}

// IngestDirectory walks root, skips hidden if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	subjectID uuid.UUID,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !constants.IsPDFPath(path) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, subjectID, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
