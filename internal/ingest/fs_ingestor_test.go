package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/constants"
	"studydeck/gen/ent"
	"studydeck/internal/pdf"
	"studydeck/internal/repository"
)

type stubSubjects struct {
	known map[uuid.UUID]bool
}

func (s *stubSubjects) GetByID(_ context.Context, id uuid.UUID) (*ent.Subject, error) {
	if s.known[id] {
		return &ent.Subject{ID: id}, nil
	}
	return nil, errors.New("subject not found")
}

func (s *stubSubjects) CreateSubject(context.Context, *repository.CreateSubjectRequest) (*ent.Subject, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSubjects) ListByOwner(context.Context, string) ([]*ent.Subject, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSubjects) OwnedBy(context.Context, uuid.UUID, string) (bool, error) {
	return false, errors.New("not implemented")
}

type stubDocs struct {
	byHash  map[string]*ent.Document
	created []*repository.CreateDocumentRequest
}

func (d *stubDocs) GetByID(context.Context, uuid.UUID) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (d *stubDocs) CreateDocument(_ context.Context, req *repository.CreateDocumentRequest) (*ent.Document, error) {
	d.created = append(d.created, req)
	doc := &ent.Document{
		ID:          uuid.New(),
		SubjectID:   req.SubjectID,
		Filename:    req.Filename,
		Title:       req.Title,
		FilePath:    req.FilePath,
		ContentHash: req.ContentHash,
		UploadedAt:  time.Now(),
	}
	if d.byHash == nil {
		d.byHash = map[string]*ent.Document{}
	}
	d.byHash[req.ContentHash] = doc
	return doc, nil
}

func (d *stubDocs) ListBySubject(context.Context, uuid.UUID) ([]*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (d *stubDocs) FindByHash(_ context.Context, _ uuid.UUID, hashHex string) (*ent.Document, error) {
	return d.byHash[hashHex], nil
}

func (d *stubDocs) ListByStatus(context.Context, constants.DocStatus, int) ([]*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (d *stubDocs) SetStatus(context.Context, uuid.UUID, constants.DocStatus) error {
	return errors.New("not implemented")
}

func (d *stubDocs) SaveExtraction(context.Context, uuid.UUID, pdf.ExtractionResult) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (d *stubDocs) MarkGenerated(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func (d *stubDocs) MarkFailed(context.Context, uuid.UUID, string) error {
	return errors.New("not implemented")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestIngestor(subjectID uuid.UUID) (*FSIngestor, *stubDocs) {
	docs := &stubDocs{}
	subjects := &stubSubjects{known: map[uuid.UUID]bool{subjectID: true}}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewFSIngestor(subjects, docs, logger), docs
}

func TestIngestPathCreatesDocument(t *testing.T) {
	subjectID := uuid.New()
	ing, docs := newTestIngestor(subjectID)
	dir := t.TempDir()
	path := writeFile(t, dir, "lecture 3.pdf", "%PDF-1.4 fake body")

	res, err := ing.IngestPath(context.Background(), subjectID, path)
	require.NoError(t, err)

	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.DocumentID)
	assert.Len(t, res.HashHex, 64)
	require.Len(t, docs.created, 1)
	assert.Equal(t, "lecture 3.pdf", docs.created[0].Filename)
	assert.Equal(t, "lecture 3", docs.created[0].Title)
	assert.Equal(t, res.HashHex, docs.created[0].ContentHash)
}

func TestIngestPathDeduplicatesByContent(t *testing.T) {
	subjectID := uuid.New()
	ing, docs := newTestIngestor(subjectID)
	dir := t.TempDir()
	first := writeFile(t, dir, "a.pdf", "same bytes")
	second := writeFile(t, dir, "copy-of-a.pdf", "same bytes")

	r1, err := ing.IngestPath(context.Background(), subjectID, first)
	require.NoError(t, err)
	r2, err := ing.IngestPath(context.Background(), subjectID, second)
	require.NoError(t, err)

	assert.True(t, r2.Deduplicated)
	assert.Equal(t, r1.DocumentID, r2.DocumentID)
	assert.Equal(t, r1.HashHex, r2.HashHex)
	assert.Len(t, docs.created, 1)
}

func TestIngestPathRejectsNonPDF(t *testing.T) {
	subjectID := uuid.New()
	ing, _ := newTestIngestor(subjectID)
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "plain text")

	_, err := ing.IngestPath(context.Background(), subjectID, path)
	assert.Error(t, err)
}

func TestIngestPathUnknownSubject(t *testing.T) {
	ing, _ := newTestIngestor(uuid.New())
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.pdf", "body")

	_, err := ing.IngestPath(context.Background(), uuid.New(), path)
	assert.Error(t, err)
}

func TestIngestDirectorySkipsHiddenAndNonPDF(t *testing.T) {
	subjectID := uuid.New()
	ing, docs := newTestIngestor(subjectID)
	dir := t.TempDir()
	writeFile(t, dir, "one.pdf", "first")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, filepath.Join(".cache", "two.pdf"), "hidden")
	writeFile(t, dir, filepath.Join("nested", "three.pdf"), "third")

	results, stats, err := ing.IngestDirectory(context.Background(), subjectID, dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Equal(t, uint32(0), stats.Deduplicated)
	assert.Len(t, results, 2)
	assert.Len(t, docs.created, 2)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing, _ := newTestIngestor(uuid.New())
	_, _, err := ing.IngestDirectory(context.Background(), uuid.New(), "  ", true)
	assert.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.cache"))
	assert.True(t, IsHidden(".env"))
	assert.False(t, IsHidden("/tmp/visible.pdf"))
	assert.False(t, IsHidden("plain"))
}
