package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studydeck/constants"
)

type fakeBackend struct {
	out   backendOutput
	err   error
	calls int
}

func (f *fakeBackend) name() string { return "fake" }

func (f *fakeBackend) extract(_ context.Context, _ string) (backendOutput, error) {
	f.calls++
	return f.out, f.err
}

func testPDFPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))
	return path
}

func goodText() string {
	return strings.Repeat("photosynthesis converts light energy into chemical energy ", 12)
}

func newTestExtractor(primary, fallback backend) *Extractor {
	return newExtractorWithBackends(Config{MinWords: 10, MinAlnumRatio: 0.30}, primary, fallback, nil)
}

func TestExtractFileNotFound(t *testing.T) {
	e := newTestExtractor(&fakeBackend{}, &fakeBackend{})
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtractRejectsNonPDFExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o600))

	e := newTestExtractor(&fakeBackend{}, &fakeBackend{})
	_, err := e.Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestExtractPrimaryWinsWithoutFallback(t *testing.T) {
	primary := &fakeBackend{out: backendOutput{
		text:           goodText(),
		totalPages:     4,
		extractedPages: 4,
		info:           map[string]string{"title": "Biology Notes", "author": "M. Rivera"},
	}}
	fallback := &fakeBackend{out: backendOutput{text: goodText()}}
	e := newTestExtractor(primary, fallback)

	res, err := e.Extract(context.Background(), testPDFPath(t))
	require.NoError(t, err)

	assert.Equal(t, constants.MethodPrimary, res.Metadata.Method)
	assert.Equal(t, 0, fallback.calls, "fallback must not run when primary passes the gate")
	assert.Equal(t, "Biology Notes", res.Metadata.Title)
	assert.Equal(t, "M. Rivera", res.Metadata.Author)
	assert.Equal(t, "unknown", res.Metadata.Producer)
	assert.False(t, res.LowQuality())
	assert.LessOrEqual(t, res.Metadata.ExtractedPages, res.Metadata.TotalPages)
}

func TestExtractFallbackAfterPrimaryFailure(t *testing.T) {
	primary := &fakeBackend{err: errors.New("broken xref")}
	fallback := &fakeBackend{out: backendOutput{
		text:           goodText(),
		totalPages:     3,
		extractedPages: 3,
	}}
	e := newTestExtractor(primary, fallback)

	res, err := e.Extract(context.Background(), testPDFPath(t))
	require.NoError(t, err)
	assert.Equal(t, constants.MethodFallback, res.Metadata.Method)
	assert.Equal(t, 3, res.Metadata.ExtractedPages)
}

func TestExtractTableFallbackMethod(t *testing.T) {
	primary := &fakeBackend{out: backendOutput{text: ""}}
	fallback := &fakeBackend{out: backendOutput{
		text:           goodText(),
		totalPages:     2,
		extractedPages: 2,
		usedTable:      true,
	}}
	e := newTestExtractor(primary, fallback)

	res, err := e.Extract(context.Background(), testPDFPath(t))
	require.NoError(t, err)
	assert.Equal(t, constants.MethodTableFallback, res.Metadata.Method)
}

func TestExtractLowQualityKeepsLongerText(t *testing.T) {
	primary := &fakeBackend{out: backendOutput{text: "a1 b2", totalPages: 1, extractedPages: 1}}
	fallback := &fakeBackend{out: backendOutput{text: "a1 b2 c3 d4", totalPages: 1, extractedPages: 1}}
	e := newTestExtractor(primary, fallback)

	res, err := e.Extract(context.Background(), testPDFPath(t))
	require.NoError(t, err)
	assert.Equal(t, "a1 b2 c3 d4", res.Text)
	assert.Equal(t, constants.MethodFallback, res.Metadata.Method)
	assert.True(t, res.LowQuality())
	assert.Contains(t, res.Warnings, WarnLowQuality)
}

func TestExtractBothEmptyIsTerminal(t *testing.T) {
	primary := &fakeBackend{out: backendOutput{totalPages: 5}}
	fallback := &fakeBackend{out: backendOutput{totalPages: 7}}
	e := newTestExtractor(primary, fallback)

	res, err := e.Extract(context.Background(), testPDFPath(t))
	assert.ErrorIs(t, err, ErrNoExtractableText)
	assert.Equal(t, 7, res.Metadata.TotalPages, "observed page count survives the failure")
	assert.Equal(t, 0, res.Metadata.ExtractedPages)
}

func TestExtractIsIdempotent(t *testing.T) {
	primary := &fakeBackend{out: backendOutput{text: goodText(), totalPages: 2, extractedPages: 2}}
	e := newTestExtractor(primary, &fakeBackend{})
	path := testPDFPath(t)

	first, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	second, err := e.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Metadata.Method, second.Metadata.Method)
	assert.Equal(t, first.Metadata.TotalPages, second.Metadata.TotalPages)
}
