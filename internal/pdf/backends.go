package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gen2brain/go-fitz"
	ldpdf "github.com/ledongthuc/pdf"
)

// backendOutput is the raw product of one extraction backend before quality
// gating. Document info fields are best-effort and may be empty.
type backendOutput struct {
	text           string
	totalPages     int
	extractedPages int
	usedTable      bool
	info           map[string]string
}

// backend is one of the two independent PDF-to-text strategies. Each opens
// its own read-only handle on the input file.
type backend interface {
	name() string
	extract(ctx context.Context, path string) (backendOutput, error)
}

// primaryBackend extracts text with ledongthuc/pdf (pure Go). Pages that
// fail to decode are skipped, not fatal to the document.
type primaryBackend struct {
	maxPages int
	logger   *slog.Logger
}

func (primaryBackend) name() string { return "primary" }

func (b primaryBackend) extract(ctx context.Context, path string) (backendOutput, error) {
	f, err := os.Open(path)
	if err != nil {
		return backendOutput{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			b.logger.Warn("extract.primary.close_error", "path", path, "error", cerr)
		}
	}()

	st, err := f.Stat()
	if err != nil {
		return backendOutput{}, fmt.Errorf("stat pdf: %w", err)
	}

	// NewReaderEncrypted attempts an empty password for encrypted documents;
	// if that fails the whole backend fails and the fallback is still tried.
	r, err := ldpdf.NewReaderEncrypted(f, st.Size(), func() string { return "" })
	if err != nil {
		if strings.Contains(err.Error(), "password") {
			return backendOutput{}, fmt.Errorf("%w: %v", ErrEncryptedUnreadable, err)
		}
		return backendOutput{}, fmt.Errorf("read pdf: %w", err)
	}

	out := backendOutput{
		totalPages: r.NumPage(),
		info:       readDocInfo(r),
	}

	var sb strings.Builder
	for i := 1; i <= out.totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		pageText, err := extractPage(r, i)
		if err != nil {
			b.logger.Warn("extract.primary.page_failed", "path", path, "page", i, "error", err)
			continue
		}
		if pageText == "" {
			b.logger.Warn("extract.primary.page_empty", "path", path, "page", i)
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
		out.extractedPages++
		if b.maxPages > 0 && out.extractedPages >= b.maxPages {
			break
		}
	}
	out.text = sb.String()
	return out, nil
}

// extractPage pulls plain text from a single page. The decoder can panic on
// malformed content streams, so recover and report it as a page error.
func extractPage(r *ldpdf.Reader, num int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page decode panic: %v", rec)
		}
	}()
	p := r.Page(num)
	if p.V.IsNull() {
		return "", nil
	}
	raw, err := p.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// readDocInfo pulls the document information dictionary, best-effort.
func readDocInfo(r *ldpdf.Reader) map[string]string {
	info := map[string]string{}
	defer func() {
		// the trailer of a damaged file can panic inside the library
		_ = recover()
	}()
	dict := r.Trailer().Key("Info")
	if dict.IsNull() {
		return info
	}
	for _, key := range []string{"Title", "Author", "Creator", "Producer", "Subject"} {
		v := dict.Key(key)
		if v.IsNull() {
			continue
		}
		if s := strings.TrimSpace(v.Text()); s != "" {
			info[strings.ToLower(key)] = s
		}
	}
	return info
}

// fallbackBackend extracts text with go-fitz (MuPDF). Pages that yield no
// text get one more chance through the table sub-strategy: the page HTML is
// parsed and table cell text is joined per row.
type fallbackBackend struct {
	maxPages int
	logger   *slog.Logger
}

func (fallbackBackend) name() string { return "fallback" }

func (b fallbackBackend) extract(ctx context.Context, path string) (backendOutput, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return backendOutput{}, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	out := backendOutput{
		totalPages: doc.NumPage(),
		info:       fitzDocInfo(doc),
	}

	var sb strings.Builder
	for i := 0; i < out.totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		pageText, err := doc.Text(i)
		if err != nil {
			b.logger.Warn("extract.fallback.page_failed", "path", path, "page", i+1, "error", err)
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			tableText := b.extractTableText(doc, i)
			if tableText == "" {
				b.logger.Warn("extract.fallback.page_empty", "path", path, "page", i+1)
				continue
			}
			pageText = tableText
			out.usedTable = true
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
		out.extractedPages++
		if b.maxPages > 0 && out.extractedPages >= b.maxPages {
			break
		}
	}
	out.text = sb.String()
	return out, nil
}

// extractTableText renders the page as HTML and joins table cell text:
// cells by space, rows by newline.
func (b fallbackBackend) extractTableText(doc *fitz.Document, page int) string {
	html, err := doc.HTML(page, false)
	if err != nil {
		b.logger.Warn("extract.fallback.html_failed", "page", page+1, "error", err)
		return ""
	}
	return tableTextFromHTML(html)
}

func tableTextFromHTML(html string) string {
	root, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	var sb strings.Builder
	root.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find("td,th").Each(func(_ int, cell *goquery.Selection) {
				if s := strings.TrimSpace(cell.Text()); s != "" {
					cells = append(cells, s)
				}
			})
			if len(cells) > 0 {
				sb.WriteString(strings.Join(cells, " "))
				sb.WriteString("\n")
			}
		})
	})
	return strings.TrimSpace(sb.String())
}

func fitzDocInfo(doc *fitz.Document) map[string]string {
	info := map[string]string{}
	for key, value := range doc.Metadata() {
		switch key {
		case "title", "author", "creator", "producer", "subject":
			if s := strings.TrimSpace(value); s != "" {
				info[key] = s
			}
		}
	}
	return info
}
