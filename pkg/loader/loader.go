// Package loader turns uploaded files into ordered sequences of page
// images ready for recognition. Images load as a single page; PDFs are
// rasterized one PNG per page through pdftoppm (poppler).
package loader

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/textlift/textlift/pkg/document"
	"github.com/textlift/textlift/pkg/logging"
)

const (
	DefaultRenderDPI   = 200
	DefaultMaxPDFPages = 500
	defaultBinary      = "pdftoppm"
)

// Loader produces page images from uploaded files.
type Loader struct {
	RenderDPI      int
	MaxPDFPages    int
	PdftoppmBinary string

	log zerolog.Logger
}

// New creates a loader with the given render resolution and page cap.
// Zero values fall back to defaults.
func New(renderDPI, maxPDFPages int) *Loader {
	if renderDPI <= 0 {
		renderDPI = DefaultRenderDPI
	}
	if maxPDFPages <= 0 {
		maxPDFPages = DefaultMaxPDFPages
	}
	return &Loader{
		RenderDPI:      renderDPI,
		MaxPDFPages:    maxPDFPages,
		PdftoppmBinary: defaultBinary,
		log:            logging.GetLogger("loader"),
	}
}

// Load returns the ordered page images for a file. Images yield
// exactly one page; an N-page PDF yields N entries in ascending page
// order, where an unrenderable page keeps its slot with empty data.
func (l *Loader) Load(ctx context.Context, file document.UploadedFile) ([]document.PageImage, error) {
	switch file.Kind {
	case document.KindImage:
		return l.loadImage(file)
	case document.KindPDF:
		return l.loadPDF(ctx, file)
	default:
		return nil, &document.UnreadableFileError{
			Name:   file.Name,
			Reason: fmt.Sprintf("unknown file kind %q", file.Kind),
		}
	}
}

func (l *Loader) loadImage(file document.UploadedFile) ([]document.PageImage, error) {
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, &document.UnreadableFileError{Name: file.Name, Reason: err.Error()}
	}

	// Decode check only; the recognizer consumes the raw bytes.
	if _, _, err := image.DecodeConfig(bytes.NewReader(content)); err != nil {
		return nil, &document.UnreadableFileError{
			Name:   file.Name,
			Reason: fmt.Sprintf("cannot decode image: %v", err),
		}
	}

	return []document.PageImage{{Page: 1, PNG: content}}, nil
}

func (l *Loader) loadPDF(ctx context.Context, file document.UploadedFile) ([]document.PageImage, error) {
	numPages, err := l.pdfPageCount(file.Path)
	if err != nil {
		return nil, &document.UnreadablePdfError{Name: file.Name, Reason: err.Error()}
	}
	if numPages == 0 {
		return nil, &document.UnreadablePdfError{Name: file.Name, Reason: "document has no pages"}
	}
	if numPages > l.MaxPDFPages {
		l.log.Warn().
			Str("file", file.Name).
			Int("pages", numPages).
			Int("max_pages", l.MaxPDFPages).
			Msg("PDF truncated to page limit")
		numPages = l.MaxPDFPages
	}

	tmpDir, err := os.MkdirTemp("", "textlift-pages-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, l.PdftoppmBinary,
		"-png",
		"-r", strconv.Itoa(l.RenderDPI),
		"-l", strconv.Itoa(numPages),
		file.Path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, &document.UnreadablePdfError{
			Name:   file.Name,
			Reason: fmt.Sprintf("pdftoppm failed: %v: %s", err, strings.TrimSpace(string(out))),
		}
	}

	rendered, err := collectRenderedPages(prefix)
	if err != nil {
		return nil, &document.UnreadablePdfError{Name: file.Name, Reason: err.Error()}
	}

	pages := make([]document.PageImage, 0, numPages)
	for n := 1; n <= numPages; n++ {
		png := rendered[n] // nil when the page did not render; slot kept
		if png == nil {
			l.log.Warn().Str("file", file.Name).Int("page", n).Msg("page failed to render, skipping")
		}
		pages = append(pages, document.PageImage{Page: n, PNG: png})
	}
	return pages, nil
}

// pdfPageCount opens the document and returns its page count, which
// doubles as the readability preflight.
func (l *Loader) pdfPageCount(path string) (int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %v", err)
	}
	defer f.Close()
	return r.NumPage(), nil
}

// collectRenderedPages reads pdftoppm output files keyed by page
// number. pdftoppm zero-pads page numbers depending on the total, so
// the suffix is parsed rather than reconstructed.
func collectRenderedPages(prefix string) (map[int][]byte, error) {
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}

	rendered := make(map[int][]byte, len(matches))
	for _, m := range matches {
		suffix := strings.TrimSuffix(strings.TrimPrefix(m, prefix+"-"), ".png")
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 1 {
			continue
		}
		content, err := os.ReadFile(m)
		if err != nil {
			continue
		}
		rendered[n] = content
	}
	return rendered, nil
}
