// Package orchestrate drives one end-to-end extraction pass: load
// pages, recognize each one, assemble the final text. Files are
// processed strictly in upload order and pages in ascending order;
// a failure in one file never aborts the others.
package orchestrate

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/textlift/textlift/pkg/assemble"
	"github.com/textlift/textlift/pkg/document"
	"github.com/textlift/textlift/pkg/logging"
	"github.com/textlift/textlift/pkg/ocr"
)

// EmptyUploadMessage is returned when the user submits no files.
// Not a failure condition.
const EmptyUploadMessage = "No files uploaded."

// Loader produces the ordered page images of one file.
type Loader interface {
	Load(ctx context.Context, file document.UploadedFile) ([]document.PageImage, error)
}

// Recognizer extracts the text of one page image.
type Recognizer interface {
	Recognize(ctx context.Context, img document.PageImage, langs ocr.LanguageSet) (document.Fragment, error)
}

// Engine is the top-level orchestrator. It holds no state between
// invocations; every Run is an independent pass.
type Engine struct {
	loader     Loader
	recognizer Recognizer
	log        zerolog.Logger
}

// New creates an orchestration engine.
func New(loader Loader, recognizer Recognizer) *Engine {
	return &Engine{
		loader:     loader,
		recognizer: recognizer,
		log:        logging.GetLogger("orchestrate"),
	}
}

// Run processes the uploaded files in order and returns the assembled
// text. Per-file errors become placeholders in the output; no error
// escapes to the caller. Recognition calls are never retried.
func (e *Engine) Run(ctx context.Context, files []document.UploadedFile, langs ocr.LanguageSet) string {
	if len(files) == 0 {
		return EmptyUploadMessage
	}

	results := make([]document.FileResult, 0, len(files))
	for _, file := range files {
		results = append(results, e.processFile(ctx, file, langs))
	}
	return assemble.Build(results)
}

func (e *Engine) processFile(ctx context.Context, file document.UploadedFile, langs ocr.LanguageSet) document.FileResult {
	start := time.Now()
	result := document.FileResult{Name: file.Name}

	pages, err := e.loader.Load(ctx, file)
	if err != nil {
		e.log.Warn().Err(err).Str("file", file.Name).Msg("failed to load file")
		result.Err = err
		return result
	}

	for _, page := range pages {
		frag, err := e.recognizer.Recognize(ctx, page, langs)
		if err != nil {
			e.log.Warn().Err(err).Str("file", file.Name).Int("page", page.Page).
				Msg("recognition failed")
			result.Err = err
			result.Fragments = nil
			return result
		}
		result.Fragments = append(result.Fragments, frag)
	}

	e.log.Info().
		Str("file", file.Name).
		Str("kind", string(file.Kind)).
		Int("pages", len(pages)).
		Str("languages", langs.String()).
		Dur("elapsed", time.Since(start)).
		Msg("file processed")

	return result
}
