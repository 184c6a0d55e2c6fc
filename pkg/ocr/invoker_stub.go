//go:build !ocr
// +build !ocr

package ocr

import (
	"context"

	"github.com/textlift/textlift/pkg/document"
)

// Invoker is the stub used when the "ocr" build tag is not set.
// Rebuild with -tags ocr to enable recognition; this requires
// Tesseract to be installed (apt install tesseract-ocr, or
// brew install tesseract on macOS).
type Invoker struct{}

// NewInvoker creates a stub invoker.
func NewInvoker(maxConcurrent int64) *Invoker {
	return &Invoker{}
}

// Recognize reports that OCR support was not compiled in. Skipped
// pages still yield empty fragments so page accounting matches the
// real implementation.
func (v *Invoker) Recognize(ctx context.Context, img document.PageImage, langs LanguageSet) (document.Fragment, error) {
	frag := document.Fragment{Page: img.Page}
	if img.Empty() {
		return frag, nil
	}
	return frag, &document.RecognitionError{
		Page:   img.Page,
		Reason: "OCR support not enabled; rebuild with -tags ocr (requires Tesseract)",
	}
}
