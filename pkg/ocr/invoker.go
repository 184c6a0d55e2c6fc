//go:build ocr
// +build ocr

package ocr

import (
	"context"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/textlift/textlift/pkg/document"
	"github.com/textlift/textlift/pkg/logging"
)

// Invoker runs page images through the Tesseract engine. A weighted
// semaphore bounds how many engine clients exist at once across
// concurrent requests; within one request pages stay sequential.
type Invoker struct {
	sem *semaphore.Weighted
	log zerolog.Logger
}

// NewInvoker creates an invoker allowing at most maxConcurrent engine
// clients at a time.
func NewInvoker(maxConcurrent int64) *Invoker {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Invoker{
		sem: semaphore.NewWeighted(maxConcurrent),
		log: logging.GetLogger("ocr"),
	}
}

// Recognize extracts the text of one page image for the selected
// languages. A page that was skipped during rendering yields an empty
// fragment without touching the engine.
func (v *Invoker) Recognize(ctx context.Context, img document.PageImage, langs LanguageSet) (document.Fragment, error) {
	frag := document.Fragment{Page: img.Page}
	if img.Empty() {
		return frag, nil
	}

	if err := v.sem.Acquire(ctx, 1); err != nil {
		return frag, &document.RecognitionError{Page: img.Page, Reason: err.Error()}
	}
	defer v.sem.Release(1)

	client := gosseract.NewClient()
	defer client.Close()

	// First use of a language may block while Tesseract loads its
	// traineddata; that lifecycle belongs to the engine install.
	if err := client.SetLanguage(langs.Tesseract()...); err != nil {
		return frag, &document.RecognitionError{
			Page:   img.Page,
			Reason: "failed to set languages " + langs.String() + ": " + err.Error(),
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return frag, &document.RecognitionError{Page: img.Page, Reason: err.Error()}
	}
	if err := client.SetImageFromBytes(img.PNG); err != nil {
		return frag, &document.RecognitionError{Page: img.Page, Reason: err.Error()}
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		// No word geometry available; fall back to the engine's own
		// page ordering.
		text, terr := client.Text()
		if terr != nil {
			return frag, &document.RecognitionError{Page: img.Page, Reason: terr.Error()}
		}
		frag.Text = normalizeText(text)
		return frag, nil
	}

	words := make([]wordBox, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, wordBox{
			text:    b.Word,
			centerX: float64(b.Box.Min.X+b.Box.Max.X) / 2,
			centerY: float64(b.Box.Min.Y+b.Box.Max.Y) / 2,
			height:  float64(b.Box.Dy()),
		})
	}
	frag.Text = composeLines(words)

	v.log.Debug().
		Int("page", img.Page).
		Int("words", len(words)).
		Str("languages", langs.String()).
		Msg("page recognized")

	return frag, nil
}

func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.TrimSpace(text)
}
