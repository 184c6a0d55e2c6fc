package document

import "fmt"

// UnreadableFileError indicates an image upload that could not be
// opened or decoded.
type UnreadableFileError struct {
	Name   string
	Reason string
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("unreadable file %q: %s", e.Name, e.Reason)
}

// UnreadablePdfError indicates a PDF document that could not be
// opened or rendered at all. A single bad page inside an otherwise
// readable document does not raise this error.
type UnreadablePdfError struct {
	Name   string
	Reason string
}

func (e *UnreadablePdfError) Error() string {
	return fmt.Sprintf("unreadable PDF %q: %s", e.Name, e.Reason)
}

// RecognitionError indicates the external OCR engine failed for one
// page. It propagates to the orchestrator so the user sees which file
// failed.
type RecognitionError struct {
	Page   int
	Reason string
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognition failed on page %d: %s", e.Page, e.Reason)
}
