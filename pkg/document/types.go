package document

// FileKind classifies an uploaded file by how its pages are produced.
type FileKind string

const (
	KindImage FileKind = "image"
	KindPDF   FileKind = "pdf"
)

// UploadedFile describes one file received from the front end.
// It is immutable for the duration of an orchestration pass.
type UploadedFile struct {
	Name string   `json:"name"` // name exactly as uploaded
	Path string   `json:"-"`    // local path of the saved upload
	Kind FileKind `json:"kind"`
}

// PageImage is one rasterized page, 1-based and in page order.
// An empty PNG marks a page that could not be rendered; it still
// occupies its slot so page numbering stays intact.
type PageImage struct {
	Page int
	PNG  []byte
}

// Empty reports whether the page has no raster data.
func (p PageImage) Empty() bool {
	return len(p.PNG) == 0
}

// Fragment is the recognized text of one page, in reading order.
type Fragment struct {
	Page int
	Text string
}

// FileResult collects everything one file produced during a pass.
// A non-nil Err means the file's output block carries an error
// placeholder instead of text.
type FileResult struct {
	Name      string
	Fragments []Fragment
	Err       error
}
