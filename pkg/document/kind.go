package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// SupportedExtensions lists the upload extensions the service accepts.
func SupportedExtensions() []string {
	return []string{".pdf", ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}
}

// DetectKind infers whether a saved upload is an image or a PDF.
// The extension decides when it is recognized; otherwise the file
// content is sniffed.
func DetectKind(path string) (FileKind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return KindPDF, nil
	}
	if imageExtensions[ext] {
		return KindImage, nil
	}

	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detecting file type: %w", err)
	}
	switch {
	case m.Is("application/pdf"):
		return KindPDF, nil
	case strings.HasPrefix(m.String(), "image/"):
		return KindImage, nil
	}

	return "", fmt.Errorf("unsupported file type: %s (supported: %s)",
		m.String(), strings.Join(SupportedExtensions(), ", "))
}
