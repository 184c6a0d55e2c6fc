package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/textlift/textlift/pkg/document"
	"github.com/textlift/textlift/pkg/logging"
	"github.com/textlift/textlift/pkg/ocr"
)

// Runner is the orchestration entry point the handlers drive.
type Runner interface {
	Run(ctx context.Context, files []document.UploadedFile, langs ocr.LanguageSet) string
}

// Handlers contains the HTTP handlers for the API
type Handlers struct {
	engine         Runner
	maxUploadBytes int64
	extractTimeout time.Duration
}

// NewHandlers creates a new handlers instance
func NewHandlers(engine Runner, maxUploadBytes int64, extractTimeout time.Duration) *Handlers {
	return &Handlers{
		engine:         engine,
		maxUploadBytes: maxUploadBytes,
		extractTimeout: extractTimeout,
	}
}

// Health returns the service health status
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"service":   "textlift",
		"version":   "0.1.0",
		"timestamp": time.Now().UTC(),
	})
}

// Languages returns the language codes the front end may select
func (h *Handlers) Languages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"languages": ocr.SupportedLanguages(),
		"default":   ocr.DefaultLanguage,
	})
}

// ExtractResponse represents the response for a text extraction request
type ExtractResponse struct {
	RequestID string   `json:"request_id"`
	Files     []string `json:"files"`
	Languages []string `json:"languages"`
	Text      string   `json:"text"`
}

// ExtractText handles file uploads and returns the recognized text.
// Per-file OCR failures are part of the returned text, not transport
// errors; only malformed requests produce a non-200 status.
func (h *Handlers) ExtractText(c *fiber.Ctx) error {
	requestID := uuid.New().String()
	log := logging.GetRequestLogger("api", requestID)

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse multipart form")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid multipart form",
			"details": err.Error(),
		})
	}

	parts := form.File["files"]

	tmpDir, err := os.MkdirTemp("", "textlift-upload-*")
	if err != nil {
		log.Error().Err(err).Msg("failed to create upload dir")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store uploaded files",
		})
	}
	defer os.RemoveAll(tmpDir)

	files := make([]document.UploadedFile, 0, len(parts))
	for i, part := range parts {
		if part.Size > h.maxUploadBytes {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("File too large: %s is %d bytes, maximum is %d bytes",
					part.Filename, part.Size, h.maxUploadBytes),
			})
		}

		// Saved name is positional; the uploaded name is reported
		// back verbatim but never used as a path.
		dst := filepath.Join(tmpDir, fmt.Sprintf("upload-%03d%s", i, filepath.Ext(part.Filename)))
		if err := c.SaveFile(part, dst); err != nil {
			log.Error().Err(err).Str("file", part.Filename).Msg("failed to save upload")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to store uploaded files",
			})
		}

		kind, err := document.DetectKind(dst)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   fmt.Sprintf("Unsupported file: %s", part.Filename),
				"details": err.Error(),
			})
		}

		files = append(files, document.UploadedFile{
			Name: part.Filename,
			Path: dst,
			Kind: kind,
		})
	}

	langs := ocr.NewLanguageSet(form.Value["languages"])

	ctx, cancel := context.WithTimeout(c.Context(), h.extractTimeout)
	defer cancel()

	start := time.Now()
	text := h.engine.Run(ctx, files, langs)

	log.Info().
		Int("files", len(files)).
		Str("languages", langs.String()).
		Dur("elapsed", time.Since(start)).
		Msg("extraction pass finished")

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}

	return c.JSON(ExtractResponse{
		RequestID: requestID,
		Files:     names,
		Languages: langs.Codes(),
		Text:      text,
	})
}
