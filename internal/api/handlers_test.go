package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textlift/textlift/pkg/document"
	"github.com/textlift/textlift/pkg/ocr"
	"github.com/textlift/textlift/pkg/orchestrate"
)

// fakeRunner records what the handler passed in and returns a fixed
// text block.
type fakeRunner struct {
	files []document.UploadedFile
	langs ocr.LanguageSet
	text  string
}

func (f *fakeRunner) Run(ctx context.Context, files []document.UploadedFile, langs ocr.LanguageSet) string {
	f.files = files
	f.langs = langs
	if len(files) == 0 {
		return orchestrate.EmptyUploadMessage
	}
	return f.text
}

func newTestApp(runner Runner) *fiber.App {
	app := fiber.New()
	h := NewHandlers(runner, 10*1024*1024, time.Minute)
	app.Get("/", h.Index)
	app.Get("/health", h.Health)
	app.Get("/api/v1/languages", h.Languages)
	app.Post("/api/v1/extract", h.ExtractText)
	return app
}

func multipartBody(t *testing.T, langs []string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for _, lang := range langs {
		require.NoError(t, w.WriteField("languages", lang))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestIndexServesForm(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `name="files"`)
	assert.Contains(t, string(body), `name="languages"`)
}

func TestLanguagesEndpoint(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/languages", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Languages []string `json:"languages"`
		Default   string   `json:"default"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "en", payload.Default)
	assert.Contains(t, payload.Languages, "fr")
}

func TestExtractText(t *testing.T) {
	runner := &fakeRunner{text: "# a.png\nhello"}
	app := newTestApp(runner)

	body, contentType := multipartBody(t, []string{"en", "fr"}, map[string][]byte{
		"a.png": []byte("%PNG fake but extension decides"),
	})
	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload ExtractResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload.RequestID)
	assert.Equal(t, []string{"a.png"}, payload.Files)
	assert.Equal(t, []string{"en", "fr"}, payload.Languages)
	assert.Equal(t, "# a.png\nhello", payload.Text)

	// The handler passed the upload through with its exact name and
	// an inferred kind
	require.Len(t, runner.files, 1)
	assert.Equal(t, "a.png", runner.files[0].Name)
	assert.Equal(t, document.KindImage, runner.files[0].Kind)
}

func TestExtractTextNoFiles(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	body, contentType := multipartBody(t, []string{"en"}, nil)
	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	// An empty upload is a placeholder message, not an error
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload ExtractResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, orchestrate.EmptyUploadMessage, payload.Text)
	assert.Empty(t, payload.Files)
}

func TestExtractTextUnsupportedFile(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	body, contentType := multipartBody(t, nil, map[string][]byte{
		"notes.xyz": []byte("just some plain text"),
	})
	req := httptest.NewRequest("POST", "/api/v1/extract", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "notes.xyz")
}

func TestExtractTextNotMultipart(t *testing.T) {
	app := newTestApp(&fakeRunner{})

	req := httptest.NewRequest("POST", "/api/v1/extract", bytes.NewBufferString(`{"files":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
