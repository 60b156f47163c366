package processor

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lapak/config"
	"lapak/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T, baseURL string) *httpDocumentProcessor {
	t.Helper()
	cfg := &config.Config{
		Processor: &config.ProcessorConfig{BaseURL: baseURL, Timeout: 5 * time.Second},
	}
	proc, err := NewHTTPDocumentProcessor(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return proc.(*httpDocumentProcessor)
}

func documentEntry() *entity.KnowledgeEntry {
	return &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: uuid.New(),
		Title:             "menu.pdf",
		Source: entity.DocumentSource{
			FileName:    "menu.pdf",
			FileType:    "application/pdf",
			StoragePath: "docs/menu.pdf",
		},
		ProcessingStatus: entity.ProcessingPending,
	}
}

func TestHTTPDocumentProcessor_ProcessDocument_Success(t *testing.T) {
	entry := documentEntry()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/process/document", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req processRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, entry.ID.String(), req.EntryID)
		assert.Equal(t, "docs/menu.pdf", req.StoragePath)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"extracted_chars":420,"content_hash":"abc"}}`))
	}))
	defer server.Close()

	proc := newTestProcessor(t, server.URL)
	result, err := proc.ProcessDocument(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, 420, result.ExtractedChars)
	assert.Equal(t, "abc", result.ContentHash)
}

func TestHTTPDocumentProcessor_ProcessURL_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/process/url", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"error":{"code":"SCRAPE_FAILED","message":"halaman tidak dapat diakses"}}`))
	}))
	defer server.Close()

	proc := newTestProcessor(t, server.URL)
	entry := &entity.KnowledgeEntry{
		ID:                uuid.New(),
		BusinessProfileID: uuid.New(),
		Source:            entity.URLSource{URL: "https://warung.example.com"},
	}

	_, err := proc.ProcessURL(context.Background(), entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRAPE_FAILED")
	assert.Contains(t, err.Error(), "halaman tidak dapat diakses")
}

func TestHTTPDocumentProcessor_ProcessDocument_DeadlinePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	proc := newTestProcessor(t, server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := proc.ProcessDocument(ctx, documentEntry())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPDocumentProcessor_ProcessDocument_WrongKind(t *testing.T) {
	proc := newTestProcessor(t, "http://127.0.0.1:0")
	entry := &entity.KnowledgeEntry{
		ID:     uuid.New(),
		Source: entity.TextSource{Content: "teks"},
	}

	_, err := proc.ProcessDocument(context.Background(), entry)
	assert.Error(t, err)
}
