// Package processor talks to the external document processing service that
// extracts structured content from uploaded files and scraped web pages.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lapak/config"
	"lapak/internal/domain/entity"
	"lapak/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultClientTimeout = 5 * time.Minute

// httpDocumentProcessor implements DocumentProcessor against the processing
// service's HTTP API. Per-call deadlines arrive via ctx; the client timeout
// is only a hard upper bound.
type httpDocumentProcessor struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPDocumentProcessor is the constructor for httpDocumentProcessor.
func NewHTTPDocumentProcessor(cfg *config.Config, logger *slog.Logger) (service.DocumentProcessor, error) {
	if cfg.Processor == nil || cfg.Processor.BaseURL == "" {
		return nil, errors.New("processor base URL is not configured")
	}

	timeout := defaultClientTimeout
	if cfg.Processor.Timeout > 0 {
		timeout = cfg.Processor.Timeout
	}

	return &httpDocumentProcessor{
		baseURL: cfg.Processor.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// processRequest is the JSON body sent to the processing service.
type processRequest struct {
	EntryID           string `json:"entry_id"`
	BusinessProfileID string `json:"business_profile_id"`
	StoragePath       string `json:"storage_path,omitempty"`
	FileType          string `json:"file_type,omitempty"`
	URL               string `json:"url,omitempty"`
}

// processEnvelope is the service's uniform response envelope.
type processEnvelope struct {
	Success bool                   `json:"success"`
	Data    *service.ProcessResult `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ProcessDocument extracts content from a stored document.
func (p *httpDocumentProcessor) ProcessDocument(ctx context.Context, entry *entity.KnowledgeEntry) (*service.ProcessResult, error) {
	source, ok := entry.Source.(entity.DocumentSource)
	if !ok {
		return nil, errors.Errorf("entry %s is not a document entry", entry.ID)
	}

	return p.post(ctx, "/v1/process/document", processRequest{
		EntryID:           entry.ID.String(),
		BusinessProfileID: entry.BusinessProfileID.String(),
		StoragePath:       source.StoragePath,
		FileType:          source.FileType,
	})
}

// ProcessURL scrapes and extracts content from a url entry.
func (p *httpDocumentProcessor) ProcessURL(ctx context.Context, entry *entity.KnowledgeEntry) (*service.ProcessResult, error) {
	source, ok := entry.Source.(entity.URLSource)
	if !ok {
		return nil, errors.Errorf("entry %s is not a url entry", entry.ID)
	}

	return p.post(ctx, "/v1/process/url", processRequest{
		EntryID:           entry.ID.String(),
		BusinessProfileID: entry.BusinessProfileID.String(),
		URL:               source.URL,
	})
}

func (p *httpDocumentProcessor) post(ctx context.Context, path string, reqBody processRequest) (*service.ProcessResult, error) {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// Unwrap url.Error so callers can match context.DeadlineExceeded.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, errors.Wrap(err, "processing service request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read processing service response")
	}

	var envelope processEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, errors.Wrapf(err, "processing service returned malformed response (status %d)", resp.StatusCode)
	}

	if !envelope.Success || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if envelope.Error != nil {
			return nil, errors.Errorf("processing failed: %s (%s)", envelope.Error.Message, envelope.Error.Code)
		}

		return nil, errors.Errorf("processing service returned status %d", resp.StatusCode)
	}
	if envelope.Data == nil {
		return nil, errors.New("processing service returned empty result")
	}

	p.logger.Debug("entry processed",
		slog.String("entry_id", reqBody.EntryID),
		slog.Int("extracted_chars", envelope.Data.ExtractedChars),
	)

	return envelope.Data, nil
}
