package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"lapak/config"
	"lapak/internal/domain/entity"
	"lapak/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubKnowledge implements usecase.KnowledgeUsecase for handler tests.
type stubKnowledge struct {
	upload func(ctx context.Context, userID uuid.UUID, uploads []usecase.DocumentUpload) ([]usecase.UploadResult, error)
}

func (s *stubKnowledge) List(context.Context, uuid.UUID) ([]*entity.KnowledgeEntry, error) {
	return nil, nil
}

func (s *stubKnowledge) SaveText(context.Context, uuid.UUID, string, string) (*entity.KnowledgeEntry, error) {
	return nil, nil
}

func (s *stubKnowledge) SaveURL(context.Context, uuid.UUID, string, string) (*entity.KnowledgeEntry, error) {
	return nil, nil
}

func (s *stubKnowledge) UploadDocuments(ctx context.Context, userID uuid.UUID, uploads []usecase.DocumentUpload) ([]usecase.UploadResult, error) {
	return s.upload(ctx, userID, uploads)
}

func (s *stubKnowledge) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func newUploadTestHandler(uc usecase.KnowledgeUsecase) *KnowledgeHandler {
	cfg := &config.Config{Onboarding: &config.OnboardingConfig{MaxUploadSizeMB: 1, MaxUploadFiles: 2}}

	return NewKnowledgeHandler(uc, cfg, discardLogger())
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func uploadContext(t *testing.T, userID uuid.UUID, files map[string][]byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body, contentType := multipartBody(t, files)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/knowledge/documents", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)

	return c, rec
}

func TestKnowledgeHandler_UploadDocuments_ForwardsFiles(t *testing.T) {
	userID := uuid.New()
	uc := &stubKnowledge{
		upload: func(_ context.Context, gotUserID uuid.UUID, uploads []usecase.DocumentUpload) ([]usecase.UploadResult, error) {
			assert.Equal(t, userID, gotUserID)
			require.Len(t, uploads, 1)
			assert.Equal(t, "menu.pdf", uploads[0].FileName)

			content, err := io.ReadAll(uploads[0].Payload)
			require.NoError(t, err)
			assert.Equal(t, []byte("isi menu"), content)

			return []usecase.UploadResult{{FileName: "menu.pdf"}}, nil
		},
	}

	c, rec := uploadContext(t, userID, map[string][]byte{"menu.pdf": []byte("isi menu")})
	require.NoError(t, newUploadTestHandler(uc).UploadDocuments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKnowledgeHandler_UploadDocuments_RejectsOversizedFile(t *testing.T) {
	userID := uuid.New()
	// The usecase must never see a file over the limit; no upload expectation.
	uc := &stubKnowledge{
		upload: func(context.Context, uuid.UUID, []usecase.DocumentUpload) ([]usecase.UploadResult, error) {
			t.Fatal("oversized file must not reach the usecase")

			return nil, nil
		},
	}

	oversized := bytes.Repeat([]byte("a"), 2<<20)
	c, rec := uploadContext(t, userID, map[string][]byte{"besar.pdf": oversized})
	require.NoError(t, newUploadTestHandler(uc).UploadDocuments(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []usecase.UploadResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "besar.pdf", envelope.Data[0].FileName)
	assert.Contains(t, envelope.Data[0].Err, "1.0 MB")
}

func TestKnowledgeHandler_UploadDocuments_RejectsTooManyFiles(t *testing.T) {
	userID := uuid.New()
	uc := &stubKnowledge{
		upload: func(context.Context, uuid.UUID, []usecase.DocumentUpload) ([]usecase.UploadResult, error) {
			t.Fatal("batch over the file limit must not reach the usecase")

			return nil, nil
		},
	}

	c, rec := uploadContext(t, userID, map[string][]byte{
		"a.pdf": []byte("a"),
		"b.pdf": []byte("b"),
		"c.pdf": []byte("c"),
	})
	require.NoError(t, newUploadTestHandler(uc).UploadDocuments(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "TOO_MANY_FILES", envelope.Error.Code)
}

func TestKnowledgeHandler_UploadDocuments_RejectsEmptyBatch(t *testing.T) {
	userID := uuid.New()
	c, rec := uploadContext(t, userID, map[string][]byte{})
	require.NoError(t, newUploadTestHandler(&stubKnowledge{}).UploadDocuments(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
