package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestUploadMedia_Success(t *testing.T) {
	media := &mockMediaStore{
		saveFn: func(_ context.Context, fileName string, r io.Reader) (string, error) {
			assert.Equal(t, "photo.png", fileName)
			content, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "image-bytes", string(content))
			return "abc123-photo.png", nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		MediaStore:  media,
	})

	body, contentType := multipartUpload(t, "file", "photo.png", "image-bytes")
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "abc123-photo.png")
}

func TestUploadMedia_MissingFile(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		MediaStore:  &mockMediaStore{},
	})

	body, contentType := multipartUpload(t, "wrong-field", "photo.png", "x")
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMedia_StoreFailure(t *testing.T) {
	media := &mockMediaStore{
		saveFn: func(_ context.Context, _ string, _ io.Reader) (string, error) {
			return "", errors.New("disk full")
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		MediaStore:  media,
	})

	body, contentType := multipartUpload(t, "file", "photo.png", "x")
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full", "storage detail must not leak")
}

func TestDeleteMedia_Success(t *testing.T) {
	removed := ""
	media := &mockMediaStore{
		removeFn: func(_ context.Context, storedName string) error {
			removed = storedName
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		MediaStore:  media,
	})

	req := httptest.NewRequest(http.MethodDelete, "/media/abc123-photo.png", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123-photo.png", removed)
}

func TestDeleteMedia_InvalidName(t *testing.T) {
	media := &mockMediaStore{
		removeFn: func(_ context.Context, storedName string) error {
			return fmt.Errorf("%w: %q", store.ErrInvalidMediaName, storedName)
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: adminToken(1)},
		MediaStore:  media,
	})

	req := httptest.NewRequest(http.MethodDelete, "/media/..%2Fsecrets", nil)
	rec := doAdmin(t, h, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMedia_RequiresAdmin(t *testing.T) {
	h := userSession(t)

	body, contentType := multipartUpload(t, "file", "photo.png", "x")
	req := httptest.NewRequest(http.MethodPost, "/media", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer any")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}
