package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chapel/internal/upload"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))).Register(r)
	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) ValidateResponse {
	t.Helper()
	var resp ValidateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/uploads/validate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, size int) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "bulletin.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/validate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestValidateJSON(t *testing.T) {
	router := newRouter()

	t.Run("within limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(`{"byteSize":1048576}`))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode(t, rec).Valid)
	})

	t.Run("over limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(`{"byteSize":2097153}`))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		resp := decode(t, rec)
		assert.False(t, resp.Valid)
		assert.Equal(t, upload.SizeErrorMessage(), resp.Error)
	})

	t.Run("null candidate is invalid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(`null`))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.False(t, decode(t, rec).Valid)
	})

	t.Run("negative size rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(`{"byteSize":-1}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(`{`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestValidateMultipart(t *testing.T) {
	router := newRouter()

	t.Run("small file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, 4096))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode(t, rec).Valid)
	})

	t.Run("file over limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartRequest(t, 2*1024*1024+10))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, decode(t, rec).Error, "2MB")
	})
}
