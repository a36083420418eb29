package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareup-app/shareup/internal/models"
)

func multipartBody(t *testing.T, fieldName, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{
		`form-data; name="` + fieldName + `"; filename="` + fileName + `"`,
	}
	header["Content-Type"] = []string{contentType}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	t.Run("positive: full share chain", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)
		router := h.SetupRouter()

		body, contentType := multipartBody(t, "file", "note.md", "text/markdown", []byte("# shared note"))

		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		result := w.Result()
		defer result.Body.Close()

		require.Equal(t, http.StatusOK, result.StatusCode)

		var resp models.UploadResponse
		require.NoError(t, json.NewDecoder(result.Body).Decode(&resp))

		assert.True(t, strings.HasPrefix(resp.PublicURL, "http://example.com/files/public/note-"))
		assert.True(t, strings.HasPrefix(resp.ShortURL, "http://example.com/"))

		qrURL, err := url.Parse(resp.QRURL)
		require.NoError(t, err)
		assert.Equal(t, resp.ShortURL, qrURL.Query().Get("data"))

		// The short link must redirect to the public URL.
		shortID := strings.TrimPrefix(resp.ShortURL, "http://example.com/")
		redirectReq := httptest.NewRequest(http.MethodGet, "/"+shortID, nil)
		redirectW := httptest.NewRecorder()
		router.ServeHTTP(redirectW, redirectReq)

		redirectResult := redirectW.Result()
		redirectResult.Body.Close()

		assert.Equal(t, http.StatusFound, redirectResult.StatusCode)
		assert.Equal(t, resp.PublicURL, redirectResult.Header.Get("Location"))

		// And the public URL must serve the uploaded bytes.
		filePath := strings.TrimPrefix(resp.PublicURL, "http://example.com")
		fileReq := httptest.NewRequest(http.MethodGet, filePath, nil)
		fileW := httptest.NewRecorder()
		router.ServeHTTP(fileW, fileReq)

		fileResult := fileW.Result()
		defer fileResult.Body.Close()

		assert.Equal(t, http.StatusOK, fileResult.StatusCode)
		assert.Equal(t, "text/markdown", fileResult.Header.Get("Content-Type"))
		assert.Equal(t, "# shared note", fileW.Body.String())
	})

	t.Run("negative: missing file field", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)
		router := h.SetupRouter()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("other", "value"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		result := w.Result()
		defer result.Body.Close()

		assert.Equal(t, http.StatusBadRequest, result.StatusCode)

		var resp models.ErrorResponse
		require.NoError(t, json.NewDecoder(result.Body).Decode(&resp))
		assert.Equal(t, "File not provided", resp.Error)
	})

	t.Run("negative: empty file", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)
		router := h.SetupRouter()

		body, contentType := multipartBody(t, "file", "empty.txt", "text/plain", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		result := w.Result()
		defer result.Body.Close()

		assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	})

	t.Run("negative: payload over the size limit", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)
		router := h.SetupRouter()

		oversized := bytes.Repeat([]byte("x"), testMaxUploadBytes+1)
		body, contentType := multipartBody(t, "file", "big.bin", "application/octet-stream", oversized)

		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		result := w.Result()
		defer result.Body.Close()

		assert.Equal(t, http.StatusRequestEntityTooLarge, result.StatusCode)

		var resp models.ErrorResponse
		require.NoError(t, json.NewDecoder(result.Body).Decode(&resp))
		assert.Equal(t, "File too large", resp.Error)
	})
}
