package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	defer r.Body.Close()

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain"
	}
	w.Header().Set("Content-Type", contentType)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("received: " + string(body)))
}

func TestGzip(t *testing.T) {
	type want struct {
		statusCode      int
		contentEncoding string
		bodyContains    string
	}

	tests := []struct {
		name        string
		requestBody string
		gzipRequest bool
		headers     map[string]string
		want        want
	}{
		{
			name:        "positive: compresses json response for accepting client",
			requestBody: `{"publicUrl":"https://example.com"}`,
			headers: map[string]string{
				"Accept-Encoding": "gzip",
				"Content-Type":    "application/json",
			},
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "gzip",
				bodyContains:    `received: {"publicUrl":"https://example.com"}`,
			},
		},
		{
			name:        "negative: client does not accept gzip",
			requestBody: "plain request",
			headers: map[string]string{
				"Content-Type": "text/plain",
			},
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "",
				bodyContains:    "received: plain request",
			},
		},
		{
			name:        "negative: binary content stays uncompressed",
			requestBody: "bytes",
			headers: map[string]string{
				"Accept-Encoding": "gzip",
				"Content-Type":    "application/octet-stream",
			},
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "",
				bodyContains:    "received: bytes",
			},
		},
		{
			name:        "positive: decompresses gzip request body",
			requestBody: "compressed request",
			gzipRequest: true,
			headers: map[string]string{
				"Content-Encoding": "gzip",
				"Content-Type":     "text/plain",
			},
			want: want{
				statusCode:      http.StatusOK,
				contentEncoding: "",
				bodyContains:    "received: compressed request",
			},
		},
		{
			name:        "negative: invalid gzip body",
			requestBody: "not gzip at all",
			headers: map[string]string{
				"Content-Encoding": "gzip",
				"Content-Type":     "text/plain",
			},
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bodyReader io.Reader = strings.NewReader(tt.requestBody)

			if tt.gzipRequest {
				var buf bytes.Buffer
				gzWriter := gzip.NewWriter(&buf)
				_, err := gzWriter.Write([]byte(tt.requestBody))
				require.NoError(t, err)
				require.NoError(t, gzWriter.Close())
				bodyReader = &buf
			}

			req := httptest.NewRequest(http.MethodPost, "/", bodyReader)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			w := httptest.NewRecorder()
			Gzip(http.HandlerFunc(echoHandler)).ServeHTTP(w, req)

			result := w.Result()
			defer result.Body.Close()

			assert.Equal(t, tt.want.statusCode, result.StatusCode)
			assert.Equal(t, tt.want.contentEncoding, result.Header.Get("Content-Encoding"))

			if tt.want.bodyContains == "" {
				return
			}

			var responseBody []byte
			var err error

			if result.Header.Get("Content-Encoding") == "gzip" {
				gzReader, gzErr := gzip.NewReader(result.Body)
				require.NoError(t, gzErr)
				defer gzReader.Close()
				responseBody, err = io.ReadAll(gzReader)
			} else {
				responseBody, err = io.ReadAll(result.Body)
			}

			require.NoError(t, err)
			assert.Contains(t, string(responseBody), tt.want.bodyContains)
		})
	}
}
