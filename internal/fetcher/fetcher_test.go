package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-shiori/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakefish18/wanikani-parser/internal/config"
)

func newTestFetcher(timeoutSeconds int) *HTTPFetcher {
	return NewHTTPFetcher(config.SourceConfig{
		UserAgent:      "test-agent",
		Headers:        map[string]string{"Accept-Language": "en"},
		TimeoutSeconds: timeoutSeconds,
	})
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/kanji":
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			assert.Equal(t, "en", r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><body><p class="level">5</p></body></html>`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	tests := []struct {
		name       string
		path       string
		wantText   string
		wantStatus int
	}{
		{
			name:     "parses the document",
			path:     "/kanji",
			wantText: "5",
		},
		{
			name:       "not found",
			path:       "/missing",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server error",
			path:       "/broken",
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFetcher(5)
			doc, err := f.Fetch(context.Background(), server.URL+tt.path)
			if tt.wantStatus != 0 {
				var fetchErr *FetchError
				require.True(t, errors.As(err, &fetchErr))
				assert.Equal(t, tt.wantStatus, fetchErr.StatusCode)
				assert.Equal(t, server.URL+tt.path, fetchErr.URL)
				assert.Nil(t, doc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, dom.TextContent(dom.QuerySelector(doc, "p.level")))
		})
	}
}

func TestHTTPFetcher_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<svg></svg>"))
	}))
	defer server.Close()

	got, err := newTestFetcher(5).Download(context.Background(), server.URL+"/image.svg")
	require.NoError(t, err)
	assert.Equal(t, []byte("<svg></svg>"), got)
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer server.Close()

	_, err := newTestFetcher(1).Fetch(context.Background(), server.URL)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Zero(t, fetchErr.StatusCode)
	assert.Error(t, fetchErr.Unwrap())
}

func TestHTTPFetcher_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestFetcher(1).Download(context.Background(), url)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Error(), url)
}
