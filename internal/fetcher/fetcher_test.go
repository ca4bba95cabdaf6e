package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loi-rocket/dealflow-cli/internal/config"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("http://feeds.example.com/leads.csv"))
	assert.True(t, IsRemote("https://feeds.example.com/leads.csv"))
	assert.True(t, IsRemote("ftp://feeds.example.com/leads.csv"))
	assert.False(t, IsRemote("leads.csv"))
	assert.False(t, IsRemote("/data/leads.csv"))
	assert.False(t, IsRemote("file:///data/leads.csv"))
}

func TestForURL(t *testing.T) {
	cfg := config.FetchConfig{TimeoutSecs: 5, MaxRetries: 2, RatePerSecond: 10}

	f, err := ForURL("https://example.com/leads.csv", cfg)
	require.NoError(t, err)
	assert.IsType(t, &HTTPFetcher{}, f)

	f, err = ForURL("ftp://example.com/leads.csv", cfg)
	require.NoError(t, err)
	assert.IsType(t, &FTPFetcher{}, f)

	_, err = ForURL("gopher://example.com/leads", cfg)
	assert.Error(t, err)
}

func TestParseFTPURL(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantHost string
		wantPath string
		wantErr  bool
	}{
		{"default port", "ftp://feeds.example.com/pub/leads.csv", "feeds.example.com:21", "/pub/leads.csv", false},
		{"explicit port", "ftp://feeds.example.com:2121/leads.csv", "feeds.example.com:2121", "/leads.csv", false},
		{"wrong scheme", "http://example.com/leads.csv", "", "", true},
		{"no path", "ftp://example.com", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, path, err := parseFTPURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestHTTPFetcherDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("listing_status\nActive\n"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{UserAgent: "test-agent", RatePerSecond: 100})
	body, err := f.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "listing_status\nActive\n", string(data))
}

func TestHTTPFetcherRetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{MaxRetries: 3, RatePerSecond: 100})
	body, err := f.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPFetcherExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f := NewHTTPFetcher(HTTPOptions{MaxRetries: 2, RatePerSecond: 100})
	_, err := f.Download(ctx, srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPFetcherNonRetryableStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{MaxRetries: 3, RatePerSecond: 100})
	_, err := f.Download(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
