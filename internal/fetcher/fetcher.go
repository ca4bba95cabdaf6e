// Package fetcher downloads lead files from HTTP and FTP feeds.
package fetcher

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/loi-rocket/dealflow-cli/internal/config"
)

// Fetcher downloads a remote lead file.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

// IsRemote reports whether the input looks like a URL this package handles.
func IsRemote(input string) bool {
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://") ||
		strings.HasPrefix(input, "ftp://")
}

// ForURL picks the fetcher for the URL's scheme.
func ForURL(rawURL string, cfg config.FetchConfig) (Fetcher, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, eris.Wrapf(err, "fetcher: parse url %s", rawURL)
	}

	switch u.Scheme {
	case "http", "https":
		return NewHTTPFetcher(HTTPOptions{
			UserAgent:     cfg.UserAgent,
			Timeout:       time.Duration(cfg.TimeoutSecs) * time.Second,
			MaxRetries:    cfg.MaxRetries,
			RatePerSecond: cfg.RatePerSecond,
		}), nil
	case "ftp":
		return NewFTPFetcher(FTPOptions{
			Timeout: time.Duration(cfg.FTPTimeoutSecs) * time.Second,
		}), nil
	default:
		return nil, eris.Errorf("fetcher: unsupported scheme %q", u.Scheme)
	}
}
