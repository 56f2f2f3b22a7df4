// Package proxy streams remote resources back to clients with headers
// rewritten to force attachment (save-as) behavior.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	fetchTimeout = 20 * time.Second
	maxRedirects = 5

	// DefaultFilename is used when no name can be derived from the
	// upstream response or the requested URL.
	DefaultFilename = "download"
)

type Downloader struct {
	client       *http.Client
	allowedHosts map[string]struct{}
}

// NewDownloader creates the proxy's HTTP client. An empty allow list
// permits any host, matching the historical behavior; when hosts are
// configured, requests to anything else are rejected before any network
// call is made.
func NewDownloader(allowedHosts []string) *Downloader {
	var allowed map[string]struct{}
	if len(allowedHosts) > 0 {
		allowed = make(map[string]struct{}, len(allowedHosts))
		for _, h := range allowedHosts {
			h = strings.ToLower(strings.TrimSpace(h))
			if h != "" {
				allowed[h] = struct{}{}
			}
		}
	}
	return &Downloader{
		client: &http.Client{
			Timeout: fetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
		allowedHosts: allowed,
	}
}

// ValidateURL rejects missing or non-http(s) URLs before any network call.
// The scheme check is case-insensitive. Host checking only applies when an
// allow list is configured.
func (d *Downloader) ValidateURL(rawURL string) error {
	if rawURL == "" {
		return errors.New("url query parameter is required")
	}
	lower := strings.ToLower(rawURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return errors.New("url must start with http:// or https://")
	}
	if len(d.allowedHosts) == 0 {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("url is not parseable")
	}
	if _, ok := d.allowedHosts[strings.ToLower(u.Hostname())]; !ok {
		return errors.New("host is not allowed")
	}
	return nil
}

// Fetch issues the streaming GET. The caller owns the response body. The
// request is bound to ctx so a disconnected client stops the transfer.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("upstream responded %s", resp.Status)
	}
	return resp, nil
}

// Filename derives the download name: the upstream content-disposition
// wins, then the last non-empty path segment of the requested URL, then
// DefaultFilename.
func Filename(resp *http.Response, rawURL string) string {
	if name := filenameFromDisposition(resp.Header.Get("Content-Disposition")); name != "" {
		return name
	}
	if name := FilenameFromURL(rawURL); name != "" {
		return name
	}
	return DefaultFilename
}

// FilenameFromURL returns the last non-empty, percent-decoded path segment
// of rawURL, ignoring the query string. Empty when the URL has no path.
func FilenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		if decoded, err := url.PathUnescape(segments[i]); err == nil {
			return decoded
		}
		return segments[i]
	}
	return ""
}

// SanitizeFilename strips characters that could break out of the quoted
// content-disposition parameter.
func SanitizeFilename(name string) string {
	name = strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFilename
	}
	return name
}

func filenameFromDisposition(value string) string {
	if value == "" {
		return ""
	}
	// ParseMediaType handles both the plain filename parameter and the
	// RFC 5987 filename* form.
	_, params, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}
	name := params["filename"]
	if name == "" {
		return ""
	}
	if decoded, err := url.QueryUnescape(name); err == nil {
		name = decoded
	}
	return strings.TrimSpace(name)
}
