// Package probe discovers the content type and size of a remote URL
// without downloading the full resource.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	probeTimeout = 8 * time.Second
	maxRedirects = 5
	rangeBytes   = 1024
)

// Result is the advisory outcome of a probe. Nil fields mean the value
// could not be determined; callers substitute defaults.
type Result struct {
	MimeType  *string `json:"mimeType"`
	SizeBytes *int64  `json:"sizeBytes"`
}

type Prober struct {
	client *http.Client
}

func New() *Prober {
	return &Prober{
		client: &http.Client{
			Timeout: probeTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Probe tries a header-only request first, then falls back to a ranged GET.
// Many hosts reject HEAD but honor ranged GET. Probe never returns an
// error; when both attempts fail it degrades to an empty Result.
func (p *Prober) Probe(ctx context.Context, rawURL string) Result {
	if res, ok := p.head(ctx, rawURL); ok {
		return res
	}
	if res, ok := p.rangedGet(ctx, rawURL); ok {
		return res
	}
	return Result{}
}

func (p *Prober) head(ctx context.Context, rawURL string) (Result, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return Result{}, false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, false
	}
	return fromResponse(resp), true
}

func (p *Prober) rangedGet(ctx context.Context, rawURL string) (Result, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{}, false
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=0-%d", rangeBytes-1))
	resp, err := p.client.Do(req)
	if err != nil {
		return Result{}, false
	}
	// Only the headers matter; discard the partial body immediately.
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, false
	}
	return fromResponse(resp), true
}

func fromResponse(resp *http.Response) Result {
	var res Result
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		res.MimeType = &ct
	}
	if resp.StatusCode == http.StatusPartialContent {
		if total, ok := totalFromContentRange(resp.Header.Get("Content-Range")); ok {
			res.SizeBytes = &total
			return res
		}
	}
	if resp.ContentLength >= 0 {
		n := resp.ContentLength
		res.SizeBytes = &n
	}
	return res
}

// totalFromContentRange extracts the complete length from a header such as
// "bytes 0-1023/4096". A "*" total reports unknown.
func totalFromContentRange(value string) (int64, bool) {
	idx := strings.LastIndex(value, "/")
	if idx < 0 {
		return 0, false
	}
	total, err := strconv.ParseInt(strings.TrimSpace(value[idx+1:]), 10, 64)
	if err != nil || total < 0 {
		return 0, false
	}
	return total, true
}
