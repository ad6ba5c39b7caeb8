// Package probe performs the HTTP connectivity checks behind network-test and
// sync.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 5 * time.Second

	// UserAgent identifies zlang to probed endpoints.
	UserAgent = "zlang-cli"

	// maxBodySize caps how much of a response is kept.
	maxBodySize = 64 * 1024
)

// Options tunes a probe.
type Options struct {
	// Timeout bounds each attempt. Zero means DefaultTimeout.
	Timeout time.Duration

	// Retries is the number of extra attempts after a connection error or a
	// 5xx response.
	Retries int
}

// Result describes a completed request.
type Result struct {
	URL     string
	Status  int
	Body    string
	Elapsed time.Duration
}

// OK reports whether the endpoint answered with a 2xx status.
func (r *Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

func newClient(opts Options) *retryablehttp.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cleanhttp.DefaultClient()
	httpClient.Timeout = timeout

	client := retryablehttp.NewClient()
	client.HTTPClient = httpClient
	client.Logger = nil
	client.RetryMax = opts.Retries
	client.RetryWaitMin = 100 * time.Millisecond
	client.RetryWaitMax = time.Second
	client.ErrorHandler = keepLastResponse
	return client
}

// keepLastResponse hands back the final response once retries are exhausted,
// so a persistent 5xx is reported as a Result rather than an error.
func keepLastResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// Check issues a GET to url and returns the response status and the start of
// its body. Any response, including a non-2xx one, is a Result; only
// transport failures are errors.
func Check(ctx context.Context, url string, opts Options) (*Result, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid probe request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := newClient(opts).Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	return &Result{
		URL:     url,
		Status:  resp.StatusCode,
		Body:    string(body),
		Elapsed: time.Since(start),
	}, nil
}
