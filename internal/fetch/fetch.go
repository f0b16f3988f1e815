package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Milover/isbnref/internal/metainfo"
	"github.com/Milover/isbnref/internal/rangemsg"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	// GlobalReqTimeout is the global HTTP request timeout.
	GlobalReqTimeout = 30 * time.Second

	// GlobalRateLimiter is the global outgoing HTTP request limiter.
	GlobalRateLimiter = ratelimit.New(5)

	// MaxBodySize limits the size of a downloaded range message.
	MaxBodySize int64 = 16 << 20

	// RangeMessageURLs are the locations the range message is downloaded
	// from, tried in order.
	RangeMessageURLs = []string{
		(&url.URL{
			Scheme: "https",
			Host:   rangemsg.URL,
			Path:   rangemsg.Export,
		}).String(),
	}
)

// sendGetRequest sends a GET request to the specified URL.
// An error is returned if a valid response cannot be obtained.
func sendGetRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	req.Header.Set("User-Agent", metainfo.HTTPUserAgent)

	// sendGetRequest can be called from multiple threads
	GlobalRateLimiter.Take()

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if res.StatusCode > 399 {
		res.Body.Close()
		return nil, fmt.Errorf("%s", res.Status)
	}

	return res, nil
}

// reqMirror downloads the body of a single URL.
func reqMirror(ctx context.Context, u string) ([]byte, error) {
	ctx, cncl := context.WithTimeout(ctx, GlobalReqTimeout)
	defer cncl()

	res, err := sendGetRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return body, nil
}

// RangeMessage downloads the range message. On a failed request, the next
// URL is tried, until all of them have been exhausted. The body and the
// URL it was downloaded from are returned.
func RangeMessage(ctx context.Context, urls []string) ([]byte, string, error) {
	if len(urls) == 0 {
		return nil, "", fmt.Errorf("no range message URLs")
	}
	for _, u := range urls {
		body, err := reqMirror(ctx, u)
		if err == nil {
			return body, u, nil
		}
		zap.S().Warnf("%v: %v", u, err)
		if ctx.Err() != nil {
			return nil, "", fmt.Errorf("%w", ctx.Err())
		}
	}
	return nil, "", fmt.Errorf("could not download range message")
}

// UpdateRanges downloads the range message and writes it to out as a
// prefix range database.
func UpdateRanges(ctx context.Context, urls []string, out io.Writer) error {
	body, src, err := RangeMessage(ctx, urls)
	if err != nil {
		return err
	}
	msg, err := rangemsg.Decode(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%v: %w", src, err)
	}
	zap.S().Infof("%v: range message %v, %v", src, msg.Serial, msg.Date)
	return msg.WriteDB(out, src)
}
