package network

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

const RequestBodyRewindError = "error rewinding request body for retry"

// RetryClient retries requests the service asked to back off from (429)
// and, for idempotent methods, gateway errors (502/503/504). Delays grow
// exponentially unless the response names its own via Retry-After. A
// request whose body cannot be re-sent is never retried.
type RetryClient struct {
	client          httpClient
	maxRetries      int
	initialInterval time.Duration
}

func NewRetryClient(client httpClient, maxRetries int, initialInterval time.Duration) *RetryClient {
	return &RetryClient{
		client:          client,
		maxRetries:      maxRetries,
		initialInterval: initialInterval,
	}
}

func (c *RetryClient) Do(request *http.Request) (*http.Response, error) {
	if request.Body != nil && request.GetBody == nil {
		return c.client.Do(request)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval
	policy.MaxElapsedTime = 0
	policy.Reset()

	for attempt := 0; ; attempt++ {
		resp, err := c.send(request)
		if err != nil {
			return nil, err
		}
		if !retryableStatus(request.Method, resp.StatusCode) || attempt >= c.maxRetries {
			return resp, nil
		}

		delay := policy.NextBackOff()
		if headerDelay, ok := retryAfterDelay(resp); ok {
			delay = headerDelay
		}
		resp.Body.Close()

		timer := time.NewTimer(delay)
		select {
		case <-request.Context().Done():
			timer.Stop()
			return nil, request.Context().Err()
		case <-timer.C:
		}
	}
}

func (c *RetryClient) send(request *http.Request) (*http.Response, error) {
	attempt := request
	if request.GetBody != nil {
		body, err := request.GetBody()
		if err != nil {
			return nil, errors.Wrap(err, RequestBodyRewindError)
		}
		attempt = request.Clone(request.Context())
		attempt.Body = body
	}
	return c.client.Do(attempt)
}

func retryableStatus(method string, statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	switch statusCode {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return idempotent(method)
	}
	return false
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	}
	return false
}

// retryAfterDelay reads Retry-After in either of its wire forms, a
// delta in seconds or an HTTP-date.
func retryAfterDelay(resp *http.Response) (time.Duration, bool) {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}
	if at, err := http.ParseTime(header); err == nil {
		return time.Until(at), true
	}
	return 0, false
}
