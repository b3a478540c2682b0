package network

import (
	"net/http"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// RateLimitedClient bounds both the request rate and the number of
// in-flight requests against the asset service. Waits are governed by the
// request's context; an aborted wait returns the context error unchanged.
type RateLimitedClient struct {
	client   httpClient
	limiter  *rate.Limiter
	inFlight *semaphore.Weighted
}

func NewRateLimitedClient(requestsPerSecond float64, maxInFlight int64, client httpClient) *RateLimitedClient {
	return &RateLimitedClient{
		client:   client,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		inFlight: semaphore.NewWeighted(maxInFlight),
	}
}

func (c *RateLimitedClient) Do(request *http.Request) (*http.Response, error) {
	ctx := request.Context()

	if err := c.inFlight.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.inFlight.Release(1)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return c.client.Do(request)
}
