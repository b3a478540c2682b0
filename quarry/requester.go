package quarry

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

const (
	ServiceURLParsingErrorFormat = "error parsing asset service URL: %s"
	RequestCreationErrorFormat   = "error creating HTTP request for %s %s"
	RequestErrorFormat           = "error accessing asset service endpoint: %s"
)

type RequestInput struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type RequestOutput struct {
	StatusCode int
	Headers    http.Header
	Body       io.ReadCloser
}

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// Requester resolves paths against the service base URL and performs
// requests with the provided client. Authentication and rate limiting are
// the client's concern, not the Requester's.
type Requester struct {
	serviceURL string
	client     httpClient
}

func NewRequester(serviceURL string, client httpClient) *Requester {
	return &Requester{serviceURL: serviceURL, client: client}
}

func (r *Requester) Invoke(input RequestInput) (RequestOutput, error) {
	// Parsing the joined string rather than assigning URL.Path keeps
	// percent-escaped path segments (file paths) intact.
	serviceURL, err := url.Parse(strings.TrimSuffix(r.serviceURL, "/") + input.Path)
	if err != nil {
		return RequestOutput{}, errors.Wrapf(err, ServiceURLParsingErrorFormat, r.serviceURL)
	}
	serviceURL.RawQuery = input.Query.Encode()

	var body io.Reader
	if input.Body != nil {
		body = bytes.NewReader(input.Body)
	}

	req, err := http.NewRequest(input.Method, serviceURL.String(), body)
	if err != nil {
		return RequestOutput{}, errors.Wrapf(err, RequestCreationErrorFormat, input.Method, input.Path)
	}
	req.Header.Set("Accept", "application/json")
	if input.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return RequestOutput{}, errors.Wrapf(err, RequestErrorFormat, serviceURL.String())
	}

	return RequestOutput{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       resp.Body,
	}, nil
}
