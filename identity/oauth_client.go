package identity

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	TokenEndpointPath = "/oauth/token"
	AuthorizePath     = "/oauth/authorize"

	IdentityURLParsingError = "could not parse identity url"
	OAuthRequestError       = "error performing authorized request"
)

type httpClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// Endpoint is the OAuth2 endpoint pair for an identity service URL.
func Endpoint(identityURL string) oauth2.Endpoint {
	base := strings.TrimSuffix(identityURL, "/")
	return oauth2.Endpoint{
		AuthURL:  base + AuthorizePath,
		TokenURL: base + TokenEndpointPath,
	}
}

// OAuthClient performs requests with a service-account bearer token,
// fetched and refreshed through the client-credentials grant against the
// identity service's token endpoint.
type OAuthClient struct {
	config      *clientcredentials.Config
	context     context.Context
	identityURL string
	timeout     time.Duration
}

func NewOAuthClient(identityURL, clientID, clientSecret string, requestTimeout time.Duration, client httpClient) OAuthClient {
	return OAuthClient{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
		},
		context:     context.WithValue(context.TODO(), oauth2.HTTPClient, client),
		identityURL: identityURL,
		timeout:     requestTimeout,
	}
}

func (oc OAuthClient) Do(request *http.Request) (*http.Response, error) {
	tokenURL, err := url.Parse(oc.identityURL)
	if err != nil {
		return nil, errors.Wrap(err, IdentityURLParsingError)
	}
	tokenURL.Path = TokenEndpointPath
	oc.config.TokenURL = tokenURL.String()

	client := oc.config.Client(oc.context)
	client.Timeout = oc.timeout

	resp, err := client.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, OAuthRequestError)
	}
	return resp, nil
}
