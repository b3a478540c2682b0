package identity

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	CallbackPath = "/callback"

	CallbackListenError            = "error starting the local login listener"
	OpenBrowserError               = "error opening the browser for login"
	StateMismatchError             = "login callback state did not match, aborting"
	AuthorizationDeniedErrorFormat = "authorization denied: %s"
	TokenExchangeError             = "error exchanging the authorization code"
)

// Flow runs the browser-based login: an authorization-code grant with an
// S256 PKCE challenge, collecting the code on a loopback listener bound
// to a random port. openBrowser receives the authorization URL.
type Flow struct {
	identityURL string
	clientID    string
	scopes      []string
	client      httpClient
	openBrowser func(url string) error
}

func NewFlow(identityURL, clientID string, scopes []string, client httpClient, openBrowser func(string) error) *Flow {
	return &Flow{
		identityURL: identityURL,
		clientID:    clientID,
		scopes:      scopes,
		client:      client,
		openBrowser: openBrowser,
	}
}

func (f *Flow) Login(ctx context.Context) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrap(err, CallbackListenError)
	}
	defer listener.Close()

	config := &oauth2.Config{
		ClientID:    f.clientID,
		Endpoint:    Endpoint(f.identityURL),
		RedirectURL: fmt.Sprintf("http://%s%s", listener.Addr().String(), CallbackPath),
		Scopes:      f.scopes,
	}

	verifier := oauth2.GenerateVerifier()
	state := uuid.Must(uuid.NewV4()).String()
	authURL := config.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	type callback struct {
		code string
		err  error
	}
	callbacks := make(chan callback, 1)

	server := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != CallbackPath {
			http.NotFound(w, req)
			return
		}

		query := req.URL.Query()
		switch {
		case query.Get("state") != state:
			http.Error(w, "state mismatch", http.StatusBadRequest)
			callbacks <- callback{err: errors.New(StateMismatchError)}
		case query.Get("error") != "":
			http.Error(w, query.Get("error"), http.StatusBadRequest)
			callbacks <- callback{err: errors.Errorf(AuthorizationDeniedErrorFormat, query.Get("error"))}
		default:
			fmt.Fprintln(w, "Login complete. You can close this tab.")
			callbacks <- callback{code: query.Get("code")}
		}
	})}
	go server.Serve(listener)
	defer server.Close()

	if err := f.openBrowser(authURL); err != nil {
		return nil, errors.Wrap(err, OpenBrowserError)
	}

	select {
	case result := <-callbacks:
		if result.err != nil {
			return nil, result.err
		}
		exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, f.client)
		token, err := config.Exchange(exchangeCtx, result.code, oauth2.VerifierOption(verifier))
		if err != nil {
			return nil, errors.Wrap(err, TokenExchangeError)
		}
		return token, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
