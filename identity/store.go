package identity

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	NotLoggedInMessage = "not logged in"

	TokenMarshalError         = "error serializing token"
	TokenFileWriteErrorFormat = "error writing token file %s"
	TokenFileReadErrorFormat  = "error reading token file %s"
	TokenFileParseErrorFormat = "token file %s is not valid, log in again to replace it"
	TokenFileClearErrorFormat = "error removing token file %s"
)

// NotLoggedInError is returned by Load when no token has been stored.
var NotLoggedInError = errors.New(NotLoggedInMessage)

// Store persists OAuth tokens as a private JSON file. The file and its
// directory are created with owner-only permissions.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Save(token *oauth2.Token) error {
	contents, err := json.Marshal(token)
	if err != nil {
		return errors.Wrap(err, TokenMarshalError)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.Wrapf(err, TokenFileWriteErrorFormat, s.path)
	}
	if err := os.WriteFile(s.path, contents, 0600); err != nil {
		return errors.Wrapf(err, TokenFileWriteErrorFormat, s.path)
	}
	return nil
}

func (s *Store) Load() (*oauth2.Token, error) {
	contents, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, NotLoggedInError
	}
	if err != nil {
		return nil, errors.Wrapf(err, TokenFileReadErrorFormat, s.path)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal(contents, token); err != nil {
		return nil, errors.Wrapf(err, TokenFileParseErrorFormat, s.path)
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, errors.Errorf(TokenFileParseErrorFormat, s.path)
	}
	return token, nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, TokenFileClearErrorFormat, s.path)
	}
	return nil
}
