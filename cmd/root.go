package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"

	"github.com/quarryhq/quarry-courier/identity"
	"github.com/quarryhq/quarry-courier/network"
	"github.com/quarryhq/quarry-courier/quarry"
)

const (
	ServiceURLKey         = "QUARRY_URL"
	IdentityURLKey        = "QUARRY_IDENTITY_URL"
	ProjectIDKey          = "QUARRY_PROJECT_ID"
	AssetIDKey            = "QUARRY_ASSET_ID"
	AssetVersionKey       = "QUARRY_ASSET_VERSION"
	ClientIDKey           = "QUARRY_CLIENT_ID"
	ClientSecretKey       = "QUARRY_CLIENT_SECRET"
	TokenFileKey          = "QUARRY_TOKEN_FILE"
	StoreDirKey           = "QUARRY_STORE_DIR"
	RequestTimeoutKey     = "QUARRY_REQUEST_TIMEOUT"
	RequestsPerSecondKey  = "QUARRY_REQUESTS_PER_SECOND"
	ConcurrencyKey        = "QUARRY_CONCURRENCY"
	ServiceURLFlag        = "service-url"
	IdentityURLFlag       = "identity-url"
	ProjectIDFlag         = "project-id"
	AssetIDFlag           = "asset-id"
	AssetVersionFlag      = "asset-version"
	ClientIDFlag          = "client-id"
	ClientSecretFlag      = "client-secret"
	TokenFileFlag         = "token-file"
	StoreDirFlag          = "store-dir"
	RequestTimeoutFlag    = "request-timeout"
	RequestsPerSecondFlag = "requests-per-second"
	ConcurrencyFlag       = "concurrency"
	DatasetFlag           = "dataset"
	SkipTlsVerifyFlag     = "insecure-skip-tls-verify"

	RequiredConfigErrorFormat          = "Missing required flags: %s"
	HomeDirLookupError                 = "Could not determine the current user's home directory"
	InvalidDatasetConfigurationMessage = "Invalid dataset configuration. Requires at most one --dataset for this command."

	DefaultDatasetID = "source-files"

	DefaultSSOClientID   = "asset-courier"
	configDirName        = ".asset-courier"
	toolName             = "asset-courier"
	dialTimeout          = 5 * time.Second
	retryAttempts        = 3
	retryInitialInterval = 500 * time.Millisecond
)

var (
	version            = "dev"
	defaultServiceURL  string
	defaultIdentityURL string

	rootCmd = &cobra.Command{
		Use:   toolName,
		Short: "Utility for moving asset data in and out of a Quarry project",
	}
)

func init() {
	rootCmd.PersistentFlags().String(ServiceURLFlag, defaultServiceURL, fmt.Sprintf("URL of the Quarry service [$%s]", ServiceURLKey))
	viper.BindPFlag(ServiceURLFlag, rootCmd.PersistentFlags().Lookup(ServiceURLFlag))
	viper.BindEnv(ServiceURLFlag, ServiceURLKey)

	rootCmd.PersistentFlags().String(IdentityURLFlag, defaultIdentityURL, fmt.Sprintf("URL of the Quarry identity service [$%s]", IdentityURLKey))
	viper.BindPFlag(IdentityURLFlag, rootCmd.PersistentFlags().Lookup(IdentityURLFlag))
	viper.BindEnv(IdentityURLFlag, IdentityURLKey)

	rootCmd.PersistentFlags().String(ProjectIDFlag, "", fmt.Sprintf("ID of the project to operate on [$%s]", ProjectIDKey))
	viper.BindPFlag(ProjectIDFlag, rootCmd.PersistentFlags().Lookup(ProjectIDFlag))
	viper.BindEnv(ProjectIDFlag, ProjectIDKey)

	rootCmd.PersistentFlags().String(AssetIDFlag, "", fmt.Sprintf("ID of the asset to operate on [$%s]", AssetIDKey))
	viper.BindPFlag(AssetIDFlag, rootCmd.PersistentFlags().Lookup(AssetIDFlag))
	viper.BindEnv(AssetIDFlag, AssetIDKey)

	rootCmd.PersistentFlags().String(AssetVersionFlag, quarry.LatestVersion, fmt.Sprintf("Version of the asset to operate on [$%s]", AssetVersionKey))
	viper.BindPFlag(AssetVersionFlag, rootCmd.PersistentFlags().Lookup(AssetVersionFlag))
	viper.BindEnv(AssetVersionFlag, AssetVersionKey)

	rootCmd.PersistentFlags().String(ClientIDFlag, "", fmt.Sprintf("Service account client id [$%s]\nNote: not required when using browser login", ClientIDKey))
	viper.BindPFlag(ClientIDFlag, rootCmd.PersistentFlags().Lookup(ClientIDFlag))
	viper.BindEnv(ClientIDFlag, ClientIDKey)

	rootCmd.PersistentFlags().String(ClientSecretFlag, "", fmt.Sprintf("Service account client secret [$%s]\nNote: not required when using browser login", ClientSecretKey))
	viper.BindPFlag(ClientSecretFlag, rootCmd.PersistentFlags().Lookup(ClientSecretFlag))
	viper.BindEnv(ClientSecretFlag, ClientSecretKey)

	rootCmd.PersistentFlags().String(TokenFileFlag, "", fmt.Sprintf("File holding the stored login token [$%s] (default \"~/%s/token.json\")", TokenFileKey, configDirName))
	viper.BindPFlag(TokenFileFlag, rootCmd.PersistentFlags().Lookup(TokenFileFlag))
	viper.BindEnv(TokenFileFlag, TokenFileKey)

	rootCmd.PersistentFlags().String(StoreDirFlag, "", fmt.Sprintf("Local directory holding pulled asset files [$%s] (default \"~/%s/store\")", StoreDirKey, configDirName))
	viper.BindPFlag(StoreDirFlag, rootCmd.PersistentFlags().Lookup(StoreDirFlag))
	viper.BindEnv(StoreDirFlag, StoreDirKey)

	rootCmd.PersistentFlags().Int(RequestTimeoutFlag, 30, fmt.Sprintf("Timeout (in seconds) for Quarry service HTTP requests [$%s]", RequestTimeoutKey))
	viper.BindPFlag(RequestTimeoutFlag, rootCmd.PersistentFlags().Lookup(RequestTimeoutFlag))
	viper.BindEnv(RequestTimeoutFlag, RequestTimeoutKey)

	rootCmd.PersistentFlags().Int(RequestsPerSecondFlag, 8, fmt.Sprintf("Request rate limit for Quarry service HTTP requests [$%s]", RequestsPerSecondKey))
	viper.BindPFlag(RequestsPerSecondFlag, rootCmd.PersistentFlags().Lookup(RequestsPerSecondFlag))
	viper.BindEnv(RequestsPerSecondFlag, RequestsPerSecondKey)

	rootCmd.PersistentFlags().Int(ConcurrencyFlag, 4, fmt.Sprintf("Number of file transfers to run at once [$%s]", ConcurrencyKey))
	viper.BindPFlag(ConcurrencyFlag, rootCmd.PersistentFlags().Lookup(ConcurrencyFlag))
	viper.BindEnv(ConcurrencyFlag, ConcurrencyKey)

	rootCmd.PersistentFlags().StringSlice(DatasetFlag, nil, "Dataset to operate on, repeatable (default: all datasets for pull, source-files otherwise)")
	viper.BindPFlag(DatasetFlag, rootCmd.PersistentFlags().Lookup(DatasetFlag))

	rootCmd.PersistentFlags().Bool(SkipTlsVerifyFlag, false, "Skip TLS validation on http requests to the Quarry service")
	viper.BindPFlag(SkipTlsVerifyFlag, rootCmd.PersistentFlags().Lookup(SkipTlsVerifyFlag))
}

func Execute() {
	rootCmd.Version = version
	rootCmd.Flags().BoolP("help", "h", false, fmt.Sprintf("Help for %s", toolName))
	rootCmd.Flags().BoolP("version", "v", false, fmt.Sprintf("Version for %s", toolName))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func verifyRequiredConfig(keys ...string) error {
	var missingFlags []string
	for _, k := range keys {
		if viper.GetString(k) == "" {
			missingFlags = append(missingFlags, "--"+k)

		}
	}

	if len(missingFlags) > 0 {
		return errors.New(fmt.Sprintf(RequiredConfigErrorFormat, strings.Join(missingFlags, ", ")))
	}

	return nil
}

func bindFlagAndEnvVar(cmd *cobra.Command, flagName string, defaultValue interface{}, usageText, flagKey string) {
	switch val := defaultValue.(type) {
	case string:
		cmd.Flags().String(flagName, val, usageText)
	case int:
		cmd.Flags().Int(flagName, val, usageText)
	case bool:
		cmd.Flags().Bool(flagName, val, usageText)
	}
	viper.BindPFlag(flagName, cmd.Flag(flagName))
	viper.BindEnv(flagName, flagKey)
}

// commandContext is the lifetime of one command invocation; an interrupt
// cancels it so in-flight operations can stop cleanly.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func newLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func requestTimeout() time.Duration {
	return time.Duration(viper.GetInt(RequestTimeoutFlag)) * time.Second
}

func tokenFilePath() (string, error) {
	if path := viper.GetString(TokenFileFlag); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, HomeDirLookupError)
	}
	return filepath.Join(home, configDirName, "token.json"), nil
}

func storeDirPath() (string, error) {
	if path := viper.GetString(StoreDirFlag); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, HomeDirLookupError)
	}
	return filepath.Join(home, configDirName, "store"), nil
}

func ssoClientID() string {
	if clientID := viper.GetString(ClientIDFlag); clientID != "" {
		return clientID
	}
	return DefaultSSOClientID
}

// singleDataset resolves the --dataset flag for commands that act on
// exactly one dataset.
func singleDataset() (string, error) {
	datasets := viper.GetStringSlice(DatasetFlag)
	switch len(datasets) {
	case 0:
		return DefaultDatasetID, nil
	case 1:
		return datasets[0], nil
	}
	return "", errors.New(InvalidDatasetConfigurationMessage)
}

type httpDoer interface {
	Do(request *http.Request) (*http.Response, error)
}

func newBaseClient() *http.Client {
	return network.NewClient(viper.GetBool(SkipTlsVerifyFlag), dialTimeout)
}

// newAuthedClient picks the credential mode: a service account when a
// client id and secret are configured, otherwise the stored login token.
func newAuthedClient(base *http.Client) (httpDoer, error) {
	identityURL := viper.GetString(IdentityURLFlag)
	clientID := viper.GetString(ClientIDFlag)
	clientSecret := viper.GetString(ClientSecretFlag)

	if clientID != "" && clientSecret != "" {
		return identity.NewOAuthClient(identityURL, clientID, clientSecret, requestTimeout(), base), nil
	}

	tokenPath, err := tokenFilePath()
	if err != nil {
		return nil, err
	}
	store := identity.NewStore(tokenPath)
	token, err := store.Load()
	if err != nil {
		return nil, err
	}

	source := identity.NewSessionSource(identityURL, ssoClientID(), store, base, token)
	return &http.Client{
		Transport: &oauth2.Transport{Base: base.Transport, Source: source},
		Timeout:   requestTimeout(),
	}, nil
}

// newQuarryService builds the API client chain: auth, then the rate
// limiter, then retries, shared by every command that talks to the service.
func newQuarryService() (*quarry.Service, error) {
	authedClient, err := newAuthedClient(newBaseClient())
	if err != nil {
		return nil, err
	}

	limitedClient := network.NewRateLimitedClient(
		float64(viper.GetInt(RequestsPerSecondFlag)),
		int64(viper.GetInt(ConcurrencyFlag)),
		authedClient,
	)
	retryingClient := network.NewRetryClient(limitedClient, retryAttempts, retryInitialInterval)

	return &quarry.Service{
		Requestor: quarry.NewRequester(viper.GetString(ServiceURLFlag), retryingClient),
	}, nil
}

// newFileClient carries signed-URL transfers. Those URLs are
// pre-authorized, so the client skips the token chain, and large files
// rule out a whole-request timeout.
func newFileClient() httpDoer {
	return network.NewRetryClient(newBaseClient(), retryAttempts, retryInitialInterval)
}
