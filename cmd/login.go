package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarryhq/quarry-courier/identity"
)

const (
	LoginSSOFlag    = "sso"
	LoginStatusFlag = "status"
	LoginClearFlag  = "clear"

	InvalidLoginConfigurationMessage   = "Invalid login configuration. Requires --sso for browser login or client-id/client-secret for a service account."
	ServiceAccountVerifyFailureMessage = "Failed to verify the service account credentials"
)

var loginScopes = []string{"openid", "quarry.read", "quarry.write"}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Logs in to the Quarry identity service",
	Long:  `Logs in to the Quarry identity service and stores the session token for the other commands`,
	RunE:  login,
}

func init() {
	loginCmd.Flags().Bool(LoginSSOFlag, false, "Log in through the browser")
	loginCmd.Flags().Bool(LoginStatusFlag, false, "Show the stored login, if any")
	loginCmd.Flags().Bool(LoginClearFlag, false, "Remove the stored login")

	loginCmd.Flags().BoolP("help", "h", false, "Help for login")
	rootCmd.AddCommand(loginCmd)
}

func login(c *cobra.Command, _ []string) error {
	showStatus, _ := c.Flags().GetBool(LoginStatusFlag)
	clearLogin, _ := c.Flags().GetBool(LoginClearFlag)
	sso, _ := c.Flags().GetBool(LoginSSOFlag)

	if showStatus {
		c.SilenceUsage = true
		return loginStatus()
	}
	if clearLogin {
		c.SilenceUsage = true
		return loginClear()
	}
	if sso {
		if err := verifyRequiredConfig(IdentityURLFlag); err != nil {
			return err
		}
		c.SilenceUsage = true
		return loginBrowser()
	}

	if viper.GetString(ClientIDFlag) == "" || viper.GetString(ClientSecretFlag) == "" {
		return errors.New(InvalidLoginConfigurationMessage)
	}
	if err := verifyRequiredConfig(ServiceURLFlag, IdentityURLFlag); err != nil {
		return err
	}
	c.SilenceUsage = true
	return loginServiceAccount()
}

func loginBrowser() error {
	tokenPath, err := tokenFilePath()
	if err != nil {
		return err
	}
	store := identity.NewStore(tokenPath)

	flow := identity.NewFlow(
		viper.GetString(IdentityURLFlag),
		ssoClientID(),
		loginScopes,
		newBaseClient(),
		openBrowser,
	)

	ctx, cancel := commandContext()
	defer cancel()

	token, err := flow.Login(ctx)
	if err != nil {
		return err
	}
	if err := store.Save(token); err != nil {
		return err
	}

	if claims, err := identity.ParseClaims(token.AccessToken); err == nil && claims.Subject != "" {
		fmt.Printf("Logged in as %s\n", claims.Subject)
	}
	fmt.Printf("Stored the login token in %s\n", store.Path())
	fmt.Println("Success!")
	return nil
}

// loginServiceAccount fetches the project listing once to prove the
// configured client id and secret work.
func loginServiceAccount() error {
	service, err := newQuarryService()
	if err != nil {
		return err
	}

	projects, err := service.Projects()
	if err != nil {
		return errors.Wrap(err, ServiceAccountVerifyFailureMessage)
	}

	fmt.Printf("Service account verified, %d project(s) visible\n", len(projects))
	fmt.Println("Success!")
	return nil
}

func loginStatus() error {
	tokenPath, err := tokenFilePath()
	if err != nil {
		return err
	}

	token, err := identity.NewStore(tokenPath).Load()
	if err != nil {
		if errors.Cause(err) == identity.NotLoggedInError {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}

	claims, err := identity.ParseClaims(token.AccessToken)
	if err != nil {
		return err
	}

	expiry := token.Expiry
	if expiry.IsZero() {
		expiry = claims.Expiry
	}
	switch {
	case expiry.IsZero():
		fmt.Printf("Logged in as %s\n", claims.Subject)
	case expiry.Before(time.Now()):
		fmt.Printf("Logged in as %s, token expired %s\n", claims.Subject, humanize.Time(expiry))
	default:
		fmt.Printf("Logged in as %s, token expires %s\n", claims.Subject, humanize.Time(expiry))
	}
	return nil
}

func loginClear() error {
	tokenPath, err := tokenFilePath()
	if err != nil {
		return err
	}
	if err := identity.NewStore(tokenPath).Clear(); err != nil {
		return err
	}

	fmt.Println("Removed the stored login token.")
	fmt.Println("Success!")
	return nil
}

// openBrowser starts the platform browser on a best-effort basis; the
// printed URL lets the login continue manually when that fails.
func openBrowser(url string) error {
	fmt.Printf("Opening your browser to continue the login:\n%s\n", url)

	var browser *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		browser = exec.Command("open", url)
	case "windows":
		browser = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		browser = exec.Command("xdg-open", url)
	}
	browser.Start()
	return nil
}
