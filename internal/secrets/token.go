// Package secrets resolves the optional GitHub bearer token. The job
// pipeline needs no credentials; the token only raises GitHub search
// rate limits.
package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "devops-hunter"
	keyringAccount = "github_token"

	envToken = "GITHUB_TOKEN"
)

// GitHubToken returns the token from the environment (including anything
// godotenv loaded), falling back to the OS keychain. Empty means
// unauthenticated; that is not an error.
func GitHubToken() string {
	if tok := strings.TrimSpace(os.Getenv(envToken)); tok != "" {
		return tok
	}
	tok, err := keyring.Get(KeyringService, keyringAccount)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(tok)
}

func SetGitHubToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteGitHubToken() error {
	return keyring.Delete(KeyringService, keyringAccount)
}
