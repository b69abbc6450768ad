// Package oauth wraps the Google authorization-code flow. The rest of the
// system only ever sees the resulting domain.GoogleUser.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iris-cmd22/A13/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleProvider struct {
	config *oauth2.Config
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// AuthURL returns the consent-page URL to redirect the user to. The state
// value must be verified on the callback.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for the Google user profile: exchanges
// the code for an access token, then fetches the userinfo endpoint with it.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*domain.GoogleUser, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging OAuth code: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching Google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google userinfo returned status %d", resp.StatusCode)
	}

	var oauthUser domain.GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&oauthUser); err != nil {
		return nil, fmt.Errorf("decoding Google userinfo: %w", err)
	}

	if oauthUser.Email == "" {
		return nil, fmt.Errorf("Google userinfo returned no email")
	}

	return &oauthUser, nil
}
