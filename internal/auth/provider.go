package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// ProviderClient wraps the OAuth2 flow for one configured identity provider
type ProviderClient struct {
	name   string
	config *ProviderConfig
}

// UserProfile represents the identity returned by a provider's user info
// endpoint
type UserProfile struct {
	Subject   string `json:"sub"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"picture,omitempty"`
}

// NewProviderClient creates a new provider client
func NewProviderClient(name string, config *ProviderConfig) *ProviderClient {
	return &ProviderClient{name: name, config: config}
}

// GetOAuth2Config returns the OAuth2 configuration for this provider
func (c *ProviderClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	scopes := c.config.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "email", "profile"}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.config.AuthURL,
			TokenURL: c.config.TokenURL,
		},
	}
}

// GetUserProfile fetches the authenticated identity from the provider's
// user info endpoint
func (c *ProviderClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*UserProfile, error) {
	client := c.GetOAuth2Config("").Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info endpoint returned status %d", resp.StatusCode)
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}

	if profile.Email == "" {
		return nil, fmt.Errorf("provider '%s' did not return an email", c.name)
	}

	return &profile, nil
}
