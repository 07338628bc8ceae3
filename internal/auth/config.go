package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// AuthConfig holds authentication configuration loaded from auth.yaml
type AuthConfig struct {
	JWTSecret        string                    `yaml:"jwt_secret" json:"jwt_secret"`
	JWTExpiryMinutes int                       `yaml:"jwt_expiry_minutes" json:"jwt_expiry_minutes"`
	RedirectURL      string                    `yaml:"redirect_url" json:"redirect_url"`
	Providers        map[string]ProviderConfig `yaml:"providers" json:"providers"`
}

// ProviderConfig holds the OAuth2 endpoints and credentials for one
// identity provider. The user info URL must return a JSON object with
// at least "email" and "name" fields.
type ProviderConfig struct {
	ClientID     string   `yaml:"client_id" json:"client_id"`
	ClientSecret string   `yaml:"client_secret" json:"client_secret"`
	AuthURL      string   `yaml:"auth_url" json:"auth_url"`
	TokenURL     string   `yaml:"token_url" json:"token_url"`
	UserInfoURL  string   `yaml:"user_info_url" json:"user_info_url"`
	Scopes       []string `yaml:"scopes" json:"scopes"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// No config file: password login still works off env vars alone.
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if config.RedirectURL == "" {
		config.RedirectURL = v.GetString("redirect_url")
	}

	config = expandProviderSecrets(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration. OAuth
// providers are optional; the JWT secret is not.
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.JWTExpiryMinutes <= 0 {
		return fmt.Errorf("JWT expiry must be positive")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
		if provider.AuthURL == "" || provider.TokenURL == "" || provider.UserInfoURL == "" {
			return fmt.Errorf("auth_url, token_url and user_info_url are required for provider '%s'", providerName)
		}
	}

	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", "http://localhost:3000")
	v.SetDefault("jwt_expiry_minutes", 60)
	// No default JWT secret; it must come from the file or JWT_SECRET.
}

// expandProviderSecrets resolves ${VAR} placeholders in provider credentials
// so auth.yaml can be committed without secrets in it
func expandProviderSecrets(config AuthConfig) AuthConfig {
	expand := func(value string) string {
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			if envValue := os.Getenv(value[2 : len(value)-1]); envValue != "" {
				return envValue
			}
		}
		return value
	}

	for name, provider := range config.Providers {
		provider.ClientID = expand(provider.ClientID)
		provider.ClientSecret = expand(provider.ClientSecret)
		config.Providers[name] = provider
	}

	return config
}
