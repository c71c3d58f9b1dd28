// Package config loads the optional YAML security configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents security configuration.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			Provider          string   `yaml:"provider"`
			MinPasswordLength int      `yaml:"min_password_length"`
			WeakPasswords     []string `yaml:"weak_passwords"`
		} `yaml:"auth"`
		PublicEndpoints []string `yaml:"public_endpoints"`
		JWT             struct {
			ExpiryMinutes   int `yaml:"expiry_minutes"`
			MinSecretLength int `yaml:"min_secret_length"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the configuration used when no file is given.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	c.Security.Auth.Provider = "multi-user"
	c.Security.Auth.MinPasswordLength = 12
	c.Security.Auth.WeakPasswords = []string{"password", "123456", "admin", "editor", "test", "secret"}
	c.Security.PublicEndpoints = []string{"/auth/token", "/health", "/ready", "/live", "/metrics", "/swagger/", "/static/"}
	c.Security.JWT.ExpiryMinutes = 60
	c.Security.JWT.MinSecretLength = 32
	return &c
}

// LoadSecurityConfig loads security configuration from a YAML file.
// Keys missing from the file keep their DefaultSecurityConfig values.
// The path parameter is expected to come from a trusted source (environment or CLI).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by the operator, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultSecurityConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// LoadSecurityConfigFromEnv reads the file named by SECURITY_CONFIG_PATH,
// or returns the defaults when the variable is empty.
func LoadSecurityConfigFromEnv() (*SecurityConfig, error) {
	path := strings.TrimSpace(os.Getenv("SECURITY_CONFIG_PATH"))
	if path == "" {
		return DefaultSecurityConfig(), nil
	}
	return LoadSecurityConfig(path)
}

// validateSecurityConfig validates the loaded configuration.
func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.Provider != "multi-user" {
		return fmt.Errorf("unsupported auth provider %q", config.Security.Auth.Provider)
	}

	if config.Security.Auth.MinPasswordLength < 8 {
		return fmt.Errorf("min_password_length must be at least 8")
	}

	for _, ep := range config.Security.PublicEndpoints {
		if !strings.HasPrefix(ep, "/") {
			return fmt.Errorf("public endpoint %q must start with /", ep)
		}
	}

	if config.Security.JWT.ExpiryMinutes <= 0 {
		return fmt.Errorf("jwt expiry_minutes must be positive")
	}

	if config.Security.JWT.MinSecretLength < 32 {
		return fmt.Errorf("jwt min_secret_length must be at least 32")
	}

	return nil
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Auth.MinPasswordLength
}

// GetWeakPasswords returns the list of weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Auth.WeakPasswords
}

// GetPublicEndpoints returns the list of public endpoints.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// TokenTTL returns the lifetime of issued JWTs.
func (c *SecurityConfig) TokenTTL() time.Duration {
	return time.Duration(c.Security.JWT.ExpiryMinutes) * time.Minute
}

// ValidateJWTSecret checks the signing secret against the configured minimum
// length and a list of common weak values.
func (c *SecurityConfig) ValidateJWTSecret(secret string) error {
	if secret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	// セキュリティ: 最小長（既定 32 文字 = 256 ビット）を強制
	if len(secret) < c.Security.JWT.MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", c.Security.JWT.MinSecretLength)
	}
	lower := strings.ToLower(secret)
	for _, weak := range []string{"secret", "password", "changeme", "newsportal"} {
		if strings.Contains(lower, weak) {
			return fmt.Errorf("JWT_SECRET must not contain common weak values")
		}
	}
	return nil
}
