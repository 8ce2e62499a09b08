package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the user sync service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database (user-record store)
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Keycloak
	KeycloakBaseURL       string
	KeycloakRealm         string
	KeycloakAdminUser     string
	KeycloakAdminPassword string

	// Registration saga
	DefaultRole            string
	RegistrationCacheTTL   time.Duration
	RegistrationCacheSweep time.Duration

	// Circuit breaker defaults, overridable per dependency via
	// BreakerConfigFile
	BreakerFailureThreshold int
	BreakerSuccessThreshold int
	BreakerRollingWindow    time.Duration
	BreakerResetTimeout     time.Duration
	BreakerCallTimeout      time.Duration
	BreakerConfigFile       string
	BreakerOverrides        map[string]BreakerOverride
}

// BreakerOverride carries per-dependency circuit breaker tuning loaded from
// the optional YAML file. Zero fields fall back to the global defaults.
type BreakerOverride struct {
	FailureThreshold int
	SuccessThreshold int
	RollingWindow    time.Duration
	ResetTimeout     time.Duration
	Timeout          time.Duration
}

// UnmarshalYAML parses durations from Go duration strings ("30s", "1m")
func (o *BreakerOverride) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		FailureThreshold int    `yaml:"failure_threshold"`
		SuccessThreshold int    `yaml:"success_threshold"`
		RollingWindow    string `yaml:"rolling_window"`
		ResetTimeout     string `yaml:"reset_timeout"`
		Timeout          string `yaml:"timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	o.FailureThreshold = raw.FailureThreshold
	o.SuccessThreshold = raw.SuccessThreshold

	for _, field := range []struct {
		src string
		dst *time.Duration
	}{
		{raw.RollingWindow, &o.RollingWindow},
		{raw.ResetTimeout, &o.ResetTimeout},
		{raw.Timeout, &o.Timeout},
	} {
		if field.src == "" {
			continue
		}
		parsed, err := time.ParseDuration(field.src)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", field.src, err)
		}
		*field.dst = parsed
	}

	return nil
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "user-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "user_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "user_service")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Keycloak configuration
	config.KeycloakBaseURL = os.Getenv("KEYCLOAK_BASE_URL")
	if config.KeycloakBaseURL == "" {
		return nil, fmt.Errorf("KEYCLOAK_BASE_URL is required")
	}
	config.KeycloakRealm = getEnvOrDefault("KEYCLOAK_REALM", "master")
	config.KeycloakAdminUser = os.Getenv("KEYCLOAK_ADMIN_USER")
	if config.KeycloakAdminUser == "" {
		return nil, fmt.Errorf("KEYCLOAK_ADMIN_USER is required")
	}
	config.KeycloakAdminPassword = os.Getenv("KEYCLOAK_ADMIN_PASSWORD")
	if config.KeycloakAdminPassword == "" {
		return nil, fmt.Errorf("KEYCLOAK_ADMIN_PASSWORD is required")
	}

	// Registration saga configuration
	var err error
	config.DefaultRole = getEnvOrDefault("DEFAULT_ROLE", "user")
	config.RegistrationCacheTTL, err = getDurationEnv("REGISTRATION_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	config.RegistrationCacheSweep, err = getDurationEnv("REGISTRATION_CACHE_SWEEP", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	// Circuit breaker configuration
	config.BreakerFailureThreshold, err = getIntEnv("BREAKER_FAILURE_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}
	config.BreakerSuccessThreshold, err = getIntEnv("BREAKER_SUCCESS_THRESHOLD", 2)
	if err != nil {
		return nil, err
	}
	config.BreakerRollingWindow, err = getDurationEnv("BREAKER_ROLLING_WINDOW", 10*time.Second)
	if err != nil {
		return nil, err
	}
	config.BreakerResetTimeout, err = getDurationEnv("BREAKER_RESET_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	config.BreakerCallTimeout, err = getDurationEnv("BREAKER_CALL_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	config.BreakerConfigFile = os.Getenv("BREAKER_CONFIG_FILE")
	if config.BreakerConfigFile != "" {
		config.BreakerOverrides, err = loadBreakerOverrides(config.BreakerConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading breaker config: %w", err)
		}
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.BreakerFailureThreshold < 1 {
		return fmt.Errorf("breaker failure threshold must be at least 1, got: %d", c.BreakerFailureThreshold)
	}

	if c.BreakerSuccessThreshold < 1 {
		return fmt.Errorf("breaker success threshold must be at least 1, got: %d", c.BreakerSuccessThreshold)
	}

	if c.RegistrationCacheTTL < time.Second {
		return fmt.Errorf("registration cache TTL must be at least 1 second, got: %v", c.RegistrationCacheTTL)
	}

	return nil
}

// DatabaseDSN builds the PostgreSQL connection string
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// BreakerSettingsFor resolves the effective breaker tuning for a dependency,
// applying any per-dependency override from the YAML file on top of the
// global defaults.
func (c *Config) BreakerSettingsFor(dependency string) BreakerOverride {
	effective := BreakerOverride{
		FailureThreshold: c.BreakerFailureThreshold,
		SuccessThreshold: c.BreakerSuccessThreshold,
		RollingWindow:    c.BreakerRollingWindow,
		ResetTimeout:     c.BreakerResetTimeout,
		Timeout:          c.BreakerCallTimeout,
	}

	override, ok := c.BreakerOverrides[dependency]
	if !ok {
		return effective
	}

	if override.FailureThreshold > 0 {
		effective.FailureThreshold = override.FailureThreshold
	}
	if override.SuccessThreshold > 0 {
		effective.SuccessThreshold = override.SuccessThreshold
	}
	if override.RollingWindow > 0 {
		effective.RollingWindow = override.RollingWindow
	}
	if override.ResetTimeout > 0 {
		effective.ResetTimeout = override.ResetTimeout
	}
	if override.Timeout > 0 {
		effective.Timeout = override.Timeout
	}

	return effective
}

func loadBreakerOverrides(path string) (map[string]BreakerOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]BreakerOverride)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return overrides, nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
