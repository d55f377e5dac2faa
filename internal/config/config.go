package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// CMS configuration
	CMS CMSConfig

	// Media proxy configuration
	Proxy ProxyConfig

	// Email configuration
	Email EmailConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// CMSConfig holds the identity of the headless CMS project.
// One read-consistency policy applies to every query: the CDN-backed
// host by default, the live API host when UseCDN is false.
type CMSConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Timeout    time.Duration
}

// ProxyConfig holds media proxy settings
type ProxyConfig struct {
	AllowedHosts []string
	Timeout      time.Duration
}

// EmailConfig holds transactional email settings
type EmailConfig struct {
	APIKey string
	From   string
	To     string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Name:         getEnv("DB_NAME", "site_content"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		CMS: CMSConfig{
			ProjectID:  getEnv("CMS_PROJECT_ID", "0hcfi5z2"),
			Dataset:    getEnv("CMS_DATASET", "production"),
			APIVersion: getEnv("CMS_API_VERSION", "2024-03-19"),
			UseCDN:     getBoolEnv("CMS_USE_CDN", true),
			Timeout:    getDurationEnv("CMS_TIMEOUT", 15*time.Second),
		},
		Proxy: ProxyConfig{
			AllowedHosts: getListEnv("PROXY_ALLOWED_HOSTS", []string{"cdn.sanity.io"}),
			Timeout:      getDurationEnv("PROXY_TIMEOUT", 60*time.Second),
		},
		Email: EmailConfig{
			APIKey: firstEnv("EMAIL_API_KEY", "RESEND_API_KEY"),
			From:   getEnv("EMAIL_FROM", "onboarding@resend.dev"),
			To:     os.Getenv("EMAIL_TO"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
// Email settings are checked at send time, not here, so the content
// endpoints keep working on a deployment without email secrets.
func (c *Config) Validate() error {
	if c.CMS.ProjectID == "" {
		return fmt.Errorf("CMS_PROJECT_ID is required")
	}
	if c.CMS.Dataset == "" {
		return fmt.Errorf("CMS_DATASET is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if len(c.Proxy.AllowedHosts) == 0 {
		return fmt.Errorf("PROXY_ALLOWED_HOSTS must not be empty")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// BaseURL returns the query API root for the configured project
func (c *CMSConfig) BaseURL() string {
	host := "api.sanity.io"
	if c.UseCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s", c.ProjectID, host, c.APIVersion)
}

// HostAllowed reports whether the given hostname is on the proxy allow-list.
// Comparison is exact so look-alike hosts never pass.
func (c *ProxyConfig) HostAllowed(host string) bool {
	for _, allowed := range c.AllowedHosts {
		if strings.EqualFold(host, allowed) {
			return true
		}
	}
	return false
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
