// Package config loads and validates application configuration.
//
// Values come from environment variables, optionally seeded from a dotenv
// file named by CONFIG_FILE (default ".env"). Environment variables always
// win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Profiles select the log format.
const (
	ProfileDev  = "dev"
	ProfileProd = "prod"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Profile is "dev" (human-readable logs) or "prod" (JSON logs).
	Profile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	Server ServerConfig
	DB     DBConfig

	// BcryptCost is the work factor for password hashing.
	BcryptCost int

	// CORSOrigins is the allow-list of cross-origin request origins.
	CORSOrigins []string

	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host           string
	Port           int
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// Addr returns the listen address as host:port.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DBConfig configures the Postgres connection.
// DatabaseURL, when set, is used verbatim and the discrete fields are ignored.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	// Args is a raw query string appended to the built DSN, e.g. "sslmode=disable".
	Args     string
	MaxConns int32
}

// ConnectionString returns DatabaseURL if set, otherwise a DSN built from the
// discrete fields with user and password escaped.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: strings.TrimPrefix(c.Args, "?"),
	}
	return u.String()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PROFILE", ProfileDev)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("BCRYPT_COST", 14)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("MIGRATE_ON_START", false)
}

// Load reads configuration and returns a validated Config.
// It returns an error naming every required variable that is not set.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := readConfigFile(v, os.Getenv("CONFIG_FILE")); err != nil {
		return Config{}, err
	}
	v.AutomaticEnv()

	cfg := Config{
		Profile:  strings.ToLower(v.GetString("PROFILE")),
		LogLevel: strings.ToLower(v.GetString("LOG_LEVEL")),
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetInt("SERVER_PORT"),
			RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("POSTGRES_HOST"),
			Port:        v.GetInt("POSTGRES_PORT"),
			User:        v.GetString("POSTGRES_USER"),
			Password:    v.GetString("POSTGRES_PASSWORD"),
			Name:        v.GetString("POSTGRES_DB"),
			Args:        v.GetString("POSTGRES_ARGS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
		},
		BcryptCost:     v.GetInt("BCRYPT_COST"),
		CORSOrigins:    splitCSV(v.GetString("CORS_ORIGINS")),
		MigrateOnStart: v.GetBool("MIGRATE_ON_START"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readConfigFile merges a dotenv file into v. A missing file is not an error.
func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil, errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
		return nil
	}
	return fmt.Errorf("config: read %s: %w", path, err)
}

func (c Config) validate() error {
	var missing []string
	if c.DB.DatabaseURL == "" {
		if c.DB.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if c.DB.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if c.DB.Name == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required environment variables not set: %s (or set DATABASE_URL)", strings.Join(missing, ", "))
	}

	var errs []error
	if c.Profile != ProfileDev && c.Profile != ProfileProd {
		errs = append(errs, fmt.Errorf("PROFILE must be %q or %q, got %q", ProfileDev, ProfileProd, c.Profile))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port))
	}
	if c.DB.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DB.MaxConns))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.Server.RequestTimeout))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.Server.MaxBodyBytes))
	}
	return errors.Join(errs...)
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
