// Package config loads the Arsenal API configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then a
// .env file, then the process environment. The resulting *Config is passed to
// the components that need it; there is no package-level instance.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string        `yaml:"port"`
	Env          string        `yaml:"env"`
	LogLevel     string        `yaml:"log_level"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`

	// Database
	DB DBConfig `yaml:"database"`

	// Auth
	JWTSecret        string        `yaml:"jwt_secret"`
	JWTExpirationDur time.Duration `yaml:"jwt_expires_in"`
	MaxLoginAttempts int           `yaml:"max_login_attempts"`
	LockoutDuration  time.Duration `yaml:"lockout_duration"`

	// Access scope
	RestrictLogisticsToBase bool `yaml:"restrict_logistics_to_base"`

	// Audit
	AuditBuffer int `yaml:"audit_buffer"`
}

// DBConfig selects and addresses the backing SQL store.
type DBConfig struct {
	Driver        string `yaml:"driver"`
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	Name          string `yaml:"name"`
	SSLMode       string `yaml:"sslmode"`
	Path          string `yaml:"path"`
	MigrationsDir string `yaml:"migrations_dir"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Port:         "8080",
		Env:          "development",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		CORSOrigins:  []string{"*"},
		DB: DBConfig{
			Driver:        "postgres",
			Host:          "localhost",
			Port:          "5432",
			User:          "arsenal",
			Password:      "arsenal",
			Name:          "arsenal",
			SSLMode:       "disable",
			Path:          "arsenal.db",
			MigrationsDir: "migrations",
		},
		JWTSecret:        "fallback-secret-key-for-dev-only",
		JWTExpirationDur: 24 * time.Hour,
		MaxLoginAttempts: 5,
		LockoutDuration:  15 * time.Minute,
		AuditBuffer:      256,
	}
}

// Load builds the configuration. path names an optional YAML file; when it
// is empty, CONFIG_FILE is consulted instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.Env = getEnv("ENV", c.Env)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.DB.Driver = getEnv("DB_DRIVER", c.DB.Driver)
	c.DB.Host = getEnv("DB_HOST", c.DB.Host)
	c.DB.Port = getEnv("DB_PORT", c.DB.Port)
	c.DB.User = getEnv("DB_USER", c.DB.User)
	c.DB.Password = getEnv("DB_PASSWORD", c.DB.Password)
	c.DB.Name = getEnv("DB_NAME", c.DB.Name)
	c.DB.SSLMode = getEnv("DB_SSLMODE", c.DB.SSLMode)
	c.DB.Path = getEnv("DB_PATH", c.DB.Path)
	c.DB.MigrationsDir = getEnv("MIGRATIONS_DIR", c.DB.MigrationsDir)

	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"JWT_EXPIRES_IN", &c.JWTExpirationDur},
		{"LOCKOUT_DURATION", &c.LockoutDuration},
		{"READ_TIMEOUT", &c.ReadTimeout},
		{"WRITE_TIMEOUT", &c.WriteTimeout},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		dur, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", d.key, v, err)
		}
		*d.dst = dur
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"MAX_LOGIN_ATTEMPTS", &c.MaxLoginAttempts},
		{"AUDIT_BUFFER", &c.AuditBuffer},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", i.key, v, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("RESTRICT_LOGISTICS_TO_BASE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RESTRICT_LOGISTICS_TO_BASE value %q: %w", v, err)
		}
		c.RestrictLogisticsToBase = b
	}
	return nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use postgres, mysql or sqlite)", c.DB.Driver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.MaxLoginAttempts < 1 {
		return fmt.Errorf("MAX_LOGIN_ATTEMPTS must be at least 1")
	}
	if c.AuditBuffer < 1 {
		return fmt.Errorf("AUDIT_BUFFER must be at least 1")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
