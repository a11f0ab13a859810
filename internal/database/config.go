package database

import (
	"fmt"
	"net/url"

	"arsenal/internal/config"
)

// Config holds database configuration
type Config struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	Path          string
	MigrationsDir string
}

// NewConfig derives the database configuration from the application config.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Driver:        cfg.DB.Driver,
		Host:          cfg.DB.Host,
		Port:          cfg.DB.Port,
		User:          cfg.DB.User,
		Password:      cfg.DB.Password,
		DBName:        cfg.DB.Name,
		SSLMode:       cfg.DB.SSLMode,
		Path:          cfg.DB.Path,
		MigrationsDir: cfg.DB.MigrationsDir,
	}
}

// DSN returns the driver-specific connection string
func (c *Config) DSN() string {
	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case "sqlite":
		return c.Path + "?_foreign_keys=on&_busy_timeout=5000"
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
}

// MigrationURL returns the golang-migrate database URL for postgres.
func (c *Config) MigrationURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// SourceURL returns the golang-migrate source URL for the migrations directory.
func (c *Config) SourceURL() string {
	return "file://" + c.MigrationsDir
}
