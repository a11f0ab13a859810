package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"

	"arsenal/internal/config"
	"arsenal/internal/database"
	"arsenal/internal/logger"
	"arsenal/internal/models"
	"arsenal/internal/services"
)

const usage = `usage: migrate [--config FILE] <command> [args]

commands:
  up              apply all pending migrations
  down [N]        roll back N migrations (default 1)
  version         print the current schema version
  create-admin    create an administrator (--username, --email, --password)`

func main() {
	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file (overrides CONFIG_FILE)")
	username := flags.String("username", "admin", "administrator username for create-admin")
	email := flags.String("email", "", "administrator email for create-admin")
	password := flags.String("password", "", "administrator password for create-admin")
	flags.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	_ = flags.Parse(os.Args[1:])

	if err := run(*configPath, flags.Args(), adminInput{*username, *email, *password}); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

type adminInput struct {
	username string
	email    string
	password string
}

func run(configPath string, args []string, admin adminInput) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	dbConfig := database.NewConfig(cfg)

	if args[0] == "create-admin" {
		return createAdmin(dbConfig, admin)
	}

	if dbConfig.Driver != "postgres" {
		return fmt.Errorf("versioned migrations target postgres; %s schemas are migrated by the server at startup", dbConfig.Driver)
	}

	m, err := migrate.New(dbConfig.SourceURL(), dbConfig.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, version or create-admin)", args[0])
	}

	return nil
}

// createAdmin provisions the first administrator so the API can be used.
func createAdmin(dbConfig *database.Config, admin adminInput) error {
	if admin.email == "" || admin.password == "" {
		return errors.New("create-admin requires --email and --password")
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	users := services.NewUserService(dbManager.DB(), 1, 0)
	user, err := users.CreateUser(admin.username, admin.email, admin.password, models.RoleAdmin, nil)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	logger.Get().Infow("Administrator created", "id", user.ID, "email", user.Email)
	return nil
}
