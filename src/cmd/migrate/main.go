package main

import (
	"errors"
	"fmt"
	"os"

	"fleet-service/src/internal/config"
	"fleet-service/src/pkg/log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Applies the SQL migrations in migrations/. Pass "down" to roll back one
// step; the default direction is up.
func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("app.name", "FLEET_SERVICE_MIGRATE")
	viperConfig.SetDefault("log.level", "INFO")
	viperConfig.SetDefault("mysql.host", "localhost")
	viperConfig.SetDefault("mysql.port", 3306)
	viperConfig.SetDefault("mysql.user", "root")
	viperConfig.SetDefault("mysql.database", "fleet")
	viperConfig.SetDefault("migrations.path", "migrations")

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	dsn := fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s",
		viperConfig.GetString("mysql.user"),
		viperConfig.GetString("mysql.password"),
		viperConfig.GetString("mysql.host"),
		viperConfig.GetInt("mysql.port"),
		viperConfig.GetString("mysql.database"),
	)

	m, err := migrate.New("file://"+viperConfig.GetString("migrations.path"), dsn)
	if err != nil {
		logger.Error("migrate", fmt.Sprintf("failed to init migrations: %v", err), "main", "")
		os.Exit(1)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "down":
		err = m.Steps(-1)
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Error("migrate", fmt.Sprintf("migration failed: %v", err), direction, "")
		os.Exit(1)
	}

	logger.Info("migrate", "migrations applied", direction, "")
}
