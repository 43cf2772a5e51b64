package mysql

import (
	"fmt"
	"time"

	"fleet-service/src/pkg/log"

	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

// DBInterface hands repositories a pooled connection without exposing how it
// was opened.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type connection struct {
	db *sqlx.DB
}

func (c *connection) GetDB() (*sqlx.DB, error) {
	if c.db == nil {
		return nil, fmt.Errorf("mysql connection is not initialized")
	}
	return c.db, nil
}

// InitConnection opens the pool from Viper ("mysql.*") settings.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	cfg := driver.NewConfig()
	cfg.User = v.GetString("mysql.user")
	cfg.Passwd = v.GetString("mysql.password")
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", v.GetString("mysql.host"), v.GetInt("mysql.port"))
	cfg.DBName = v.GetString("mysql.database")
	cfg.ParseTime = true

	db, err := sqlx.Connect("mysql", cfg.FormatDSN())
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", cfg.Addr)
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("mysql.max_open_conns"))
	db.SetMaxIdleConns(v.GetInt("mysql.max_idle_conns"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("mysql.conn_max_lifetime_minutes")) * time.Minute)

	logger.Info("mysql", "connected", "InitConnection", cfg.Addr)
	return &connection{db: db}, nil
}
