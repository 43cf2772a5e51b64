package config

import (
	"fleet-service/src/pkg/databases/mysql"
	"fleet-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewDatabase(v *viper.Viper, logger log.Log) mysql.DBInterface {
	db, err := mysql.InitConnection(v, logger)
	if err != nil {
		logger.Error("database init", err.Error(), "config", "")
	}
	return db
}
