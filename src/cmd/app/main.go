package main

import (
	"fmt"
	"os"
	"os/signal"

	"fleet-service/src/internal/config"
	"fleet-service/src/internal/delivery/http/middleware"
	"fleet-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("app.name", "FLEET_SERVICE")
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("web.port", 8080)
	viperConfig.SetDefault("mysql.host", "localhost")
	viperConfig.SetDefault("mysql.port", 3306)
	viperConfig.SetDefault("mysql.user", "root")
	viperConfig.SetDefault("mysql.database", "fleet")
	viperConfig.SetDefault("mysql.max_open_conns", 25)
	viperConfig.SetDefault("mysql.max_idle_conns", 5)
	viperConfig.SetDefault("mysql.conn_max_lifetime_minutes", 30)
	viperConfig.SetDefault("redis.enabled", false)
	viperConfig.SetDefault("redis.host", "localhost")
	viperConfig.SetDefault("redis.port", 6379)
	viperConfig.SetDefault("redis.cache_ttl_seconds", 300)
	viperConfig.SetDefault("kafka.producer.enabled", false)
	viperConfig.SetDefault("kafka.brokers", "localhost:9092")

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis(viperConfig, logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())

	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
	})

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	go func() {
		<-quit
		logger.Info("main", "server is shutting down...", "graceful", "")
		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("error during shutdown: %v", err), "graceful", "")
		}
		if producer != nil {
			_ = producer.Close()
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("failed to start server: %v", err), "main", "")
	}

	<-done
	logger.Info("main", fmt.Sprintf("server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
