package config

import (
	"fleet-service/src/internal/delivery/http"
	"fleet-service/src/internal/delivery/http/route"
	"fleet-service/src/internal/gateway/messaging"
	"fleet-service/src/internal/repository"
	"fleet-service/src/internal/usecase"
	"fleet-service/src/pkg/databases/mysql"
	"fleet-service/src/pkg/kafka"
	"fleet-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafka.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	userRepository := repository.NewUserRepository(config.DB)
	licenseRepository := repository.NewLicenseRepository(config.DB)
	driverRepository := repository.NewDriverRepository(config.DB)
	vehicleRepository := repository.NewVehicleRepository(config.DB)

	// setup event producers
	driverProducer := messaging.NewDriverProducer(config.Producer, config.Log)
	vehicleProducer := messaging.NewVehicleProducer(config.Producer, config.Log)

	// setup use cases
	driverUseCase := usecase.NewDriverUseCase(
		config.Log,
		config.Validate,
		driverRepository,
		userRepository,
		licenseRepository,
		vehicleRepository,
		config.Config,
		config.Redis,
		driverProducer,
	)
	vehicleUseCase := usecase.NewVehicleUseCase(
		config.Log,
		config.Validate,
		driverRepository,
		vehicleRepository,
		config.Config,
		vehicleProducer,
	)

	// setup controllers
	driverController := http.NewDriverController(driverUseCase, config.Log)
	vehicleController := http.NewVehicleController(vehicleUseCase, config.Log)

	routeConfig := route.RouteConfig{
		App:               config.App,
		DriverController:  driverController,
		VehicleController: vehicleController,
	}
	routeConfig.Setup()
}
