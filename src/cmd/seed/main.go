package main

import (
	"context"
	"fmt"
	"os"

	"fleet-service/src/internal/config"
	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/repository"
	"fleet-service/src/pkg/log"

	"golang.org/x/crypto/bcrypt"
)

type seedDriver struct {
	firstName   string
	lastName    string
	phoneNumber string
	idNumber    int64
	homeAddress string
	licenseType string
	vehicles    []entity.Vehicle
}

// Seeds a small demo fleet for local development.
func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("app.name", "FLEET_SERVICE_SEED")
	viperConfig.SetDefault("log.level", "INFO")
	viperConfig.SetDefault("mysql.host", "localhost")
	viperConfig.SetDefault("mysql.port", 3306)
	viperConfig.SetDefault("mysql.user", "root")
	viperConfig.SetDefault("mysql.database", "fleet")
	viperConfig.SetDefault("mysql.max_open_conns", 5)
	viperConfig.SetDefault("mysql.max_idle_conns", 2)
	viperConfig.SetDefault("mysql.conn_max_lifetime_minutes", 5)

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	db := config.NewDatabase(viperConfig, logger)
	if db == nil {
		os.Exit(1)
	}

	drivers := repository.NewDriverRepository(db)
	vehicles := repository.NewVehicleRepository(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("seed", fmt.Sprintf("failed to hash password: %v", err), "main", "")
		os.Exit(1)
	}

	seeds := []seedDriver{
		{
			firstName: "John", lastName: "Johnson", phoneNumber: "0821234567",
			idNumber: 9001015009087, homeAddress: "12 Long Street, Cape Town", licenseType: entity.LicenseTypeB,
			vehicles: []entity.Vehicle{
				{LicensePlateNumber: "CA 12 345", VehicleMake: "Toyota", VehicleModel: "Corolla", ModelYear: 2019, Insured: true, PassengerCapacity: 4},
			},
		},
		{
			firstName: "Grace", lastName: "Dlamini", phoneNumber: "0837654321",
			idNumber: 8505125800083, homeAddress: "3 Rivonia Road, Sandton", licenseType: entity.LicenseTypeC,
			vehicles: []entity.Vehicle{
				{LicensePlateNumber: "GP 98 765", VehicleMake: "Mercedes", VehicleModel: "Sprinter", ModelYear: 2021, Insured: true, PassengerCapacity: 10},
				{LicensePlateNumber: "GP 11 222", VehicleMake: "Ford", VehicleModel: "Fiesta", ModelYear: 2016, Insured: false, PassengerCapacity: 4},
			},
		},
		{
			firstName: "Paul", lastName: "Mokoena", phoneNumber: "0849990000",
			idNumber: 7809235012080, homeAddress: "77 Umhlanga Rocks Drive, Durban", licenseType: entity.LicenseTypeA,
		},
	}

	ctx := context.Background()
	for _, seed := range seeds {
		user := &entity.User{
			FirstName:   seed.firstName,
			LastName:    seed.lastName,
			PhoneNumber: seed.phoneNumber,
			Email:       "sa@lulaloop.co.za",
			Password:    string(hashed),
		}
		license := &entity.License{LicenseType: seed.licenseType}
		driver := &entity.Driver{IDNumber: seed.idNumber}
		driver.HomeAddress.String = seed.homeAddress
		driver.HomeAddress.Valid = true

		if err := drivers.CreateAccount(ctx, user, license, driver); err != nil {
			logger.Error("seed", fmt.Sprintf("failed to seed driver %s: %v", seed.lastName, err), "main", "")
			os.Exit(1)
		}

		for i := range seed.vehicles {
			vehicle := seed.vehicles[i]
			vehicle.DriverID = driver.ID
			if err := vehicles.Create(ctx, &vehicle); err != nil {
				logger.Error("seed", fmt.Sprintf("failed to seed vehicle %s: %v", vehicle.LicensePlateNumber, err), "main", "")
				os.Exit(1)
			}
		}
	}

	logger.Info("seed", fmt.Sprintf("seeded %d drivers", len(seeds)), "main", "")
}
