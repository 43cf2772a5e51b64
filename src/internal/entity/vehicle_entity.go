package entity

import (
	"database/sql"
	"time"
)

type Vehicle struct {
	ID                 int64        `db:"id"`
	LicensePlateNumber string       `db:"license_plate_number"`
	VehicleMake        string       `db:"vehicle_make"`
	VehicleModel       string       `db:"vehicle_model"`
	ModelYear          int          `db:"model_year"`
	Insured            bool         `db:"insured"`
	DateOfLastService  sql.NullTime `db:"date_of_last_service"`
	PassengerCapacity  int          `db:"passenger_capacity"`
	DriverID           int64        `db:"driver_id"`
}

// VehicleFilter mirrors DriverFilter for the vehicle listing. ModelYear is
// already resolved from the requested age so the query stays a plain
// equality.
type VehicleFilter struct {
	Make        *string
	ServiceDate *time.Time
	ModelYear   *int
	Page        int
	PerPage     int
}
