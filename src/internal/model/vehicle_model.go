package model

type ListVehicleRequest struct {
	Make        *string `query:"make" json:"make,omitempty" validate:"omitempty,notblank,max=30" label:"make"`
	ServiceDate *string `query:"service_date" json:"service_date,omitempty" validate:"omitempty,datetime=2006-01-02" label:"service date"`
	Age         *int    `query:"age" json:"age,omitempty" validate:"omitempty,min=0,max=100" label:"age"`
	Page        int     `query:"page" json:"page,omitempty" validate:"omitempty,min=1" label:"page"`
	PerPage     int     `query:"per_page" json:"per_page,omitempty" validate:"omitempty,min=1,max=100" label:"per page"`
}

type CreateVehicleRequest struct {
	LicensePlateNumber string `json:"license_plate_number" validate:"required,max=255" label:"license plate number"`
	VehicleMake        string `json:"vehicle_make" validate:"required,max=30" label:"vehicle make"`
	VehicleModel       string `json:"vehicle_model" validate:"required,max=255" label:"vehicle model"`
	ModelYear          int    `json:"model_year" validate:"required,min=1900" label:"model year"`
	Insured            *bool  `json:"insured" validate:"required" label:"insured"`
	DateOfLastService  string `json:"date_of_last_service" validate:"required,datetime=2006-01-02" label:"date of last service"`
	PassengerCapacity  int    `json:"passenger_capacity" validate:"required,min=1" label:"passenger capacity"`
	DriverID           int64  `json:"driver_id" validate:"required,min=1" label:"driver ID"`
}

// UpdateVehicleRequest is a full replacement; every field is required.
type UpdateVehicleRequest struct {
	ID                 int64  `json:"-" validate:"required,min=1" label:"vehicle ID"`
	LicensePlateNumber string `json:"license_plate_number" validate:"required,max=255" label:"license plate number"`
	VehicleMake        string `json:"vehicle_make" validate:"required,max=30" label:"vehicle make"`
	VehicleModel       string `json:"vehicle_model" validate:"required,max=255" label:"vehicle model"`
	ModelYear          int    `json:"model_year" validate:"required,min=1900" label:"model year"`
	Insured            *bool  `json:"insured" validate:"required" label:"insured"`
	DateOfLastService  string `json:"date_of_last_service" validate:"required,datetime=2006-01-02" label:"date of last service"`
	PassengerCapacity  int    `json:"passenger_capacity" validate:"required,min=1" label:"passenger capacity"`
	DriverID           int64  `json:"driver_id" validate:"required,min=1" label:"driver ID"`
}

type DeleteVehicleRequest struct {
	ID int64 `json:"-" validate:"required,min=1" label:"vehicle ID"`
}

type VehicleResponse struct {
	ID                 int64   `json:"id"`
	LicensePlateNumber string  `json:"license_plate_number"`
	VehicleMake        string  `json:"vehicle_make"`
	VehicleModel       string  `json:"vehicle_model"`
	Year               int     `json:"year"`
	Insured            bool    `json:"insured"`
	ServiceDate        *string `json:"service_date"`
	Capacity           int     `json:"capacity"`
}
