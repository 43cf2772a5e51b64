package model

// ListDriverRequest carries the driver listing query parameters. All filters
// are optional and combine conjunctively.
type ListDriverRequest struct {
	Name            *string `query:"name" json:"name,omitempty" validate:"omitempty,notblank,max=10" label:"name"`
	Address         *string `query:"address" json:"address,omitempty" validate:"omitempty,notblank,max=255" label:"address"`
	VehicleCapacity *int    `query:"vehicle_capacity" json:"vehicle_capacity,omitempty" validate:"omitempty,min=2,max=10" label:"vehicle capacity"`
	SortBy          string  `query:"sort_by" json:"sort_by,omitempty" validate:"omitempty,oneof=name" label:"sort by"`
	Order           string  `query:"order" json:"order,omitempty" validate:"omitempty,oneof=asc desc" label:"order"`
	Page            int     `query:"page" json:"page,omitempty" validate:"omitempty,min=1" label:"page"`
	PerPage         int     `query:"per_page" json:"per_page,omitempty" validate:"omitempty,min=1,max=100" label:"per page"`
}

type CreateDriverRequest struct {
	IDNumber    string `json:"id_number" validate:"required,numeric,len=13" label:"ID number"`
	PhoneNumber string `json:"phone_number" validate:"required,numeric,len=10" label:"phone number"`
	HomeAddress string `json:"home_address" validate:"required,max=255" label:"home address"`
	FirstName   string `json:"first_name" validate:"required,max=255" label:"first name"`
	LastName    string `json:"last_name" validate:"required,max=255" label:"last name"`
	LicenceType string `json:"licence_type" validate:"required,oneof=A B C D" label:"licence type"`
}

type GetDriverRequest struct {
	ID int64 `json:"-" validate:"required,min=1" label:"driver ID"`
}

// UpdateDriverDetailsRequest uses pointers so the grouped application in the
// use case can check field presence pair-wise: home_address+last_trip_date
// update the driver, first_name+last_name the user, licence_type the license.
type UpdateDriverDetailsRequest struct {
	ID           int64   `json:"-" validate:"required,min=1" label:"driver ID"`
	HomeAddress  *string `json:"home_address" validate:"required,max=255" label:"home address"`
	FirstName    *string `json:"first_name" validate:"required,max=255" label:"first name"`
	LastName     *string `json:"last_name" validate:"required,max=255" label:"last name"`
	LicenceType  *string `json:"licence_type" validate:"required,oneof=A B C D" label:"licence type"`
	LastTripDate *string `json:"last_trip_date" validate:"required,datetime=2006-01-02" label:"last trip date"`
}

type PatchDriverRequest struct {
	ID          int64   `json:"-" validate:"required,min=1" label:"driver ID"`
	IDNumber    *string `json:"id_number" validate:"required_without=PhoneNumber,omitempty,numeric,len=13" label:"ID number"`
	PhoneNumber *string `json:"phone_number" validate:"required_without=IDNumber,omitempty,numeric,len=10" label:"phone number"`
}

// DriverResponse is the full driver resource with nested details and owned
// vehicles.
type DriverResponse struct {
	ID          int64             `json:"id"`
	IDNumber    int64             `json:"id_number"`
	PhoneNumber string            `json:"phone_number"`
	Details     DriverDetails     `json:"details"`
	Vehicle     []VehicleResponse `json:"vehicle"`
}

// DriverDetails nests the user-owned attributes; its ID is the user id.
type DriverDetails struct {
	ID           int64   `json:"id"`
	HomeAddress  *string `json:"home_address"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	LicenseType  *string `json:"license_type"`
	LastTripDate *string `json:"last_trip_date"`
}

// DriverDetailsResponse is the flat shape returned by the details update.
type DriverDetailsResponse struct {
	ID           int64   `json:"id"`
	HomeAddress  *string `json:"home_address"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	LicenceType  *string `json:"licence_type"`
	LastTripDate *string `json:"last_trip_date"`
}

// DriverUpdateResponse is the shape returned by the partial update.
type DriverUpdateResponse struct {
	ID          int64  `json:"id"`
	IDNumber    int64  `json:"id_number"`
	PhoneNumber string `json:"phone_number"`
}
