package entity

import (
	"database/sql"
	"time"
)

const (
	LicenseTypeA = "A"
	LicenseTypeB = "B"
	LicenseTypeC = "C"
	LicenseTypeD = "D"
)

type User struct {
	ID          int64     `db:"id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	PhoneNumber string    `db:"phone_number"`
	Email       string    `db:"email"`
	Password    string    `db:"password"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type License struct {
	ID          int64  `db:"id"`
	LicenseType string `db:"license_type"`
}

type Driver struct {
	ID             int64          `db:"id"`
	IDNumber       int64          `db:"id_number"`
	UserID         int64          `db:"user_id"`
	LicenseID      sql.NullInt64  `db:"license_id"`
	HomeAddress    sql.NullString `db:"home_address"`
	DateOfLastTrip sql.NullTime   `db:"date_of_last_trip"`
}

// DriverAccountRow is a driver joined with its user and license. The license
// side is nullable because "details" deletion removes the license while the
// driver row survives.
type DriverAccountRow struct {
	ID             int64          `db:"id"`
	IDNumber       int64          `db:"id_number"`
	HomeAddress    sql.NullString `db:"home_address"`
	DateOfLastTrip sql.NullTime   `db:"date_of_last_trip"`
	UserID         int64          `db:"user_id"`
	FirstName      string         `db:"first_name"`
	LastName       string         `db:"last_name"`
	PhoneNumber    string         `db:"phone_number"`
	LicenseID      sql.NullInt64  `db:"license_id"`
	LicenseType    sql.NullString `db:"license_type"`
}

// DriverFilter holds the AND-composed list predicates. Nil members are not
// applied. Page is 1-based; PerPage of zero means the default page size.
type DriverFilter struct {
	Name            *string
	Address         *string
	VehicleCapacity *int
	SortByName      bool
	SortDescending  bool
	Page            int
	PerPage         int
}
