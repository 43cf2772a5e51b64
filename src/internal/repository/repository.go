package repository

import (
	"context"
	"strings"
	"time"

	"fleet-service/src/internal/entity"
)

// DefaultPerPage is the page size applied when the request leaves per_page
// unset.
const DefaultPerPage = 10

// The use cases depend on these interfaces; the concrete sqlx repositories
// below implement them and the bootstrap wires them up.

type DriverStore interface {
	FindAll(ctx context.Context, filter entity.DriverFilter) ([]entity.DriverAccountRow, error)
	FindByID(ctx context.Context, id int64) (*entity.DriverAccountRow, error)
	CreateAccount(ctx context.Context, user *entity.User, license *entity.License, driver *entity.Driver) error
	UpdateDetails(ctx context.Context, id int64, homeAddress string, lastTrip time.Time) error
	UpdateIDNumber(ctx context.Context, id int64, idNumber int64) error
	DeleteAccount(ctx context.Context, row *entity.DriverAccountRow) error
}

type UserStore interface {
	UpdateName(ctx context.Context, id int64, firstName, lastName string) error
	UpdatePhone(ctx context.Context, id int64, phoneNumber string) error
}

type LicenseStore interface {
	UpdateType(ctx context.Context, id int64, licenseType string) error
	Delete(ctx context.Context, id int64) error
}

type VehicleStore interface {
	FindAll(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error)
	FindByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	FindByDriverID(ctx context.Context, driverID int64) ([]entity.Vehicle, error)
	FindByDriverIDs(ctx context.Context, driverIDs []int64) (map[int64][]entity.Vehicle, error)
	FindByPlateForDriver(ctx context.Context, driverID int64, plate string) (*entity.Vehicle, error)
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id int64) error
}

// pageBounds turns 1-based page / per-page into LIMIT and OFFSET.
func pageBounds(page, perPage int) (limit, offset int) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	return perPage, (page - 1) * perPage
}

func appendWhere(b *strings.Builder, conditions []string) {
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
}
