package usecase

import (
	"context"
	"reflect"
	"strings"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
)

// newTestValidator mirrors the bootstrap's validator setup: message field
// names come from the `label` tag and notblank rejects whitespace-only
// values.
func newTestValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return field.Name
		}
		return name
	})
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return validate
}

type mockDriverStore struct {
	mock.Mock
}

var _ repository.DriverStore = (*mockDriverStore)(nil)

func (m *mockDriverStore) FindAll(ctx context.Context, filter entity.DriverFilter) ([]entity.DriverAccountRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]entity.DriverAccountRow)
	return rows, args.Error(1)
}

func (m *mockDriverStore) FindByID(ctx context.Context, id int64) (*entity.DriverAccountRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*entity.DriverAccountRow)
	return row, args.Error(1)
}

func (m *mockDriverStore) CreateAccount(ctx context.Context, user *entity.User, license *entity.License, driver *entity.Driver) error {
	return m.Called(ctx, user, license, driver).Error(0)
}

func (m *mockDriverStore) UpdateDetails(ctx context.Context, id int64, homeAddress string, lastTrip time.Time) error {
	return m.Called(ctx, id, homeAddress, lastTrip).Error(0)
}

func (m *mockDriverStore) UpdateIDNumber(ctx context.Context, id int64, idNumber int64) error {
	return m.Called(ctx, id, idNumber).Error(0)
}

func (m *mockDriverStore) DeleteAccount(ctx context.Context, row *entity.DriverAccountRow) error {
	return m.Called(ctx, row).Error(0)
}

type mockUserStore struct {
	mock.Mock
}

var _ repository.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) UpdateName(ctx context.Context, id int64, firstName, lastName string) error {
	return m.Called(ctx, id, firstName, lastName).Error(0)
}

func (m *mockUserStore) UpdatePhone(ctx context.Context, id int64, phoneNumber string) error {
	return m.Called(ctx, id, phoneNumber).Error(0)
}

type mockLicenseStore struct {
	mock.Mock
}

var _ repository.LicenseStore = (*mockLicenseStore)(nil)

func (m *mockLicenseStore) UpdateType(ctx context.Context, id int64, licenseType string) error {
	return m.Called(ctx, id, licenseType).Error(0)
}

func (m *mockLicenseStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockVehicleStore struct {
	mock.Mock
}

var _ repository.VehicleStore = (*mockVehicleStore)(nil)

func (m *mockVehicleStore) FindAll(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error) {
	args := m.Called(ctx, filter)
	vehicles, _ := args.Get(0).([]entity.Vehicle)
	return vehicles, args.Error(1)
}

func (m *mockVehicleStore) FindByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	args := m.Called(ctx, id)
	vehicle, _ := args.Get(0).(*entity.Vehicle)
	return vehicle, args.Error(1)
}

func (m *mockVehicleStore) FindByDriverID(ctx context.Context, driverID int64) ([]entity.Vehicle, error) {
	args := m.Called(ctx, driverID)
	vehicles, _ := args.Get(0).([]entity.Vehicle)
	return vehicles, args.Error(1)
}

func (m *mockVehicleStore) FindByDriverIDs(ctx context.Context, driverIDs []int64) (map[int64][]entity.Vehicle, error) {
	args := m.Called(ctx, driverIDs)
	grouped, _ := args.Get(0).(map[int64][]entity.Vehicle)
	return grouped, args.Error(1)
}

func (m *mockVehicleStore) FindByPlateForDriver(ctx context.Context, driverID int64, plate string) (*entity.Vehicle, error) {
	args := m.Called(ctx, driverID, plate)
	vehicle, _ := args.Get(0).(*entity.Vehicle)
	return vehicle, args.Error(1)
}

func (m *mockVehicleStore) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleStore) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
