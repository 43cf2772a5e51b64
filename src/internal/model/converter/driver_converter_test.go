package converter

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"fleet-service/src/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDriverRow() entity.DriverAccountRow {
	return entity.DriverAccountRow{
		ID:             1,
		IDNumber:       9202204720082,
		HomeAddress:    sql.NullString{String: "12 Main Road, Cape Town", Valid: true},
		DateOfLastTrip: sql.NullTime{Time: time.Date(2024, 3, 21, 14, 30, 0, 0, time.UTC), Valid: true},
		UserID:         7,
		FirstName:      "John",
		LastName:       "Johnson",
		PhoneNumber:    "0821234567",
		LicenseID:      sql.NullInt64{Int64: 3, Valid: true},
		LicenseType:    sql.NullString{String: "B", Valid: true},
	}
}

func TestDriverToResponse(t *testing.T) {
	row := sampleDriverRow()
	vehicles := []entity.Vehicle{{
		ID:                 5,
		LicensePlateNumber: "CA 123-456",
		VehicleMake:        "Toyota",
		VehicleModel:       "Corolla",
		ModelYear:          2019,
		Insured:            true,
		DateOfLastService:  sql.NullTime{Time: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		PassengerCapacity:  4,
		DriverID:           1,
	}}

	response := DriverToResponse(&row, vehicles)

	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, int64(9202204720082), response.IDNumber)
	assert.Equal(t, "0821234567", response.PhoneNumber)

	// Details ID is the user id, not the driver id.
	assert.Equal(t, int64(7), response.Details.ID)
	require.NotNil(t, response.Details.HomeAddress)
	assert.Equal(t, "12 Main Road, Cape Town", *response.Details.HomeAddress)
	require.NotNil(t, response.Details.LastTripDate)
	assert.Equal(t, "2024-03-21", *response.Details.LastTripDate)
	require.NotNil(t, response.Details.LicenseType)
	assert.Equal(t, "B", *response.Details.LicenseType)

	require.Len(t, response.Vehicle, 1)
	assert.Equal(t, "CA 123-456", response.Vehicle[0].LicensePlateNumber)
	assert.Equal(t, 2019, response.Vehicle[0].Year)
	require.NotNil(t, response.Vehicle[0].ServiceDate)
	assert.Equal(t, "2024-01-10", *response.Vehicle[0].ServiceDate)
}

func TestDriverToResponseWithoutLicenseOrVehicles(t *testing.T) {
	row := sampleDriverRow()
	row.HomeAddress = sql.NullString{}
	row.DateOfLastTrip = sql.NullTime{}
	row.LicenseID = sql.NullInt64{}
	row.LicenseType = sql.NullString{}

	response := DriverToResponse(&row, nil)

	assert.Nil(t, response.Details.HomeAddress)
	assert.Nil(t, response.Details.LastTripDate)
	assert.Nil(t, response.Details.LicenseType)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"vehicle":[]`)
	assert.Contains(t, string(body), `"license_type":null`)
}

func TestDriversToResponseGroupsVehiclesByOwner(t *testing.T) {
	first := sampleDriverRow()
	second := sampleDriverRow()
	second.ID = 2
	second.UserID = 8
	second.FirstName = "Grace"
	second.LastName = "Dlamini"

	vehiclesByDriver := map[int64][]entity.Vehicle{
		2: {{ID: 9, DriverID: 2, LicensePlateNumber: "GP 777-888"}},
	}

	responses := DriversToResponse([]entity.DriverAccountRow{first, second}, vehiclesByDriver)

	require.Len(t, responses, 2)
	assert.Empty(t, responses[0].Vehicle)
	require.Len(t, responses[1].Vehicle, 1)
	assert.Equal(t, "GP 777-888", responses[1].Vehicle[0].LicensePlateNumber)
}

func TestDriverToDetailsResponseUsesDriverID(t *testing.T) {
	row := sampleDriverRow()

	response := DriverToDetailsResponse(&row)

	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "John", response.FirstName)
	require.NotNil(t, response.LicenceType)
	assert.Equal(t, "B", *response.LicenceType)
}

func TestDriverToUpdateResponse(t *testing.T) {
	row := sampleDriverRow()

	response := DriverToUpdateResponse(&row)

	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, int64(9202204720082), response.IDNumber)
	assert.Equal(t, "0821234567", response.PhoneNumber)
}
