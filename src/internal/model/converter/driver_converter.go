package converter

import (
	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
)

const dateLayout = "2006-01-02"

// DriverToResponse builds the full driver resource. vehicles may be nil; the
// resource always serializes "vehicle" as a list.
func DriverToResponse(row *entity.DriverAccountRow, vehicles []entity.Vehicle) *model.DriverResponse {
	return &model.DriverResponse{
		ID:          row.ID,
		IDNumber:    row.IDNumber,
		PhoneNumber: row.PhoneNumber,
		Details: model.DriverDetails{
			ID:           row.UserID,
			HomeAddress:  nullString(row.HomeAddress),
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			LicenseType:  nullString(row.LicenseType),
			LastTripDate: nullDate(row.DateOfLastTrip),
		},
		Vehicle: VehiclesToResponse(vehicles),
	}
}

func DriversToResponse(rows []entity.DriverAccountRow, vehiclesByDriver map[int64][]entity.Vehicle) []model.DriverResponse {
	responses := make([]model.DriverResponse, 0, len(rows))
	for i := range rows {
		responses = append(responses, *DriverToResponse(&rows[i], vehiclesByDriver[rows[i].ID]))
	}
	return responses
}

func DriverToDetailsResponse(row *entity.DriverAccountRow) *model.DriverDetailsResponse {
	return &model.DriverDetailsResponse{
		ID:           row.ID,
		HomeAddress:  nullString(row.HomeAddress),
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		LicenceType:  nullString(row.LicenseType),
		LastTripDate: nullDate(row.DateOfLastTrip),
	}
}

func DriverToUpdateResponse(row *entity.DriverAccountRow) *model.DriverUpdateResponse {
	return &model.DriverUpdateResponse{
		ID:          row.ID,
		IDNumber:    row.IDNumber,
		PhoneNumber: row.PhoneNumber,
	}
}
