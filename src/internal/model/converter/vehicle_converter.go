package converter

import (
	"database/sql"

	"fleet-service/src/internal/entity"
	"fleet-service/src/internal/model"
)

func VehicleToResponse(vehicle *entity.Vehicle) *model.VehicleResponse {
	return &model.VehicleResponse{
		ID:                 vehicle.ID,
		LicensePlateNumber: vehicle.LicensePlateNumber,
		VehicleMake:        vehicle.VehicleMake,
		VehicleModel:       vehicle.VehicleModel,
		Year:               vehicle.ModelYear,
		Insured:            vehicle.Insured,
		ServiceDate:        nullDate(vehicle.DateOfLastService),
		Capacity:           vehicle.PassengerCapacity,
	}
}

// VehiclesToResponse never returns nil so collections serialize as [].
func VehiclesToResponse(vehicles []entity.Vehicle) []model.VehicleResponse {
	responses := make([]model.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, *VehicleToResponse(&vehicles[i]))
	}
	return responses
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullDate(v sql.NullTime) *string {
	if !v.Valid {
		return nil
	}
	s := v.Time.Format(dateLayout)
	return &s
}
