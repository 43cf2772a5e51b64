package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"

	"github.com/jmoiron/sqlx"
)

const vehicleSelect = `
	SELECT
		id,
		license_plate_number,
		vehicle_make,
		vehicle_model,
		model_year,
		insured,
		date_of_last_service,
		passenger_capacity,
		driver_id
	FROM vehicles`

type VehicleRepository struct {
	DB mysql.DBInterface
}

func NewVehicleRepository(db mysql.DBInterface) *VehicleRepository {
	return &VehicleRepository{
		DB: db,
	}
}

func vehicleListQuery(filter entity.VehicleFilter) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(vehicleSelect)

	var conditions []string
	var args []interface{}

	if filter.Make != nil {
		conditions = append(conditions, "vehicle_make = ?")
		args = append(args, *filter.Make)
	}
	if filter.ServiceDate != nil {
		conditions = append(conditions, "date_of_last_service <= ?")
		args = append(args, *filter.ServiceDate)
	}
	if filter.ModelYear != nil {
		conditions = append(conditions, "model_year = ?")
		args = append(args, *filter.ModelYear)
	}
	appendWhere(&b, conditions)

	b.WriteString(" ORDER BY id ASC")

	limit, offset := pageBounds(filter.Page, filter.PerPage)
	b.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, limit, offset)

	return b.String(), args
}

func (r *VehicleRepository) FindAll(ctx context.Context, filter entity.VehicleFilter) ([]entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query, args := vehicleListQuery(filter)
	var vehicles []entity.Vehicle
	if err := db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var vehicle entity.Vehicle
	if err := db.GetContext(ctx, &vehicle, vehicleSelect+" WHERE id = ?", id); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindByDriverID(ctx context.Context, driverID int64) ([]entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var vehicles []entity.Vehicle
	if err := db.SelectContext(ctx, &vehicles, vehicleSelect+" WHERE driver_id = ? ORDER BY id ASC", driverID); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByDriverIDs fetches vehicles for a page of drivers in one round trip,
// grouped by owner.
func (r *VehicleRepository) FindByDriverIDs(ctx context.Context, driverIDs []int64) (map[int64][]entity.Vehicle, error) {
	grouped := make(map[int64][]entity.Vehicle, len(driverIDs))
	if len(driverIDs) == 0 {
		return grouped, nil
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query, args, err := sqlx.In(vehicleSelect+" WHERE driver_id IN (?) ORDER BY id ASC", driverIDs)
	if err != nil {
		return nil, err
	}

	var vehicles []entity.Vehicle
	if err := db.SelectContext(ctx, &vehicles, db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		grouped[v.DriverID] = append(grouped[v.DriverID], v)
	}
	return grouped, nil
}

// FindByPlateForDriver returns (nil, nil) when the driver has no vehicle
// with the plate.
func (r *VehicleRepository) FindByPlateForDriver(ctx context.Context, driverID int64, plate string) (*entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var vehicle entity.Vehicle
	err = db.GetContext(ctx, &vehicle, vehicleSelect+" WHERE driver_id = ? AND license_plate_number = ?", driverID, plate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO vehicles (license_plate_number, vehicle_make, vehicle_model, model_year, insured, date_of_last_service, passenger_capacity, driver_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		vehicle.LicensePlateNumber, vehicle.VehicleMake, vehicle.VehicleModel, vehicle.ModelYear,
		vehicle.Insured, vehicle.DateOfLastService, vehicle.PassengerCapacity, vehicle.DriverID)
	if err != nil {
		return err
	}
	vehicle.ID, err = res.LastInsertId()
	return err
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`UPDATE vehicles
		 SET license_plate_number = ?, vehicle_make = ?, vehicle_model = ?, model_year = ?, insured = ?, date_of_last_service = ?, passenger_capacity = ?, driver_id = ?
		 WHERE id = ?`,
		vehicle.LicensePlateNumber, vehicle.VehicleMake, vehicle.VehicleModel, vehicle.ModelYear,
		vehicle.Insured, vehicle.DateOfLastService, vehicle.PassengerCapacity, vehicle.DriverID, vehicle.ID)
	return err
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	return err
}
