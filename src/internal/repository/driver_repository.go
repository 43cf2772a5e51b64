package repository

import (
	"context"
	"strings"
	"time"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"
)

const driverSelect = `
	SELECT
		d.id,
		d.id_number,
		d.home_address,
		d.date_of_last_trip,
		u.id AS user_id,
		u.first_name,
		u.last_name,
		u.phone_number,
		l.id AS license_id,
		l.license_type
	FROM drivers d
	JOIN users u ON u.id = d.user_id
	LEFT JOIN licenses l ON l.id = d.license_id`

type DriverRepository struct {
	DB mysql.DBInterface
}

func NewDriverRepository(db mysql.DBInterface) *DriverRepository {
	return &DriverRepository{
		DB: db,
	}
}

// driverListQuery renders the filter into SQL plus bind args. Name matching
// is case-sensitive (LIKE BINARY) and ordering is deterministic: the driver
// id breaks ties so pages never overlap.
func driverListQuery(filter entity.DriverFilter) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(driverSelect)

	var conditions []string
	var args []interface{}

	if filter.Name != nil {
		pattern := "%" + *filter.Name + "%"
		conditions = append(conditions, "(u.first_name LIKE BINARY ? OR u.last_name LIKE BINARY ?)")
		args = append(args, pattern, pattern)
	}
	if filter.Address != nil {
		conditions = append(conditions, "d.home_address LIKE ?")
		args = append(args, "%"+*filter.Address+"%")
	}
	if filter.VehicleCapacity != nil {
		conditions = append(conditions, "EXISTS (SELECT 1 FROM vehicles v WHERE v.driver_id = d.id AND v.passenger_capacity = ?)")
		args = append(args, *filter.VehicleCapacity)
	}
	appendWhere(&b, conditions)

	if filter.SortByName {
		direction := "ASC"
		if filter.SortDescending {
			direction = "DESC"
		}
		b.WriteString(" ORDER BY u.first_name " + direction + ", u.last_name " + direction + ", d.id ASC")
	} else {
		b.WriteString(" ORDER BY d.id ASC")
	}

	limit, offset := pageBounds(filter.Page, filter.PerPage)
	b.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, limit, offset)

	return b.String(), args
}

func (r *DriverRepository) FindAll(ctx context.Context, filter entity.DriverFilter) ([]entity.DriverAccountRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query, args := driverListQuery(filter)
	var rows []entity.DriverAccountRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id int64) (*entity.DriverAccountRow, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var row entity.DriverAccountRow
	if err := db.GetContext(ctx, &row, driverSelect+" WHERE d.id = ?", id); err != nil {
		return nil, err
	}
	return &row, nil
}

// CreateAccount inserts the user, license and driver rows in one
// transaction so a failed driver insert never leaves an orphaned user.
func (r *DriverRepository) CreateAccount(ctx context.Context, user *entity.User, license *entity.License, driver *entity.Driver) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, phone_number, email, password) VALUES (?, ?, ?, ?, ?)`,
		user.FirstName, user.LastName, user.PhoneNumber, user.Email, user.Password)
	if err != nil {
		return err
	}
	if user.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx, `INSERT INTO licenses (license_type) VALUES (?)`, license.LicenseType)
	if err != nil {
		return err
	}
	if license.ID, err = res.LastInsertId(); err != nil {
		return err
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO drivers (id_number, user_id, license_id, home_address) VALUES (?, ?, ?, ?)`,
		driver.IDNumber, user.ID, license.ID, driver.HomeAddress)
	if err != nil {
		return err
	}
	if driver.ID, err = res.LastInsertId(); err != nil {
		return err
	}
	driver.UserID = user.ID
	driver.LicenseID.Int64 = license.ID
	driver.LicenseID.Valid = true

	return tx.Commit()
}

func (r *DriverRepository) UpdateDetails(ctx context.Context, id int64, homeAddress string, lastTrip time.Time) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`UPDATE drivers SET home_address = ?, date_of_last_trip = ? WHERE id = ?`,
		homeAddress, lastTrip, id)
	return err
}

func (r *DriverRepository) UpdateIDNumber(ctx context.Context, id int64, idNumber int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE drivers SET id_number = ? WHERE id = ?`, idNumber, id)
	return err
}

// DeleteAccount removes the user and license in one transaction; the driver
// row and its vehicles cascade away at the storage layer.
func (r *DriverRepository) DeleteAccount(ctx context.Context, row *entity.DriverAccountRow) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, row.UserID); err != nil {
		return err
	}
	if row.LicenseID.Valid {
		if _, err := tx.ExecContext(ctx, `DELETE FROM licenses WHERE id = ?`, row.LicenseID.Int64); err != nil {
			return err
		}
	}

	return tx.Commit()
}
