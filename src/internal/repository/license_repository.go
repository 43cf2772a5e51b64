package repository

import (
	"context"

	"fleet-service/src/pkg/databases/mysql"
)

type LicenseRepository struct {
	DB mysql.DBInterface
}

func NewLicenseRepository(db mysql.DBInterface) *LicenseRepository {
	return &LicenseRepository{
		DB: db,
	}
}

func (r *LicenseRepository) UpdateType(ctx context.Context, id int64, licenseType string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE licenses SET license_type = ? WHERE id = ?`, licenseType, id)
	return err
}

// Delete removes the license row only; drivers.license_id is set null by the
// storage layer so the driver account survives.
func (r *LicenseRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM licenses WHERE id = ?`, id)
	return err
}
