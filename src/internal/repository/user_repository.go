package repository

import (
	"context"

	"fleet-service/src/internal/entity"
	"fleet-service/src/pkg/databases/mysql"
)

type UserRepository struct {
	DB mysql.DBInterface
}

func NewUserRepository(db mysql.DBInterface) *UserRepository {
	return &UserRepository{
		DB: db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var user entity.User
	query := `SELECT id, first_name, last_name, phone_number, email, password, created_at, updated_at FROM users WHERE id = ?`
	if err := db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateName(ctx context.Context, id int64, firstName, lastName string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE users SET first_name = ?, last_name = ? WHERE id = ?`, firstName, lastName, id)
	return err
}

func (r *UserRepository) UpdatePhone(ctx context.Context, id int64, phoneNumber string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE users SET phone_number = ? WHERE id = ?`, phoneNumber, id)
	return err
}
