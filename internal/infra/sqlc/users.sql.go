package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, name, company_name, gstin, address, role, is_active, created_at, updated_at`

func scanUser(row scanner) (Users, error) {
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Name,
		&i.CompanyName,
		&i.Gstin,
		&i.Address,
		&i.Role,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getUserByID = `-- name: GetUserByID :one
SELECT ` + userColumns + ` FROM users WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (email, name, company_name, gstin, address, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

type CreateUserParams struct {
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	CompanyName pgtype.Text `json:"company_name"`
	Gstin       pgtype.Text `json:"gstin"`
	Address     pgtype.Text `json:"address"`
	Role        string      `json:"role"`
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	return scanUser(db.QueryRow(ctx, createUser,
		arg.Email,
		arg.Name,
		arg.CompanyName,
		arg.Gstin,
		arg.Address,
		arg.Role,
	))
}
