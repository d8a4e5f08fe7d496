//go:build unit || e2e

package builder

import (
	"time"

	"rental-core/internal/domain/user"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Email       string
	Role        string
	Name        string
	CompanyName string
	GSTIN       string
	Address     string
	IsActive    bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "ravi@example.com",
		Role:     "customer",
		Name:     "Ravi Kumar",
		Address:  "12 MG Road, Bengaluru",
		IsActive: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	gstin, err := user.NewGSTIN(u.GSTIN)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, role, user.Profile{
		Name:        u.Name,
		CompanyName: u.CompanyName,
		GSTIN:       gstin,
		Address:     u.Address,
	}), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:          uuid.New(),
		Email:       u.Email,
		Name:        u.Name,
		CompanyName: pgconv.OptionalText(u.CompanyName),
		Gstin:       pgconv.OptionalText(u.GSTIN),
		Address:     pgconv.OptionalText(u.Address),
		Role:        u.Role,
		IsActive:    u.IsActive,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsVendor(company, gstin string) *UserBuilder {
	u.Role = "vendor"
	u.CompanyName = company
	u.GSTIN = gstin
	return u
}

func (u *UserBuilder) WithGSTIN(gstin string) *UserBuilder {
	u.GSTIN = gstin
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
