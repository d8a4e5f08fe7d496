package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a customer or vendor account as seen by the rental core. Accounts
// are created elsewhere; this side only reads profiles and roles.
type User struct {
	id          uuid.UUID
	email       Email
	name        string
	companyName string
	gstin       GSTIN
	address     string
	role        Role
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Profile struct {
	Name        string
	CompanyName string
	GSTIN       GSTIN
	Address     string
}

func NewUser(email Email, role Role, p Profile) *User {
	return &User{
		id:          uuid.New(),
		email:       email,
		name:        p.Name,
		companyName: p.CompanyName,
		gstin:       p.GSTIN,
		address:     p.Address,
		role:        role,
		isActive:    true,
	}
}

func ReconstructUser(id uuid.UUID, email Email, role Role, p Profile, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		email:       email,
		name:        p.Name,
		companyName: p.CompanyName,
		gstin:       p.GSTIN,
		address:     p.Address,
		role:        role,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) CompanyName() string  { return u.companyName }
func (u *User) GSTIN() GSTIN         { return u.gstin }
func (u *User) Address() string      { return u.address }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// DisplayName prefers the company name for vendors.
func (u *User) DisplayName() string {
	if u.role == RoleVendor && u.companyName != "" {
		return u.companyName
	}
	return u.name
}
