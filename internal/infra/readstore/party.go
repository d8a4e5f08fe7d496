package readstore

import (
	"context"

	"rental-core/internal/infra"
	"rental-core/internal/infra/sqlc"
	"rental-core/internal/pkg/pgconv"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=party.go -destination=../../../tests/mock/readstore/party.go -package=readstoremock
type PartyReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

// PartyReadStore loads the customer and vendor identities that invoices copy.
type PartyReadStore struct {
	queries PartyReadQueries
}

func NewPartyReadStore(queries PartyReadQueries) *PartyReadStore {
	return &PartyReadStore{
		queries: queries,
	}
}

func (r *PartyReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.PartySnapshot, error) {
	row, err := r.queries.GetUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &shared.PartySnapshot{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		CompanyName: pgconv.StringFromPgtype(row.CompanyName),
		GSTIN:       pgconv.StringFromPgtype(row.Gstin),
		Address:     pgconv.StringFromPgtype(row.Address),
		Role:        row.Role,
		IsActive:    row.IsActive,
	}, nil
}
