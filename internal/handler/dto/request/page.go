package request

import (
	"rental-core/internal/usecase/queries"

	"github.com/google/uuid"
)

// PageQuery carries keyset pagination parameters.
type PageQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

func (p PageQuery) Cursor() *queries.Cursor {
	if p.After == "" {
		return nil
	}
	return &queries.Cursor{After: p.After}
}

// optionalUUID converts a query value already checked by the uuid rule.
func optionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
