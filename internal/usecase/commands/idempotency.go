package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"rental-core/internal/infra"
	"rental-core/internal/pkg/errs"
	"rental-core/internal/usecase/shared"

	"github.com/google/uuid"
)

const idempotencyTTL = 24 * time.Hour

var (
	ErrIdempotencyKeyReused   = errs.Conflict("idempotency key was used for a different request")
	ErrIdempotencyKeyExpired  = errs.Validation("idempotency key has expired")
	ErrIdempotencyInProgress  = errs.Conflict("a request with this idempotency key is in progress")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

// idempotentRequest ties an Idempotency-Key header to one endpoint call.
// A nil key disables replay protection.
type idempotentRequest struct {
	key      *uuid.UUID
	userID   uuid.UUID
	endpoint string
	hash     string
}

func newIdempotentRequest(key *uuid.UUID, userID uuid.UUID, endpoint string, body any) idempotentRequest {
	return idempotentRequest{
		key:      key,
		userID:   userID,
		endpoint: endpoint,
		hash:     requestHash(body),
	}
}

// claim registers the key inside tx. It returns the stored result id when the
// same request already completed, and nil when the caller should proceed.
// Concurrent claims on one key serialize on the unique index.
func (r idempotentRequest) claim(ctx context.Context, tx shared.Tx, now time.Time) (*uuid.UUID, error) {
	if r.key == nil {
		return nil, nil
	}
	if err := tx.Idempotency().TryInsert(ctx, tx.DB(), *r.key, r.userID, r.endpoint, r.hash, now.Add(idempotencyTTL)); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, *r.key, r.userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIdempotencyKeyExpired
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if rec.RequestHash != r.hash {
		return nil, ErrIdempotencyKeyReused
	}

	switch rec.Status {
	case shared.IdempotencyCompleted:
		if rec.ResultID == nil {
			return nil, errs.Mark(errs.New("completed request has no result id"), ErrIdempotencyCheckFailed)
		}
		return rec.ResultID, nil
	case shared.IdempotencyProcessing:
		return nil, nil
	default:
		return nil, ErrIdempotencyInProgress
	}
}

func (r idempotentRequest) complete(ctx context.Context, tx shared.Tx, resultID uuid.UUID) error {
	if r.key == nil {
		return nil
	}
	sum := sha256.Sum256([]byte(resultID.String()))
	return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *r.key, r.userID, hex.EncodeToString(sum[:]), resultID)
}

func requestHash(body any) string {
	data, _ := json.Marshal(body)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
