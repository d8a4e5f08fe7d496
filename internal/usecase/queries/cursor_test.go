//go:build unit

package queries

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 15, 30, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor(t *testing.T) {
	id := uuid.New()

	t.Run("legacy nanosecond format", func(t *testing.T) {
		at := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		gotAt, gotID, err := DecodeAfterCursor(fmt.Sprintf("%d-%s", at.UnixNano(), id))
		require.NoError(t, err)
		assert.True(t, at.Equal(gotAt))
		assert.Equal(t, id, gotID)
	})

	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "garbage", cursor: "not-a-cursor"},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1700000000-xyz"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + id.String()))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestDecodeKeyset(t *testing.T) {
	t.Run("nil and empty cursors start at the first page", func(t *testing.T) {
		k, err := decodeKeyset(nil)
		require.NoError(t, err)
		assert.Nil(t, k)

		k, err = decodeKeyset(&Cursor{})
		require.NoError(t, err)
		assert.Nil(t, k)
	})

	t.Run("invalid cursor is a validation error", func(t *testing.T) {
		_, err := decodeKeyset(&Cursor{After: "???"})
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})
}

func TestNextPage(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	type row struct {
		at time.Time
		id uuid.UUID
	}
	rows := make([]row, 4)
	for i := range rows {
		rows[i] = row{at: base.Add(-time.Duration(i) * time.Hour), id: uuid.New()}
	}
	key := func(r row) (time.Time, uuid.UUID) { return r.at, r.id }

	t.Run("short page has no cursor", func(t *testing.T) {
		got, next := nextPage(rows[:2], 3, key)
		assert.Len(t, got, 2)
		assert.Nil(t, next)
	})

	t.Run("extra row yields a cursor at the last kept row", func(t *testing.T) {
		got, next := nextPage(rows, 3, key)
		require.Len(t, got, 3)
		require.NotNil(t, next)

		at, id, err := DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, rows[2].at.Equal(at))
		assert.Equal(t, rows[2].id, id)
	})
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-5))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
