//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit rewrites one field of a decoded request body.
type Edit func(body map[string]any)

// Set replaces key, adding it when absent.
func Set(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

// Drop removes key so the binding sees the field as missing.
func Drop(key string) Edit {
	return func(body map[string]any) { delete(body, key) }
}

// JSONBody round-trips a request DTO through its JSON tags and applies
// edits, which lets table tests send bodies the DTO type cannot express.
func JSONBody(t *testing.T, dto any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		if edit != nil {
			edit(body)
		}
	}
	return body
}
