//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips a request DTO through JSON so tests can send bodies the typed DTO cannot express,
// such as client-computed discounts or wrongly typed fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err, "marshal request dto")

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "decode request dto")

	for _, f := range muts {
		f(m)
	}
	return m
}
