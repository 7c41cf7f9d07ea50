//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target when it is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode response body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the `error` field contains expectedErrorMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body struct {
		Error string `json:"error"`
	}
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String()) {
		return
	}
	if expectedErrorMsg != "" {
		assert.Contains(t, body.Error, expectedErrorMsg)
	}
}

// AssertEmptyListError checks a failed listing keeps its envelope: the error plus an empty array under listKey.
func AssertEmptyListError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg, listKey string) {
	t.Helper()

	AssertErrorResponse(t, w, expectedStatus, expectedErrorMsg)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	list, ok := body[listKey]
	require.True(t, ok, "missing %q in %s", listKey, w.Body.String())
	assert.JSONEq(t, `[]`, string(list))
}
