package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// testEnvelope mirrors the wire shape of Response with Data left raw so each
// test decodes it into the type it expects.
type testEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
	Details    json.RawMessage `json:"details"`
	Count      *int            `json:"count"`
	Pagination *Pagination     `json:"pagination"`
}

func perform(t *testing.T, router chi.Router, method, path string, body any) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "response body: %s", rec.Body.String())
	return rec, env
}

func decodeData(t *testing.T, env testEnvelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func countFieldErrors(t *testing.T, env testEnvelope) []string {
	t.Helper()
	var details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Details, &details))
	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	return fields
}
