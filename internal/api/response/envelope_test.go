package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligafc/matchday/internal/api/response"
)

func TestNewMeta_GeneratesUUID(t *testing.T) {
	meta := response.NewMeta("")

	_, err := uuid.Parse(meta.RequestID)
	assert.NoError(t, err, "requestId should be a valid UUID")
}

func TestNewMeta_UsesProvidedRequestID(t *testing.T) {
	meta := response.NewMeta("my-custom-request-id")

	assert.Equal(t, "my-custom-request-id", meta.RequestID)
}

func TestNewMeta_TimestampIsRFC3339(t *testing.T) {
	meta := response.NewMeta("")

	_, err := time.Parse(time.RFC3339, meta.Timestamp)
	require.NoError(t, err, "timestamp should be valid RFC3339")
}

func TestSuccess_WritesCorrectEnvelope(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()

	// Act
	response.Success(w, http.StatusOK, map[string]string{"key": "value"}, "test-req-id")

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.Equal(t, map[string]interface{}{"key": "value"}, env["data"])
	assert.Nil(t, env["error"])
	meta := env["meta"].(map[string]interface{})
	assert.Equal(t, "test-req-id", meta["requestId"])
	assert.NotEmpty(t, meta["timestamp"])
}

func TestErr_WritesErrorEnvelope(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()

	// Act
	response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", "req-1")

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	assert.Nil(t, env["data"])
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ID", apiErr["code"])
	assert.Equal(t, "id must be a valid UUID", apiErr["message"])
	assert.NotContains(t, apiErr, "details")
}
