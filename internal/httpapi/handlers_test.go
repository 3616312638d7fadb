package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dragonrelay/internal/protocol"
	"dragonrelay/internal/registry"
)

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":200}`, rec.Body.String())
}

func TestRegisterRoom_AllocatesID(t *testing.T) {
	handler := RegisterRoom(zaptest.NewLogger(t), registry.NewRooms())
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/register-room", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var env protocol.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "room_created", env.Action)

	var payload protocol.RoomCreated
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Len(t, payload.RoomID, 5)
}
