package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type sample struct {
	SignName string `json:"sign_name"`
	Pada     int    `json:"pada"`
}

func TestWriteResponse_JSON(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteResponse(w, req, http.StatusOK, Envelope(sample{SignName: "Leo", Pada: 2}), log)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Leo", data["sign_name"])
	assert.Contains(t, response, "metadata")
}

func TestWriteResponse_Msgpack(t *testing.T) {
	log := zerolog.New(nil).Level(zerolog.Disabled)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", ContentTypeMsgpack)
	w := httptest.NewRecorder()

	WriteResponse(w, req, http.StatusCreated, sample{SignName: "Leo", Pada: 2}, log)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, ContentTypeMsgpack, w.Header().Get("Content-Type"))

	var decoded map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, "Leo", decoded["sign_name"])
	assert.EqualValues(t, 2, decoded["pada"])
}

func TestWantsMsgpack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, WantsMsgpack(req))

	req.Header.Set("Accept", "application/x-msgpack, application/json;q=0.5")
	assert.True(t, WantsMsgpack(req))
}
