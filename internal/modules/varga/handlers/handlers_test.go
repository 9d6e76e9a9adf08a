package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *chi.Mux {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	router := chi.NewRouter()
	NewHandler(logger).RegisterRoutes(router)
	return router
}

func get(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return w, nil
	}

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return w, response["data"].(map[string]interface{})
}

func TestHandleGetDivisions(t *testing.T) {
	w, data := get(t, setupRouter(), "/varga/divisions")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 15, data["count"])

	divisions := data["divisions"].([]interface{})
	first := divisions[0].(map[string]interface{})
	assert.EqualValues(t, 2, first["factor"])
	assert.Equal(t, "D2", first["code"])
	assert.Equal(t, "Hora", first["name"])
}

func TestHandleMapLongitude_SelectedDivisions(t *testing.T) {
	w, data := get(t, setupRouter(), "/varga/15?divisions=9,5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Aries", data["rashi"])

	mappings := data["mappings"].([]interface{})
	require.Len(t, mappings, 2)

	navamsha := mappings[0].(map[string]interface{})
	assert.Equal(t, "Leo", navamsha["sign_name"])
	assert.Equal(t, true, navamsha["supported"])

	fallback := mappings[1].(map[string]interface{})
	assert.Equal(t, "Aries", fallback["sign_name"])
	assert.Equal(t, false, fallback["supported"])
	assert.Equal(t, "Rashi", fallback["name"])
}

func TestHandleMapLongitude_AllDivisions(t *testing.T) {
	w, data := get(t, setupRouter(), "/varga/123.45")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, data["mappings"], 15)
}

func TestHandleMapLongitude_BadInput(t *testing.T) {
	router := setupRouter()
	for _, path := range []string{"/varga/abc", "/varga/360", "/varga/-1", "/varga/10?divisions=9,x"} {
		w, _ := get(t, router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}
