package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/jyotish/internal/modules/dasha"
)

type fakeCurrent struct {
	snap dasha.Snapshot
	ok   bool
}

func (f fakeCurrent) Current() (dasha.Snapshot, bool) {
	return f.snap, f.ok
}

func post(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Contains(t, response, "data")
	return response["data"].(map[string]interface{})
}

func TestHandleMahadashas(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(nil, logger)

	w := post(t, handler.HandleMahadashas, "/api/dasha/mahadashas", map[string]interface{}{
		"moon_longitude": 0.0,
		"birth":          "1990-05-15T10:30:00+05:30",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.InDelta(t, 120.0, data["span_years"], 1e-9)

	rows := data["rows"].([]interface{})
	require.Len(t, rows, 9)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "Ketu", first["lord"])
	assert.Equal(t, "1990-05-15", first["start"])
	assert.Equal(t, "1997-05-14", first["end"])
	assert.Contains(t, first, "age")

	balance := data["balance"].(map[string]interface{})
	assert.InDelta(t, 7.0, balance["remaining_years"], 1e-9)
}

func TestHandleMahadashas_Validation(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(nil, logger)

	w := post(t, handler.HandleMahadashas, "/api/dasha/mahadashas", map[string]interface{}{
		"moon_longitude": 10.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, handler.HandleMahadashas, "/api/dasha/mahadashas", map[string]interface{}{
		"moon_longitude": 360.0,
		"birth":          "1990-05-15T10:30:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest("POST", "/api/dasha/mahadashas", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	handler.HandleMahadashas(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAntardashas(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(nil, logger)

	w := post(t, handler.HandleAntardashas, "/api/dasha/antardashas", map[string]interface{}{
		"maha_lord": "Venus",
		"start":     "2000-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.InDelta(t, 20.0, data["span_years"], 1e-9)
	rows := data["rows"].([]interface{})
	require.Len(t, rows, 9)
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "Venus", first["lord"])
	assert.NotContains(t, first, "age")
}

func TestHandleAntardashas_UnknownLord(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(nil, logger)

	w := post(t, handler.HandleAntardashas, "/api/dasha/antardashas", map[string]interface{}{
		"maha_lord": "Ascendant",
		"start":     "2000-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, handler.HandleAntardashas, "/api/dasha/antardashas", map[string]interface{}{
		"maha_lord": "Pluto",
		"start":     "2000-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePratyantardashas(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	handler := NewHandler(nil, logger)

	w := post(t, handler.HandlePratyantardashas, "/api/dasha/pratyantardashas", map[string]interface{}{
		"maha_lord":  "Venus",
		"antar_lord": "Sun",
		"start":      "2000-01-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	// Venus/Sun lasts 20*6/120 = 1 year
	assert.InDelta(t, 1.0, data["span_years"], 1e-9)
	periods := data["periods"].([]interface{})
	require.Len(t, periods, 9)
	first := periods[0].(map[string]interface{})
	assert.Equal(t, "Sun", first["lord"])
	assert.Equal(t, []interface{}{"Venus", "Sun", "Sun"}, first["lineage"])
	assert.Equal(t, "pratyantardasha", first["level"])
}

func TestHandleGetCurrent(t *testing.T) {
	logger := zerolog.New(nil).Level(zerolog.Disabled)

	req := httptest.NewRequest("GET", "/api/dasha/current", nil)
	w := httptest.NewRecorder()
	NewHandler(nil, logger).HandleGetCurrent(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	NewHandler(fakeCurrent{}, logger).HandleGetCurrent(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	birth := time.Date(1990, 5, 15, 5, 0, 0, 0, time.UTC)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := dasha.Snapshot{At: at, Lineage: dasha.Lineage(0, birth, at)}

	w = httptest.NewRecorder()
	NewHandler(fakeCurrent{snap: snap, ok: true}, logger).HandleGetCurrent(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, snap.Key(), data["key"])
	assert.Len(t, data["lineage"], 3)
}
