package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyNames(t *testing.T) {
	assert.Equal(t, "Ascendant", Ascendant.String())
	assert.Equal(t, "Ketu", Ketu.String())
	assert.Equal(t, "Moo", Moon.Abbrev())
	assert.Equal(t, "ASC", Ascendant.Abbrev())
	assert.Equal(t, "Body(42)", Body(42).String())
	assert.Equal(t, "?", Body(-1).Abbrev())
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Body
		wantErr  bool
	}{
		{name: "full name", input: "Jupiter", expected: Jupiter},
		{name: "lower case", input: "saturn", expected: Saturn},
		{name: "abbreviation", input: "Rah", expected: Rahu},
		{name: "padded", input: "  Ketu ", expected: Ketu},
		{name: "unknown", input: "Pluto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBody(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBody_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Position{Body: Mercury, Longitude: 10, Speed: -0.5})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"body":"Mercury"`)

	var p Position
	require.NoError(t, json.Unmarshal([]byte(`{"body":"ven","longitude":5}`), &p))
	assert.Equal(t, Venus, p.Body)
}

func TestBodyClassification(t *testing.T) {
	assert.True(t, Rahu.IsNode())
	assert.True(t, Ketu.IsNode())
	assert.False(t, Mars.IsNode())
	assert.True(t, Sun.IsLuminary())
	assert.True(t, Moon.IsLuminary())
	assert.False(t, Venus.IsLuminary())
}

func TestSignOf(t *testing.T) {
	assert.Equal(t, Aries, SignOf(0))
	assert.Equal(t, Taurus, SignOf(30))
	assert.Equal(t, Pisces, SignOf(359.999))
	assert.Equal(t, Aries, SignOf(360))
	assert.Equal(t, "Leo", SignOf(125).String())
	assert.Equal(t, "Sg", Sagittarius.Abbrev())
}

func TestSignOpposite(t *testing.T) {
	assert.Equal(t, Libra, Aries.Opposite())
	assert.Equal(t, Cancer, Capricorn.Opposite())
	assert.Equal(t, Virgo, Pisces.Opposite())
}

func TestDignityColor(t *testing.T) {
	assert.Equal(t, "green", DignityExalted.Color())
	assert.Equal(t, "red", DignityDebilitated.Color())
	assert.Equal(t, "black", DignityNeutral.Color())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "mahadasha", LevelMahadasha.String())
	assert.Equal(t, "antardasha", LevelAntardasha.String())
	assert.Equal(t, "pratyantardasha", LevelPratyantardasha.String())
}

func TestLevelText(t *testing.T) {
	var l Level
	require.NoError(t, json.Unmarshal([]byte(`"Antardasha"`), &l))
	assert.Equal(t, LevelAntardasha, l)

	assert.Error(t, json.Unmarshal([]byte(`"yogini"`), &l))
}
