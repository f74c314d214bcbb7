package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
)

func newCalculatorServer(t *testing.T) *httptest.Server {
	t.Helper()

	env := newTestEnv(t)
	h := NewCalculatorHandler(env.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/calculators/{trade}", h.Calculate)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCalculate(t *testing.T) {
	srv := newCalculatorServer(t)

	body := `{
		"shape": "rectangular",
		"length": 10, "width": 10, "height": 1,
		"wastagePct": 10, "psi": 3000
	}`
	resp, err := http.Post(srv.URL+"/api/calculators/concrete", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		VolumeYd3            float64 `json:"volumeYd3"`
		VolumeWithWastageYd3 float64 `json:"volumeWithWastageYd3"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.InDelta(t, 3.7037, result.VolumeYd3, 0.001)
	assert.InDelta(t, 4.0741, result.VolumeWithWastageYd3, 0.001)
}

func TestCalculateAllTrades(t *testing.T) {
	srv := newCalculatorServer(t)

	// One happy-path payload per trade.
	bodies := map[string]string{
		"concrete":   `{"shape": "slab", "length": 20, "width": 10, "thicknessIn": 4, "psi": 3000}`,
		"electrical": `{"propertyType": "residential", "phase": "single", "items": [{"name": "Lights", "watts": 15, "quantity": 10, "hoursPerDay": 6}]}`,
		"flooring":   `{"length": 10, "width": 10, "type": "ceramic", "pattern": "straight", "tileLengthIn": 12, "tileWidthIn": 12}`,
		"hvac":       `{"areaSqFt": 1200, "buildingType": "residential", "climate": "moderate", "insulation": "average", "windows": "medium", "ceilingHeightFt": 8}`,
		"grading":    `{"length": 27, "width": 10, "currentElevationFt": 4, "desiredElevationFt": 2, "soil": "clay", "equipment": "excavator", "pricePerYd3": 100}`,
		"loan":       `{"projectCost": 1000000, "downPayment": 200000, "annualRatePct": 12, "termYears": 10, "constructionMonths": 10, "strategy": "equal"}`,
		"masonry":    `{"wallLengthFt": 10, "wallHeightFt": 10, "thicknessIn": 9, "brick": "standard", "mortarSandParts": 6}`,
		"paint":      `{"lengthFt": 12, "widthFt": 10, "heightFt": 8, "doors": 1, "windows": 2, "coats": 2, "quality": "economy"}`,
		"plumbing":   `{"buildingType": "house", "floors": 2, "bathrooms": 2, "kitchens": 1, "occupants": 4}`,
		"roofing":    `{"lengthFt": 40, "widthFt": 30, "pitch": 6, "type": "gable", "material": "metalSheet"}`,
		"roi":        `{"homeValue": 5000000, "renovationCost": 100000, "type": "kitchen"}`,
		"staircase":  `{"floorHeightIn": 108, "preferredRiserIn": 7.5, "treadDepthIn": 10, "widthIn": 36, "type": "straight"}`,
	}

	for trade, body := range bodies {
		t.Run(trade, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/calculators/"+trade, "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	srv := newCalculatorServer(t)

	body := `{"shape": "rectangular", "length": -10, "width": 10, "height": 1}`
	resp, err := http.Post(srv.URL+"/api/calculators/concrete", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var jsonErr JSONError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jsonErr))
	assert.Equal(t, domain.EINVALID, jsonErr.Error.Code)
	assert.Contains(t, jsonErr.Error.Message, "length")
}

func TestCalculateMalformedJSON(t *testing.T) {
	srv := newCalculatorServer(t)

	resp, err := http.Post(srv.URL+"/api/calculators/loan", "application/json", strings.NewReader(`{not json`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var jsonErr JSONError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jsonErr))
	assert.Equal(t, domain.EINVALID, jsonErr.Error.Code)
}

func TestCalculateUnknownTrade(t *testing.T) {
	srv := newCalculatorServer(t)

	resp, err := http.Post(srv.URL+"/api/calculators/landscaping", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var jsonErr JSONError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jsonErr))
	assert.Equal(t, domain.ENOTFOUND, jsonErr.Error.Code)
}
