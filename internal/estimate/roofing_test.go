package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRoofing(t *testing.T) {
	got, err := CalculateRoofing(RoofInput{
		LengthFt: 40,
		WidthFt:  30,
		Pitch:    6,
		Type:     RoofGable,
		Material: RoofMetalSheet,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1200, got.FlatAreaSqFt, 0.001)

	wantSlope := math.Sqrt(1 + 0.25)
	assert.InDelta(t, wantSlope, got.SlopeFactor, 0.0001)
	assert.InDelta(t, 1200*wantSlope, got.RoofAreaSqFt, 0.001)

	wantUnits := int(math.Ceil(1200 * wantSlope / 32))
	assert.Equal(t, wantUnits, got.UnitsNeeded)
	assert.InDelta(t, float64(wantUnits)*3800, got.MaterialCost, 0.001)
	assert.InDelta(t, 1200*wantSlope/100*4500, got.LaborCost, 0.001)
	assert.InDelta(t, got.MaterialCost+got.LaborCost, got.TotalCost, 0.001)
}

func TestCalculateRoofingTypes(t *testing.T) {
	base := RoofInput{LengthFt: 40, WidthFt: 30, Pitch: 6, Material: RoofClayTile}

	areas := map[RoofType]float64{}
	for _, rt := range []RoofType{RoofFlat, RoofGable, RoofHip, RoofMansard, RoofGambrel} {
		input := base
		input.Type = rt
		got, err := CalculateRoofing(input)
		require.NoError(t, err)
		areas[rt] = got.RoofAreaSqFt
	}

	// A flat roof ignores the pitch entirely.
	assert.InDelta(t, 1200, areas[RoofFlat], 0.001)
	// Hips add ridge and valley area over a plain gable.
	assert.InDelta(t, areas[RoofGable]*1.2, areas[RoofHip], 0.001)
	assert.Greater(t, areas[RoofGable], areas[RoofFlat])
}

func TestCalculateRoofingWastage(t *testing.T) {
	got, err := CalculateRoofing(RoofInput{
		LengthFt: 40, WidthFt: 30, Pitch: 0,
		Type: RoofFlat, Material: RoofConcreteTile, WastagePct: 10,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1320, got.AreaWithWastageSqFt, 0.001)
	assert.Equal(t, 1100, got.UnitsNeeded) // ceil(1320 / 1.2)
}

func TestCalculateRoofingInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		input     RoofInput
		wantField string
	}{
		{
			name:      "unknown material",
			input:     RoofInput{LengthFt: 40, WidthFt: 30, Type: RoofFlat, Material: "thatch"},
			wantField: "material",
		},
		{
			name:      "unknown type",
			input:     RoofInput{LengthFt: 40, WidthFt: 30, Type: "dome", Material: RoofClayTile},
			wantField: "type",
		},
		{
			name:      "negative pitch",
			input:     RoofInput{LengthFt: 40, WidthFt: 30, Pitch: -3, Type: RoofGable, Material: RoofClayTile},
			wantField: "pitch",
		},
		{
			name:      "zero length",
			input:     RoofInput{WidthFt: 30, Type: RoofFlat, Material: RoofClayTile},
			wantField: "lengthFt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateRoofing(tt.input)

			var invalid *InvalidNumberError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}
