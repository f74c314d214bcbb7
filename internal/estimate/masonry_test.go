package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMasonry(t *testing.T) {
	got, err := CalculateMasonry(MasonryInput{
		WallLengthFt:    10,
		WallHeightFt:    10,
		ThicknessIn:     9,
		Brick:           BrickStandard,
		MortarSandParts: 6,
	})
	require.NoError(t, err)

	assert.InDelta(t, 100, got.WallAreaSqFt, 0.001)
	assert.InDelta(t, 75, got.WallVolumeFt3, 0.001)

	// Brick count: wall volume over a standard brick, plus 10% waste.
	brickVolume := 8 * 3.625 * 2.25 / 1728.0
	wantBricks := int(math.Ceil(75 / brickVolume * 1.1))
	assert.Equal(t, wantBricks, got.BricksNeeded)

	// Mortar is a fifth of the wall volume, split 1:6 cement to sand.
	assert.InDelta(t, 15, got.MortarVolumeFt3, 0.001)
	assert.InDelta(t, 15.0/7, got.CementVolumeFt3, 0.001)
	assert.Equal(t, 2, got.CementBags)
	assert.InDelta(t, 13, got.SandFt3, 0.001)
	assert.InDelta(t, 160, got.WaterLiters, 0.001)
}

func TestCalculateMasonryOpenings(t *testing.T) {
	withOpenings, err := CalculateMasonry(MasonryInput{
		WallLengthFt: 10, WallHeightFt: 10, OpeningsSqFt: 36,
		ThicknessIn: 4.5, Brick: BrickModular, MortarSandParts: 5,
	})
	require.NoError(t, err)
	solid, err := CalculateMasonry(MasonryInput{
		WallLengthFt: 10, WallHeightFt: 10,
		ThicknessIn: 4.5, Brick: BrickModular, MortarSandParts: 5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 64, withOpenings.WallAreaSqFt, 0.001)
	assert.Less(t, withOpenings.BricksNeeded, solid.BricksNeeded)
}

func TestCalculateMasonryInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		input     MasonryInput
		wantField string
	}{
		{
			name: "openings swallow the wall",
			input: MasonryInput{
				WallLengthFt: 10, WallHeightFt: 10, OpeningsSqFt: 100,
				ThicknessIn: 9, Brick: BrickStandard, MortarSandParts: 6,
			},
			wantField: "openingsSqFt",
		},
		{
			name: "unknown brick",
			input: MasonryInput{
				WallLengthFt: 10, WallHeightFt: 10,
				ThicknessIn: 9, Brick: "jumbo", MortarSandParts: 6,
			},
			wantField: "brick",
		},
		{
			name: "zero height",
			input: MasonryInput{
				WallLengthFt: 10, ThicknessIn: 9,
				Brick: BrickStandard, MortarSandParts: 6,
			},
			wantField: "wallHeightFt",
		},
		{
			name: "zero mortar ratio",
			input: MasonryInput{
				WallLengthFt: 10, WallHeightFt: 10,
				ThicknessIn: 9, Brick: BrickStandard,
			},
			wantField: "mortarSandParts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateMasonry(tt.input)

			var invalid *InvalidNumberError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}
