package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePaint(t *testing.T) {
	got, err := CalculatePaint(PaintInput{
		LengthFt: 12,
		WidthFt:  10,
		HeightFt: 8,
		Doors:    1,
		Windows:  2,
		Coats:    2,
		Quality:  PaintEconomy,
	})
	require.NoError(t, err)

	assert.InDelta(t, 352, got.WallAreaSqFt, 0.001)
	assert.InDelta(t, 301, got.PaintableAreaSqFt, 0.001) // minus one door, two windows
	assert.InDelta(t, 6.02, got.LitersRequired, 0.001)

	// Greedy cans: one 4L, then 1L cans with the fraction rounding up.
	assert.Equal(t, []PaintCan{{SizeLiters: 4, Count: 1}, {SizeLiters: 1, Count: 3}}, got.Cans)
	assert.Equal(t, 7, got.PurchasedLiters)
	assert.InDelta(t, 6.02*180, got.Cost, 0.001)
}

func TestCalculatePaintQuality(t *testing.T) {
	input := PaintInput{
		LengthFt: 15, WidthFt: 12, HeightFt: 9,
		Coats: 1, Quality: PaintEconomy,
	}
	economy, err := CalculatePaint(input)
	require.NoError(t, err)

	input.Quality = PaintPremium
	premium, err := CalculatePaint(input)
	require.NoError(t, err)

	// Better paint covers more area per liter but costs more overall.
	assert.Less(t, premium.LitersRequired, economy.LitersRequired)
	assert.Greater(t, premium.Cost, economy.Cost)
}

func TestCalculatePaintInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		input     PaintInput
		wantField string
	}{
		{
			name:      "zero coats",
			input:     PaintInput{LengthFt: 10, WidthFt: 10, HeightFt: 8, Quality: PaintEconomy},
			wantField: "coats",
		},
		{
			name:      "negative doors",
			input:     PaintInput{LengthFt: 10, WidthFt: 10, HeightFt: 8, Doors: -1, Coats: 1, Quality: PaintEconomy},
			wantField: "doors",
		},
		{
			name:      "unknown quality",
			input:     PaintInput{LengthFt: 10, WidthFt: 10, HeightFt: 8, Coats: 1, Quality: "luxury"},
			wantField: "quality",
		},
		{
			name:      "openings exceed wall area",
			input:     PaintInput{LengthFt: 4, WidthFt: 4, HeightFt: 7, Doors: 6, Coats: 1, Quality: PaintEconomy},
			wantField: "doors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculatePaint(tt.input)

			var invalid *InvalidNumberError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}
