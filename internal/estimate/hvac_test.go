package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHVAC(t *testing.T) {
	got, err := CalculateHVAC(HVACInput{
		AreaSqFt:        1200,
		BuildingType:    HVACResidential,
		Climate:         ClimateModerate,
		Insulation:      InsulationAverage,
		Windows:         WindowsMedium,
		CeilingHeightFt: 8,
	})
	require.NoError(t, err)

	// All factors neutral: 1200 sqft at 30 BTU/sqft.
	assert.InDelta(t, 36000, got.RequiredBTU, 0.001)
	assert.InDelta(t, 3, got.Tonnage, 0.001)
	assert.Equal(t, "multi-split system", got.Recommendation)
	assert.Equal(t, 8, got.VentCount) // one vent per 150 sqft
	assert.InDelta(t, 16, got.MainDuctDiaIn, 0.001)
	assert.InDelta(t, 9, got.BranchDuctDiaIn, 0.001)

	assert.InDelta(t, 3*35000, got.EquipmentCost, 0.001)
	assert.InDelta(t, 3*8000, got.InstallationCost, 0.001)
	assert.InDelta(t, 8*2500, got.DuctworkCost, 0.001)
	assert.InDelta(t, got.EquipmentCost+got.InstallationCost+got.DuctworkCost, got.TotalCost, 0.001)

	// 36000 BTU at SEER 14, 8 h/day, 30 days at the flat tariff.
	assert.InDelta(t, 36000.0/14/1000*8*30*8, got.MonthlyEnergyCost, 0.01)
}

func TestCalculateHVACLoadFactors(t *testing.T) {
	base := HVACInput{
		AreaSqFt:        1000,
		BuildingType:    HVACResidential,
		Climate:         ClimateModerate,
		Insulation:      InsulationAverage,
		Windows:         WindowsMedium,
		CeilingHeightFt: 8,
	}

	neutral, err := CalculateHVAC(base)
	require.NoError(t, err)

	hot := base
	hot.Climate = ClimateVeryHot
	hotResult, err := CalculateHVAC(hot)
	require.NoError(t, err)
	assert.InDelta(t, neutral.RequiredBTU*1.3, hotResult.RequiredBTU, 0.001)

	tall := base
	tall.CeilingHeightFt = 12
	tallResult, err := CalculateHVAC(tall)
	require.NoError(t, err)
	assert.InDelta(t, neutral.RequiredBTU*1.5, tallResult.RequiredBTU, 0.001)

	occupied := base
	occupied.Occupants = 5
	occupiedResult, err := CalculateHVAC(occupied)
	require.NoError(t, err)
	assert.InDelta(t, neutral.RequiredBTU+5*400, occupiedResult.RequiredBTU, 0.001)

	equipped := base
	equipped.Appliances = []string{"refrigerator", "oven"}
	equippedResult, err := CalculateHVAC(equipped)
	require.NoError(t, err)
	assert.InDelta(t, neutral.RequiredBTU+600+1200, equippedResult.RequiredBTU, 0.001)
}

func TestCalculateHVACRecommendations(t *testing.T) {
	tests := []struct {
		areaSqFt float64
		want     string
	}{
		{300, "1 ton window or split unit"},
		{700, "2.0 ton split unit"},
		{1500, "multi-split system"},
		{5000, "packaged / VRF system"},
		{100000, "central chilled-water plant"},
	}

	for _, tt := range tests {
		got, err := CalculateHVAC(HVACInput{
			AreaSqFt:        tt.areaSqFt,
			BuildingType:    HVACResidential,
			Climate:         ClimateModerate,
			Insulation:      InsulationAverage,
			Windows:         WindowsMedium,
			CeilingHeightFt: 8,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Recommendation, "area=%v", tt.areaSqFt)
	}
}

func TestCalculateHVACInvalidInput(t *testing.T) {
	valid := HVACInput{
		AreaSqFt:        1000,
		BuildingType:    HVACResidential,
		Climate:         ClimateModerate,
		Insulation:      InsulationAverage,
		Windows:         WindowsMedium,
		CeilingHeightFt: 8,
	}

	tests := []struct {
		name      string
		mutate    func(*HVACInput)
		wantField string
	}{
		{"zero area", func(in *HVACInput) { in.AreaSqFt = 0 }, "areaSqFt"},
		{"zero ceiling", func(in *HVACInput) { in.CeilingHeightFt = 0 }, "ceilingHeightFt"},
		{"negative occupants", func(in *HVACInput) { in.Occupants = -1 }, "occupants"},
		{"unknown building type", func(in *HVACInput) { in.BuildingType = "barn" }, "buildingType"},
		{"unknown climate", func(in *HVACInput) { in.Climate = "arctic" }, "climate"},
		{"unknown insulation", func(in *HVACInput) { in.Insulation = "excellent" }, "insulation"},
		{"unknown windows", func(in *HVACInput) { in.Windows = "floor-to-ceiling" }, "windows"},
		{"unknown appliance", func(in *HVACInput) { in.Appliances = []string{"kiln"} }, "appliances"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := CalculateHVAC(input)

			var invalid *InvalidNumberError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantField, invalid.Field)
		})
	}
}
