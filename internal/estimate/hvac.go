package estimate

import (
	"fmt"
	"math"
)

// HVAC sizing assumptions.
const (
	btuPerSqFt         = 30
	btuPerOccupant     = 400
	btuPerTon          = 12000
	referenceCeilingFt = 8
	assumedSEER        = 14
	hvacRunHoursPerDay = 8
)

// HVACBuildingType scales the base load for usage intensity.
type HVACBuildingType string

const (
	HVACResidential HVACBuildingType = "residential"
	HVACOffice      HVACBuildingType = "office"
	HVACRetail      HVACBuildingType = "retail"
	HVACRestaurant  HVACBuildingType = "restaurant"
)

// HVACClimate scales the base load for the local climate.
type HVACClimate string

const (
	ClimateModerate HVACClimate = "moderate"
	ClimateHot      HVACClimate = "hot"
	ClimateVeryHot  HVACClimate = "veryHot"
	ClimateCold     HVACClimate = "cold"
)

// InsulationQuality scales the base load for envelope quality.
type InsulationQuality string

const (
	InsulationGood    InsulationQuality = "good"
	InsulationAverage InsulationQuality = "average"
	InsulationPoor    InsulationQuality = "poor"
)

// WindowCoverage scales the base load for glazing exposure.
type WindowCoverage string

const (
	WindowsLow    WindowCoverage = "low"
	WindowsMedium WindowCoverage = "medium"
	WindowsHigh   WindowCoverage = "high"
)

// Fixed factor tables. Each is an independent multiplier on the base load.
var (
	buildingFactors = map[HVACBuildingType]float64{
		HVACResidential: 1.0,
		HVACOffice:      1.15,
		HVACRetail:      1.25,
		HVACRestaurant:  1.4,
	}
	climateFactors = map[HVACClimate]float64{
		ClimateModerate: 1.0,
		ClimateHot:      1.15,
		ClimateVeryHot:  1.3,
		ClimateCold:     0.9,
	}
	insulationFactors = map[InsulationQuality]float64{
		InsulationGood:    0.9,
		InsulationAverage: 1.0,
		InsulationPoor:    1.15,
	}
	windowFactors = map[WindowCoverage]float64{
		WindowsLow:    0.95,
		WindowsMedium: 1.0,
		WindowsHigh:   1.15,
	}

	// applianceLoads is the BTU addend for common heat-producing equipment.
	applianceLoads = map[string]float64{
		"computer":     400,
		"television":   300,
		"refrigerator": 600,
		"oven":         1200,
		"lighting":     500,
	}
)

// HVACInput describes the space to be conditioned.
type HVACInput struct {
	AreaSqFt        float64           `json:"areaSqFt"`
	BuildingType    HVACBuildingType  `json:"buildingType"`
	Climate         HVACClimate       `json:"climate"`
	Insulation      InsulationQuality `json:"insulation"`
	Windows         WindowCoverage    `json:"windows"`
	CeilingHeightFt float64           `json:"ceilingHeightFt"`
	Occupants       int               `json:"occupants"`
	Appliances      []string          `json:"appliances"`
}

// HVACResult is the computed load, sizing and cost estimate.
type HVACResult struct {
	RequiredBTU       float64 `json:"requiredBTU"`
	Tonnage           float64 `json:"tonnage"`
	Recommendation    string  `json:"recommendation"`
	MainDuctDiaIn     float64 `json:"mainDuctDiaIn"`
	BranchDuctDiaIn   float64 `json:"branchDuctDiaIn"`
	VentCount         int     `json:"ventCount"`
	MonthlyEnergyCost float64 `json:"monthlyEnergyCost"`
	EquipmentCost     float64 `json:"equipmentCost"`
	InstallationCost  float64 `json:"installationCost"`
	DuctworkCost      float64 `json:"ductworkCost"`
	TotalCost         float64 `json:"totalCost"`
}

// systemRecommendation maps tonnage to an equipment class.
func systemRecommendation(tons float64) string {
	switch {
	case tons <= 1:
		return "1 ton window or split unit"
	case tons <= 2:
		return fmt.Sprintf("%.1f ton split unit", math.Ceil(tons*2)/2)
	case tons <= 5:
		return "multi-split system"
	case tons <= 20:
		return "packaged / VRF system"
	default:
		return "central chilled-water plant"
	}
}

// CalculateHVAC computes the cooling load, tonnage, duct sizes and
// cost breakdown for a space.
func CalculateHVAC(in HVACInput) (*HVACResult, error) {
	if err := requirePositive("areaSqFt", in.AreaSqFt); err != nil {
		return nil, err
	}
	if err := requirePositive("ceilingHeightFt", in.CeilingHeightFt); err != nil {
		return nil, err
	}
	if in.Occupants < 0 {
		return nil, &InvalidNumberError{Field: "occupants", Reason: "must not be negative"}
	}

	bf, ok := buildingFactors[in.BuildingType]
	if !ok {
		return nil, &InvalidNumberError{Field: "buildingType", Reason: "unknown building type"}
	}
	cf, ok := climateFactors[in.Climate]
	if !ok {
		return nil, &InvalidNumberError{Field: "climate", Reason: "unknown climate"}
	}
	insf, ok := insulationFactors[in.Insulation]
	if !ok {
		return nil, &InvalidNumberError{Field: "insulation", Reason: "unknown insulation quality"}
	}
	wf, ok := windowFactors[in.Windows]
	if !ok {
		return nil, &InvalidNumberError{Field: "windows", Reason: "unknown window coverage"}
	}

	var applianceBTU float64
	for _, a := range in.Appliances {
		load, ok := applianceLoads[a]
		if !ok {
			return nil, &InvalidNumberError{Field: "appliances", Reason: fmt.Sprintf("unknown appliance %q", a)}
		}
		applianceBTU += load
	}

	btu := in.AreaSqFt * btuPerSqFt
	btu *= bf * cf * insf * wf
	btu *= in.CeilingHeightFt / referenceCeilingFt
	btu += float64(in.Occupants) * btuPerOccupant
	btu += applianceBTU

	tons := btu / btuPerTon

	ventCount := int(math.Ceil(in.AreaSqFt / 150))

	// Power draw at the assumed SEER, run 8 hours a day.
	kw := btu / assumedSEER / 1000
	monthlyEnergy := kw * hvacRunHoursPerDay * 30 * electricityRate

	equipment := tons * 35000
	installation := tons * 8000
	ductwork := float64(ventCount) * 2500

	return &HVACResult{
		RequiredBTU:       btu,
		Tonnage:           tons,
		Recommendation:    systemRecommendation(tons),
		MainDuctDiaIn:     10 + 2*tons,
		BranchDuctDiaIn:   6 + tons,
		VentCount:         ventCount,
		MonthlyEnergyCost: monthlyEnergy,
		EquipmentCost:     equipment,
		InstallationCost:  installation,
		DuctworkCost:      ductwork,
		TotalCost:         equipment + installation + ductwork,
	}, nil
}
