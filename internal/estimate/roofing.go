package estimate

import "math"

// RoofType selects the area multiplier applied to the flat footprint.
type RoofType string

const (
	RoofFlat    RoofType = "flat"
	RoofGable   RoofType = "gable"
	RoofHip     RoofType = "hip"
	RoofMansard RoofType = "mansard"
	RoofGambrel RoofType = "gambrel"
)

// RoofMaterial selects coverage, pricing and labor tables.
type RoofMaterial string

const (
	RoofAsphaltShingle RoofMaterial = "asphaltShingle"
	RoofClayTile       RoofMaterial = "clayTile"
	RoofConcreteTile   RoofMaterial = "concreteTile"
	RoofMetalSheet     RoofMaterial = "metalSheet"
)

// roofSpec: coverage per retail unit, price per unit, labor per 100 sqft.
type roofSpec struct {
	coveragePerUnitSqFt float64
	pricePerUnit        float64
	laborPer100SqFt     float64
}

var roofSpecs = map[RoofMaterial]roofSpec{
	RoofAsphaltShingle: {coveragePerUnitSqFt: 33.3, pricePerUnit: 2400, laborPer100SqFt: 5500},
	RoofClayTile:       {coveragePerUnitSqFt: 1.1, pricePerUnit: 55, laborPer100SqFt: 9000},
	RoofConcreteTile:   {coveragePerUnitSqFt: 1.2, pricePerUnit: 45, laborPer100SqFt: 8000},
	RoofMetalSheet:     {coveragePerUnitSqFt: 32, pricePerUnit: 3800, laborPer100SqFt: 4500},
}

// RoofInput describes a roof. Pitch is the rise per 12 units of run.
type RoofInput struct {
	LengthFt   float64      `json:"lengthFt"`
	WidthFt    float64      `json:"widthFt"`
	Pitch      float64      `json:"pitch"`
	Type       RoofType     `json:"type"`
	Material   RoofMaterial `json:"material"`
	WastagePct float64      `json:"wastagePct"`
}

// RoofResult is the computed roofing estimate.
type RoofResult struct {
	FlatAreaSqFt        float64 `json:"flatAreaSqFt"`
	SlopeFactor         float64 `json:"slopeFactor"`
	RoofAreaSqFt        float64 `json:"roofAreaSqFt"`
	AreaWithWastageSqFt float64 `json:"areaWithWastageSqFt"`
	UnitsNeeded         int     `json:"unitsNeeded"`
	MaterialCost        float64 `json:"materialCost"`
	LaborCost           float64 `json:"laborCost"`
	TotalCost           float64 `json:"totalCost"`
}

// CalculateRoofing computes the sloped roof area, material units and
// cost for a roof.
func CalculateRoofing(in RoofInput) (*RoofResult, error) {
	if err := requirePositive("lengthFt", in.LengthFt); err != nil {
		return nil, err
	}
	if err := requirePositive("widthFt", in.WidthFt); err != nil {
		return nil, err
	}
	if err := requireNonNegative("pitch", in.Pitch); err != nil {
		return nil, err
	}
	if err := requireNonNegative("wastagePct", in.WastagePct); err != nil {
		return nil, err
	}
	spec, ok := roofSpecs[in.Material]
	if !ok {
		return nil, &InvalidNumberError{Field: "material", Reason: "unknown roofing material"}
	}

	flatArea := in.LengthFt * in.WidthFt
	slopeFactor := math.Sqrt(1 + (in.Pitch/12)*(in.Pitch/12))

	var roofArea float64
	switch in.Type {
	case RoofGable:
		roofArea = flatArea * slopeFactor
	case RoofHip:
		// Hip roofs carry extra ridge/valley area over a plain gable.
		roofArea = flatArea * slopeFactor * 1.2
	case RoofMansard:
		roofArea = flatArea * 1.4
	case RoofGambrel:
		roofArea = flatArea * 1.3
	case RoofFlat:
		roofArea = flatArea
	default:
		return nil, &InvalidNumberError{Field: "type", Reason: "unknown roof type"}
	}

	areaWithWastage := withWastage(roofArea, in.WastagePct)
	units := int(math.Ceil(areaWithWastage / spec.coveragePerUnitSqFt))

	materialCost := float64(units) * spec.pricePerUnit
	laborCost := roofArea / 100 * spec.laborPer100SqFt

	return &RoofResult{
		FlatAreaSqFt:        flatArea,
		SlopeFactor:         slopeFactor,
		RoofAreaSqFt:        roofArea,
		AreaWithWastageSqFt: areaWithWastage,
		UnitsNeeded:         units,
		MaterialCost:        materialCost,
		LaborCost:           laborCost,
		TotalCost:           materialCost + laborCost,
	}, nil
}
