package estimate

import "math"

// FlooringType selects coverage, pricing and labor tables.
type FlooringType string

const (
	FlooringCeramic   FlooringType = "ceramic"
	FlooringVitrified FlooringType = "vitrified"
	FlooringMarble    FlooringType = "marble"
	FlooringGranite   FlooringType = "granite"
	FlooringHardwood  FlooringType = "hardwood"
	FlooringLaminate  FlooringType = "laminate"
	FlooringVinyl     FlooringType = "vinyl"
	FlooringCarpet    FlooringType = "carpet"
	FlooringOther     FlooringType = "other"
)

// LayingPattern affects tile consumption through extra cuts.
type LayingPattern string

const (
	PatternStraight    LayingPattern = "straight"
	PatternDiagonal    LayingPattern = "diagonal"
	PatternHerringbone LayingPattern = "herringbone"
)

// flooringSpec holds the fixed per-material lookup values.
type flooringSpec struct {
	boxCoverageSqFt float64 // coverage of one retail box
	pricePerBox     float64 // unit-priced materials
	pricePerSqFt    float64 // area-priced materials (carpet, other)
	laborPerSqFt    float64
	plankAreaSqFt   float64 // plank-based materials; 0 for tile (tile size is an input)
	unitPriced      bool
}

var flooringSpecs = map[FlooringType]flooringSpec{
	FlooringCeramic:   {boxCoverageSqFt: 16, pricePerBox: 900, laborPerSqFt: 25, unitPriced: true},
	FlooringVitrified: {boxCoverageSqFt: 16, pricePerBox: 1400, laborPerSqFt: 30, unitPriced: true},
	FlooringMarble:    {boxCoverageSqFt: 20, pricePerBox: 3200, laborPerSqFt: 60, unitPriced: true},
	FlooringGranite:   {boxCoverageSqFt: 20, pricePerBox: 2800, laborPerSqFt: 55, unitPriced: true},
	FlooringHardwood:  {boxCoverageSqFt: 22, pricePerBox: 4200, laborPerSqFt: 45, plankAreaSqFt: 2.2, unitPriced: true},
	FlooringLaminate:  {boxCoverageSqFt: 24, pricePerBox: 1800, laborPerSqFt: 30, plankAreaSqFt: 2.4, unitPriced: true},
	FlooringVinyl:     {boxCoverageSqFt: 30, pricePerBox: 1200, laborPerSqFt: 20, plankAreaSqFt: 3.0, unitPriced: true},
	FlooringCarpet:    {boxCoverageSqFt: 60, pricePerSqFt: 85, laborPerSqFt: 15},
	FlooringOther:     {boxCoverageSqFt: 50, pricePerSqFt: 100, laborPerSqFt: 25},
}

// patternMultiplier is the extra material consumed by the laying pattern.
func patternMultiplier(p LayingPattern) float64 {
	switch p {
	case PatternDiagonal:
		return 1.15
	case PatternHerringbone:
		return 1.2
	default:
		return 1
	}
}

// FlooringInput describes a flooring job. Tile dimensions are only
// required for tile materials (ceramic, vitrified, marble, granite).
type FlooringInput struct {
	Length       float64       `json:"length"` // feet
	Width        float64       `json:"width"`  // feet
	WastagePct   float64       `json:"wastagePct"`
	Type         FlooringType  `json:"type"`
	Pattern      LayingPattern `json:"pattern"`
	TileLengthIn float64       `json:"tileLengthIn"`
	TileWidthIn  float64       `json:"tileWidthIn"`
}

// FlooringResult is the computed material takeoff for a flooring job.
type FlooringResult struct {
	AreaSqFt            float64 `json:"areaSqFt"`
	AreaWithWastageSqFt float64 `json:"areaWithWastageSqFt"`
	UnitsNeeded         int     `json:"unitsNeeded"` // tiles or planks; 0 for area-priced materials
	BoxesNeeded         int     `json:"boxesNeeded"`
	MaterialCost        float64 `json:"materialCost"`
	LaborCost           float64 `json:"laborCost"`
	TotalCost           float64 `json:"totalCost"`
}

// tileTypes are the materials whose unit size comes from the form.
func isTileType(t FlooringType) bool {
	switch t {
	case FlooringCeramic, FlooringVitrified, FlooringMarble, FlooringGranite:
		return true
	}
	return false
}

// CalculateFlooring computes unit counts, box counts and costs for a
// flooring job.
func CalculateFlooring(in FlooringInput) (*FlooringResult, error) {
	if err := requirePositive("length", in.Length); err != nil {
		return nil, err
	}
	if err := requirePositive("width", in.Width); err != nil {
		return nil, err
	}
	if err := requireNonNegative("wastagePct", in.WastagePct); err != nil {
		return nil, err
	}
	spec, ok := flooringSpecs[in.Type]
	if !ok {
		return nil, &InvalidNumberError{Field: "type", Reason: "unknown flooring type"}
	}

	area := in.Length * in.Width
	areaWithWastage := withWastage(area, in.WastagePct)
	mult := patternMultiplier(in.Pattern)

	units := 0
	switch {
	case isTileType(in.Type):
		if err := requirePositive("tileLengthIn", in.TileLengthIn); err != nil {
			return nil, err
		}
		if err := requirePositive("tileWidthIn", in.TileWidthIn); err != nil {
			return nil, err
		}
		tileAreaSqFt := (in.TileLengthIn * in.TileWidthIn) / 144
		units = int(math.Ceil(areaWithWastage * mult / tileAreaSqFt))
	case spec.plankAreaSqFt > 0:
		units = int(math.Ceil(areaWithWastage * mult / spec.plankAreaSqFt))
	}

	boxes := int(math.Ceil(areaWithWastage / spec.boxCoverageSqFt))

	var materialCost float64
	if spec.unitPriced {
		materialCost = float64(boxes) * spec.pricePerBox
	} else {
		materialCost = areaWithWastage * spec.pricePerSqFt
	}

	laborCost := area * spec.laborPerSqFt

	return &FlooringResult{
		AreaSqFt:            area,
		AreaWithWastageSqFt: areaWithWastage,
		UnitsNeeded:         units,
		BoxesNeeded:         boxes,
		MaterialCost:        materialCost,
		LaborCost:           laborCost,
		TotalCost:           materialCost + laborCost,
	}, nil
}
