package estimate

import (
	"fmt"
	"math"
)

// PlumbingBuildingType selects base pipe-run lengths.
type PlumbingBuildingType string

const (
	PlumbingHouse      PlumbingBuildingType = "house"
	PlumbingApartment  PlumbingBuildingType = "apartment"
	PlumbingCommercial PlumbingBuildingType = "commercial"
)

// plumbingBase holds base run lengths in feet plus the per-additional-
// floor increments.
type plumbingBase struct {
	supplyFt, supplyPerFloorFt float64
	drainFt, drainPerFloorFt   float64
}

var plumbingBases = map[PlumbingBuildingType]plumbingBase{
	PlumbingHouse:      {supplyFt: 100, supplyPerFloorFt: 40, drainFt: 120, drainPerFloorFt: 50},
	PlumbingApartment:  {supplyFt: 80, supplyPerFloorFt: 40, drainFt: 100, drainPerFloorFt: 50},
	PlumbingCommercial: {supplyFt: 150, supplyPerFloorFt: 60, drainFt: 180, drainPerFloorFt: 70},
}

// Fixed per-fixture connection run lengths.
const (
	supplyPerFixtureFt = 6
	drainPerFixtureFt  = 4
	ventPerBathroomFt  = 10
)

// Storage and heater sizing.
const (
	storagePerOccupantL     = 135
	heaterPerBathroomL      = 25
	laborFractionOfMaterial = 0.40
)

// Per-foot pipe rates by segment (type and size are implied by the segment).
var pipeRates = map[string]float64{
	"supply-main":    45, // 1" CPVC
	"supply-branch":  35, // 3/4" CPVC
	"supply-fixture": 25, // 1/2" CPVC
	"drain-main":     60, // 4" PVC
	"drain-branch":   45, // 3" PVC
	"drain-fixture":  35, // 2" PVC
	"drain-vent":     30, // 2" PVC
}

// Fixed installed-fixture unit costs.
var fixtureCosts = map[string]float64{
	"toilet":       8000,
	"basin":        3000,
	"shower":       2500,
	"kitchen sink": 4000,
	"floor drain":  500,
}

// PipeSegment is one named run in a pipe category.
type PipeSegment struct {
	Name     string  `json:"name"`
	SizeIn   float64 `json:"sizeIn"`
	LengthFt float64 `json:"lengthFt"`
	Quantity int     `json:"quantity"`
	TotalFt  float64 `json:"totalFt"`
	Cost     float64 `json:"cost"`
}

// FixtureLine is one fixture type with count and cost.
type FixtureLine struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Cost  float64 `json:"cost"`
}

// PlumbingInput describes a building's plumbing scope.
type PlumbingInput struct {
	BuildingType PlumbingBuildingType `json:"buildingType"`
	Floors       int                  `json:"floors"`
	Bathrooms    int                  `json:"bathrooms"`
	Kitchens     int                  `json:"kitchens"`
	Occupants    int                  `json:"occupants"`
}

// PlumbingResult is the computed plumbing estimate.
type PlumbingResult struct {
	SupplySegments []PipeSegment `json:"supplySegments"`
	DrainSegments  []PipeSegment `json:"drainSegments"`
	Fixtures       []FixtureLine `json:"fixtures"`
	StorageLiters  float64       `json:"storageLiters"`
	HeaterLiters   float64       `json:"heaterLiters"`
	Pump           string        `json:"pump"`
	PipeCost       float64       `json:"pipeCost"`
	FixtureCost    float64       `json:"fixtureCost"`
	StorageCost    float64       `json:"storageCost"`
	MaterialCost   float64       `json:"materialCost"`
	LaborCost      float64       `json:"laborCost"`
	TotalCost      float64       `json:"totalCost"`
}

// pumpRecommendation is a floor-count-banded lookup.
func pumpRecommendation(floors int) string {
	switch {
	case floors <= 1:
		return "0.5 HP monoblock pump"
	case floors <= 3:
		return "1 HP monoblock pump"
	case floors <= 6:
		return "1.5-2 HP pressure pump"
	default:
		return "multistage booster pump system"
	}
}

// storageCost is a tiered per-liter rate: larger tanks are cheaper per liter.
func storageCost(liters float64) float64 {
	switch {
	case liters <= 500:
		return liters * 12
	case liters <= 1000:
		return liters * 10
	default:
		return liters * 8
	}
}

func segment(name string, sizeIn, lengthFt float64, quantity int) PipeSegment {
	total := lengthFt * float64(quantity)
	return PipeSegment{
		Name:     name,
		SizeIn:   sizeIn,
		LengthFt: lengthFt,
		Quantity: quantity,
		TotalFt:  total,
		Cost:     total * pipeRates[name],
	}
}

// CalculatePlumbing computes pipe runs, fixture counts, storage,
// heater and pump recommendations, and the full cost breakdown.
func CalculatePlumbing(in PlumbingInput) (*PlumbingResult, error) {
	base, ok := plumbingBases[in.BuildingType]
	if !ok {
		return nil, &InvalidNumberError{Field: "buildingType", Reason: "unknown building type"}
	}
	if in.Floors <= 0 {
		return nil, &InvalidNumberError{Field: "floors", Reason: "must be greater than zero"}
	}
	if in.Bathrooms <= 0 {
		return nil, &InvalidNumberError{Field: "bathrooms", Reason: "must be greater than zero"}
	}
	if in.Kitchens < 0 {
		return nil, &InvalidNumberError{Field: "kitchens", Reason: "must not be negative"}
	}
	if in.Occupants <= 0 {
		return nil, &InvalidNumberError{Field: "occupants", Reason: "must be greater than zero"}
	}

	extraFloors := float64(in.Floors - 1)

	// Fixture counts from bathroom/kitchen multipliers.
	fixtures := []FixtureLine{
		{Name: "toilet", Count: in.Bathrooms},
		{Name: "basin", Count: in.Bathrooms + in.Kitchens},
		{Name: "shower", Count: in.Bathrooms},
		{Name: "kitchen sink", Count: in.Kitchens},
		{Name: "floor drain", Count: in.Bathrooms + in.Kitchens},
	}
	fixtureCount := 0
	var fixtureTotal float64
	for i := range fixtures {
		unit, ok := fixtureCosts[fixtures[i].Name]
		if !ok {
			return nil, fmt.Errorf("no unit cost for fixture %q", fixtures[i].Name)
		}
		fixtures[i].Cost = unit * float64(fixtures[i].Count)
		fixtureTotal += fixtures[i].Cost
		fixtureCount += fixtures[i].Count
	}

	supplyRun := base.supplyFt + base.supplyPerFloorFt*extraFloors
	drainRun := base.drainFt + base.drainPerFloorFt*extraFloors

	supply := []PipeSegment{
		segment("supply-main", 1, supplyRun*0.3, 1),
		segment("supply-branch", 0.75, supplyRun*0.7, 1),
		segment("supply-fixture", 0.5, supplyPerFixtureFt, fixtureCount),
	}
	drain := []PipeSegment{
		segment("drain-main", 4, drainRun*0.35, 1),
		segment("drain-branch", 3, drainRun*0.65, 1),
		segment("drain-fixture", 2, drainPerFixtureFt, fixtureCount),
		segment("drain-vent", 2, ventPerBathroomFt, in.Bathrooms),
	}

	var pipeTotal float64
	for _, s := range supply {
		pipeTotal += s.Cost
	}
	for _, s := range drain {
		pipeTotal += s.Cost
	}

	storage := float64(in.Occupants) * storagePerOccupantL
	storage = math.Ceil(storage/100) * 100 // round up to tank sizes
	heater := float64(in.Bathrooms) * heaterPerBathroomL

	storageTotal := storageCost(storage)
	material := pipeTotal + fixtureTotal + storageTotal
	labor := material * laborFractionOfMaterial

	return &PlumbingResult{
		SupplySegments: supply,
		DrainSegments:  drain,
		Fixtures:       fixtures,
		StorageLiters:  storage,
		HeaterLiters:   heater,
		Pump:           pumpRecommendation(in.Floors),
		PipeCost:       pipeTotal,
		FixtureCost:    fixtureTotal,
		StorageCost:    storageTotal,
		MaterialCost:   material,
		LaborCost:      labor,
		TotalCost:      material + labor,
	}, nil
}
