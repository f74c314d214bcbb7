package estimate

import "math"

// SoilType selects the bulking factor applied to cut volumes.
type SoilType string

const (
	SoilSand    SoilType = "sand"
	SoilGravel  SoilType = "gravel"
	SoilTopsoil SoilType = "topsoil"
	SoilClay    SoilType = "clay"
	SoilRock    SoilType = "rock"
)

// bulkingFactors: fractional volume increase of excavated soil over
// its compacted in-situ state.
var bulkingFactors = map[SoilType]float64{
	SoilSand:    0.12,
	SoilGravel:  0.15,
	SoilTopsoil: 0.25,
	SoilClay:    0.30,
	SoilRock:    0.50,
}

// GradingEquipment selects the production rate used for time estimates.
type GradingEquipment string

const (
	EquipmentExcavator GradingEquipment = "excavator"
	EquipmentSkidSteer GradingEquipment = "skidSteer"
	EquipmentBulldozer GradingEquipment = "bulldozer"
	EquipmentGrader    GradingEquipment = "grader"
	EquipmentManual    GradingEquipment = "manual"
)

// productionRates in cubic yards moved per hour.
var productionRates = map[GradingEquipment]float64{
	EquipmentExcavator: 50,
	EquipmentSkidSteer: 20,
	EquipmentBulldozer: 60,
	EquipmentGrader:    80,
	EquipmentManual:    4,
}

const (
	// Fill volumes get a flat 10% compaction allowance.
	fillCompactionAllowance = 0.10

	// dumpTruckYd3 is the capacity of one haul truck.
	dumpTruckYd3 = 10
)

// GradingOperation is the direction of earth movement.
type GradingOperation string

const (
	OperationCut  GradingOperation = "cut"
	OperationFill GradingOperation = "fill"
	OperationNone GradingOperation = "none"
)

// GradingInput describes a land grading job. Elevations are absolute
// site levels in feet.
type GradingInput struct {
	Length             float64          `json:"length"`
	Width              float64          `json:"width"`
	CurrentElevationFt float64          `json:"currentElevationFt"`
	DesiredElevationFt float64          `json:"desiredElevationFt"`
	Soil               SoilType         `json:"soil"`
	Equipment          GradingEquipment `json:"equipment"`
	PricePerYd3        float64          `json:"pricePerYd3"`
}

// GradingResult is the computed earthwork estimate.
type GradingResult struct {
	AreaSqFt           float64          `json:"areaSqFt"`
	HeightDifferenceFt float64          `json:"heightDifferenceFt"`
	Operation          GradingOperation `json:"operation"`
	VolumeYd3          float64          `json:"volumeYd3"`
	AdjustedVolumeYd3  float64          `json:"adjustedVolumeYd3"`
	TruckLoads         int              `json:"truckLoads"`
	Cost               float64          `json:"cost"`
	EstimatedHours     float64          `json:"estimatedHours"`
}

// CalculateGrading computes cut/fill volumes, haulage and cost for
// bringing a plot to the desired elevation.
func CalculateGrading(in GradingInput) (*GradingResult, error) {
	if err := requirePositive("length", in.Length); err != nil {
		return nil, err
	}
	if err := requirePositive("width", in.Width); err != nil {
		return nil, err
	}
	if err := requireFinite("currentElevationFt", in.CurrentElevationFt); err != nil {
		return nil, err
	}
	if err := requireFinite("desiredElevationFt", in.DesiredElevationFt); err != nil {
		return nil, err
	}
	if err := requirePositive("pricePerYd3", in.PricePerYd3); err != nil {
		return nil, err
	}
	rate, ok := productionRates[in.Equipment]
	if !ok {
		return nil, &InvalidNumberError{Field: "equipment", Reason: "unknown equipment type"}
	}

	area := in.Length * in.Width
	diff := in.CurrentElevationFt - in.DesiredElevationFt

	result := &GradingResult{
		AreaSqFt:           area,
		HeightDifferenceFt: diff,
		Operation:          OperationNone,
	}
	if diff == 0 {
		return result, nil
	}

	volumeYd3 := area * math.Abs(diff) / cubicFeetPerCubicYard

	var adjusted float64
	if diff > 0 {
		// Cut: excavated soil bulks up before it is hauled away.
		bulking, ok := bulkingFactors[in.Soil]
		if !ok {
			return nil, &InvalidNumberError{Field: "soil", Reason: "unknown soil type"}
		}
		result.Operation = OperationCut
		adjusted = volumeYd3 * (1 + bulking)
	} else {
		// Fill: extra material is needed to reach grade after compaction.
		result.Operation = OperationFill
		adjusted = volumeYd3 * (1 + fillCompactionAllowance)
	}

	result.VolumeYd3 = volumeYd3
	result.AdjustedVolumeYd3 = adjusted
	result.TruckLoads = int(math.Ceil(adjusted / dumpTruckYd3))
	result.Cost = adjusted * in.PricePerYd3
	result.EstimatedHours = adjusted / rate

	return result, nil
}
