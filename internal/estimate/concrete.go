package estimate

import "math"

// ConcreteShape selects the volume formula for a pour.
type ConcreteShape string

const (
	ShapeRectangular ConcreteShape = "rectangular"
	ShapeCircular    ConcreteShape = "circular"
	ShapeSlab        ConcreteShape = "slab"
	ShapeCylindrical ConcreteShape = "cylindrical"
)

// Concrete pricing and logistics constants.
const (
	concreteCostPerYd3 = 6000 // currency units per cubic yard, delivered
	readyMixTruckYd3   = 10   // capacity of one ready-mix truck
)

// ConcreteInput describes a concrete pour. Dimensions are in feet
// except ThicknessIn (slab thickness, inches).
type ConcreteInput struct {
	Shape       ConcreteShape `json:"shape"`
	Length      float64       `json:"length"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	Radius      float64       `json:"radius"`      // circular pours
	Diameter    float64       `json:"diameter"`    // cylindrical columns
	ThicknessIn float64       `json:"thicknessIn"` // slab pours
	WastagePct  float64       `json:"wastagePct"`
	PSI         int           `json:"psi"`
}

// MixRatio is a cement:sand:aggregate proportion with the matching
// water-cement ratio, selected by PSI tier.
type MixRatio struct {
	Cement      float64 `json:"cement"`
	Sand        float64 `json:"sand"`
	Aggregate   float64 `json:"aggregate"`
	WaterCement float64 `json:"waterCement"`
}

func (m MixRatio) totalParts() float64 {
	return m.Cement + m.Sand + m.Aggregate
}

// ConcreteResult is the computed material takeoff for a pour.
type ConcreteResult struct {
	VolumeYd3            float64  `json:"volumeYd3"`
	VolumeWithWastageYd3 float64  `json:"volumeWithWastageYd3"`
	Mix                  MixRatio `json:"mix"`
	CementYd3            float64  `json:"cementYd3"`
	SandYd3              float64  `json:"sandYd3"`
	AggregateYd3         float64  `json:"aggregateYd3"`
	WaterGallons         float64  `json:"waterGallons"`
	CementBags           int      `json:"cementBags"`
	ReadyMixTrucks       int      `json:"readyMixTrucks"`
	Cost                 float64  `json:"cost"`
}

// mixForPSI selects the mix design for a target strength.
// Higher-strength mixes are cement-rich with a lower water-cement ratio.
func mixForPSI(psi int) MixRatio {
	switch {
	case psi >= 4000:
		return MixRatio{Cement: 1, Sand: 1.5, Aggregate: 3, WaterCement: 0.45}
	case psi >= 3500:
		return MixRatio{Cement: 1, Sand: 2, Aggregate: 3, WaterCement: 0.48}
	default:
		return MixRatio{Cement: 1, Sand: 2, Aggregate: 3, WaterCement: 0.5}
	}
}

// CalculateConcrete computes volume, mix quantities, water, bag count,
// truck count and cost for a concrete pour.
func CalculateConcrete(in ConcreteInput) (*ConcreteResult, error) {
	if err := requireNonNegative("wastagePct", in.WastagePct); err != nil {
		return nil, err
	}

	var volumeFt3 float64
	switch in.Shape {
	case ShapeRectangular:
		for _, f := range []struct {
			name string
			v    float64
		}{{"length", in.Length}, {"width", in.Width}, {"height", in.Height}} {
			if err := requirePositive(f.name, f.v); err != nil {
				return nil, err
			}
		}
		volumeFt3 = in.Length * in.Width * in.Height
	case ShapeCircular:
		if err := requirePositive("radius", in.Radius); err != nil {
			return nil, err
		}
		if err := requirePositive("height", in.Height); err != nil {
			return nil, err
		}
		volumeFt3 = math.Pi * in.Radius * in.Radius * in.Height
	case ShapeSlab:
		if err := requirePositive("length", in.Length); err != nil {
			return nil, err
		}
		if err := requirePositive("width", in.Width); err != nil {
			return nil, err
		}
		if err := requirePositive("thicknessIn", in.ThicknessIn); err != nil {
			return nil, err
		}
		volumeFt3 = in.Length * in.Width * (in.ThicknessIn / 12)
	case ShapeCylindrical:
		if err := requirePositive("diameter", in.Diameter); err != nil {
			return nil, err
		}
		if err := requirePositive("height", in.Height); err != nil {
			return nil, err
		}
		r := in.Diameter / 2
		volumeFt3 = math.Pi * r * r * in.Height
	default:
		return nil, &InvalidNumberError{Field: "shape", Reason: "unknown shape"}
	}

	volume := volumeFt3 / cubicFeetPerCubicYard
	volumeWithWastage := withWastage(volume, in.WastagePct)

	mix := mixForPSI(in.PSI)
	parts := mix.totalParts()

	cementYd3 := volumeWithWastage * mix.Cement / parts
	sandYd3 := volumeWithWastage * mix.Sand / parts
	aggregateYd3 := volumeWithWastage * mix.Aggregate / parts

	cementFt3 := cementYd3 * cubicFeetPerCubicYard

	return &ConcreteResult{
		VolumeYd3:            volume,
		VolumeWithWastageYd3: volumeWithWastage,
		Mix:                  mix,
		CementYd3:            cementYd3,
		SandYd3:              sandYd3,
		AggregateYd3:         aggregateYd3,
		WaterGallons:         cementFt3 * mix.WaterCement * gallonsPerCubicFoot,
		CementBags:           int(math.Ceil(cementFt3)), // 1 bag fills ~1 cubic foot
		ReadyMixTrucks:       int(math.Ceil(volumeWithWastage / readyMixTruckYd3)),
		Cost:                 volumeWithWastage * concreteCostPerYd3,
	}, nil
}
