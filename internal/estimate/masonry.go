package estimate

import "math"

// BrickType selects the nominal brick dimension table.
type BrickType string

const (
	BrickStandard BrickType = "standard"
	BrickModular  BrickType = "modular"
)

// brickDimensions in inches (length, width, height).
var brickDimensions = map[BrickType][3]float64{
	BrickStandard: {8, 3.625, 2.25},
	BrickModular:  {7.625, 3.625, 2.25},
}

// Masonry constants.
const (
	brickWastePct        = 0.10 // 10% breakage and cutting allowance
	mortarFractionOfWall = 0.20 // mortar volume as a share of wall volume
	cementBagFt3         = 1.25 // volume of one cement bag
	waterPerBagLiters    = 80
)

// MasonryInput describes a brick wall.
type MasonryInput struct {
	WallLengthFt    float64   `json:"wallLengthFt"`
	WallHeightFt    float64   `json:"wallHeightFt"`
	OpeningsSqFt    float64   `json:"openingsSqFt"` // total door/window area
	ThicknessIn     float64   `json:"thicknessIn"`
	Brick           BrickType `json:"brick"`
	MortarSandParts float64   `json:"mortarSandParts"` // sand parts per 1 part cement
}

// MasonryResult is the computed material takeoff for a wall.
type MasonryResult struct {
	WallAreaSqFt    float64 `json:"wallAreaSqFt"`
	WallVolumeFt3   float64 `json:"wallVolumeFt3"`
	BricksNeeded    int     `json:"bricksNeeded"`
	MortarVolumeFt3 float64 `json:"mortarVolumeFt3"`
	CementVolumeFt3 float64 `json:"cementVolumeFt3"`
	CementBags      int     `json:"cementBags"`
	SandFt3         float64 `json:"sandFt3"`
	WaterLiters     float64 `json:"waterLiters"`
}

// CalculateMasonry computes brick count, mortar, cement, sand and
// water for a wall.
func CalculateMasonry(in MasonryInput) (*MasonryResult, error) {
	if err := requirePositive("wallLengthFt", in.WallLengthFt); err != nil {
		return nil, err
	}
	if err := requirePositive("wallHeightFt", in.WallHeightFt); err != nil {
		return nil, err
	}
	if err := requireNonNegative("openingsSqFt", in.OpeningsSqFt); err != nil {
		return nil, err
	}
	if err := requirePositive("thicknessIn", in.ThicknessIn); err != nil {
		return nil, err
	}
	if err := requirePositive("mortarSandParts", in.MortarSandParts); err != nil {
		return nil, err
	}
	dims, ok := brickDimensions[in.Brick]
	if !ok {
		return nil, &InvalidNumberError{Field: "brick", Reason: "unknown brick type"}
	}

	wallArea := in.WallLengthFt*in.WallHeightFt - in.OpeningsSqFt
	if wallArea <= 0 {
		return nil, &InvalidNumberError{Field: "openingsSqFt", Reason: "openings exceed the wall area"}
	}
	wallVolume := wallArea * (in.ThicknessIn / 12)

	brickVolume := dims[0] * dims[1] * dims[2] / cubicInchesPerCubicFoot
	bricks := int(math.Ceil(wallVolume / brickVolume * (1 + brickWastePct)))

	mortarVolume := wallVolume * mortarFractionOfWall
	ratio := in.MortarSandParts
	cementVolume := mortarVolume / (1 + ratio)
	bags := int(math.Ceil(cementVolume / cementBagFt3))
	sand := math.Ceil(mortarVolume * ratio / (1 + ratio))

	return &MasonryResult{
		WallAreaSqFt:    wallArea,
		WallVolumeFt3:   wallVolume,
		BricksNeeded:    bricks,
		MortarVolumeFt3: mortarVolume,
		CementVolumeFt3: cementVolume,
		CementBags:      bags,
		SandFt3:         sand,
		WaterLiters:     float64(bags) * waterPerBagLiters,
	}, nil
}
