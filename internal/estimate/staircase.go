package estimate

import (
	"fmt"
	"math"
)

// StaircaseType selects the footprint geometry.
type StaircaseType string

const (
	StairStraight StaircaseType = "straight"
	StairLShaped  StaircaseType = "lshaped"
	StairUShaped  StaircaseType = "ushaped"
	StairSpiral   StaircaseType = "spiral"
)

// Lumber dimensions in inches.
const (
	treadThicknessIn     = 1.5
	riserThicknessIn     = 0.75
	stringerDepthIn      = 11.25 // 2x12 stock
	stringerThicknessIn  = 1.5
	spiralColumnRadiusIn = 2
)

// Residential stair code limits (IRC-style).
const (
	codeRiserMinIn  = 4
	codeRiserMaxIn  = 7.75
	codeTreadMinIn  = 10
	codeTreadMaxIn  = 14
	codeAngleMinDeg = 20
	codeAngleMaxDeg = 45
	codeWidthMinIn  = 36
)

// StaircaseInput describes a staircase. All dimensions are in inches.
type StaircaseInput struct {
	FloorHeightIn    float64       `json:"floorHeightIn"`
	PreferredRiserIn float64       `json:"preferredRiserIn"`
	TreadDepthIn     float64       `json:"treadDepthIn"`
	WidthIn          float64       `json:"widthIn"`
	Type             StaircaseType `json:"type"`
}

// StaircaseResult is the computed stair geometry and material takeoff.
type StaircaseResult struct {
	Steps             int      `json:"steps"`
	ActualRiserIn     float64  `json:"actualRiserIn"`
	TotalRunIn        float64  `json:"totalRunIn"`
	FootprintSqFt     float64  `json:"footprintSqFt"`
	StairAngleDeg     float64  `json:"stairAngleDeg"`
	HeadroomIn        float64  `json:"headroomIn"`
	TreadVolumeFt3    float64  `json:"treadVolumeFt3"`
	RiserVolumeFt3    float64  `json:"riserVolumeFt3"`
	StringerVolumeFt3 float64  `json:"stringerVolumeFt3"`
	TotalLumberFt3    float64  `json:"totalLumberFt3"`
	IsCodeCompliant   bool     `json:"isCodeCompliant"`
	Notes             []string `json:"notes"`
}

// CalculateStaircase computes step count, geometry, material volumes
// and code compliance for a staircase.
func CalculateStaircase(in StaircaseInput) (*StaircaseResult, error) {
	if err := requirePositive("floorHeightIn", in.FloorHeightIn); err != nil {
		return nil, err
	}
	if err := requirePositive("preferredRiserIn", in.PreferredRiserIn); err != nil {
		return nil, err
	}
	if err := requirePositive("treadDepthIn", in.TreadDepthIn); err != nil {
		return nil, err
	}
	if err := requirePositive("widthIn", in.WidthIn); err != nil {
		return nil, err
	}

	steps := int(math.Round(in.FloorHeightIn / in.PreferredRiserIn))
	if steps < 1 {
		steps = 1
	}
	actualRiser := in.FloorHeightIn / float64(steps)
	totalRun := float64(steps) * in.TreadDepthIn

	// Footprint depends on the staircase type.
	var footprintSqIn float64
	switch in.Type {
	case StairStraight:
		footprintSqIn = totalRun * in.WidthIn
	case StairLShaped:
		// Two flights around a square landing of one stair width.
		leg := totalRun / 2
		footprintSqIn = (leg+in.WidthIn)*in.WidthIn + leg*in.WidthIn
	case StairUShaped:
		// Two parallel flights plus a full-width turning landing.
		leg := totalRun / 2
		footprintSqIn = (leg + in.WidthIn) * (2 * in.WidthIn)
	case StairSpiral:
		// Treads radiate from a center column; the outer diameter is
		// the column plus one stair width per side.
		outerRadius := spiralColumnRadiusIn + in.WidthIn
		footprintSqIn = math.Pi * outerRadius * outerRadius
	default:
		return nil, &InvalidNumberError{Field: "type", Reason: "unknown staircase type"}
	}

	angleRad := math.Atan(in.FloorHeightIn / totalRun)
	angleDeg := degrees(angleRad)
	headroom := 80 + 12*math.Cos(angleRad)

	treadVolume := float64(steps) * in.WidthIn * in.TreadDepthIn * treadThicknessIn / cubicInchesPerCubicFoot
	riserVolume := float64(steps) * in.WidthIn * actualRiser * riserThicknessIn / cubicInchesPerCubicFoot

	var stringerVolume float64
	if in.Type == StairSpiral {
		// Spirals have a load-bearing center column instead of stringers.
		stringerVolume = math.Pi * spiralColumnRadiusIn * spiralColumnRadiusIn * in.FloorHeightIn / cubicInchesPerCubicFoot
	} else {
		stringerLen := math.Sqrt(totalRun*totalRun + in.FloorHeightIn*in.FloorHeightIn)
		stringerVolume = 2 * stringerLen * stringerDepthIn * stringerThicknessIn / cubicInchesPerCubicFoot
	}

	var notes []string
	if actualRiser < codeRiserMinIn || actualRiser > codeRiserMaxIn {
		notes = append(notes, fmt.Sprintf("riser height %.2f\" is outside the %g-%g\" code range", actualRiser, float64(codeRiserMinIn), codeRiserMaxIn))
	}
	if in.TreadDepthIn < codeTreadMinIn || in.TreadDepthIn > codeTreadMaxIn {
		notes = append(notes, fmt.Sprintf("tread depth %.2f\" is outside the %g-%g\" code range", in.TreadDepthIn, float64(codeTreadMinIn), float64(codeTreadMaxIn)))
	}
	if angleDeg < codeAngleMinDeg || angleDeg > codeAngleMaxDeg {
		notes = append(notes, fmt.Sprintf("stair angle %.1f° is outside the %d-%d° comfortable range", angleDeg, codeAngleMinDeg, codeAngleMaxDeg))
	}
	if in.WidthIn < codeWidthMinIn {
		notes = append(notes, fmt.Sprintf("stair width %.1f\" is below the %d\" code minimum", in.WidthIn, codeWidthMinIn))
	}

	return &StaircaseResult{
		Steps:             steps,
		ActualRiserIn:     actualRiser,
		TotalRunIn:        totalRun,
		FootprintSqFt:     footprintSqIn / 144,
		StairAngleDeg:     angleDeg,
		HeadroomIn:        headroom,
		TreadVolumeFt3:    treadVolume,
		RiserVolumeFt3:    riserVolume,
		StringerVolumeFt3: stringerVolume,
		TotalLumberFt3:    treadVolume + riserVolume + stringerVolume,
		IsCodeCompliant:   len(notes) == 0,
		Notes:             notes,
	}, nil
}
