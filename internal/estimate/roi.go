package estimate

// RenovationType selects the cost-vs-value recoup rate.
type RenovationType string

const (
	RenovationKitchen     RenovationType = "kitchen"
	RenovationBathroom    RenovationType = "bathroom"
	RenovationAddition    RenovationType = "addition"
	RenovationDeck        RenovationType = "deck"
	RenovationWindows     RenovationType = "windows"
	RenovationRoofing     RenovationType = "roofing"
	RenovationFlooring    RenovationType = "flooring"
	RenovationPainting    RenovationType = "painting"
	RenovationLandscaping RenovationType = "landscaping"
)

// recoupRates: fraction of the renovation cost recovered in resale value.
var recoupRates = map[RenovationType]float64{
	RenovationKitchen:     0.72,
	RenovationBathroom:    0.67,
	RenovationAddition:    0.63,
	RenovationDeck:        0.65,
	RenovationWindows:     0.68,
	RenovationRoofing:     0.60,
	RenovationFlooring:    0.75,
	RenovationPainting:    0.90,
	RenovationLandscaping: 0.70,
}

// ROIInput describes a renovation investment.
type ROIInput struct {
	HomeValue      float64        `json:"homeValue"`
	RenovationCost float64        `json:"renovationCost"`
	Type           RenovationType `json:"type"`
}

// ROIResult is the computed return estimate.
type ROIResult struct {
	RecoupRate   float64 `json:"recoupRate"`
	ValueAdded   float64 `json:"valueAdded"`
	NewHomeValue float64 `json:"newHomeValue"`
	NetGain      float64 `json:"netGain"`
	ROIPct       float64 `json:"roiPct"`
}

// CalculateROI computes the resale value added by a renovation and the
// resulting return on investment.
func CalculateROI(in ROIInput) (*ROIResult, error) {
	if err := requirePositive("homeValue", in.HomeValue); err != nil {
		return nil, err
	}
	if err := requirePositive("renovationCost", in.RenovationCost); err != nil {
		return nil, err
	}
	rate, ok := recoupRates[in.Type]
	if !ok {
		return nil, &InvalidNumberError{Field: "type", Reason: "unknown renovation type"}
	}

	valueAdded := in.RenovationCost * rate
	netGain := valueAdded - in.RenovationCost

	return &ROIResult{
		RecoupRate:   rate,
		ValueAdded:   valueAdded,
		NewHomeValue: in.HomeValue + valueAdded,
		NetGain:      netGain,
		ROIPct:       netGain / in.RenovationCost * 100,
	}, nil
}
