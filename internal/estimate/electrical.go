package estimate

import "math"

// PropertyType classifies the premises for demand-factor selection.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyIndustrial  PropertyType = "industrial"
)

// Phase is the supply phase of the installation.
type Phase string

const (
	PhaseSingle Phase = "single"
	PhaseThree  Phase = "three"
)

// Supply assumptions: Indian LV distribution voltages at 0.8 power factor.
const (
	singlePhaseVolts = 230
	threePhaseVolts  = 400
	powerFactor      = 0.8
	electricityRate  = 8 // currency units per kWh
)

// standardSwitchSizes is the ladder of commonly available main switch
// ratings in amperes.
var standardSwitchSizes = []int{16, 25, 32, 40, 63, 100, 125, 160, 200, 250, 315, 400, 500, 630, 800, 1000}

// LoadItem is one appliance or circuit entry in the load schedule.
type LoadItem struct {
	Name        string  `json:"name"`
	Watts       float64 `json:"watts"`
	Quantity    float64 `json:"quantity"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

// ElectricalInput is a load schedule for a property.
type ElectricalInput struct {
	PropertyType PropertyType `json:"propertyType"`
	Phase        Phase        `json:"phase"`
	Items        []LoadItem   `json:"items"`
}

// ElectricalResult is the computed load analysis.
type ElectricalResult struct {
	ConnectedLoadW float64 `json:"connectedLoadW"`
	DailyKWh       float64 `json:"dailyKWh"`
	MonthlyUnits   float64 `json:"monthlyUnits"`
	DemandFactor   float64 `json:"demandFactor"`
	MaxDemandW     float64 `json:"maxDemandW"`
	CurrentA       float64 `json:"currentA"`
	MainSwitchA    int     `json:"mainSwitchA"`  // 0 when CustomSwitch is true
	CustomSwitch   bool    `json:"customSwitch"` // no standard size fits
	SolarSizeKW    float64 `json:"solarSizeKW"`
	MonthlyCost    float64 `json:"monthlyCost"`
}

// DefaultLoadItems returns the seed load schedule for a property type.
// The site pre-populates the calculator form with these.
func DefaultLoadItems(pt PropertyType) []LoadItem {
	switch pt {
	case PropertyCommercial:
		return []LoadItem{
			{Name: "Lighting", Watts: 40, Quantity: 30, HoursPerDay: 10},
			{Name: "Air Conditioner", Watts: 1500, Quantity: 4, HoursPerDay: 8},
			{Name: "Computers", Watts: 200, Quantity: 10, HoursPerDay: 9},
			{Name: "Water Cooler", Watts: 500, Quantity: 1, HoursPerDay: 10},
			{Name: "Lift", Watts: 3000, Quantity: 1, HoursPerDay: 4},
		}
	case PropertyIndustrial:
		return []LoadItem{
			{Name: "Machinery", Watts: 5000, Quantity: 4, HoursPerDay: 8},
			{Name: "Compressor", Watts: 3500, Quantity: 1, HoursPerDay: 6},
			{Name: "Lighting", Watts: 100, Quantity: 40, HoursPerDay: 10},
			{Name: "Exhaust Fans", Watts: 250, Quantity: 6, HoursPerDay: 10},
			{Name: "Welding Equipment", Watts: 4000, Quantity: 1, HoursPerDay: 3},
		}
	default: // residential
		return []LoadItem{
			{Name: "Lights", Watts: 15, Quantity: 10, HoursPerDay: 6},
			{Name: "Ceiling Fans", Watts: 75, Quantity: 4, HoursPerDay: 10},
			{Name: "Refrigerator", Watts: 200, Quantity: 1, HoursPerDay: 24},
			{Name: "Air Conditioner", Watts: 1500, Quantity: 1, HoursPerDay: 6},
			{Name: "Television", Watts: 120, Quantity: 1, HoursPerDay: 5},
			{Name: "Washing Machine", Watts: 500, Quantity: 1, HoursPerDay: 1},
			{Name: "Water Pump", Watts: 750, Quantity: 1, HoursPerDay: 1},
		}
	}
}

// demandFactor is the fraction of connected load assumed to be drawing
// simultaneously, a step function of connected load per property type.
func demandFactor(pt PropertyType, connectedLoadW float64) float64 {
	switch pt {
	case PropertyCommercial:
		if connectedLoadW <= 20000 {
			return 0.8
		}
		return 0.75
	case PropertyIndustrial:
		if connectedLoadW <= 50000 {
			return 0.85
		}
		return 0.8
	default:
		if connectedLoadW <= 10000 {
			return 0.7
		}
		return 0.6
	}
}

// CalculateElectrical computes the load analysis, switchgear sizing and
// energy cost for a load schedule.
func CalculateElectrical(in ElectricalInput) (*ElectricalResult, error) {
	if len(in.Items) == 0 {
		return nil, &InvalidNumberError{Field: "items", Reason: "at least one load item is required"}
	}

	var connected, dailyKWh float64
	for _, item := range in.Items {
		if err := requirePositive("watts", item.Watts); err != nil {
			return nil, err
		}
		if err := requirePositive("quantity", item.Quantity); err != nil {
			return nil, err
		}
		if err := requireNonNegative("hoursPerDay", item.HoursPerDay); err != nil {
			return nil, err
		}
		connected += item.Watts * item.Quantity
		dailyKWh += item.Watts * item.Quantity * item.HoursPerDay / 1000
	}

	df := demandFactor(in.PropertyType, connected)
	maxDemand := connected * df

	var current float64
	if in.Phase == PhaseThree {
		current = maxDemand / (math.Sqrt(3) * threePhaseVolts * powerFactor)
	} else {
		current = maxDemand / (singlePhaseVolts * powerFactor)
	}

	// Main switch: smallest standard rating with 25% headroom over the
	// computed current. Very large installations need a custom solution.
	required := current * 1.25
	switchSize := 0
	custom := true
	for _, size := range standardSwitchSizes {
		if float64(size) >= required {
			switchSize = size
			custom = false
			break
		}
	}

	monthlyUnits := dailyKWh * 30

	return &ElectricalResult{
		ConnectedLoadW: connected,
		DailyKWh:       dailyKWh,
		MonthlyUnits:   monthlyUnits,
		DemandFactor:   df,
		MaxDemandW:     maxDemand,
		CurrentA:       current,
		MainSwitchA:    switchSize,
		CustomSwitch:   custom,
		SolarSizeKW:    (monthlyUnits / 30) / 4,
		MonthlyCost:    monthlyUnits * electricityRate,
	}, nil
}
