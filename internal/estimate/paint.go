package estimate

// PaintQuality selects coverage and pricing.
type PaintQuality string

const (
	PaintEconomy  PaintQuality = "economy"
	PaintStandard PaintQuality = "standard"
	PaintPremium  PaintQuality = "premium"
)

// paintSpec: coverage in square feet per liter per coat, price per liter.
type paintSpec struct {
	coverageSqFt  float64
	pricePerLiter float64
}

var paintSpecs = map[PaintQuality]paintSpec{
	PaintEconomy:  {coverageSqFt: 100, pricePerLiter: 180},
	PaintStandard: {coverageSqFt: 120, pricePerLiter: 280},
	PaintPremium:  {coverageSqFt: 140, pricePerLiter: 450},
}

// Fixed per-unit opening areas in square feet.
const (
	doorAreaSqFt   = 21 // 3 ft x 7 ft
	windowAreaSqFt = 15 // 3 ft x 5 ft
)

// canSizesLiters is the descending retail can ladder used for greedy
// decomposition of the required quantity.
var canSizesLiters = []int{20, 10, 4, 1}

// PaintInput describes a room to be painted.
type PaintInput struct {
	LengthFt float64      `json:"lengthFt"`
	WidthFt  float64      `json:"widthFt"`
	HeightFt float64      `json:"heightFt"`
	Doors    int          `json:"doors"`
	Windows  int          `json:"windows"`
	Coats    int          `json:"coats"`
	Quality  PaintQuality `json:"quality"`
}

// PaintCan is one line of the shopping list.
type PaintCan struct {
	SizeLiters int `json:"sizeLiters"`
	Count      int `json:"count"`
}

// PaintResult is the computed paint estimate.
type PaintResult struct {
	WallAreaSqFt      float64    `json:"wallAreaSqFt"`
	PaintableAreaSqFt float64    `json:"paintableAreaSqFt"`
	LitersRequired    float64    `json:"litersRequired"`
	Cans              []PaintCan `json:"cans"`
	PurchasedLiters   int        `json:"purchasedLiters"`
	Cost              float64    `json:"cost"`
}

// CalculatePaint computes the paintable area, required liters, a can
// breakdown and cost for a room.
func CalculatePaint(in PaintInput) (*PaintResult, error) {
	if err := requirePositive("lengthFt", in.LengthFt); err != nil {
		return nil, err
	}
	if err := requirePositive("widthFt", in.WidthFt); err != nil {
		return nil, err
	}
	if err := requirePositive("heightFt", in.HeightFt); err != nil {
		return nil, err
	}
	if in.Doors < 0 {
		return nil, &InvalidNumberError{Field: "doors", Reason: "must not be negative"}
	}
	if in.Windows < 0 {
		return nil, &InvalidNumberError{Field: "windows", Reason: "must not be negative"}
	}
	if in.Coats <= 0 {
		return nil, &InvalidNumberError{Field: "coats", Reason: "must be greater than zero"}
	}
	spec, ok := paintSpecs[in.Quality]
	if !ok {
		return nil, &InvalidNumberError{Field: "quality", Reason: "unknown paint quality"}
	}

	wallArea := 2 * (in.LengthFt + in.WidthFt) * in.HeightFt
	openings := float64(in.Doors)*doorAreaSqFt + float64(in.Windows)*windowAreaSqFt
	paintable := wallArea - openings
	if paintable <= 0 {
		return nil, &InvalidNumberError{Field: "doors", Reason: "openings exceed the wall area"}
	}

	liters := paintable / spec.coverageSqFt * float64(in.Coats)

	// Greedy can selection over the descending size ladder; any
	// fractional remainder takes one extra 1L can.
	var cans []PaintCan
	purchased := 0
	remaining := liters
	for _, size := range canSizesLiters {
		count := int(remaining / float64(size))
		if count > 0 {
			cans = append(cans, PaintCan{SizeLiters: size, Count: count})
			purchased += count * size
			remaining -= float64(count * size)
		}
	}
	if remaining > 0 {
		purchased++
		if n := len(cans); n > 0 && cans[n-1].SizeLiters == 1 {
			cans[n-1].Count++
		} else {
			cans = append(cans, PaintCan{SizeLiters: 1, Count: 1})
		}
	}

	return &PaintResult{
		WallAreaSqFt:      wallArea,
		PaintableAreaSqFt: paintable,
		LitersRequired:    liters,
		Cans:              cans,
		PurchasedLiters:   purchased,
		Cost:              liters * spec.pricePerLiter,
	}, nil
}
