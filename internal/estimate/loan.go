package estimate

import "math"

// DrawStrategy is the disbursement plan for the construction phase.
type DrawStrategy string

const (
	DrawEqual    DrawStrategy = "equal"
	DrawFrontend DrawStrategy = "frontend"
	DrawBackend  DrawStrategy = "backend"
	DrawCustom   DrawStrategy = "custom"
)

// customDrawBuckets is the fixed 5-phase distribution used by the
// "custom" strategy: foundation, structure, roofing/services, finishes,
// handover.
var customDrawBuckets = [5]float64{0.10, 0.25, 0.30, 0.20, 0.15}

// LoanInput describes a construction loan.
type LoanInput struct {
	ProjectCost        float64      `json:"projectCost"`
	DownPayment        float64      `json:"downPayment"`
	AnnualRatePct      float64      `json:"annualRatePct"`
	TermYears          int          `json:"termYears"`
	ConstructionMonths int          `json:"constructionMonths"`
	Strategy           DrawStrategy `json:"strategy"`
}

// Draw is one month's disbursement during construction.
type Draw struct {
	Month           int     `json:"month"`
	Amount          float64 `json:"amount"`
	CumulativeDrawn float64 `json:"cumulativeDrawn"`
	Interest        float64 `json:"interest"`
}

// AmortizationYear aggregates twelve months (or the loan tail) of the
// permanent-phase schedule.
type AmortizationYear struct {
	Year      int     `json:"year"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// LoanResult is the computed financing plan.
type LoanResult struct {
	LoanAmount           float64            `json:"loanAmount"`
	MonthlyRate          float64            `json:"monthlyRate"`
	Draws                []Draw             `json:"draws"`
	ConstructionInterest float64            `json:"constructionInterest"`
	MonthlyPayment       float64            `json:"monthlyPayment"`
	TotalInterest        float64            `json:"totalInterest"`
	Schedule             []AmortizationYear `json:"schedule"`
}

// drawWeights returns per-month fractions of the loan amount for the
// construction phase. Frontend/backend loading uses triangular-number
// weights; custom spreads fixed bucket percentages over five phases.
func drawWeights(strategy DrawStrategy, months int) []float64 {
	weights := make([]float64, months)
	switch strategy {
	case DrawFrontend:
		t := float64(months*(months+1)) / 2
		for i := 0; i < months; i++ {
			weights[i] = float64(months-i) / t
		}
	case DrawBackend:
		t := float64(months*(months+1)) / 2
		for i := 0; i < months; i++ {
			weights[i] = float64(i+1) / t
		}
	case DrawCustom:
		// Overlay the five fixed phases on the construction timeline
		// and give each month the bucket weight falling inside it, so
		// the schedule stays complete even when months < 5.
		for i := 0; i < months; i++ {
			monthStart := float64(i) / float64(months)
			monthEnd := float64(i+1) / float64(months)
			for phase, bucket := range customDrawBuckets {
				phaseStart := float64(phase) / 5
				phaseEnd := float64(phase+1) / 5
				overlap := math.Min(monthEnd, phaseEnd) - math.Max(monthStart, phaseStart)
				if overlap > 0 {
					weights[i] += bucket * overlap * 5
				}
			}
		}
	default: // equal
		for i := 0; i < months; i++ {
			weights[i] = 1 / float64(months)
		}
	}
	return weights
}

// CalculateLoan computes the draw schedule, construction interest,
// permanent payment and yearly amortization table for a construction
// loan.
func CalculateLoan(in LoanInput) (*LoanResult, error) {
	if err := requirePositive("projectCost", in.ProjectCost); err != nil {
		return nil, err
	}
	if err := requireNonNegative("downPayment", in.DownPayment); err != nil {
		return nil, err
	}
	if in.DownPayment >= in.ProjectCost {
		return nil, &InvalidNumberError{Field: "downPayment", Reason: "must be less than the project cost"}
	}
	if err := requirePositive("annualRatePct", in.AnnualRatePct); err != nil {
		return nil, err
	}
	if in.TermYears <= 0 {
		return nil, &InvalidNumberError{Field: "termYears", Reason: "must be greater than zero"}
	}
	if in.ConstructionMonths <= 0 {
		return nil, &InvalidNumberError{Field: "constructionMonths", Reason: "must be greater than zero"}
	}

	loanAmount := in.ProjectCost - in.DownPayment
	monthlyRate := in.AnnualRatePct / 100 / 12

	// Construction phase: interest-only on the running drawn total.
	weights := drawWeights(in.Strategy, in.ConstructionMonths)
	draws := make([]Draw, in.ConstructionMonths)
	var drawn, constructionInterest float64
	for i, w := range weights {
		amount := loanAmount * w
		drawn += amount
		interest := drawn * monthlyRate
		constructionInterest += interest
		draws[i] = Draw{
			Month:           i + 1,
			Amount:          amount,
			CumulativeDrawn: drawn,
			Interest:        interest,
		}
	}

	// Permanent phase: standard amortization.
	n := in.TermYears * 12
	pow := math.Pow(1+monthlyRate, float64(n))
	payment := loanAmount * monthlyRate * pow / (pow - 1)

	var schedule []AmortizationYear
	balance := loanAmount
	var yearPrincipal, yearInterest, totalInterest float64
	for month := 1; month <= n; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance -= principal

		yearPrincipal += principal
		yearInterest += interest
		totalInterest += interest

		if month%12 == 0 || month == n {
			if balance < 1e-6 {
				balance = 0
			}
			schedule = append(schedule, AmortizationYear{
				Year:      (month + 11) / 12,
				Principal: yearPrincipal,
				Interest:  yearInterest,
				Balance:   balance,
			})
			yearPrincipal, yearInterest = 0, 0
		}
	}

	return &LoanResult{
		LoanAmount:           loanAmount,
		MonthlyRate:          monthlyRate,
		Draws:                draws,
		ConstructionInterest: constructionInterest,
		MonthlyPayment:       payment,
		TotalInterest:        totalInterest + constructionInterest,
		Schedule:             schedule,
	}, nil
}
