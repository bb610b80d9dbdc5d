package parse

import "math"

// DTIResult carries both presentation percentages (one decimal) and raw
// ratios (three decimals) for the same computation.
type DTIResult struct {
	FrontEndDTI   float64 `json:"front_end_dti"`
	BackEndDTI    float64 `json:"back_end_dti"`
	FrontEndRatio float64 `json:"front_end_ratio"`
	BackEndRatio  float64 `json:"back_end_ratio"`
}

// ComputeDTI calculates front-end (housing only) and back-end (housing plus
// other debts) debt-to-income figures from monthly amounts. A zero or
// negative income returns the zero value rather than dividing by zero.
func ComputeDTI(monthlyIncome, housingPayment, monthlyDebts float64) DTIResult {
	if monthlyIncome <= 0 {
		return DTIResult{}
	}
	front := housingPayment / monthlyIncome
	back := (housingPayment + monthlyDebts) / monthlyIncome
	return DTIResult{
		FrontEndDTI:   round1(front * 100),
		BackEndDTI:    round1(back * 100),
		FrontEndRatio: round3(front),
		BackEndRatio:  round3(back),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
