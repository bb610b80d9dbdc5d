// internal/workers/underwriting/calculate-dti/models.go
package calculatedti

type Input struct {
	MonthlyIncome  float64 `json:"monthlyIncome"`
	HousingPayment float64 `json:"housingPayment"`
	MonthlyDebts   float64 `json:"monthlyDebts"`
	LoanProgram    string  `json:"loanProgram,omitempty"`
}

type Output struct {
	FrontEndDTI      float64 `json:"front_end_dti"`
	BackEndDTI       float64 `json:"back_end_dti"`
	FrontEndRatio    float64 `json:"front_end_ratio"`
	BackEndRatio     float64 `json:"back_end_ratio"`
	FrontEndLimit    float64 `json:"frontEndLimit"`
	BackEndLimit     float64 `json:"backEndLimit"`
	WithinFrontLimit bool    `json:"withinFrontLimit"`
	WithinBackLimit  bool    `json:"withinBackLimit"`
	LoanProgram      string  `json:"loanProgram"`
	LimitsSource     string  `json:"limitsSource"` // "cache" or "default"
}

// programLimits is the cached rule payload for a loan program.
type programLimits struct {
	FrontEnd float64 `json:"frontEnd"`
	BackEnd  float64 `json:"backEnd"`
}
