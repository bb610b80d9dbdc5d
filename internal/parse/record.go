package parse

// Intent labels produced by ClassifyIntent, in classification priority order.
const (
	IntentCheckStatus        = "check_status"
	IntentApplyMortgage      = "apply_mortgage"
	IntentGetDocuments       = "get_documents"
	IntentCheckQualification = "check_qualification"
	IntentLoanPrograms       = "loan_programs"
	IntentExtractDocument    = "extract_document"
	IntentGeneralInquiry     = "general_inquiry"
)

// Classification confidence values. Keyword matching is deliberately coarse,
// so matched intents carry a flat confidence and the fallback a lower one.
const (
	ConfidenceMatched  = 0.9
	ConfidenceFallback = 0.5
)

// Loan purpose values.
const (
	LoanPurposePurchase  = "purchase"
	LoanPurposeRefinance = "refinance"
)

// Record is the aggregated result of a full parse. Pointer fields distinguish
// "absent" from a legitimate zero value; absent fields are omitted from the
// JSON encoding so downstream merges can fill them from other sources.
type Record struct {
	FirstName  *string `json:"first_name,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	FullName   *string `json:"full_name,omitempty"`

	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	SSN         *string `json:"ssn,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`

	Address      *string  `json:"address,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	SquareFeet   *int     `json:"square_feet,omitempty"`
	YearBuilt    *int     `json:"year_built,omitempty"`

	CreditScore *int `json:"credit_score,omitempty"`

	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
	AnnualIncome  *float64 `json:"annual_income,omitempty"`

	PropertyValue      *float64 `json:"property_value,omitempty"`
	LoanAmount         *float64 `json:"loan_amount,omitempty"`
	DownPayment        *float64 `json:"down_payment,omitempty"`
	DownPaymentPercent *float64 `json:"down_payment_percent,omitempty"`

	MonthlyDebts *float64 `json:"monthly_debts,omitempty"`
	LiquidAssets *float64 `json:"liquid_assets,omitempty"`

	Employer       *string `json:"employer,omitempty"`
	EmploymentType *string `json:"employment_type,omitempty"`

	ApplicationID *string `json:"application_id,omitempty"`
	LoanPurpose   *string `json:"loan_purpose,omitempty"`
	OccupancyType *string `json:"occupancy_type,omitempty"`
	Status        *string `json:"status,omitempty"`

	CoBorrower      bool `json:"co_borrower"`
	FirstTimeBuyer  bool `json:"first_time_buyer"`
	MilitaryService bool `json:"military_service"`
	RuralProperty   bool `json:"rural_property"`

	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`

	OriginalInput   string `json:"original_input"`
	ParsedTimestamp string `json:"parsed_timestamp"`
}

func strp(s string) *string   { return &s }
func intp(n int) *int         { return &n }
func f64p(v float64) *float64 { return &v }
