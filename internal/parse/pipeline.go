package parse

import "time"

// Parse runs the full extraction pipeline over one text.
//
// Stages run in a fixed order and later stages only fill fields the earlier
// ones left absent, with two exceptions: the monetary resolver's derived loan
// figures overwrite earlier values when a property value and an explicit down
// payment percentage were both found (the three figures must agree), and the
// employer extractor always re-attempts its own patterns.
//
// Parse never fails. An input that matches nothing yields a Record whose
// optional fields are all absent, with only intent, confidence, and the
// metadata fields populated.
func (p *Parser) Parse(text string) *Record {
	original := text
	if p.cfg.MaxInputLength > 0 && len(text) > p.cfg.MaxInputLength {
		text = text[:p.cfg.MaxInputLength]
	}

	rec := &Record{}
	p.extractBase(rec, text)
	mergeStructured(rec, ExtractStructured(text))

	intent := ClassifyIntent(text)
	rec.Intent = intent.Intent
	rec.Confidence = intent.Confidence

	p.mergeFinancing(rec, p.ResolveFinancing(text))

	if v, ok := p.ExtractEmployer(text); ok {
		rec.Employer = strp(v)
	}
	if rec.LoanPurpose == nil {
		if v, ok := DetectLoanPurpose(text); ok {
			rec.LoanPurpose = strp(v)
		}
	}

	rec.OriginalInput = original
	rec.ParsedTimestamp = time.Now().UTC().Format(time.RFC3339)
	return rec
}

// extractBase runs the individual field extractors.
func (p *Parser) extractBase(rec *Record, text string) {
	if n, ok := ExtractName(text); ok {
		rec.FirstName = strp(n.First)
		rec.LastName = strp(n.Last)
		rec.FullName = strp(n.Full)
		if n.Middle != "" {
			rec.MiddleName = strp(n.Middle)
		}
	}

	c := ExtractContact(text)
	if c.Phone != "" {
		rec.Phone = strp(c.Phone)
	}
	if c.Email != "" {
		rec.Email = strp(c.Email)
	}
	if c.SSN != "" {
		rec.SSN = strp(c.SSN)
	}
	if c.DateOfBirth != "" {
		rec.DateOfBirth = strp(c.DateOfBirth)
	}

	d := ExtractPropertyDetails(text)
	if d.Address != "" {
		rec.Address = strp(d.Address)
	}
	if d.PropertyType != "" {
		rec.PropertyType = strp(d.PropertyType)
	}
	rec.Bedrooms = d.Bedrooms
	rec.Bathrooms = d.Bathrooms
	rec.SquareFeet = d.SquareFeet
	rec.YearBuilt = d.YearBuilt

	if v, ok := ExtractCreditScore(text); ok {
		rec.CreditScore = intp(v)
	}
	if v, ok := p.NormalizeIncome(text); ok {
		rec.MonthlyIncome = f64p(v)
		rec.AnnualIncome = f64p(v * monthsPerYear)
	}
	if v, ok := ExtractAmount(text, FieldLoan); ok {
		rec.LoanAmount = f64p(v)
	}
	if v, ok := ExtractAmount(text, FieldDownPayment); ok {
		rec.DownPayment = f64p(v)
	}
	if v, ok := ExtractAmount(text, FieldDebts); ok {
		rec.MonthlyDebts = f64p(v)
	}
	if v, ok := ExtractAmount(text, FieldAssets); ok {
		rec.LiquidAssets = f64p(v)
	}
	if v, ok := ExtractApplicationID(text); ok {
		rec.ApplicationID = strp(v)
	}
}

// mergeStructured fills fields the base extractors left absent. Boolean
// triggers always latch true; they never reset an earlier true.
func mergeStructured(rec *Record, s StructuredFields) {
	if rec.ApplicationID == nil && s.ApplicationID != "" {
		rec.ApplicationID = strp(s.ApplicationID)
	}
	if rec.LoanAmount == nil && s.LoanAmount != nil {
		rec.LoanAmount = s.LoanAmount
	}
	if rec.Address == nil && s.PropertyAddress != "" {
		rec.Address = strp(s.PropertyAddress)
	}
	if rec.PropertyType == nil && s.PropertyType != "" {
		rec.PropertyType = strp(s.PropertyType)
	}
	if s.EmploymentType != "" {
		rec.EmploymentType = strp(s.EmploymentType)
	}
	if s.OccupancyType != "" {
		rec.OccupancyType = strp(s.OccupancyType)
	}
	if s.Status != "" {
		rec.Status = strp(s.Status)
	}
	rec.CoBorrower = rec.CoBorrower || s.CoBorrower
	rec.FirstTimeBuyer = rec.FirstTimeBuyer || s.FirstTimeBuyer
	rec.MilitaryService = rec.MilitaryService || s.MilitaryService
	rec.RuralProperty = rec.RuralProperty || s.RuralProperty
}

// mergeFinancing applies the monetary resolver. Figures derived from an
// explicit down payment percentage overwrite earlier loan and down payment
// values so the three figures stay mutually consistent; figures from the
// default assumption only fill gaps.
func (p *Parser) mergeFinancing(rec *Record, f Financing) {
	if f.PropertyValue == nil {
		return
	}
	if rec.PropertyValue == nil {
		rec.PropertyValue = f.PropertyValue
	}
	if f.AssumedDefault {
		if rec.DownPaymentPercent == nil {
			rec.DownPaymentPercent = f.DownPaymentPercent
		}
		if rec.DownPayment == nil {
			rec.DownPayment = f.DownPayment
		}
		if rec.LoanAmount == nil {
			rec.LoanAmount = f.LoanAmount
		}
		return
	}
	rec.DownPaymentPercent = f.DownPaymentPercent
	rec.DownPayment = f.DownPayment
	rec.LoanAmount = f.LoanAmount
}
