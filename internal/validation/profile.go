package validation

import (
	"github.com/zchutly/rights-finder/internal/rights"
)

// ProfileResult is the lighter-weight validation of the profile itself:
// implausible values and missing corollary fields.
type ProfileResult struct {
	Valid      bool     `json:"is_valid"`
	Confidence int      `json:"confidence_score"`
	Issues     []string `json:"issues"`
}

// ValidateProfile checks the self-reported profile for implausible values
// and internal gaps. Every issue costs a fixed penalty off a 100-point
// start.
func (v *Validator) ValidateProfile(profile rights.Profile) ProfileResult {
	var issues []string

	if raw := profile.Get(rights.FieldAge); raw != "" {
		if age, ok := profile.Int(rights.FieldAge); ok {
			if age < 0 || age > 120 {
				issues = append(issues, "גיל לא סביר")
			}
		} else {
			issues = append(issues, "גיל לא תקין")
		}
	}

	if income, ok := profile.Int(rights.FieldAvgMonthlyIncome); ok {
		if income > 100000 {
			issues = append(issues, "הכנסה גבוהה במיוחד - יש לוודא")
		}
	}

	if profile.Affirmative(rights.FieldHasChildren) && !profile.Has(rights.FieldNumChildren) {
		issues = append(issues, "דווח על ילדים אבל לא נמסר מספרם")
	}

	if profile.Affirmative(rights.FieldRecognizedDisability) && !profile.Has(rights.FieldDisabilityPercentage) {
		issues = append(issues, "דווח על נכות אבל לא נמסר אחוז הנכות")
	}

	confidence := 100 - len(issues)*v.rules.ProfileIssuePenalty
	if confidence < 0 {
		confidence = 0
	}

	return ProfileResult{
		Valid:      len(issues) == 0,
		Confidence: confidence,
		Issues:     issues,
	}
}
