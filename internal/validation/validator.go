package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/rights"
)

// Result is the outcome of auditing one Right/Profile pair.
type Result struct {
	Valid           bool     `json:"is_valid"`
	Confidence      int      `json:"confidence_score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Validator re-scores matched rights across four independent axes: internal
// consistency, amount plausibility, criteria validity and source
// reliability. It is deliberately stricter than the matcher and may raise
// issues even for rights that matched.
type Validator struct {
	rules Rules

	// now is injectable so staleness tests are deterministic.
	now func() time.Time
}

// New returns a validator with the given rules.
func New(rules Rules) *Validator {
	return &Validator{rules: rules, now: time.Now}
}

// ValidateRight audits one right against the profile and returns its
// confidence score, clamped to [0, 100], with the detected issues.
func (v *Validator) ValidateRight(right *rights.Right, profile rights.Profile) Result {
	score := 0
	var issues []string

	axisScore, axisIssues := v.checkInternalConsistency(right, profile)
	score += axisScore
	issues = append(issues, axisIssues...)

	axisScore, axisIssues = v.checkAmountPlausibility(right)
	score += axisScore
	issues = append(issues, axisIssues...)

	axisScore, axisIssues = v.checkCriteriaValidity(right)
	score += axisScore
	issues = append(issues, axisIssues...)

	axisScore, axisIssues = v.checkSourceReliability(right)
	score += axisScore
	issues = append(issues, axisIssues...)

	score = clamp(score, 0, 100)

	result := Result{
		Valid:      true,
		Confidence: score,
		Issues:     issues,
	}

	switch {
	case score < v.rules.ValidThreshold:
		result.Valid = false
		result.Recommendations = append(result.Recommendations,
			"יש לבדוק זכות זו ישירות אצל הגורם המטפל")
	case score < v.rules.VerifyThreshold:
		result.Recommendations = append(result.Recommendations,
			"מומלץ לוודא פרטים נוספים אצל הגורם הרלוונטי")
	}

	return result
}

// checkInternalConsistency re-audits requirements the matcher already
// filtered on. The overlap is intentional: the validator is an independent
// second pass with its own, stricter reading of the criteria.
func (v *Validator) checkInternalConsistency(right *rights.Right, profile rights.Profile) (int, []string) {
	score := v.rules.BaseAxisScore
	var issues []string

	c := right.Eligibility
	if c == nil {
		return score, issues
	}

	if c.HasChildren != nil && *c.HasChildren && !profile.Affirmative(rights.FieldHasChildren) {
		issues = append(issues, "זכות דורשת ילדים אך המשתמש לא דיווח על ילדים")
		score -= v.rules.PenaltyChildrenMismatch
	}

	if c.RecognizedDisability != nil && *c.RecognizedDisability && !profile.Affirmative(rights.FieldRecognizedDisability) {
		issues = append(issues, "זכות דורשת נכות מוכרת אך המשתמש לא דיווח על נכות")
		score -= v.rules.PenaltyDisabilityMismatch
	}

	if age, ok := profile.Int(rights.FieldAge); ok {
		if c.AgeMin != nil && age < *c.AgeMin {
			issues = append(issues, fmt.Sprintf("גיל המשתמש (%d) נמוך מהנדרש (%d)", age, *c.AgeMin))
			score -= v.rules.PenaltyAgeBound
		}
		if c.AgeMax != nil && age > *c.AgeMax {
			issues = append(issues, fmt.Sprintf("גיל המשתמש (%d) גבוה מהמותר (%d)", age, *c.AgeMax))
			score -= v.rules.PenaltyAgeBound
		}
	}

	return score, issues
}

func (v *Validator) checkAmountPlausibility(right *rights.Right) (int, []string) {
	score := v.rules.BaseAxisScore
	var issues []string

	amountText := strings.TrimSpace(right.AmountEstimation)
	if amountText == "" {
		issues = append(issues, "חסר מידע על סכום הזכות")
		score -= v.rules.PenaltyMissingAmount
		return score, issues
	}

	amount, ok := matching.AmountFigure(amountText)
	if !ok {
		return score, issues
	}

	name := right.Name
	switch {
	case strings.Contains(name, "ילד") && strings.Contains(name, "קצבת"):
		low, high := v.rules.ChildAllowanceMin, v.rules.ChildAllowanceMax*v.rules.ChildHeadroom
		if amount < low || amount > high {
			issues = append(issues, fmt.Sprintf("סכום קצבת ילדים (%d) נראה לא סביר", amount))
			score -= v.rules.PenaltyImplausibleAmount
		}
	case strings.Contains(name, "נכות") || strings.Contains(name, "נכה"):
		low, high := v.rules.DisabilityAllowanceMin, v.rules.DisabilityAllowanceMax*v.rules.DisabilityHeadroom
		if amount < low || amount > high {
			issues = append(issues, fmt.Sprintf("סכום זכות נכות (%d) נראה לא סביר", amount))
			score -= v.rules.PenaltyImplausibleAmount
		}
	}

	if amount > v.rules.AmountCeiling {
		issues = append(issues, fmt.Sprintf("סכום גבוה במיוחד (%d) - יש לוודא", amount))
		score -= v.rules.PenaltyHugeAmount
	}
	if amount < v.rules.AmountFloor {
		issues = append(issues, fmt.Sprintf("סכום נמוך במיוחד (%d) - יש לוודא", amount))
		score -= v.rules.PenaltyTinyAmount
	}

	return score, issues
}

func (v *Validator) checkCriteriaValidity(right *rights.Right) (int, []string) {
	score := v.rules.BaseAxisScore
	var issues []string

	c := right.Eligibility
	if c == nil {
		return score, issues
	}

	if c.IncomeMax != nil {
		switch {
		case *c.IncomeMax > v.rules.AverageWage*3:
			issues = append(issues, fmt.Sprintf("סף הכנסה (%d) גבוה מדי - חשוד", *c.IncomeMax))
			score -= v.rules.PenaltyHighIncomeCeiling
		case *c.IncomeMax < v.rules.LowIncomeCeilingFloor:
			issues = append(issues, fmt.Sprintf("סף הכנסה (%d) נמוך מדי - חשוד", *c.IncomeMax))
			score -= v.rules.PenaltyLowIncomeCeiling
		}
	}

	if c.DisabilityPercentage != nil {
		if *c.DisabilityPercentage < 0 || *c.DisabilityPercentage > 100 {
			issues = append(issues, fmt.Sprintf("אחוז נכות לא תקין (%d)", *c.DisabilityPercentage))
			score -= v.rules.PenaltyBadPercentage
		}
	}

	if c.AgeMin != nil && c.AgeMax != nil && *c.AgeMin > *c.AgeMax {
		issues = append(issues, "גיל מינימלי גבוה מגיל מקסימלי")
		score -= v.rules.PenaltyInvertedAges
	}

	return score, issues
}

func (v *Validator) checkSourceReliability(right *rights.Right) (int, []string) {
	score := v.rules.BaseAxisScore
	var issues []string

	url := strings.TrimSpace(right.WebsiteURL)
	if url != "" {
		if v.trustedSource(url) {
			score += v.rules.BonusTrustedSource
		} else {
			issues = append(issues, "המקור אינו ממקורות ממשלתיים מוכרים")
			score -= v.rules.PenaltyUntrustedSource
		}
	} else {
		issues = append(issues, "חסר מידע על מקור הזכות")
		score -= v.rules.PenaltyMissingSource
	}

	lastUpdated := strings.TrimSpace(right.LastUpdated)
	if lastUpdated == "" {
		issues = append(issues, "חסר מידע על תאריך עדכון")
		score -= v.rules.PenaltyMissingDate
		return score, issues
	}

	updated, err := parseUpdateDate(lastUpdated)
	if err != nil {
		issues = append(issues, "תאריך עדכון לא תקין")
		score -= v.rules.PenaltyBadDate
		return score, issues
	}

	daysOld := int(v.now().Sub(updated).Hours() / 24)
	switch {
	case daysOld > v.rules.StaleAfterDays:
		issues = append(issues, fmt.Sprintf("המידע לא עודכן כבר %d ימים", daysOld))
		score -= v.rules.PenaltyStaleSource
	case daysOld > v.rules.AgingAfterDays:
		issues = append(issues, fmt.Sprintf("המידע לא עודכן %d ימים", daysOld))
		score -= v.rules.PenaltyAgingSource
	}

	return score, issues
}

func (v *Validator) trustedSource(url string) bool {
	for _, domain := range v.rules.TrustedDomains {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

var updateDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseUpdateDate(raw string) (time.Time, error) {
	raw = strings.TrimSuffix(raw, "Z")
	var lastErr error
	for _, layout := range updateDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
