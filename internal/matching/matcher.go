package matching

import (
	"strings"

	"github.com/zchutly/rights-finder/internal/rights"
)

// hebrewNumberWords is the small lexical vocabulary accepted for
// service-length answers alongside plain digit runs.
var hebrewNumberWords = map[string]int{
	"אחת":    1,
	"שתיים":  2,
	"שנתיים": 2,
	"שלוש":   3,
	"ארבע":   4,
	"חמש":    5,
	"שש":     6,
	"שבע":    7,
	"שמונה":  8,
	"תשע":    9,
	"עשר":    10,
}

// Matcher evaluates a profile against a Right's eligibility criteria. Every
// check is a hard predicate: the first failing check rejects the Right and a
// non-match is a normal outcome, never an error.
type Matcher struct {
	rules []InferenceRule
}

// NewMatcher returns a matcher using the default category inference rules.
func NewMatcher() *Matcher {
	return &Matcher{rules: DefaultInferenceRules()}
}

// Matches reports whether the profile plausibly satisfies the Right. The
// returned reason names the failed check for debug logging; it is empty on
// a match.
//
// Missing profile data is handled per field: military service and service
// length fail closed when the Right requires them, everything else fails
// open. Unparsable numeric profile values skip the check, except service
// length which rejects.
func (m *Matcher) Matches(profile rights.Profile, right *rights.Right) (bool, string) {
	c := right.Eligibility

	if !ageWithinBounds(profile, c) {
		return false, "age_bounds"
	}
	if !incomeWithinCeiling(profile, c) {
		return false, "income_max"
	}
	if !disabilityPercentageAtLeast(profile, c) {
		return false, "disability_percentage"
	}
	if !workExperienceAtLeast(profile, c) {
		return false, "work_experience"
	}
	if !militaryServiceMatches(profile, c) {
		return false, "military_service"
	}
	if reason := categoricalChecksPass(profile, c); reason != "" {
		return false, reason
	}
	if !serviceLengthSufficient(profile, c) {
		return false, "service_length"
	}
	if reason := booleanChecksPass(profile, c); reason != "" {
		return false, reason
	}

	// Second, independent layer: keyword-based category exclusions cover
	// catalog entries whose criteria are incomplete. Both layers must pass.
	for _, rule := range m.rules {
		if rule.AppliesTo(right) && !rule.Allows(profile) {
			return false, "rule:" + rule.Name
		}
	}

	return true, ""
}

func ageWithinBounds(p rights.Profile, c *rights.Criteria) bool {
	if c == nil || (c.AgeMin == nil && c.AgeMax == nil) {
		return true
	}
	age, ok := p.Int(rights.FieldAge)
	if !ok {
		return true
	}
	if c.AgeMin != nil && age < *c.AgeMin {
		return false
	}
	if c.AgeMax != nil && age > *c.AgeMax {
		return false
	}
	return true
}

func incomeWithinCeiling(p rights.Profile, c *rights.Criteria) bool {
	if c == nil || c.IncomeMax == nil {
		return true
	}
	income, ok := p.Int(rights.FieldAvgMonthlyIncome)
	if !ok {
		return true
	}
	return income <= *c.IncomeMax
}

func disabilityPercentageAtLeast(p rights.Profile, c *rights.Criteria) bool {
	if c == nil || c.DisabilityPercentage == nil {
		return true
	}
	pct, ok := p.Int(rights.FieldDisabilityPercentage)
	if !ok {
		return true
	}
	return pct >= *c.DisabilityPercentage
}

func workExperienceAtLeast(p rights.Profile, c *rights.Criteria) bool {
	if c == nil || c.WorkExperienceYears == nil {
		return true
	}
	years, ok := p.Int(rights.FieldWorkExperienceYears)
	if !ok {
		return true
	}
	return years >= *c.WorkExperienceYears
}

// militaryServiceMatches is the one categorical check that fails closed: a
// Right restricted to veterans must never match a profile that did not
// report its service.
func militaryServiceMatches(p rights.Profile, c *rights.Criteria) bool {
	if c == nil || !rights.Restricts(c.MilitaryService) {
		return true
	}
	service := p.Get(rights.FieldMilitaryService)
	if service == "" {
		return false
	}
	return contains(c.MilitaryService, service)
}

func categoricalChecksPass(p rights.Profile, c *rights.Criteria) string {
	if c == nil {
		return ""
	}

	checks := []struct {
		name    string
		list    []string
		profile string
	}{
		{"employment_status", c.EmploymentStatus, rights.FieldEmploymentStatus},
		{"gender", c.Gender, rights.FieldGender},
		{"marital_status", c.MaritalStatus, rights.FieldMaritalStatus},
		{"sector", c.Sector, rights.FieldSector},
		{"housing_status", c.HousingStatus, rights.FieldHousingStatus},
		{"education", c.Education, rights.FieldEducation},
		{"children_school_type", c.ChildrenSchoolType, rights.FieldChildrenSchoolType},
		{"disability_type", c.DisabilityType, rights.FieldDisabilityType},
	}

	for _, check := range checks {
		if !rights.Restricts(check.list) {
			continue
		}
		value := p.Get(check.profile)
		if value == "" {
			continue
		}
		if !contains(check.list, value) {
			return check.name
		}
	}
	return ""
}

// serviceLengthSufficient fails closed: if the Right demands a minimum
// service length, a profile without a parsable answer is rejected.
func serviceLengthSufficient(p rights.Profile, c *rights.Criteria) bool {
	if c == nil || c.ServiceLengthYears == nil {
		return true
	}
	years, ok := parseServiceLength(p.Get(rights.FieldServiceLengthYears))
	if !ok {
		return false
	}
	return years >= *c.ServiceLengthYears
}

func parseServiceLength(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if years, ok := rights.ParseLeadingInt(raw); ok {
		return years, true
	}
	for _, word := range strings.Fields(raw) {
		if years, ok := hebrewNumberWords[word]; ok {
			return years, true
		}
	}
	return 0, false
}

func booleanChecksPass(p rights.Profile, c *rights.Criteria) string {
	if c == nil {
		return ""
	}

	checks := []struct {
		name      string
		criterion *bool
		profile   string
	}{
		{"recognized_disability", c.RecognizedDisability, rights.FieldRecognizedDisability},
		{"health_issue", c.HealthIssue, rights.FieldHealthIssue},
		{"has_children", c.HasChildren, rights.FieldHasChildren},
		{"child_special_needs", c.ChildSpecialNeeds, rights.FieldChildSpecialNeeds},
		{"is_new_immigrant", c.IsNewImmigrant, rights.FieldIsNewImmigrant},
		{"injured_in_service", c.InjuredInService, rights.FieldInjuredInService},
		{"had_work_accident", c.HadWorkAccident, rights.FieldHadWorkAccident},
		{"need_daily_assistance", c.NeedDailyAssistance, "need_daily_assistance"},
		{"filed_disability_claim", c.FiledDisabilityClaim, "filed_disability_claim"},
		{"receiving_benefit", c.ReceivingBenefit, "receiving_benefit"},
		{"income_drop", c.IncomeDrop, "income_drop"},
		{"paid_income_tax", c.PaidIncomeTax, "paid_income_tax"},
		{"children_under_18", c.ChildrenUnder18, "children_under_18"},
	}

	for _, check := range checks {
		if check.criterion == nil {
			continue
		}
		answered, ok := p.Bool(check.profile)
		if !ok {
			continue
		}
		if answered != *check.criterion {
			return check.name
		}
	}
	return ""
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
