package rights

import (
	"regexp"
	"strconv"
	"strings"
)

// Conventional profile field names. The vocabulary is open; these are the
// keys the matcher and questionnaire know about.
const (
	FieldAge                  = "age"
	FieldGender               = "gender"
	FieldMaritalStatus        = "marital_status"
	FieldEmploymentStatus     = "employment_status"
	FieldAvgMonthlyIncome     = "avg_monthly_income"
	FieldHasChildren          = "has_children"
	FieldNumChildren          = "num_children"
	FieldChildrenAges         = "children_ages"
	FieldChildrenSchoolType   = "children_school_type"
	FieldChildSpecialNeeds    = "child_special_needs"
	FieldRecognizedDisability = "recognized_disability"
	FieldDisabilityPercentage = "disability_percentage"
	FieldDisabilityType       = "disability_type"
	FieldHealthIssue          = "health_issue"
	FieldMilitaryService      = "military_or_national_service"
	FieldServiceLengthYears   = "service_length_years"
	FieldInjuredInService     = "injured_in_service"
	FieldIsNewImmigrant       = "is_new_immigrant"
	FieldHousingStatus        = "housing_status"
	FieldSector               = "sector"
	FieldEducation            = "education"
	FieldWorkExperienceYears  = "work_experience_years"
	FieldHadWorkAccident      = "had_work_accident"
	FieldHasMedicalReceipts   = "has_medical_receipts"
	FieldPaidCourses          = "paid_professional_courses"
	FieldPaidIncomeTax6Years  = "paid_income_tax_6_years"
)

// EmploymentUnemployed and friends are the employment statuses the category
// inference rules care about.
const (
	EmploymentEmployed      = "שכיר"
	EmploymentSelfEmployed  = "עצמאי"
	EmploymentUnemployed    = "מובטל"
	EmploymentStudent       = "סטודנט"
	EmploymentPensioner     = "פנסיונר"
	MilitaryServiceIDF      = "שירות צבאי (צה\"ל)"
	MilitaryServiceNational = "שירות לאומי/אזרחי"
	MilitaryServiceNone     = "לא שירתתי"
)

var digitRun = regexp.MustCompile(`\d+`)

// affirmatives are the answers treated as "yes" when normalizing a profile
// value into a boolean.
var affirmatives = map[string]bool{
	"כן":   true,
	"yes":  true,
	"true": true,
}

// Profile is an individual's self-reported attribute set: a flat mapping
// from field name to raw string value. Values are never fully typed; ages,
// incomes and years arrive as digit strings and must be parsed defensively.
// An absent key means "unknown", which is not the same as an explicit "no".
type Profile map[string]string

// Get returns the trimmed value for key, empty when absent.
func (p Profile) Get(key string) string {
	return strings.TrimSpace(p[key])
}

// Has reports whether key carries a non-blank value.
func (p Profile) Has(key string) bool {
	return p.Get(key) != ""
}

// Int extracts the first digit run from the value for key, after stripping
// thousands separators. The second return is false when the field is absent
// or carries no digits.
func (p Profile) Int(key string) (int, bool) {
	return ParseLeadingInt(p.Get(key))
}

// Bool normalizes the value for key against the affirmative-word set. The
// second return is false when the field is absent, so callers can tell
// "unknown" apart from an explicit negative.
func (p Profile) Bool(key string) (value, ok bool) {
	raw := p.Get(key)
	if raw == "" {
		return false, false
	}
	return affirmatives[strings.ToLower(raw)], true
}

// Affirmative reports whether the field is present and answers "yes".
func (p Profile) Affirmative(key string) bool {
	v, ok := p.Bool(key)
	return ok && v
}

// ParseLeadingInt extracts the first digit run from s after removing comma
// separators. It is the defensive numeric parse used for every free-text
// numeric profile field.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.ReplaceAll(s, ",", "")
	run := digitRun.FindString(s)
	if run == "" {
		return 0, false
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, false
	}
	return n, true
}
