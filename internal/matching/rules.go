package matching

import (
	"strings"

	"github.com/zchutly/rights-finder/internal/rights"
)

// InferenceRule is one named category exclusion: a keyword pattern over a
// Right's display name and keywords, paired with the profile predicate that
// must hold for such a Right to stay matched. The rules exist because
// criteria data in the catalog is incomplete; they are a fallback heuristic
// layered on top of the criteria checks, not a replacement for them.
type InferenceRule struct {
	Name     string
	Keywords []string
	Allows   func(rights.Profile) bool
}

// AppliesTo reports whether the Right's name or keywords carry one of the
// rule's category markers.
func (r InferenceRule) AppliesTo(right *rights.Right) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(right.Name, keyword) {
			return true
		}
		for _, rightKeyword := range right.Keywords {
			if strings.Contains(rightKeyword, keyword) {
				return true
			}
		}
	}
	return false
}

// DefaultInferenceRules is the registered table of category exclusions. Each
// rule is a pure predicate over (name, profile) and can be tested in
// isolation.
func DefaultInferenceRules() []InferenceRule {
	return []InferenceRule{
		{
			Name:     "disability_only",
			Keywords: []string{"נכות", "נכה"},
			Allows: func(p rights.Profile) bool {
				return p.Affirmative(rights.FieldRecognizedDisability)
			},
		},
		{
			Name:     "student_only",
			Keywords: []string{"סטודנט", "מלגת", "מלגה"},
			Allows: func(p rights.Profile) bool {
				return p.Get(rights.FieldEmploymentStatus) == rights.EmploymentStudent
			},
		},
		{
			Name:     "training_course",
			Keywords: []string{"קורס", "הכשרה מקצועית"},
			Allows: func(p rights.Profile) bool {
				status := p.Get(rights.FieldEmploymentStatus)
				return status == rights.EmploymentUnemployed ||
					status == rights.EmploymentStudent ||
					p.Affirmative(rights.FieldPaidCourses)
			},
		},
		{
			Name:     "unemployment_only",
			Keywords: []string{"אבטלה", "מובטל"},
			Allows: func(p rights.Profile) bool {
				return p.Get(rights.FieldEmploymentStatus) == rights.EmploymentUnemployed
			},
		},
		{
			Name:     "work_injury_only",
			Keywords: []string{"תאונת עבודה", "פגיעת עבודה", "מחלת מקצוע"},
			Allows: func(p rights.Profile) bool {
				return p.Affirmative(rights.FieldHadWorkAccident) ||
					p.Affirmative("work_injury")
			},
		},
		{
			Name:     "medical_expense_only",
			Keywords: []string{"הוצאות רפואיות"},
			Allows: func(p rights.Profile) bool {
				return p.Affirmative(rights.FieldHasMedicalReceipts) ||
					p.Affirmative("medical_expense_receipts")
			},
		},
	}
}
