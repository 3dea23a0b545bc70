// Package questionnaire selects the next most useful questions for an
// incomplete profile. It is stateless: every decision is a pure function of
// the profile handed in, and the caller owns whatever conversation drives
// it.
package questionnaire

import (
	"github.com/zchutly/rights-finder/internal/rights"
)

// Question is one profile field to ask about.
type Question struct {
	Key      string   `json:"field"`
	Text     string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	priority int
}

const (
	TypeNumber = "number"
	TypeChoice = "choice"
	TypeText   = "text"
)

// coreQuestions capture the maximum rights potential with the fewest
// answers; they are asked first, by priority.
var coreQuestions = []Question{
	{
		Key:      rights.FieldAge,
		Text:     "מהו גילך?",
		Type:     TypeNumber,
		priority: 1,
	},
	{
		Key:      rights.FieldNumChildren,
		Text:     "כמה ילדים יש לך?",
		Type:     TypeNumber,
		priority: 2,
	},
	{
		Key:      rights.FieldEmploymentStatus,
		Text:     "מה מצבך התעסוקתי?",
		Type:     TypeChoice,
		Options:  []string{"שכיר", "עצמאי", "מובטל", "סטודנט", "פנסיונר", "לא עובד"},
		priority: 3,
	},
	{
		Key:      rights.FieldRecognizedDisability,
		Text:     "האם יש לך נכות מוכרת בביטוח לאומי?",
		Type:     TypeChoice,
		Options:  []string{"כן", "לא"},
		priority: 4,
	},
	{
		Key:      rights.FieldMilitaryService,
		Text:     "האם שירתת בצה\"ל או בשירות לאומי?",
		Type:     TypeChoice,
		Options:  []string{rights.MilitaryServiceIDF, rights.MilitaryServiceNational, rights.MilitaryServiceNone},
		priority: 5,
	},
}

// followUpBlock is a set of questions that only become relevant once the
// profile satisfies its condition.
type followUpBlock struct {
	condition func(rights.Profile) bool
	questions []Question
}

var followUps = []followUpBlock{
	{
		condition: hasChildren,
		questions: []Question{
			{
				Key:     rights.FieldMaritalStatus,
				Text:    "מהו מצבך המשפחתי?",
				Type:    TypeChoice,
				Options: []string{"נשוי", "גרוש", "רווק", "אלמן"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			status := p.Get(rights.FieldEmploymentStatus)
			return status == rights.EmploymentEmployed || status == rights.EmploymentSelfEmployed
		},
		questions: []Question{
			{
				Key:  rights.FieldAvgMonthlyIncome,
				Text: "מה ההכנסה החודשית שלך (בקירוב)?",
				Type: TypeNumber,
			},
			{
				Key:     rights.FieldPaidIncomeTax6Years,
				Text:    "האם שילמת מס הכנסה ב-6 השנים האחרונות?",
				Type:    TypeChoice,
				Options: []string{"כן", "לא", "לא זכור"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			return p.Affirmative(rights.FieldRecognizedDisability)
		},
		questions: []Question{
			{
				Key:  rights.FieldDisabilityPercentage,
				Text: "מה אחוז הנכות המוכרת שלך?",
				Type: TypeNumber,
			},
			{
				Key:     "need_daily_assistance",
				Text:    "האם אתה זקוק לעזרה יומיומית?",
				Type:    TypeChoice,
				Options: []string{"כן", "לא"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			return p.Get(rights.FieldMilitaryService) == rights.MilitaryServiceIDF
		},
		questions: []Question{
			{
				Key:  rights.FieldServiceLengthYears,
				Text: "כמה שנים שירתת בסך הכל?",
				Type: TypeNumber,
			},
			{
				Key:     rights.FieldInjuredInService,
				Text:    "האם נפצעת במהלך השירות?",
				Type:    TypeChoice,
				Options: []string{"כן", "לא"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			income, ok := p.Int(rights.FieldAvgMonthlyIncome)
			return ok && income <= 8000
		},
		questions: []Question{
			{
				Key:     rights.FieldHousingStatus,
				Text:    "איך אתה גר?",
				Type:    TypeChoice,
				Options: []string{"שכירות", "בבעלות", "דיור ציבורי", "אחר"},
			},
			{
				Key:     "receiving_benefit",
				Text:    "האם אתה מקבל קצבה כלשהי?",
				Type:    TypeChoice,
				Options: []string{"כן", "לא"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			pct, ok := p.Int(rights.FieldDisabilityPercentage)
			return ok && pct >= 50
		},
		questions: []Question{
			{
				Key:     rights.FieldDisabilityType,
				Text:    "מה סוג הנכות העיקרי?",
				Type:    TypeChoice,
				Options: []string{"פיזית", "נפשית", "שכלית", "חושית", "מעורב"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			return p.Affirmative(rights.FieldPaidIncomeTax6Years)
		},
		questions: []Question{
			{
				Key:     rights.FieldHadWorkAccident,
				Text:    "האם חווית תאונת עבודה אי פעם?",
				Type:    TypeChoice,
				Options: []string{"כן", "לא"},
			},
			{
				Key:     rights.FieldHasMedicalReceipts,
				Text:    "האם יש לך קבלות על הוצאות רפואיות?",
				Type:    TypeChoice,
				Options: []string{"כן", "לא"},
			},
		},
	},
	{
		condition: func(p rights.Profile) bool {
			n, ok := p.Int(rights.FieldNumChildren)
			return ok && n >= 3
		},
		questions: []Question{
			{
				Key:  rights.FieldChildrenAges,
				Text: "מה גילי הילדים? (לדוגמה: 5, 8, 12)",
				Type: TypeText,
			},
		},
	},
}

// maxFollowUps caps how many follow-up questions a single turn surfaces.
const maxFollowUps = 2

// NextQuestions returns the questions worth asking next: the single highest
// priority missing core question, or up to two relevant follow-ups once the
// core is complete. An empty result means the profile is complete enough to
// evaluate.
func NextQuestions(profile rights.Profile) []Question {
	var missing []Question
	for _, q := range coreQuestions {
		if profile.Has(q.Key) {
			continue
		}
		if !applicable(q, profile) {
			continue
		}
		missing = append(missing, q)
	}

	if len(missing) > 0 {
		best := missing[0]
		for _, q := range missing[1:] {
			if q.priority < best.priority {
				best = q
			}
		}
		return []Question{best}
	}

	var relevant []Question
	for _, block := range followUps {
		if !block.condition(profile) {
			continue
		}
		for _, q := range block.questions {
			if !profile.Has(q.Key) {
				relevant = append(relevant, q)
			}
		}
	}

	if len(relevant) > maxFollowUps {
		relevant = relevant[:maxFollowUps]
	}
	return relevant
}

// applicable filters core questions by age: military service is not asked
// under 17 or over 70, employment not under 16 or over 75.
func applicable(q Question, profile rights.Profile) bool {
	age, ok := profile.Int(rights.FieldAge)
	if !ok {
		return true
	}

	switch q.Key {
	case rights.FieldMilitaryService:
		return age >= 17 && age <= 70
	case rights.FieldEmploymentStatus:
		return age >= 16 && age <= 75
	}
	return true
}

// Completion estimates how complete the profile is, in percent. Core
// questions weigh 70%, currently-relevant follow-ups 30%.
func Completion(profile rights.Profile) float64 {
	answeredCore := 0
	for _, q := range coreQuestions {
		if profile.Has(q.Key) {
			answeredCore++
		}
	}
	coreRatio := float64(answeredCore) / float64(len(coreQuestions))

	totalFollowUps, answeredFollowUps := 0, 0
	for _, block := range followUps {
		if !block.condition(profile) {
			continue
		}
		for _, q := range block.questions {
			totalFollowUps++
			if profile.Has(q.Key) {
				answeredFollowUps++
			}
		}
	}

	if totalFollowUps == 0 {
		return coreRatio * 100
	}

	followUpRatio := float64(answeredFollowUps) / float64(totalFollowUps)
	return (coreRatio*0.7 + followUpRatio*0.3) * 100
}

// Normalize back-fills derived fields: a num_children answer implies
// has_children. The input profile is not mutated.
func Normalize(profile rights.Profile) rights.Profile {
	normalized := make(rights.Profile, len(profile)+1)
	for k, v := range profile {
		normalized[k] = v
	}

	if !normalized.Has(rights.FieldHasChildren) {
		if n, ok := normalized.Int(rights.FieldNumChildren); ok {
			if n > 0 {
				normalized[rights.FieldHasChildren] = "כן"
			} else {
				normalized[rights.FieldHasChildren] = "לא"
			}
		}
	}

	return normalized
}

func hasChildren(p rights.Profile) bool {
	if n, ok := p.Int(rights.FieldNumChildren); ok {
		return n > 0
	}
	return p.Affirmative(rights.FieldHasChildren)
}
