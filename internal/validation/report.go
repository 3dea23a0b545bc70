package validation

import (
	"time"

	"github.com/zchutly/rights-finder/internal/rights"
)

// RightValidation pairs a right's name with its audit result.
type RightValidation struct {
	RightName  string `json:"right_name"`
	Validation Result `json:"validation"`
}

// Report aggregates the profile-level validation with one audit per
// surviving right, an average confidence and a qualitative assessment.
type Report struct {
	Timestamp         time.Time         `json:"timestamp"`
	ProfileValidation ProfileResult     `json:"profile_validation"`
	RightsCount       int               `json:"rights_count"`
	ValidRightsCount  int               `json:"valid_rights_count"`
	AverageConfidence float64           `json:"average_confidence"`
	Rights            []RightValidation `json:"rights_validations"`
	OverallAssessment string            `json:"overall_assessment"`
	Recommendations   []string          `json:"recommendations"`
}

// BuildReport audits every match and assembles the aggregate report. Each
// match's confidence score, validity and issue list are filled in as a side
// effect, so the caller's result set carries the audit with it.
func (v *Validator) BuildReport(matches *rights.Matches, profile rights.Profile) *Report {
	report := &Report{
		Timestamp:         v.now(),
		ProfileValidation: v.ValidateProfile(profile),
		RightsCount:       matches.Len(),
		Rights:            make([]RightValidation, 0, matches.Len()),
	}

	total := 0
	for _, match := range matches.Items {
		result := v.ValidateRight(match.Right, profile)

		match.Confidence = result.Confidence
		match.Valid = result.Valid
		match.Issues = result.Issues

		if result.Valid {
			report.ValidRightsCount++
		}
		total += result.Confidence

		report.Rights = append(report.Rights, RightValidation{
			RightName:  match.Right.Name,
			Validation: result,
		})
	}

	if matches.Len() > 0 {
		report.AverageConfidence = float64(total) / float64(matches.Len())
	}

	report.OverallAssessment = overallAssessment(report.AverageConfidence, report.ValidRightsCount, report.RightsCount)
	report.Recommendations = generalRecommendations(report.AverageConfidence, report.ProfileValidation)

	return report
}

func overallAssessment(avgConfidence float64, validRights, totalRights int) string {
	switch {
	case avgConfidence >= 85 && validRights == totalRights:
		return "מהימנות גבוהה - הזכויות נראות מדויקות ועדכניות"
	case avgConfidence >= 70:
		return "מהימנות בינונית-גבוהה - רוב הזכויות נראות תקינות"
	case avgConfidence >= 60:
		return "מהימנות בינונית - מומלץ לוודא פרטים נוספים"
	default:
		return "מהימנות נמוכה - יש לבדוק ישירות אצל הגורמים המטפלים"
	}
}

func generalRecommendations(avgConfidence float64, profileValidation ProfileResult) []string {
	var recommendations []string

	if !profileValidation.Valid {
		recommendations = append(recommendations, "יש לוודא נכונות הפרטים האישיים שהוזנו")
	}
	if avgConfidence < 70 {
		recommendations = append(recommendations, "מומלץ לפנות ישירות לביטוח לאומי לאישור הזכויות")
	}

	recommendations = append(recommendations,
		"המידע מוצג לצורך הכוונה בלבד ואינו מהווה ייעוץ משפטי",
		"זכויות עשויות להשתנות - מומלץ לעדכן מעת לעת",
	)

	return recommendations
}
