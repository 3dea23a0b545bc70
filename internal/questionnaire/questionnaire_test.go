package questionnaire

import (
	"testing"

	"github.com/zchutly/rights-finder/internal/rights"
)

func TestNextQuestionsStartsWithAge(t *testing.T) {
	t.Parallel()

	questions := NextQuestions(rights.Profile{})
	if len(questions) != 1 {
		t.Fatalf("expected a single core question, got %d", len(questions))
	}
	if questions[0].Key != rights.FieldAge {
		t.Fatalf("expected the age question first, got %q", questions[0].Key)
	}
}

func TestNextQuestionsCoreByPriority(t *testing.T) {
	t.Parallel()

	questions := NextQuestions(rights.Profile{"age": "30"})
	if len(questions) != 1 || questions[0].Key != rights.FieldNumChildren {
		t.Fatalf("expected the children question next, got %+v", questions)
	}
}

func TestNextQuestionsAgeApplicability(t *testing.T) {
	t.Parallel()

	// A 15 year old is asked about neither employment nor military service.
	profile := rights.Profile{
		"age":                   "15",
		"num_children":          "0",
		"recognized_disability": "לא",
	}

	questions := NextQuestions(profile)
	for _, q := range questions {
		if q.Key == rights.FieldEmploymentStatus || q.Key == rights.FieldMilitaryService {
			t.Fatalf("question %q should not apply to a 15 year old", q.Key)
		}
	}

	// An 80 year old keeps the employment and military skips too.
	profile["age"] = "80"
	for _, q := range NextQuestions(profile) {
		if q.Key == rights.FieldEmploymentStatus || q.Key == rights.FieldMilitaryService {
			t.Fatalf("question %q should not apply to an 80 year old", q.Key)
		}
	}
}

func completeCore() rights.Profile {
	return rights.Profile{
		"age":                          "40",
		"num_children":                 "0",
		"employment_status":            rights.EmploymentEmployed,
		"recognized_disability":        "לא",
		"military_or_national_service": rights.MilitaryServiceNone,
	}
}

func TestNextQuestionsFollowUpsAreCapped(t *testing.T) {
	t.Parallel()

	// An employed profile triggers the income follow-up block.
	questions := NextQuestions(completeCore())
	if len(questions) == 0 {
		t.Fatal("expected follow-up questions for an employed profile")
	}
	if len(questions) > 2 {
		t.Fatalf("expected at most 2 follow-ups, got %d", len(questions))
	}
	if questions[0].Key != rights.FieldAvgMonthlyIncome {
		t.Fatalf("expected the income follow-up first, got %q", questions[0].Key)
	}
}

func TestNextQuestionsFollowUpRelevance(t *testing.T) {
	t.Parallel()

	profile := completeCore()
	profile["recognized_disability"] = "כן"
	profile["avg_monthly_income"] = "12000"
	profile["paid_income_tax_6_years"] = "כן"

	questions := NextQuestions(profile)
	for _, q := range questions {
		if q.Key == rights.FieldHousingStatus {
			t.Fatal("housing follow-up requires a low income")
		}
	}

	found := false
	for _, q := range questions {
		if q.Key == rights.FieldDisabilityPercentage {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the disability percentage follow-up, got %+v", questions)
	}
}

func TestNextQuestionsTerminates(t *testing.T) {
	t.Parallel()

	profile := completeCore()

	// Answering everything asked must eventually exhaust the questionnaire.
	for i := 0; i < 50; i++ {
		questions := NextQuestions(profile)
		if len(questions) == 0 {
			return
		}
		for _, q := range questions {
			profile[q.Key] = "כן"
		}
	}
	t.Fatal("questionnaire did not terminate")
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	if got := Completion(rights.Profile{}); got != 0 {
		t.Fatalf("empty profile should be 0%%, got %f", got)
	}

	full := completeCore()
	got := Completion(full)
	// Core complete, the employment follow-up block unanswered.
	if got <= 50 || got >= 100 {
		t.Fatalf("expected a partial completion, got %f", got)
	}

	full["avg_monthly_income"] = "9000"
	full["paid_income_tax_6_years"] = "כן"
	more := Completion(full)
	if more <= got {
		t.Fatalf("answering follow-ups must raise completion: %f -> %f", got, more)
	}
}

func TestNormalizeBackfillsHasChildren(t *testing.T) {
	t.Parallel()

	p := Normalize(rights.Profile{"num_children": "2"})
	if p.Get(rights.FieldHasChildren) != "כן" {
		t.Fatalf("expected has_children backfill, got %q", p.Get(rights.FieldHasChildren))
	}

	p = Normalize(rights.Profile{"num_children": "0"})
	if p.Get(rights.FieldHasChildren) != "לא" {
		t.Fatalf("expected negative backfill, got %q", p.Get(rights.FieldHasChildren))
	}

	// An explicit answer wins over the derived one.
	p = Normalize(rights.Profile{"num_children": "0", "has_children": "כן"})
	if p.Get(rights.FieldHasChildren) != "כן" {
		t.Fatal("explicit has_children must not be overwritten")
	}

	original := rights.Profile{"num_children": "2"}
	Normalize(original)
	if original.Has(rights.FieldHasChildren) {
		t.Fatal("Normalize must not mutate its input")
	}
}
