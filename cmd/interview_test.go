package cmd

import (
	"testing"

	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/questionnaire"
	"github.com/zchutly/rights-finder/internal/rights"
)

func TestRecordAnswerSkipLeavesFieldUnknown(t *testing.T) {
	profile := rights.Profile{}
	skipped := make(map[string]bool)

	if done := recordAnswer(profile, skipped, rights.FieldRecognizedDisability, PromptSkip); done {
		t.Fatal("skip must not finish the interview")
	}

	if profile.Has(rights.FieldRecognizedDisability) {
		t.Fatalf("skipped question wrote a value into the profile: %q",
			profile[rights.FieldRecognizedDisability])
	}
	if !skipped[rights.FieldRecognizedDisability] {
		t.Fatal("skipped key was not tracked")
	}

	yes := true
	right := &rights.Right{
		ID:          "disability-allowance",
		Name:        "קצבת נכות",
		Eligibility: &rights.Criteria{RecognizedDisability: &yes},
	}

	m := matching.NewMatcher()
	if ok, reason := m.Matches(profile, right); !ok {
		t.Fatalf("unknown disability status must fail open, rejected with reason %q", reason)
	}

	// The same right is rejected when the profile carries an explicit
	// non-affirmative value, which is exactly what a skip must not produce.
	answered := rights.Profile{rights.FieldRecognizedDisability: "לא ידוע"}
	if ok, _ := m.Matches(answered, right); ok {
		t.Fatal("explicit non-affirmative answer should not match")
	}
}

func TestRecordAnswerEmptyInputCountsAsSkip(t *testing.T) {
	profile := rights.Profile{}
	skipped := make(map[string]bool)

	recordAnswer(profile, skipped, rights.FieldAge, "")

	if profile.Has(rights.FieldAge) {
		t.Fatal("empty input wrote a value into the profile")
	}
	if !skipped[rights.FieldAge] {
		t.Fatal("empty input was not tracked as skipped")
	}
}

func TestRecordAnswerFinish(t *testing.T) {
	profile := rights.Profile{}
	skipped := make(map[string]bool)

	if done := recordAnswer(profile, skipped, rights.FieldAge, PromptFinish); !done {
		t.Fatal("finish answer must end the interview")
	}
	if len(profile) != 0 || len(skipped) != 0 {
		t.Fatal("finish must not record anything")
	}
}

func TestSelectionViewHidesSkippedQuestions(t *testing.T) {
	profile := rights.Profile{}
	skipped := map[string]bool{rights.FieldAge: true}

	questions := questionnaire.NextQuestions(selectionView(profile, skipped))
	if len(questions) == 0 {
		t.Fatal("expected further questions after skipping one")
	}
	for _, q := range questions {
		if q.Key == rights.FieldAge {
			t.Fatal("skipped question was offered again")
		}
	}

	if profile.Has(rights.FieldAge) {
		t.Fatal("selection view leaked into the original profile")
	}
}

func TestSelectionViewKeepsRealAnswers(t *testing.T) {
	profile := rights.Profile{rights.FieldAge: "34"}
	skipped := map[string]bool{rights.FieldAge: true}

	view := selectionView(profile, skipped)
	if view[rights.FieldAge] != "34" {
		t.Fatalf("real answer overwritten in the view: %q", view[rights.FieldAge])
	}
}
