package matching

import (
	"regexp"
	"strings"

	"github.com/zchutly/rights-finder/internal/rights"
)

var (
	digitRuns = regexp.MustCompile(`\d+`)

	// Amount texts that explicitly carry no figure.
	unknownAmounts = []string{"משתנה", "לא ידוע"}

	dayOfPayPhrases   = []string{"ימי שכר", "יום שכר"}
	monthOfPayPhrases = []string{"חודש שכר", "חודשי שכר"}
)

// Value is the monetary magnitude derived from a Right's free-text amount
// description. Unknown is set when the text carries no usable figure; such
// rights are never dropped for value alone.
type Value struct {
	Amount  int
	Unknown bool
}

// ExtractValue parses an amount estimation string into a comparable
// magnitude. Unit phrasings (days or months of salary) are converted using
// the configured wage constants; otherwise the largest digit run wins.
// Parsing never fails: anything unusable is reported as unknown-but-safe.
func ExtractValue(text string, cfg Config) Value {
	text = strings.TrimSpace(text)
	if text == "" {
		return Value{Unknown: true}
	}
	for _, phrase := range unknownAmounts {
		if strings.Contains(text, phrase) {
			return Value{Unknown: true}
		}
	}

	normalized := strings.ReplaceAll(text, ",", "")

	if containsAny(normalized, dayOfPayPhrases) {
		if days, ok := firstInt(normalized); ok {
			return Value{Amount: days * cfg.DailyWage}
		}
		return Value{Unknown: true}
	}

	if containsAny(normalized, monthOfPayPhrases) {
		months, ok := firstInt(normalized)
		if !ok {
			months = cfg.AssumedTenureMonths
		}
		return Value{Amount: months * cfg.MonthlyWage}
	}

	runs := digitRuns.FindAllString(normalized, -1)
	if len(runs) == 0 {
		return Value{Unknown: true}
	}

	maxAmount := 0
	for _, run := range runs {
		if n, ok := rights.ParseLeadingInt(run); ok && n > maxAmount {
			maxAmount = n
		}
	}
	return Value{Amount: maxAmount}
}

// AmountFigure returns the largest digit run in an amount text, for
// plausibility auditing. The second return is false when there is none.
func AmountFigure(text string) (int, bool) {
	normalized := strings.ReplaceAll(text, ",", "")
	runs := digitRuns.FindAllString(normalized, -1)
	maxAmount, found := 0, false
	for _, run := range runs {
		if n, ok := rights.ParseLeadingInt(run); ok {
			found = true
			if n > maxAmount {
				maxAmount = n
			}
		}
	}
	return maxAmount, found
}

func firstInt(s string) (int, bool) {
	return rights.ParseLeadingInt(s)
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
