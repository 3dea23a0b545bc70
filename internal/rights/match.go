package rights

// Match pairs a Right with the values derived for one evaluation: the
// monetary magnitude extracted from its amount text and, after validation,
// a confidence score with its issue list. Matches are ephemeral; nothing
// here outlives the request.
type Match struct {
	Right *Right `json:"right"`

	Value        int  `json:"extracted_value"`
	ValueUnknown bool `json:"value_unknown,omitempty"`

	Confidence int      `json:"confidence_score"`
	Valid      bool     `json:"valid"`
	Issues     []string `json:"issues,omitempty"`
}

// Matches is the ordered candidate set flowing through the evaluation
// pipeline. Order is catalog order until the ranking step sorts it.
type Matches struct {
	Items []*Match
}

// NewMatches seeds a candidate set from a catalog snapshot, preserving
// catalog order.
func NewMatches(catalog *Rights) *Matches {
	m := &Matches{}
	if catalog == nil {
		return m
	}
	m.Items = make([]*Match, 0, catalog.Len())
	for _, right := range catalog.Items {
		m.Items = append(m.Items, &Match{Right: right})
	}
	return m
}

func (m *Matches) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Items)
}

func (m *Matches) Names() []string {
	names := make([]string, 0, m.Len())
	for _, match := range m.Items {
		names = append(names, match.Right.Name)
	}
	return names
}

func (m *Matches) FindByID(id string) *Match {
	for _, match := range m.Items {
		if match.Right != nil && match.Right.ID == id {
			return match
		}
	}
	return nil
}

// Keep returns a new collection holding only the matches the predicate
// accepts, preserving order. The receiver is not mutated.
func (m *Matches) Keep(pred func(*Match) bool) *Matches {
	kept := &Matches{Items: make([]*Match, 0, m.Len())}
	for _, match := range m.Items {
		if pred(match) {
			kept.Items = append(kept.Items, match)
		}
	}
	return kept
}
