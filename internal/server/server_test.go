package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/zchutly/rights-finder/internal/matching"
	"github.com/zchutly/rights-finder/internal/rights"
	"github.com/zchutly/rights-finder/internal/validation"
)

func intPtr(n int) *int { return &n }

func findMatch(matches []*rights.Match, id string) *rights.Match {
	for _, m := range matches {
		if m.Right != nil && m.Right.ID == id {
			return m
		}
	}
	return nil
}

func newTestServer() *Server {
	catalog := &rights.Rights{Items: []*rights.Right{
		{
			ID:               "disability-allowance",
			Name:             "קצבת נכות כללית",
			AmountEstimation: "עד 3,700 ש\"ח לחודש",
			WebsiteURL:       "https://www.btl.gov.il",
			Eligibility: &rights.Criteria{
				DisabilityPercentage: intPtr(40),
			},
		},
		{
			ID:               "unemployment",
			Name:             "דמי אבטלה",
			AmountEstimation: "עד 18 ימי שכר בשנה",
		},
	}}

	cfg := matching.DefaultConfig()
	return New(":0", catalog, &cfg, validation.DefaultRules(), zap.NewNop())
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["catalog_count"] != float64(2) {
		t.Fatalf("expected catalog_count 2, got %v", body["catalog_count"])
	}
}

func TestEvaluateEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	payload := `{"profile": {"recognized_disability": "כן", "disability_percentage": "60", "employment_status": "מובטל"}}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(payload))
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Matches []*rights.Match    `json:"matches"`
		Report  *validation.Report `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	if len(body.Matches) != 2 {
		t.Fatalf("expected both rights to match, got %d", len(body.Matches))
	}
	if body.Report == nil || body.Report.RightsCount != 2 {
		t.Fatalf("expected a report covering 2 rights, got %+v", body.Report)
	}
	// Validation runs after filtering, so every match carries a score; a
	// well-sourced catalog entry must clear the validity threshold.
	for _, match := range body.Matches {
		if match.Confidence == 0 {
			t.Fatalf("expected a confidence score on %s", match.Right.ID)
		}
	}
	disability := findMatch(body.Matches, "disability-allowance")
	if disability == nil {
		t.Fatal("expected the disability allowance to match")
	}
	if disability.Confidence < 60 || !disability.Valid {
		t.Fatalf("expected a valid high-confidence match, got %d", disability.Confidence)
	}
}

func TestEvaluateRejectsEmptyProfile(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{}`))
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEvaluateRejectsBadJSON(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{broken`))
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQuestionsEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/questions", strings.NewReader(`{"profile": {}}`))
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Questions []struct {
			Field string `json:"field"`
		} `json:"questions"`
		Completion float64 `json:"completion"`
		Done       bool    `json:"done"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	if body.Done {
		t.Fatal("an empty profile cannot be done")
	}
	if len(body.Questions) != 1 || body.Questions[0].Field != "age" {
		t.Fatalf("expected the age question first, got %+v", body.Questions)
	}
	if body.Completion != 0 {
		t.Fatalf("expected 0%% completion, got %f", body.Completion)
	}
}
