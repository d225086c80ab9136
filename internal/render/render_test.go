package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/passgen/passgen-go/internal/model"
)

func TestPasswordBoxNoColor(t *testing.T) {
	r := New(true)
	resp := model.GenerateResponse{Password: "aB3$kP9!", Length: 8, EntropyBits: 52.4}
	if got := r.PasswordBox(resp); got != "aB3$kP9!" {
		t.Errorf("PasswordBox() = %q, want bare password", got)
	}
}

func TestStrengthReport(t *testing.T) {
	r := New(true)
	a := model.StrengthAssessment{
		Score:    75,
		Category: "strong",
		Findings: []string{"Add a symbol"},
		Length:   8,
		HasUpper: true,
		HasLower: true,
		HasDigit: true,
	}
	out := r.Strength(a)

	for _, want := range []string{
		"75/100",
		"strong",
		"8 characters",
		"uppercase, lowercase, digits",
		"Add a symbol",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Strength() output missing %q:\n%s", want, out)
		}
	}
}

func TestStrengthReportEmptyPassword(t *testing.T) {
	r := New(true)
	out := r.Strength(model.StrengthAssessment{Score: 0, Category: "weak"})
	if !strings.Contains(out, "Contains: nothing") {
		t.Errorf("Strength() output missing composition line:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	r := New(true)
	var b strings.Builder
	resp := model.GenerateResponse{Password: "secret42", Length: 8, EntropyBits: 41.36}
	if err := r.JSON(&b, resp); err != nil {
		t.Fatalf("JSON() unexpected error: %v", err)
	}

	var decoded model.GenerateResponse
	if err := json.Unmarshal([]byte(b.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Password != "secret42" || decoded.Length != 8 {
		t.Errorf("JSON round trip mismatch: %+v", decoded)
	}
}
