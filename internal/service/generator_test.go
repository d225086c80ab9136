package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.EntropyBits <= 0 {
		t.Errorf("expected positive entropy, got %f", resp.EntropyBits)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:      model.KindComposite,
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_PIN(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Kind: model.KindPIN, Length: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 6 {
		t.Errorf("expected length 6, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if c < '0' || c > '9' {
			t.Errorf("unexpected non-digit %q in PIN", c)
		}
	}
}

func TestGenerate_PINDefaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Kind: model.KindPIN})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 4 {
		t.Errorf("expected default PIN length 4, got %d", resp.Length)
	}
}

func TestGenerate_Alphabetic(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:      model.KindAlphabetic,
		Length:    20,
		Uppercase: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if c < 'a' || c > 'z' {
			t.Errorf("unexpected character %q in lowercase-only password", c)
		}
	}
}

func TestGenerate_AlphabeticDefaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Kind: model.KindAlphabetic})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected default alphabetic length 12, got %d", resp.Length)
	}
}

func TestGenerate_Memorable(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Kind: model.KindMemorable})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Default: 4 built-in words, dash separator, two-digit suffix.
	words := strings.Split(resp.Password, "-")
	if len(words) != 4 {
		t.Errorf("expected 4 words, got %d in %q", len(words), resp.Password)
	}
	last := words[len(words)-1]
	if len(last) < 3 {
		t.Fatalf("last segment %q too short for word plus suffix", last)
	}
	suffix := last[len(last)-2:]
	for _, c := range suffix {
		if c < '0' || c > '9' {
			t.Errorf("expected numeric suffix, got %q in %q", suffix, resp.Password)
		}
	}
}

func TestGenerate_MemorableCustomWordList(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Kind:       model.KindMemorable,
		Words:      2,
		Separator:  ".",
		Capitalize: boolPtr(false),
		WordList:   []string{"zebra"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(resp.Password, "zebra.zebra") {
		t.Errorf("expected zebra.zebra prefix, got %q", resp.Password)
	}
}

func TestGenerate_UnknownKind(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Kind: "passphrase"})
	if !errors.Is(err, crypto.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown kind, got %v", err)
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, crypto.ErrInvalidRequest) {
		t.Fatal("expected error for length too short")
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, crypto.ErrInvalidRequest) {
		t.Fatal("expected error for length too long")
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err == nil {
		t.Fatal("expected error when no character types selected")
	}
}

func TestEvaluate_MapsAssessment(t *testing.T) {
	svc := NewGeneratorService()
	a := svc.Evaluate("aB3$kP9!")
	if a.Score != 75 {
		t.Errorf("expected score 75, got %d", a.Score)
	}
	if a.Category != "strong" {
		t.Errorf("expected category strong, got %q", a.Category)
	}
	if !a.HasUpper || !a.HasLower || !a.HasDigit || !a.HasSymbol {
		t.Errorf("expected all composition flags set, got %+v", a)
	}
	if a.Length != 8 {
		t.Errorf("expected length 8, got %d", a.Length)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	svc := NewGeneratorService()
	a := svc.Evaluate("")
	if a.Score != 0 {
		t.Errorf("expected score 0, got %d", a.Score)
	}
	if a.Category != "weak" {
		t.Errorf("expected category weak, got %q", a.Category)
	}
	if len(a.Findings) == 0 {
		t.Error("expected non-empty findings for empty password")
	}
}
