package service

import (
	"fmt"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/wordlist"
)

// Defaults applied when a request leaves a field unset.
const (
	defaultLength     = 16
	defaultAlphaLen   = 12
	defaultPINLength  = 4
	defaultWords      = 4
	defaultSeparator  = "-"
	defaultCapitalize = true
)

// GeneratorService handles password generation and strength evaluation.
// It is stateless; concurrent use requires no coordination.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request. An empty kind is
// treated as composite.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	switch req.Kind {
	case model.KindComposite, "":
		return s.generateComposite(req)
	case model.KindPIN:
		return s.generatePIN(req)
	case model.KindAlphabetic:
		return s.generateAlphabetic(req)
	case model.KindMemorable:
		return s.generateMemorable(req)
	default:
		return model.GenerateResponse{}, fmt.Errorf("%w: unknown kind %q", crypto.ErrInvalidRequest, req.Kind)
	}
}

// Evaluate scores an arbitrary password. It never fails; the empty string
// yields the lowest score.
func (s *GeneratorService) Evaluate(password string) model.StrengthAssessment {
	a := crypto.Evaluate(password)
	return model.StrengthAssessment{
		Score:     a.Score,
		Category:  string(a.Category),
		Findings:  a.Findings,
		Length:    a.Length,
		HasUpper:  a.HasUpper,
		HasLower:  a.HasLower,
		HasDigit:  a.HasDigit,
		HasSymbol: a.HasSymbol,
	}
}

func (s *GeneratorService) generateComposite(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Digits:           boolOrDefault(req.Digits, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}
	if opts.Length == 0 {
		opts.Length = defaultLength
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	pool, err := crypto.PoolSize(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return response(password, crypto.EntropyBits(pool, opts.Length)), nil
}

func (s *GeneratorService) generatePIN(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = defaultPINLength
	}
	pin, err := crypto.GeneratePIN(length)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return response(pin, crypto.EntropyBits(10, length)), nil
}

func (s *GeneratorService) generateAlphabetic(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = defaultAlphaLen
	}
	upper := boolOrDefault(req.Uppercase, true)
	lower := boolOrDefault(req.Lowercase, true)

	password, err := crypto.GenerateAlphabetic(length, upper, lower, req.ExcludeAmbiguous)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	pool, err := crypto.PoolSize(crypto.GeneratorOptions{
		Uppercase:        upper,
		Lowercase:        lower,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	})
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return response(password, crypto.EntropyBits(pool, length)), nil
}

func (s *GeneratorService) generateMemorable(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.MemorableOptions{
		Words:      req.Words,
		Separator:  req.Separator,
		Capitalize: boolOrDefault(req.Capitalize, defaultCapitalize),
		WordList:   req.WordList,
	}
	if opts.Words == 0 {
		opts.Words = defaultWords
	}
	if opts.Separator == "" {
		opts.Separator = defaultSeparator
	}
	if len(opts.WordList) == 0 {
		opts.WordList = wordlist.Builtin()
	}

	password, err := crypto.GenerateMemorable(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return response(password, crypto.MemorableEntropyBits(len(opts.WordList), opts.Words)), nil
}

func response(password string, entropyBits float64) model.GenerateResponse {
	return model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		EntropyBits: entropyBits,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
