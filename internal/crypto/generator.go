package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Visually confusable characters removed from pools on request.
	ambiguousChars = "loIO01"

	MinLength    = 8
	MaxLength    = 128
	MinPINLength = 4
	MaxPINLength = 10

	// Two secure-random digits appended to every memorable password.
	memorableSuffixLen = 2
)

// ErrInvalidRequest is the root cause of every generation error; the
// sentinels below wrap it so callers can match either the class or the
// specific constraint.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrLengthTooShort     = fmt.Errorf("%w: length below minimum", ErrInvalidRequest)
	ErrLengthTooLong      = fmt.Errorf("%w: length above maximum", ErrInvalidRequest)
	ErrNoCharacterTypes   = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidRequest)
	ErrLengthInsufficient = fmt.Errorf("%w: length must be at least the number of selected character types", ErrInvalidRequest)
	ErrNoWords            = fmt.Errorf("%w: word count must be at least 1", ErrInvalidRequest)
	ErrEmptyWordList      = fmt.Errorf("%w: word list must not be empty", ErrInvalidRequest)
)

// randReader is the entropy source for all generation. It is crypto/rand in
// every production path; tests may substitute a fixed reader here, nowhere
// else.
var randReader io.Reader = rand.Reader

// GeneratorOptions configures composite password generation.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// MemorableOptions configures word-based password generation.
type MemorableOptions struct {
	Words      int
	Separator  string
	Capitalize bool
	WordList   []string
}

// Generate creates a cryptographically secure random password based on the
// given options. Every selected character type is guaranteed to appear at
// least once.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	pool, requiredSets, err := buildPool(opts)
	if err != nil {
		return "", err
	}
	if opts.Length < len(requiredSets) {
		return "", ErrLengthInsufficient
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	for i, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Shuffle so the forced characters are not positionally biased.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// GeneratePIN creates a numeric PIN of the given length.
func GeneratePIN(length int) (string, error) {
	if length < MinPINLength {
		return "", ErrLengthTooShort
	}
	if length > MaxPINLength {
		return "", ErrLengthTooLong
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := randChar(digitChars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}

// GenerateAlphabetic creates a letters-only password. It follows the same
// coverage rule as Generate restricted to the two letter classes.
func GenerateAlphabetic(length int, uppercase, lowercase, excludeAmbiguous bool) (string, error) {
	return Generate(GeneratorOptions{
		Length:           length,
		Uppercase:        uppercase,
		Lowercase:        lowercase,
		ExcludeAmbiguous: excludeAmbiguous,
	})
}

// GenerateMemorable creates a word-based password: Words words drawn
// uniformly with replacement, joined with Separator, suffixed with exactly
// two random digits. Capitalize upper-cases the first letter of each word.
func GenerateMemorable(opts MemorableOptions) (string, error) {
	if opts.Words < 1 {
		return "", ErrNoWords
	}
	if len(opts.WordList) == 0 {
		return "", ErrEmptyWordList
	}

	words := make([]string, opts.Words)
	for i := range words {
		n, err := randInt(len(opts.WordList))
		if err != nil {
			return "", err
		}
		word := opts.WordList[n]
		if opts.Capitalize {
			word = capitalize(word)
		}
		words[i] = word
	}

	suffix := make([]byte, memorableSuffixLen)
	for i := range suffix {
		ch, err := randChar(digitChars)
		if err != nil {
			return "", err
		}
		suffix[i] = ch
	}

	return strings.Join(words, opts.Separator) + string(suffix), nil
}

// PoolSize reports how many distinct characters the options select from.
func PoolSize(opts GeneratorOptions) (int, error) {
	pool, _, err := buildPool(opts)
	if err != nil {
		return 0, err
	}
	return len(pool), nil
}

// EntropyBits estimates the entropy of length independent uniform draws from
// a pool of the given size.
func EntropyBits(poolSize, length int) float64 {
	if poolSize <= 1 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// MemorableEntropyBits estimates the entropy of a memorable password built
// from the given word list size and word count, including the digit suffix.
func MemorableEntropyBits(wordListSize, words int) float64 {
	return EntropyBits(wordListSize, words) + EntropyBits(len(digitChars), memorableSuffixLen)
}

// buildPool assembles the candidate pool and the per-type sets a composite
// password must cover. Ambiguous characters are stripped per type before the
// union so forced picks honor the exclusion too.
func buildPool(opts GeneratorOptions) (string, []string, error) {
	var pool string
	var requiredSets []string

	add := func(charset string) {
		if opts.ExcludeAmbiguous {
			charset = stripAmbiguous(charset)
		}
		pool += charset
		requiredSets = append(requiredSets, charset)
	}

	if opts.Uppercase {
		add(uppercaseChars)
	}
	if opts.Lowercase {
		add(lowercaseChars)
	}
	if opts.Digits {
		add(digitChars)
	}
	if opts.Symbols {
		add(symbolChars)
	}

	if len(requiredSets) == 0 {
		return "", nil, ErrNoCharacterTypes
	}
	return pool, requiredSets, nil
}

func stripAmbiguous(charset string) string {
	var b strings.Builder
	for i := 0; i < len(charset); i++ {
		if strings.IndexByte(ambiguousChars, charset[i]) < 0 {
			b.WriteByte(charset[i])
		}
	}
	return b.String()
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// randChar picks a random character from charset using the secure source.
func randChar(charset string) (byte, error) {
	n, err := randInt(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randInt returns a uniform random int in [0, max).
func randInt(max int) (int, error) {
	n, err := rand.Int(randReader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// secureShuffle performs a Fisher-Yates shuffle using the secure source.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
