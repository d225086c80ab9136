package crypto

import "strings"

// Category labels a strength score band.
type Category string

const (
	CategoryWeak       Category = "weak"
	CategoryFair       Category = "fair"
	CategoryStrong     Category = "strong"
	CategoryVeryStrong Category = "very strong"
)

// Scoring constants. Fixed so assessments are reproducible: a 16-character
// password covering all four classes scores exactly 100.
const (
	lengthScoreShort  = 15 // 8-11 characters
	lengthScoreMedium = 25 // 12-15 characters
	lengthScoreLong   = 40 // 16+ characters
	classScore        = 15 // per character class present

	repeatPenalty     = 10
	sequentialPenalty = 10
	commonPenalty     = 20
)

// commonPasswords are matched case-insensitively as substrings.
var commonPasswords = []string{
	"password", "123456", "qwerty", "abc123", "letmein",
	"welcome", "admin", "monkey", "dragon", "iloveyou",
}

// Assessment is the result of evaluating a password.
type Assessment struct {
	Score     int
	Category  Category
	Findings  []string
	Length    int
	HasUpper  bool
	HasLower  bool
	HasDigit  bool
	HasSymbol bool
}

// Evaluate scores a password with an additive point model and returns the
// assessment. It never fails; the empty string scores 0. Checks run in a
// fixed order so findings are deterministic for identical input.
func Evaluate(password string) Assessment {
	a := Assessment{Length: len(password)}

	score := 0
	switch {
	case a.Length >= 16:
		score += lengthScoreLong
	case a.Length >= 12:
		score += lengthScoreMedium
	case a.Length >= 8:
		score += lengthScoreShort
	}
	if a.Length < 8 {
		a.Findings = append(a.Findings, "Use at least 8 characters")
	}

	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			a.HasUpper = true
		case c >= 'a' && c <= 'z':
			a.HasLower = true
		case c >= '0' && c <= '9':
			a.HasDigit = true
		default:
			a.HasSymbol = true
		}
	}
	for _, class := range []struct {
		present bool
		finding string
	}{
		{a.HasUpper, "Add uppercase letters"},
		{a.HasLower, "Add lowercase letters"},
		{a.HasDigit, "Add a digit"},
		{a.HasSymbol, "Add a symbol"},
	} {
		if class.present {
			score += classScore
		} else {
			a.Findings = append(a.Findings, class.finding)
		}
	}

	if hasRepeatedRun(password) {
		score -= repeatPenalty
		a.Findings = append(a.Findings, "Avoid repeating the same character")
	}
	if hasSequentialRun(password) {
		score -= sequentialPenalty
		a.Findings = append(a.Findings, "Avoid sequential characters")
	}
	if containsCommonPassword(password) {
		score -= commonPenalty
		a.Findings = append(a.Findings, "Avoid common passwords")
	}

	a.Score = clampScore(score)
	a.Category = categorize(a.Score)
	return a
}

// categorize maps a clamped score to its band.
func categorize(score int) Category {
	switch {
	case score >= 80:
		return CategoryVeryStrong
	case score >= 60:
		return CategoryStrong
	case score >= 40:
		return CategoryFair
	default:
		return CategoryWeak
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// hasRepeatedRun reports whether the password contains 3+ identical
// consecutive characters.
func hasRepeatedRun(password string) bool {
	run := 1
	for i := 1; i < len(password); i++ {
		if password[i] == password[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasSequentialRun reports whether the password contains 3+ consecutive
// ascending letters or digits, case-insensitively ("abc", "123").
func hasSequentialRun(password string) bool {
	s := strings.ToLower(password)
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1]+1 && sameSequenceClass(s[i-1], s[i]) {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

func sameSequenceClass(a, b byte) bool {
	letters := a >= 'a' && a <= 'z' && b >= 'a' && b <= 'z'
	digits := a >= '0' && a <= '9' && b >= '0' && b <= '9'
	return letters || digits
}

func containsCommonPassword(password string) bool {
	lower := strings.ToLower(password)
	for _, common := range commonPasswords {
		if strings.Contains(lower, common) {
			return true
		}
	}
	return false
}
