package model

// Kind selects the password generation mode.
type Kind string

const (
	KindComposite  Kind = "composite"
	KindPIN        Kind = "pin"
	KindAlphabetic Kind = "alphabetic"
	KindMemorable  Kind = "memorable"
)

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Kind             Kind  `json:"kind"`
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`

	// Memorable-mode fields.
	Words      int      `json:"words"`
	Separator  string   `json:"separator"`
	Capitalize *bool    `json:"capitalize"`
	WordList   []string `json:"-"`
}

// GenerateResponse represents a password generation response. The password is
// returned to the caller and retained nowhere else.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
}

// StrengthAssessment represents a password strength evaluation.
type StrengthAssessment struct {
	Score     int      `json:"score"`
	Category  string   `json:"category"`
	Findings  []string `json:"findings"`
	Length    int      `json:"length"`
	HasUpper  bool     `json:"has_uppercase"`
	HasLower  bool     `json:"has_lowercase"`
	HasDigit  bool     `json:"has_digits"`
	HasSymbol bool     `json:"has_symbols"`
}
