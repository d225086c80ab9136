// Package wordlist provides the built-in word list for memorable passwords
// and loads user-supplied lists from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// builtin is the fixed list used when no file is supplied. Order matters only
// for reproducibility of documentation; selection is uniform.
var builtin = []string{
	"apple", "beach", "cloud", "dance", "eagle", "flame", "green", "house",
	"island", "jungle", "knight", "lemon", "music", "night", "ocean", "peace",
	"quiet", "river", "stone", "tiger", "unity", "voice", "water", "youth",
	"brave", "charm", "dream", "fairy", "giant", "happy", "magic", "noble",
	"quick", "smart", "trust", "vivid", "wisdom", "bright", "calm", "fresh",
	"storm", "lunar", "solar", "crystal", "golden", "silver", "forest", "mountain",
}

// Builtin returns a copy of the built-in word list.
func Builtin() []string {
	words := make([]string, len(builtin))
	copy(words, builtin)
	return words
}

// LoadWords reads one word per line from the provided file path. Blank lines
// are skipped; an empty result is an error.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
