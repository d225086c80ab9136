// Package config resolves defaults from the environment and a TOML file.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// EnvConfig holds defaults read from PASSGEN_* environment variables.
// Nil fields were not set.
type EnvConfig struct {
	Length    *int
	Words     *int
	Separator *string
	NoColor   *bool
}

// LoadEnv reads the PASSGEN_* environment variables. Malformed values are
// skipped with a warning rather than failing startup.
func LoadEnv() EnvConfig {
	return EnvConfig{
		Length:    lookupInt("PASSGEN_LENGTH"),
		Words:     lookupInt("PASSGEN_WORDS"),
		Separator: lookupString("PASSGEN_SEPARATOR"),
		NoColor:   lookupBool("PASSGEN_NO_COLOR"),
	}
}

func lookupString(key string) *string {
	if v, ok := os.LookupEnv(key); ok {
		return &v
	}
	return nil
}

func lookupInt(key string) *int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed environment variable", "key", key, "value", v)
		return nil
	}
	return &n
}

func lookupBool(key string) *bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("ignoring malformed environment variable", "key", key, "value", v)
		return nil
	}
	return &b
}
