// apps/go-cli/internal/config/config.go
//
// Runtime configuration from environment variables, optionally seeded from
// .env files. Variables already set in the process win over file values,
// the same precedence godotenv.Load uses.
//
// Environment variables:
//   LOG_LEVEL=info                 zerolog level
//   WORDS_ALLOWED_FILE=/path       valid guesses, one per line
//   WORDS_ANSWERS_FILE=/path       hidden-word candidates, one per line
//   WORDS_DB=/path/words.db        SQLite dictionary (wins over files)
//   WORDLE_MODE=random|daily       hidden-word selection
//   WORDLE_ANSWER=crane            fixed hidden word (overrides mode)
//   DAILY_SALT=...                 key for daily mode
//   WORDLE_COLOR=auto|always|never
//   NO_COLOR=1                     disables colour like WORDLE_COLOR=never

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Mode selects how the hidden word is chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel  zerolog.Level
	Words     words.Source
	Mode      Mode
	Answer    string
	DailySalt string
	Color     render.ColorMode
}

// Load reads the environment, falling back to values from envFiles.
// Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	fileEnv := map[string]string{}
	for _, f := range envFiles {
		m, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read %s: %w", f, err)
		}
		for k, v := range m {
			if _, ok := fileEnv[k]; !ok {
				fileEnv[k] = v
			}
		}
	}
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		if v := fileEnv[k]; v != "" {
			return v
		}
		return def
	}

	var cfg Config
	lvl, err := zerolog.ParseLevel(strings.ToLower(get("LOG_LEVEL", "info")))
	if err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	cfg.Words = words.Source{
		AllowedFile: get("WORDS_ALLOWED_FILE", ""),
		AnswersFile: get("WORDS_ANSWERS_FILE", ""),
		DBPath:      get("WORDS_DB", ""),
	}

	switch m := Mode(strings.ToLower(get("WORDLE_MODE", string(ModeRandom)))); m {
	case ModeRandom, ModeDaily:
		cfg.Mode = m
	default:
		return Config{}, fmt.Errorf("config: WORDLE_MODE must be random or daily, got %q", m)
	}

	cfg.Answer = strings.ToLower(strings.TrimSpace(get("WORDLE_ANSWER", "")))
	cfg.DailySalt = get("DAILY_SALT", "local_dev_salt")

	switch c := render.ColorMode(strings.ToLower(get("WORDLE_COLOR", string(render.ColorAuto)))); c {
	case render.ColorAuto, render.ColorAlways, render.ColorNever:
		cfg.Color = c
	default:
		return Config{}, fmt.Errorf("config: WORDLE_COLOR must be auto, always or never, got %q", c)
	}
	if get("NO_COLOR", "") != "" && cfg.Color == render.ColorAuto {
		cfg.Color = render.ColorNever
	}
	return cfg, nil
}

// Selector returns the hidden-word selector for cfg.
func (c Config) Selector() words.Selector {
	switch {
	case c.Answer != "":
		return words.FixedSelector{Word: c.Answer}
	case c.Mode == ModeDaily:
		return daily.Selector{Salt: c.DailySalt}
	}
	return words.RandomSelector{}
}
