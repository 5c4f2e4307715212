// apps/go-cli/internal/words/load.go
//
// Loads the answer and allowed-guess lists.
//
// Word Lists:
//   - "answers": words the hidden word is drawn from.
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If DBPath is set, both lists come from that SQLite dictionary.
//   2. If AnswersFile and AllowedFile are both set,
//      load answers from the first and allowed guesses from the second.
//   3. If only AllowedFile is set,
//      load that file and use it for both answers and allowed guesses
//      (same for AnswersFile alone).
//   4. Otherwise fall back to the embedded assets.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/dictdb"
)

// Source says where the word lists live.
type Source struct {
	AllowedFile string
	AnswersFile string
	DBPath      string
}

// Load resolves src into the allowed and answers dictionaries.
// It fails if the answers list ends up empty.
func Load(ctx context.Context, src Source) (allowed, answers *Dictionary, err error) {
	var ansList, allowList []string

	switch {
	case src.DBPath != "":
		ansList, allowList, err = loadDB(ctx, src.DBPath)

	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = ReadFile(src.AnswersFile); err == nil {
			allowList, err = ReadFile(src.AllowedFile)
		}

	case src.AllowedFile != "":
		allowList, err = ReadFile(src.AllowedFile)
		ansList = allowList

	case src.AnswersFile != "":
		ansList, err = ReadFile(src.AnswersFile)
		allowList = ansList

	default:
		if ansList, err = assets.Read(assets.ListAnswers); err == nil {
			allowList, err = assets.Read(assets.ListAllowed)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	answers = New(ansList)
	if answers.Len() == 0 {
		return nil, nil, ErrEmptyDictionary
	}
	allowed = answers.Union(New(allowList))

	log.Debug().
		Int("answers", answers.Len()).
		Int("allowed", allowed.Len()).
		Msg("word lists loaded")
	return allowed, answers, nil
}

// ReadFile returns the raw lines of a word list file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// loadDB reads both lists from an existing SQLite dictionary. The file must
// already exist; opening a missing path would silently create an empty one.
func loadDB(ctx context.Context, path string) (answers, allowed []string, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("words: dictionary database %s not found", path)
		}
		return nil, nil, fmt.Errorf("words: %w", err)
	}
	db, err := dictdb.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer db.Close()

	if err := dictdb.Migrate(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("words: migrate %s: %w", path, err)
	}
	st := dictdb.NewStore(db)
	if answers, err = st.Load(ctx, assets.ListAnswers); err != nil {
		return nil, nil, fmt.Errorf("words: load answers: %w", err)
	}
	if allowed, err = st.Load(ctx, assets.ListAllowed); err != nil {
		return nil, nil, fmt.Errorf("words: load allowed: %w", err)
	}
	// A database holding only one list uses it for both.
	if len(answers) == 0 {
		answers = allowed
	}
	return answers, allowed, nil
}
