package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/console"
	"github.com/robalobadob/wordle/apps/go-cli/internal/dictdb"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	envFlag := flag.String("env", ".env", "Path to a .env file (optional)")
	importFlag := flag.String("import", "", "Word list file to import into the SQLite dictionary, then exit")
	listFlag := flag.String("list", "allowed", "List to import into: allowed or answers")
	dbFlag := flag.String("db", "words.db", "SQLite dictionary path used by -import")
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogger(cfg)

	ctx := context.Background()
	if *importFlag != "" {
		if err := runImport(ctx, *importFlag, *listFlag, *dbFlag); err != nil {
			log.Fatal().Err(err).Msg("import failed")
		}
		return
	}

	allowed, answers, err := words.Load(ctx, cfg.Words)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	hidden, err := cfg.Selector().Pick(answers.Words())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick a word")
	}
	if !allowed.Contains(hidden) {
		log.Fatal().Str("answer", hidden).Msg("hidden word is not in the dictionary")
	}
	sess, err := game.NewSession(allowed, hidden)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	log.Debug().Str("mode", string(cfg.Mode)).Int("words", allowed.Len()).Msg("game started")

	r := render.New(colorable.NewColorableStdout(), render.ColorEnabled(cfg.Color, os.Stdout))
	r.Loaded(allowed.Len())

	if _, err := console.Run(os.Stdin, r, sess); err != nil {
		if errors.Is(err, console.ErrNoInput) {
			fmt.Println()
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// setupLogger sends console-format logs to stderr; stdout is game text only.
func setupLogger(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	w := zerolog.ConsoleWriter{
		Out:     colorable.NewColorableStderr(),
		NoColor: !render.ColorEnabled(cfg.Color, os.Stderr),
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// runImport loads a word list file, filters it and stores it in the SQLite
// dictionary under list.
func runImport(ctx context.Context, path, list, dsn string) error {
	lines, err := words.ReadFile(path)
	if err != nil {
		return err
	}
	dict := words.New(lines)
	if dict.Len() == 0 {
		return fmt.Errorf("%s: %w", path, words.ErrEmptyDictionary)
	}

	db, err := dictdb.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := dictdb.Migrate(ctx, db); err != nil {
		return err
	}

	st := dictdb.NewStore(db)
	added, err := st.Import(ctx, list, dict.Words())
	if err != nil {
		return err
	}
	counts, err := st.Counts(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Str("db", dsn).
		Str("list", list).
		Int("read", dict.Len()).
		Int("added", added).
		Int("answers", counts["answers"]).
		Int("allowed", counts["allowed"]).
		Msg("word list imported")
	return nil
}
