// apps/go-cli/internal/dictdb/db.go
//
// SQLite-backed word lists.
// Responsibilities:
//   - Opening a SQLite database in WAL mode with a busy timeout.
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Importing and loading the "answers" and "allowed" word lists.
//
// Only word lists live here. Game state is never written.

package dictdb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

//go:embed migrations/*.sql
var migrations embed.FS

// ErrUnknownList is returned for a list name other than answers/allowed.
var ErrUnknownList = errors.New("dictdb: unknown word list")

// Open opens (and creates if missing) a SQLite database file.
//
//   - Ensures parent directory exists for relative DSNs (e.g. ./data/words.db).
//   - Configures busy timeout and WAL journaling mode, so a running game can
//     read while -import writes.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded migrations in lexical order, each inside its
// own transaction. Applied files are recorded in _migrations and skipped.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Store reads and writes word lists.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func checkList(list string) error {
	if list != assets.ListAnswers && list != assets.ListAllowed {
		return fmt.Errorf("%w: %q", ErrUnknownList, list)
	}
	return nil
}

// Import inserts words into list, ignoring ones already present.
// Returns how many rows were added. Words are stored as given; callers
// filter them first.
func (s *Store) Import(ctx context.Context, list string, words []string) (int, error) {
	if err := checkList(list); err != nil {
		return 0, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(list, word) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, w := range words {
		res, err := stmt.ExecContext(ctx, list, w)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return added, nil
}

// Load returns every word in list, in insertion order.
func (s *Store) Load(ctx context.Context, list string) ([]string, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE list=? ORDER BY id ASC`, list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Counts returns the number of words per list.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT list, COUNT(1) FROM words GROUP BY list`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{assets.ListAnswers: 0, assets.ListAllowed: 0}
	for rows.Next() {
		var list string
		var n int
		if err := rows.Scan(&list, &n); err != nil {
			return nil, err
		}
		out[list] = n
	}
	return out, rows.Err()
}
