package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-cli/internal/dictdb"
)

func TestNewFiltersAndDedups(t *testing.T) {
	d := New([]string{"Crane", " slate ", "# comment", "", "crane", "toolong", "ab1de", "fjörd", "pious"})
	if want := []string{"crane", "slate", "pious"}; !reflect.DeepEqual(d.Words(), want) {
		t.Fatalf("words = %v, want %v", d.Words(), want)
	}
	if !d.Contains("CRANE") || d.Contains("toolong") {
		t.Fatalf("Contains mismatch")
	}
}

func TestUnionKeepsOrder(t *testing.T) {
	a := New([]string{"crane", "slate"})
	b := New([]string{"slate", "fjord"})
	u := a.Union(b)
	if want := []string{"crane", "slate", "fjord"}; !reflect.DeepEqual(u.Words(), want) {
		t.Fatalf("union = %v, want %v", u.Words(), want)
	}
	if a.Len() != 2 {
		t.Fatalf("union mutated receiver")
	}
}

func TestNilDictionary(t *testing.T) {
	var d *Dictionary
	if d.Contains("crane") || d.Len() != 0 || d.Words() != nil {
		t.Fatal("nil dictionary should be empty")
	}
}

func writeList(t *testing.T, name string, words ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadEmbedded(t *testing.T) {
	allowed, answers, err := Load(context.Background(), Source{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if answers.Len() == 0 || allowed.Len() <= answers.Len() {
		t.Fatalf("answers=%d allowed=%d", answers.Len(), allowed.Len())
	}
	for _, w := range answers.Words() {
		if !allowed.Contains(w) {
			t.Fatalf("answer %q not allowed", w)
		}
	}
}

func TestLoadFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "crane", "slate")
	all := writeList(t, "allowed.txt", "fjord", "PIOUS", "bad")

	allowed, answers, err := Load(context.Background(), Source{AnswersFile: ans, AllowedFile: all})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if want := []string{"crane", "slate"}; !reflect.DeepEqual(answers.Words(), want) {
		t.Fatalf("answers = %v", answers.Words())
	}
	if want := []string{"crane", "slate", "fjord", "pious"}; !reflect.DeepEqual(allowed.Words(), want) {
		t.Fatalf("allowed = %v", allowed.Words())
	}

	allowed, answers, err = Load(context.Background(), Source{AllowedFile: all})
	if err != nil {
		t.Fatalf("load allowed only: %v", err)
	}
	if answers.Len() != 2 || allowed.Len() != 2 {
		t.Fatalf("allowed-only: answers=%d allowed=%d", answers.Len(), allowed.Len())
	}
}

func TestLoadEmptyFails(t *testing.T) {
	p := writeList(t, "empty.txt", "# nothing", "abc")
	if _, _, err := Load(context.Background(), Source{AllowedFile: p}); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("err = %v, want ErrEmptyDictionary", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(context.Background(), Source{AllowedFile: filepath.Join(t.TempDir(), "nope.txt")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
	if _, _, err := Load(context.Background(), Source{DBPath: filepath.Join(t.TempDir(), "nope.db")}); err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestLoadDB(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "words.db")
	db, err := dictdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := dictdb.Migrate(ctx, db); err != nil {
		t.Fatal(err)
	}
	st := dictdb.NewStore(db)
	if _, err := st.Import(ctx, "answers", []string{"crane"}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Import(ctx, "allowed", []string{"slate"}); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	allowed, answers, err := Load(ctx, Source{DBPath: path, AllowedFile: "ignored.txt"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(answers.Words(), []string{"crane"}) {
		t.Fatalf("answers = %v", answers.Words())
	}
	if !allowed.Contains("crane") || !allowed.Contains("slate") {
		t.Fatalf("allowed = %v", allowed.Words())
	}
}

func TestSelectors(t *testing.T) {
	list := []string{"crane", "slate", "pious"}
	for i := 0; i < 20; i++ {
		w, err := RandomSelector{}.Pick(list)
		if err != nil {
			t.Fatal(err)
		}
		if !New(list).Contains(w) {
			t.Fatalf("picked %q outside list", w)
		}
	}
	if _, err := (RandomSelector{}).Pick(nil); !errors.Is(err, ErrEmptyDictionary) {
		t.Fatalf("empty pick err = %v", err)
	}
	if w, _ := (FixedSelector{Word: " CRANE"}).Pick(nil); w != "crane" {
		t.Fatalf("fixed = %q", w)
	}
}
