// Package assets embeds the default word lists so the game runs without any
// files configured.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// List names, shared with the SQLite dictionary.
const (
	ListAnswers = "answers"
	ListAllowed = "allowed"
)

// Read returns the raw lines of an embedded list, skipping blanks and
// "#" comments. Filtering to playable words is left to the words package.
func Read(list string) ([]string, error) {
	switch list {
	case ListAnswers, ListAllowed:
	default:
		return nil, fmt.Errorf("assets: unknown list %q", list)
	}
	f, err := FS.Open(list + ".txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
