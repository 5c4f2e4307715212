// apps/go-cli/internal/words/words.go
//
// Dictionary values for the game.
//
// A Dictionary is built once at startup and then only read, so a single
// value can back any number of sessions.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase and de-duplicated, keeping the
//     first occurrence's position.

package words

import (
	"errors"
	"strings"
)

// WordLength is the only word length the game supports.
const WordLength = 5

// ErrEmptyDictionary is returned when a list ends up with no usable words.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Dictionary is an ordered, de-duplicated word list with O(1) lookup.
type Dictionary struct {
	list []string
	set  map[string]struct{}
}

// New filters raw into a Dictionary. Lines are trimmed and lowercased;
// blanks, "#" comments and anything that is not five ASCII letters are
// dropped.
func New(raw []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(raw))}
	for _, line := range raw {
		d.add(line)
	}
	return d
}

func (d *Dictionary) add(line string) {
	w := strings.TrimSpace(strings.ToLower(line))
	if w == "" || strings.HasPrefix(w, "#") || !valid(w) {
		return
	}
	if _, ok := d.set[w]; ok {
		return
	}
	d.set[w] = struct{}{}
	d.list = append(d.list, w)
}

// Union returns a new Dictionary with d's words followed by other's.
func (d *Dictionary) Union(other *Dictionary) *Dictionary {
	out := New(d.list)
	if other != nil {
		for _, w := range other.list {
			out.add(w)
		}
	}
	return out
}

// Contains reports whether w is in the dictionary (case-insensitive).
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Words returns the words in load order. Callers must not modify it.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return d.list
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// valid reports whether w is exactly WordLength lowercase ASCII letters.
func valid(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
