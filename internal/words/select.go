// apps/go-cli/internal/words/select.go
//
// Hidden-word selection. The session never picks its own word; one of these
// selectors does, and the result is injected.

package words

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Selector picks the hidden word from a list of candidates.
type Selector interface {
	Pick(candidates []string) (string, error)
}

// RandomSelector picks uniformly using crypto/rand.
type RandomSelector struct{}

func (RandomSelector) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyDictionary
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return "", err
	}
	return candidates[n.Int64()], nil
}

// FixedSelector always returns Word. Handy for tests and for replaying a
// known puzzle.
type FixedSelector struct{ Word string }

func (f FixedSelector) Pick([]string) (string, error) {
	return strings.ToLower(strings.TrimSpace(f.Word)), nil
}
