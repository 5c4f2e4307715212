// Package daily picks the same hidden word for everyone on a given UTC day.
package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using a BLAKE2b-256 MAC
// keyed with salt over YYYY-MM-DD, reduced mod answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h, err := blake2b.New256(macKey(salt))
	if err != nil {
		// Only reachable with a key over 64 bytes, which macKey rules out.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// macKey fits salt into BLAKE2b's 64-byte key limit.
func macKey(salt string) []byte {
	if len(salt) <= blake2b.Size {
		return []byte(salt)
	}
	sum := blake2b.Sum512([]byte(salt))
	return sum[:]
}

// Selector implements words.Selector with the daily index.
type Selector struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

var _ words.Selector = Selector{}

func (s Selector) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", words.ErrEmptyDictionary
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return candidates[WordIndex(now(), s.Salt, len(candidates))], nil
}
