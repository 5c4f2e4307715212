// apps/go-cli/internal/game/engine.go
//
// Game session for a single hidden word.
// Responsibilities:
//   - Validate guesses (length, alphabetic, dictionary) in a fixed order.
//   - Score accepted guesses and merge them into the letter-state map.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary and hidden word are injected; the session has no global
//     state and no randomness, so it is deterministic given its inputs.
//   - A Session is not safe for concurrent use. Independent sessions may share
//     one read-only Dictionary.
package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrGameOver is returned by Submit once the session is won or lost.
	ErrGameOver = errors.New("game finished")
	// ErrInvalidHiddenWord is returned by NewSession for a malformed answer.
	ErrInvalidHiddenWord = errors.New("hidden word must be 5 letters a-z")
)

// Dictionary is the read-only word lookup a session validates against.
type Dictionary interface {
	Contains(word string) bool
}

// Session holds the state of one game.
type Session struct {
	dict    Dictionary
	hidden  string
	counts  letterCounts // template; cloned for every scoring pass
	letters LetterStateMap
	attempt int
	status  Status
}

// NewSession starts a game for hidden. The word is lowercased; it must be
// WordLength ASCII letters.
func NewSession(dict Dictionary, hidden string) (*Session, error) {
	hidden = strings.ToLower(strings.TrimSpace(hidden))
	if len(hidden) != WordLength || !isAlpha(hidden) {
		return nil, ErrInvalidHiddenWord
	}
	return &Session{
		dict:    dict,
		hidden:  hidden,
		counts:  countLetters(hidden),
		attempt: 1,
	}, nil
}

// Submit validates and scores raw input.
//
// Validation order (first failure wins):
//   - length must be WordLength          → InvalidInput
//   - letters must be a–z                → InvalidInput
//   - word must be in the dictionary     → UnknownWord
//   - exact match                        → Won
//   - attempt MaxAttempts used up        → Lost
//
// Rejected input never touches the attempt counter or the letter map.
func (s *Session) Submit(raw string) (Outcome, error) {
	if s.status != InProgress {
		return Outcome{Attempt: s.attempt, Letters: s.letters}, ErrGameOver
	}
	out := Outcome{Attempt: s.attempt}

	word := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case utf8.RuneCountInString(word) != WordLength, !isAlpha(word):
		out.Kind = InvalidInput
	case s.dict == nil || !s.dict.Contains(word):
		out.Kind = UnknownWord
	default:
		out.Guess = s.apply(word)
		switch {
		case word == s.hidden:
			s.status = StatusWon
			out.Kind = Won
		case s.attempt >= MaxAttempts:
			s.status = StatusLost
			out.Kind = Lost
			out.Hidden = s.hidden
		default:
			s.attempt++
			out.Kind = Accepted
		}
	}
	out.Letters = s.letters
	return out, nil
}

// apply scores word against a fresh copy of the multiset and merges the
// per-letter updates.
func (s *Session) apply(word string) *Guess {
	sc := scoreWith(s.counts, s.hidden, word)
	s.letters.Apply(sc.Updates)
	return &Guess{Attempt: s.attempt, Word: word, States: sc.States}
}

// Attempt returns the current attempt number (1..MaxAttempts).
func (s *Session) Attempt() int { return s.attempt }

// Status reports playing/won/lost.
func (s *Session) Status() Status { return s.status }

// Done reports whether the session is terminal.
func (s *Session) Done() bool { return s.status != InProgress }

// Letters returns a copy of the letter-state map.
func (s *Session) Letters() LetterStateMap { return s.letters }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if idx(s[i]) < 0 {
			return false
		}
	}
	return true
}
