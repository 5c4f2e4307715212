// apps/go-cli/internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - LetterState: what is known about a letter (ranked by informativeness).
//   - LetterStateMap: best-known state for each of the 26 letters.
//   - Guess / Outcome: what a single submission produced.

package game

const (
	// WordLength is the fixed number of letters in every word.
	WordLength = 5
	// MaxAttempts is the number of guesses a player gets.
	MaxAttempts = 6
)

// LetterState represents what a guess revealed about a letter.
// Possible values, from least to most informative:
//   - Unknown:    never guessed.
//   - NotPresent: not in the hidden word (or already fully accounted for).
//   - WrongPlace: in the hidden word, but at a different position.
//   - RightPlace: in the hidden word at this position.
type LetterState uint8

const (
	Unknown LetterState = iota
	NotPresent
	WrongPlace
	RightPlace
)

// rank is the merge order.
func (s LetterState) rank() int {
	switch s {
	case NotPresent:
		return 1
	case WrongPlace:
		return 2
	case RightPlace:
		return 3
	default:
		return 0
	}
}

func (s LetterState) String() string {
	switch s {
	case NotPresent:
		return "not_present"
	case WrongPlace:
		return "wrong_place"
	case RightPlace:
		return "right_place"
	default:
		return "unknown"
	}
}

// Best returns the more informative of a and b.
func Best(a, b LetterState) LetterState {
	if b.rank() > a.rank() {
		return b
	}
	return a
}

// LetterStateMap holds the best state observed so far for every letter a–z.
// It is a value type: copies never alias the session's map.
type LetterStateMap [26]LetterState

// Get returns the state for a lowercase ASCII letter, Unknown otherwise.
func (m LetterStateMap) Get(letter byte) LetterState {
	if j := idx(letter); j >= 0 {
		return m[j]
	}
	return Unknown
}

// Merge folds an observed state into the map. States never regress.
// Reports whether the entry changed.
func (m *LetterStateMap) Merge(letter byte, observed LetterState) bool {
	j := idx(letter)
	if j < 0 {
		return false
	}
	next := Best(m[j], observed)
	if next == m[j] {
		return false
	}
	m[j] = next
	return true
}

// Apply merges every per-letter update from a scoring pass.
func (m *LetterStateMap) Apply(updates map[byte]LetterState) {
	for letter, st := range updates {
		m.Merge(letter, st)
	}
}

// Guess is the scored result of one accepted attempt.
type Guess struct {
	Attempt int                     // 1-based attempt number
	Word    string                  // lowercase guess
	States  [WordLength]LetterState // one per position, in guess order
}

// Solved reports whether every position is RightPlace.
func (g Guess) Solved() bool {
	for _, st := range g.States {
		if st != RightPlace {
			return false
		}
	}
	return true
}

// OutcomeKind says what the caller should do with a submission.
type OutcomeKind int

const (
	InvalidInput OutcomeKind = iota // wrong length or non-letters; re-prompt
	UnknownWord                     // not in the dictionary; re-prompt
	Accepted                        // scored, game continues
	Won                             // hidden word guessed; terminal
	Lost                            // attempts exhausted; terminal
)

func (k OutcomeKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case UnknownWord:
		return "unknown_word"
	case Accepted:
		return "accepted"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Outcome is the result of Session.Submit.
//
// Guess is set for Accepted, Won and Lost. Attempt is the attempt the
// submission was made on. Hidden is only revealed on Lost. Letters is a
// snapshot of the letter-state map after the submission.
type Outcome struct {
	Kind    OutcomeKind
	Guess   *Guess
	Attempt int
	Hidden  string
	Letters LetterStateMap
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool { return o.Kind == Won || o.Kind == Lost }

// Status is the coarse session state.
type Status int

const (
	InProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	}
	return "playing"
}
