// apps/go-cli/internal/game/score.go
//
// Scoring engine: the classic two-pass Wordle algorithm plus the per-letter
// "best state in this guess" summary used for the keyboard hints.
//
// Notes:
//   - Inputs are expected lowercase a–z and WordLength long; anything else is
//     scored as NotPresent rather than rejected.
//   - letterCounts is the multiset of hidden-word letters. It is an array, so
//     passing it by value is the per-pass clone.

package game

// letterCounts maps letter index (a=0) to remaining occurrences.
type letterCounts [26]int

// countLetters builds the occurrence multiset of word.
func countLetters(word string) letterCounts {
	var c letterCounts
	for i := 0; i < len(word); i++ {
		if j := idx(word[i]); j >= 0 {
			c[j]++
		}
	}
	return c
}

// Scoring is the pure result of comparing a guess with the hidden word.
type Scoring struct {
	States  [WordLength]LetterState
	Updates map[byte]LetterState // best state per guessed letter
}

// Score compares guess against hidden.
func Score(hidden, guess string) Scoring {
	return scoreWith(countLetters(hidden), hidden, guess)
}

// scoreWith runs both passes against a private copy of counts.
//
// Pass 1:
//   - Mark exact matches RightPlace and consume one count each.
//
// Pass 2:
//   - For every other position, if the letter still has count left mark it
//     WrongPlace and consume one; otherwise it stays NotPresent.
//
// Hits must consume before presents, or repeated letters get over-credited.
func scoreWith(counts letterCounts, hidden, guess string) Scoring {
	var res Scoring
	n := min(len(hidden), len(guess), WordLength)
	for i := range res.States {
		res.States[i] = NotPresent
	}

	for i := 0; i < n; i++ {
		if guess[i] != hidden[i] {
			continue
		}
		j := idx(guess[i])
		if j < 0 {
			continue
		}
		res.States[i] = RightPlace
		counts[j]--
	}

	for i := 0; i < n; i++ {
		if res.States[i] == RightPlace {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res.States[i] = WrongPlace
			counts[j]--
		}
	}

	res.Updates = make(map[byte]LetterState, WordLength)
	for i := 0; i < min(len(guess), WordLength); i++ {
		c := guess[i]
		if idx(c) < 0 {
			continue
		}
		res.Updates[c] = Best(res.Updates[c], res.States[i])
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
