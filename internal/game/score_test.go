package game

import (
	"strings"
	"testing"
)

const (
	N = NotPresent
	W = WrongPlace
	R = RightPlace
)

func TestScore(t *testing.T) {
	tests := []struct {
		hidden, guess string
		want          [WordLength]LetterState
	}{
		{"crane", "crane", [WordLength]LetterState{R, R, R, R, R}},
		{"abide", "erase", [WordLength]LetterState{N, N, W, N, R}},
		{"abide", "eerie", [WordLength]LetterState{N, N, N, W, R}},
		{"level", "ellen", [WordLength]LetterState{W, W, W, R, N}},
		{"crane", "fight", [WordLength]LetterState{N, N, N, N, N}},
		{"speed", "geese", [WordLength]LetterState{N, W, R, W, N}},
		{"apple", "papal", [WordLength]LetterState{W, W, R, N, W}},
		{"robot", "tooth", [WordLength]LetterState{W, R, W, N, N}},
	}
	for _, tc := range tests {
		t.Run(tc.hidden+"/"+tc.guess, func(t *testing.T) {
			got := Score(tc.hidden, tc.guess)
			if got.States != tc.want {
				t.Fatalf("Score(%q, %q) = %v, want %v", tc.hidden, tc.guess, got.States, tc.want)
			}
		})
	}
}

func TestScoreUpdatesKeepBestPerLetter(t *testing.T) {
	// Second 'e' is an exact match, first is surplus.
	got := Score("abide", "eerie")
	if got.Updates['e'] != RightPlace {
		t.Fatalf("e = %v, want right_place", got.Updates['e'])
	}
	if got.Updates['i'] != WrongPlace {
		t.Fatalf("i = %v, want wrong_place", got.Updates['i'])
	}
	if got.Updates['r'] != NotPresent {
		t.Fatalf("r = %v, want not_present", got.Updates['r'])
	}
	if len(got.Updates) != 3 {
		t.Fatalf("expected 3 distinct letters, got %v", got.Updates)
	}
}

func TestScoreNeverOverCredits(t *testing.T) {
	words := []string{
		"abide", "erase", "eerie", "level", "ellen", "speed", "geese",
		"apple", "papal", "robot", "tooth", "llama", "mamma", "sassy",
		"crane", "vivid", "onion", "kayak", "error", "queue",
	}
	for _, h := range words {
		for _, g := range words {
			sc := Score(h, g)
			credited := map[byte]int{}
			for i, st := range sc.States {
				if st == RightPlace || st == WrongPlace {
					credited[g[i]]++
				}
				if st == RightPlace && g[i] != h[i] {
					t.Fatalf("Score(%q, %q): position %d marked right_place", h, g, i)
				}
			}
			for c, n := range credited {
				if have := strings.Count(h, string(c)); n > have {
					t.Fatalf("Score(%q, %q): %q credited %d times, hidden has %d", h, g, c, n, have)
				}
			}
		}
	}
}

func TestScoreDoesNotMutateTemplate(t *testing.T) {
	tmpl := countLetters("level")
	before := tmpl
	_ = scoreWith(tmpl, "level", "ellen")
	if tmpl != before {
		t.Fatalf("template counts changed: %v -> %v", before, tmpl)
	}
}

func TestScoreMalformedInput(t *testing.T) {
	got := Score("crane", "cr")
	want := [WordLength]LetterState{R, R, N, N, N}
	if got.States != want {
		t.Fatalf("short guess = %v, want %v", got.States, want)
	}
	got = Score("crane", "cr4ne")
	want = [WordLength]LetterState{R, R, N, R, R}
	if got.States != want {
		t.Fatalf("non-letter guess = %v, want %v", got.States, want)
	}
	// Score does not fold case; Session.Submit lowercases first.
	got = Score("crane", "CRANE")
	want = [WordLength]LetterState{N, N, N, N, N}
	if got.States != want {
		t.Fatalf("uppercase guess = %v, want %v", got.States, want)
	}
	if len(got.Updates) != 0 {
		t.Fatalf("uppercase guess updates = %v, want none", got.Updates)
	}
}
