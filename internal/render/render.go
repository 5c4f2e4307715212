// apps/go-cli/internal/render/render.go
//
// Terminal presentation for guesses, the keyboard hint panel and end-of-game
// messages. The renderer only formats; it never reads input or touches
// session state.
//
// Colour mode uses ANSI foreground colours:
//   - Unknown:    bright white
//   - NotPresent: white
//   - WrongPlace: bright yellow
//   - RightPlace: bright green
//
// Plain mode prefixes each letter with a marker instead:
// "+" right place, "~" wrong place, "-" not present, " " unknown.

package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

const (
	ansiReset        = "\x1b[0m"
	ansiWhite        = "\x1b[37m"
	ansiBrightWhite  = "\x1b[97m"
	ansiBrightGreen  = "\x1b[92m"
	ansiBrightYellow = "\x1b[93m"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Renderer writes game text to w.
type Renderer struct {
	w     io.Writer
	color bool
}

// New returns a Renderer. color selects ANSI output.
func New(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// ColorMode controls ANSI colour output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorEnabled resolves a colour mode for f: auto means "f is a terminal".
func ColorEnabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Loaded reports the dictionary size at startup.
func (r *Renderer) Loaded(n int) {
	fmt.Fprintf(r.w, "Loaded %d words...\n", n)
}

// Prompt writes the input prompt for attempt (no newline).
func (r *Renderer) Prompt(attempt int) {
	fmt.Fprintf(r.w, "Try %d => ", attempt)
}

// Guess writes one scored row.
func (r *Renderer) Guess(g game.Guess) {
	var b strings.Builder
	fmt.Fprintf(&b, "Try %d => ", g.Attempt)
	for i := 0; i < len(g.Word) && i < len(g.States); i++ {
		b.WriteString(r.tile(g.Word[i], g.States[i]))
	}
	b.WriteByte('\n')
	io.WriteString(r.w, b.String())
}

// Keyboard writes the QWERTY hint panel from the letter-state map.
func (r *Renderer) Keyboard(m game.LetterStateMap) {
	var b strings.Builder
	for n, row := range keyboardRows {
		b.WriteString(strings.Repeat(" ", n))
		for i := 0; i < len(row); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(r.tile(row[i], m.Get(row[i])))
		}
		b.WriteByte('\n')
	}
	io.WriteString(r.w, b.String())
}

// Outcome writes whatever the caller should see for o.
func (r *Renderer) Outcome(o game.Outcome) {
	switch o.Kind {
	case game.InvalidInput:
		fmt.Fprintln(r.w, "Wrong input!")
	case game.UnknownWord:
		fmt.Fprintln(r.w, "The word is not known!")
	case game.Accepted:
		r.Guess(*o.Guess)
		r.Keyboard(o.Letters)
	case game.Won:
		r.Guess(*o.Guess)
		fmt.Fprintf(r.w, "You won! Solved on try %d.\n", o.Attempt)
	case game.Lost:
		if o.Guess != nil {
			r.Guess(*o.Guess)
		}
		fmt.Fprintf(r.w, "The word you were trying to guess was %s\n", r.paint(ansiBrightGreen, o.Hidden))
	}
}

func (r *Renderer) tile(c byte, st game.LetterState) string {
	if !r.color {
		return marker(st) + string(c)
	}
	return r.paint(colorFor(st), strings.ToUpper(string(c)))
}

func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func colorFor(st game.LetterState) string {
	switch st {
	case game.NotPresent:
		return ansiWhite
	case game.WrongPlace:
		return ansiBrightYellow
	case game.RightPlace:
		return ansiBrightGreen
	}
	return ansiBrightWhite
}

func marker(st game.LetterState) string {
	switch st {
	case game.NotPresent:
		return "-"
	case game.WrongPlace:
		return "~"
	case game.RightPlace:
		return "+"
	}
	return " "
}
