// Package console runs the line-based game loop: prompt, read, submit,
// render, until the session ends.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
)

// maxLine caps how much of one input line is kept. Longer lines are
// drained and rejected as invalid input.
const maxLine = 1024

// ErrNoInput means input ended before the game did.
var ErrNoInput = errors.New("console: input closed before the game ended")

// Run plays s to completion reading guesses from in, one per line.
// It returns the terminal outcome.
func Run(in io.Reader, r *render.Renderer, s *game.Session) (game.Outcome, error) {
	br := bufio.NewReader(in)
	for {
		r.Prompt(s.Attempt())
		line, tooLong, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return game.Outcome{}, ErrNoInput
			}
			return game.Outcome{}, fmt.Errorf("console: read: %w", err)
		}

		var out game.Outcome
		if tooLong && !s.Done() {
			out = game.Outcome{Kind: game.InvalidInput, Attempt: s.Attempt(), Letters: s.Letters()}
		} else if out, err = s.Submit(line); err != nil {
			return out, err
		}
		log.Debug().
			Int("attempt", out.Attempt).
			Str("outcome", out.Kind.String()).
			Bool("overlong", tooLong).
			Msg("guess submitted")

		r.Outcome(out)
		if out.Terminal() {
			return out, nil
		}
	}
}

// readLine returns the next line without its newline. A line over maxLine
// bytes is consumed to its end and reported with tooLong set. A final line
// without a newline is returned normally; io.EOF comes only once nothing
// is left.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		frag, rerr := br.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(frag) > maxLine+1 {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, frag...)
			}
		}
		switch {
		case errors.Is(rerr, bufio.ErrBufferFull):
			continue
		case errors.Is(rerr, io.EOF):
			if len(buf) == 0 && !tooLong {
				return "", false, io.EOF
			}
		case rerr != nil:
			return "", false, rerr
		}
		if n := len(buf); n > 0 && buf[n-1] == '\n' {
			buf = buf[:n-1]
		}
		if len(buf) > maxLine {
			tooLong, buf = true, nil
		}
		return string(buf), tooLong, nil
	}
}
