package controller

import (
	"context"
	"errors"
)

// errAborted is returned by collect when the operator backspaces out
// of an empty buffer. It unwinds to whoever started the prompt.
var errAborted = errors.New("input aborted")

// collect runs one numeric prompt to completion. Digit keys append to
// the buffer, '*' removes the last character or aborts when the
// buffer is already empty, '#' hands the buffer to parse. A parse
// failure is local: the buffer is cleared and the prompt re-rendered,
// nothing propagates outward. The prompt line is re-rendered with the
// current buffer after every keystroke.
//
// Domain limits (max length, max count) belong to the supplied parse
// function, not here.
func collect[T any](ctx context.Context, disp Display, keys Keypad, line1 string, parse func(string) (T, error)) (T, error) {
	var zero T
	var buf []byte
	for {
		disp.Render(line1, promptLine(buf))
		k, err := keys.NextKey(ctx)
		if err != nil {
			return zero, wrapKeypad(err)
		}
		switch {
		case k.IsDigit() || k == KeyPoint:
			if len(buf) < maxEntry {
				buf = append(buf, byte(k))
			}
		case k == KeyStar:
			if len(buf) == 0 {
				return zero, errAborted
			}
			buf = buf[:len(buf)-1]
		case k == KeyHash:
			v, perr := parse(string(buf))
			if perr != nil {
				lg.Debugf("rejecting entry %q: %s", buf, perr)
				buf = buf[:0]
				continue
			}
			return v, nil
		}
	}
}
