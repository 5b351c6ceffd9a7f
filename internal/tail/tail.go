package tail

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/jonoton/go-circbuf"
	"github.com/pkg/errors"

	"github.com/jonoton/go-circbuf/internal/logger"
)

// Order selects how retained lines are returned.
type Order int

const (
	// Forward returns lines oldest first, as they appeared in the input.
	Forward Order = iota
	// Reverse returns lines newest first.
	Reverse
	// Sorted returns lines ordered by text.
	Sorted
)

// Line is one retained input line.
type Line struct {
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Number int    `json:"number" yaml:"number"`
	Text   string `json:"text" yaml:"text"`
}

// Stats describes the last input read by a Tailer.
type Stats struct {
	Read      int
	Kept      int
	Discarded int
}

// Tailer keeps the last N lines of an input in a circular buffer. A single
// buffer is reused across inputs.
type Tailer struct {
	buf   *circbuf.Buffer[Line]
	stats Stats
}

// New creates a Tailer that keeps at most lines lines.
func New(lines int) *Tailer {
	return &Tailer{buf: circbuf.New[Line](lines)}
}

// ReadFrom replaces the retained lines with the last lines of r.
func (t *Tailer) ReadFrom(ctx context.Context, source string, r io.Reader) error {
	t.buf.Clear()
	t.stats = Stats{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.stats.Read++
		t.buf.PushBack(Line{
			Source: source,
			Number: t.stats.Read,
			Text:   strings.TrimSuffix(sc.Text(), "\r"),
		})
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "failed to read %s", source)
	}

	t.stats.Kept = t.buf.Len()
	t.stats.Discarded = t.stats.Read - t.stats.Kept
	logger.FromContext(ctx).Debug("Input read",
		"source", source,
		"read", t.stats.Read,
		"kept", t.stats.Kept,
		"discarded", t.stats.Discarded,
	)
	return nil
}

// Stats returns the counters of the last ReadFrom.
func (t *Tailer) Stats() Stats {
	return t.stats
}

// Lines returns the retained lines in the requested order. Sorted reorders
// the buffer in place.
func (t *Tailer) Lines(order Order) []Line {
	switch order {
	case Reverse:
		out := make([]Line, 0, t.buf.Len())
		for it := t.buf.CRBegin(); !it.Equal(t.buf.CREnd()); it.Next() {
			out = append(out, it.Value())
		}
		return out
	case Sorted:
		circbuf.SortFunc(t.buf, func(a, b Line) int {
			if c := strings.Compare(a.Text, b.Text); c != 0 {
				return c
			}
			return a.Number - b.Number
		})
	}
	return t.buf.Slice()
}
