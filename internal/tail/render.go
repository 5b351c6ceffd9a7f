package tail

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/jonoton/go-circbuf/internal/config"
)

// RenderOptions controls Render.
type RenderOptions struct {
	Format string
	// Number prefixes text output with the line number in its input.
	Number bool
	// Header prints "==> source <==" before text output, like tail(1) does
	// for multiple files.
	Header bool
}

// Render writes lines to w in the requested format.
func Render(w io.Writer, lines []Line, opts RenderOptions) error {
	switch opts.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(lines), "failed to encode json")
	case config.FormatYAML:
		out, err := yaml.Marshal(lines)
		if err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		_, err = w.Write(out)
		return err
	case config.FormatText, "":
		return renderText(w, lines, opts)
	}
	return errors.Errorf("unknown format %q", opts.Format)
}

func renderText(w io.Writer, lines []Line, opts RenderOptions) error {
	if len(lines) == 0 {
		return nil
	}
	var sb strings.Builder
	if opts.Header {
		fmt.Fprintf(&sb, "==> %s <==\n", lines[0].Source)
	}
	width := len(fmt.Sprint(lo.MaxBy(lines, func(a, b Line) bool {
		return a.Number > b.Number
	}).Number))
	texts := lo.Map(lines, func(l Line, _ int) string {
		if opts.Number {
			return fmt.Sprintf("%*d  %s", width, l.Number, l.Text)
		}
		return l.Text
	})
	sb.WriteString(strings.Join(texts, "\n"))
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
