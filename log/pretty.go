package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers. Styles are bound to a
// renderer for the handler's writer, so colors are dropped when the writer is
// not a terminal.
type palette struct {
	key, str, num, yes, no, dur, time, null lipgloss.Style

	trace, debug, info, warn, error lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		time:  fg("4"),
		null:  fg("8"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		error: fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) string {
	var s lipgloss.Style

	switch {
	case l >= slog.LevelError:
		s = p.error
	case l >= slog.LevelWarn:
		s = p.warn
	case l >= slog.LevelInfo:
		s = p.info
	case l >= slog.LevelDebug:
		s = p.debug
	default:
		s = p.trace
	}

	return s.Render(levelLabel(l))
}

func (p palette) value(v slog.Value) string {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())
	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render("true")
		}

		return p.no.Render("false")
	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())
	case slog.KindTime:
		return p.time.Render(v.Time().String())
	case slog.KindAny:
		if v.Any() == nil {
			return p.null.Render("null")
		}

		if l, ok := v.Any().(slog.Level); ok {
			return p.level(l)
		}

		return p.str.Render(fmt.Sprint(v.Any()))
	default:
		return p.str.Render(v.String())
	}
}

// prettyHandler writes one record per line (text) or one attribute per line
// (JSON-like). Attributes added with WithAttrs are prefixed to every record;
// groups are flattened into dotted keys.
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	palette    palette
	mu         *sync.Mutex
	w          io.Writer
	attrs      []slog.Attr
	group      string
	multiline  bool
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		palette:    newPalette(w),
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyHandler {
	h := newPrettyTextHandler(w, opts, formatTime)
	h.multiline = true

	return h
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	first := true

	if h.multiline {
		buf.WriteString("{")
	}

	if !r.Time.IsZero() {
		if ts := h.formatTime(r.Time); ts != "" {
			h.write(buf, &first, slog.TimeKey, h.palette.time.Render(ts))
		}
	}

	h.write(buf, &first, slog.LevelKey, h.palette.level(r.Level))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			h.write(buf, &first, slog.SourceKey,
				h.palette.str.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.write(buf, &first, slog.MessageKey, h.palette.str.Render(r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, &first, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, &first, h.group, a)

		return true
	})

	if h.multiline {
		buf.WriteString("\n}")
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	c.attrs = append(c.attrs, h.attrs...)

	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}

		c.attrs = append(c.attrs, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	if c.group != "" {
		c.group += "."
	}

	c.group += name

	return &c
}

func (h *prettyHandler) writeAttr(
	buf *bytes.Buffer,
	first *bool,
	prefix string,
	a slog.Attr,
) {
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if v := a.Value.Resolve(); v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			h.writeAttr(buf, first, key, ga)
		}

		return
	}

	h.write(buf, first, key, h.palette.value(a.Value))
}

func (h *prettyHandler) write(buf *bytes.Buffer, first *bool, key, val string) {
	switch {
	case h.multiline && *first:
		buf.WriteString("\n  ")
	case h.multiline:
		buf.WriteString(",\n  ")
	case !*first:
		buf.WriteByte(' ')
	}

	*first = false

	buf.WriteString(h.palette.key.Render(key))

	if h.multiline {
		buf.WriteString(": ")
	} else {
		buf.WriteByte('=')
	}

	buf.WriteString(val)
}
