package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty handler. Styles only emit escape
// sequences when the handler's output is a color-capable terminal.
type palette struct {
	key, str, num, yes, no, dur, time lipgloss.Style

	trace, debug, info, warn, error lipgloss.Style
}

func makePalette(w io.Writer) palette {
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
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		error: fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.error
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler renders records for humans: "key=value" pairs on one line,
// or one "key: value" per line inside braces when multiline.
type prettyHandler struct {
	opts      slog.HandlerOptions
	mu        *sync.Mutex
	w         io.Writer
	style     palette
	attrs     []slog.Attr
	groups    []string
	multiline bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	multiline bool,
) *prettyHandler {
	return &prettyHandler{
		opts:      *opts,
		mu:        &sync.Mutex{},
		w:         w,
		style:     makePalette(w),
		multiline: multiline,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}

	return level >= min
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		fields = h.appendReplaced(fields, slog.Time(slog.TimeKey, r.Time))
	}

	fields = append(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = append(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.qualify(a))

		return true
	})

	buf := new(bytes.Buffer)

	if h.multiline {
		buf.WriteString("{\n")
	}

	for i, a := range fields {
		h.writeAttr(buf, i, a)
	}

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
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], make([]slog.Attr, 0, len(attrs))...)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a))
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

// appendReplaced applies the configured ReplaceAttr to a built-in attribute,
// dropping it if replaced with the empty attribute.
func (h *prettyHandler) appendReplaced(fields []slog.Attr, a slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Key == "" {
		return fields
	}

	return append(fields, a)
}

func (h *prettyHandler) qualify(a slog.Attr) slog.Attr {
	if len(h.groups) > 0 {
		a.Key = strings.Join(h.groups, ".") + "." + a.Key
	}

	return a
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, i int, a slog.Attr) {
	switch {
	case h.multiline && i > 0:
		buf.WriteString(",\n  ")
	case h.multiline:
		buf.WriteString("  ")
	case i > 0:
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(a.Key))

	if h.multiline {
		buf.WriteString(": ")
	} else {
		buf.WriteByte('=')
	}

	buf.WriteString(h.value(a.Value.Resolve()))
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.style.str.Render(v.String())
	case slog.KindInt64:
		return h.style.num.Render(strconv.FormatInt(v.Int64(), 10))
	case slog.KindUint64:
		return h.style.num.Render(strconv.FormatUint(v.Uint64(), 10))
	case slog.KindFloat64:
		return h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")
	case slog.KindDuration:
		return h.style.dur.Render(v.Duration().String())
	case slog.KindTime:
		return h.style.time.Render(v.Time().String())
	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, a := range v.Group() {
			parts = append(parts, a.Key+"="+h.value(a.Value.Resolve()))
		}

		return "{" + strings.Join(parts, " ") + "}"
	default:
		if level, ok := v.Any().(slog.Level); ok {
			return h.style.level(level).Render(strings.ToUpper(Level(level).String()))
		}

		return h.style.str.Render(v.String())
	}
}
