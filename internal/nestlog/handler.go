package nestlog

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// handler adapts a Logger to slog. Records keep the logger's nesting, level
// filters and formatter; attributes follow the message as key=value pairs.
type handler struct {
	l      *Logger
	attrs  string
	groups string
}

// Handler returns a slog.Handler writing through l, so that
//
//	slog.SetDefault(slog.New(log.Handler()))
//
// sends package-level slog calls into the nested output.
func (l *Logger) Handler() slog.Handler {
	return &handler{l: l}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	h.l.s.mu.Lock()
	defer h.l.s.mu.Unlock()
	return h.l.enabled(levelName(level), level)
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.groups, a)
		return true
	})

	h.l.s.mu.Lock()
	source := h.l.s.source
	h.l.s.mu.Unlock()
	if source && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			b.WriteString(" (" + filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line) + ")")
		}
	}

	h.l.emit(levelName(r.Level), r.Level, b.String())
	return nil
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.groups, a)
	}
	return &handler{l: h.l, attrs: b.String(), groups: h.groups}
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &handler{l: h.l, attrs: h.attrs, groups: h.groups + name + "."}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}

	val := a.Value.String()
	if val == "" || strings.ContainsAny(val, " =\"\t\n") {
		val = strconv.Quote(val)
	}
	b.WriteByte(' ')
	b.WriteString(prefix + a.Key)
	b.WriteByte('=')
	b.WriteString(val)
}
