package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// consoleHandler renders log records as a single human-readable line:
//
//	15:04:05 INFO  [component] message key=value key=value
//
// It is deliberately simple compared to a full-blown TTY renderer; the
// classification core is a library, not an interactive terminal app.
type consoleHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	attrs  []slog.Attr
	groups []string
}

func newConsoleHandler(w io.Writer, level *slog.LevelVar) slog.Handler {
	return &consoleHandler{mu: &sync.Mutex{}, writer: w, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	kvs := make(map[string]string, record.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		flattenInto(kvs, h.groups, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		flattenInto(kvs, h.groups, a)
		return true
	})

	component := kvs[FieldComponent]
	delete(kvs, FieldComponent)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %-5s", ts.Format("15:04:05.000"), record.Level.String())
	if component != "" {
		fmt.Fprintf(&buf, " [%s]", component)
	}
	fmt.Fprintf(&buf, " %s", record.Message)

	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&buf, " %s=%s", k, kvs[k])
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string(nil), h.groups...), name)
	return &next
}

func flattenInto(dst map[string]string, groups []string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if len(groups) > 0 {
		prefix := ""
		for _, g := range groups {
			prefix += g + "."
		}
		key = prefix + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, sub := range a.Value.Group() {
			flattenInto(dst, append(groups, a.Key), sub)
		}
		return
	}
	dst[key] = a.Value.String()
}
