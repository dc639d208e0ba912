package log

import (
	"context"
	"log/slog"

	"github.com/zeromicro/go-zero/core/logx"
)

// LogxHandler is a slog.Handler writing to go-zero logx, so library records
// share the server's log mode, encoding and trace fields.
type LogxHandler struct {
	level  slog.Leveler
	fields []logx.LogField
	group  string
}

// NewLogxHandler creates a handler dropping records below level.
func NewLogxHandler(level slog.Leveler) *LogxHandler {
	return &LogxHandler{level: level}
}

// Enabled reports whether records at l are written.
func (h *LogxHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle writes r through logx.WithContext(ctx).
func (h *LogxHandler) Handle(ctx context.Context, r slog.Record) error {
	fields := make([]logx.LogField, 0, len(h.fields)+r.NumAttrs()+1)
	fields = append(fields, h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.field(a))
		return true
	})

	l := logx.WithContext(ctx)
	switch {
	case r.Level >= slog.LevelError:
		l.Errorw(r.Message, fields...)
	case r.Level >= slog.LevelWarn:
		l.Infow(r.Message, append(fields, logx.Field("severity", "warn"))...)
	case r.Level >= slog.LevelInfo:
		l.Infow(r.Message, fields...)
	default:
		l.Debugw(r.Message, fields...)
	}
	return nil
}

// WithAttrs returns a handler adding attrs to every record.
func (h *LogxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.fields = append(make([]logx.LogField, 0, len(h.fields)+len(attrs)), h.fields...)
	for _, a := range attrs {
		next.fields = append(next.fields, h.field(a))
	}
	return &next
}

// WithGroup returns a handler prefixing later keys with name.
func (h *LogxHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.key(name)
	return &next
}

func (h *LogxHandler) field(a slog.Attr) logx.LogField {
	v := a.Value.Resolve()
	if err, ok := v.Any().(error); ok {
		return logx.Field(h.key(a.Key), err.Error())
	}
	return logx.Field(h.key(a.Key), v.Any())
}

func (h *LogxHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}
