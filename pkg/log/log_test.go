package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestSetLogger(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Info("Font fetched", "font", "roboto")
	Debug("Cache miss")
	assert.Contains(t, buf.String(), `"msg":"Font fetched"`)
	assert.Contains(t, buf.String(), `"font":"roboto"`)
	assert.Contains(t, buf.String(), `"msg":"Cache miss"`)

	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}

func TestLogxHandler(t *testing.T) {
	var buf bytes.Buffer
	w := logx.NewWriter(&buf)
	old := logx.Reset()
	logx.SetWriter(w)
	t.Cleanup(func() {
		logx.Reset()
		logx.SetWriter(old)
	})

	h := NewLogxHandler(slog.LevelInfo)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))

	l := slog.New(h).With("context", 7).WithGroup("css")
	l.Error("Failed to load font catalog", "error", errors.New("file is empty"))

	out := buf.String()
	assert.Contains(t, out, "Failed to load font catalog")
	assert.Contains(t, out, "context")
	assert.Contains(t, out, "css.error")
	assert.Contains(t, out, "file is empty")

	buf.Reset()
	l.Warn("Failed to read enabled fonts")
	assert.True(t, strings.Contains(buf.String(), "warn"))
}
