package nestlog

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name string
		log  func(*slog.Logger)
		want string
	}{
		{"message", func(l *slog.Logger) { l.Info("hello") }, "info: hello\n"},
		{"attrs", func(l *slog.Logger) { l.Info("served", "path", "/", "status", 200) }, "info: served path=/ status=200\n"},
		{"quoted", func(l *slog.Logger) { l.Warn("slow", "query", "select 1", "empty", "") }, `warn: slow query="select 1" empty=""` + "\n"},
		{"duration", func(l *slog.Logger) { l.Debug("done", "took", 1500*time.Millisecond) }, "debug: done took=1.5s\n"},
		{"with attrs", func(l *slog.Logger) { l.With("repo", "termkit").Info("ready") }, "info: ready repo=termkit\n"},
		{"group", func(l *slog.Logger) { l.WithGroup("req").Info("in", "id", 7) }, "info: in req.id=7\n"},
		{"inline group", func(l *slog.Logger) { l.Info("in", slog.Group("user", "name", "ann")) }, "info: in user.name=ann\n"},
		{"custom level", func(l *slog.Logger) { l.Log(context.Background(), slog.LevelInfo+2, "notice") }, "info: notice\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, stdout, _ := newTestLogger()
			tt.log(slog.New(log.Handler()))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestHandlerRoutesThroughLogger(t *testing.T) {
	log, stdout, stderr := newTestLogger()
	sl := slog.New(log.Handler())

	log.Start("section")
	sl.Info("nested")
	sl.Error("failed", "err", errors.New("boom"))
	log.End()

	assert.Equal(t, "start: section\n  info: nested\n", stdout.String())
	assert.Equal(t, "  error: failed err=boom\n", stderr.String())
	assert.Equal(t, 1, log.ErrorCount())
}

func TestHandlerEnabled(t *testing.T) {
	ctx := context.Background()
	log, _, _ := newTestLogger(WithLevel(slog.LevelInfo))
	h := log.Handler()

	assert.False(t, h.Enabled(ctx, slog.LevelDebug))
	assert.True(t, h.Enabled(ctx, slog.LevelInfo))

	log.Configure(WithQuiet(true))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
}

func TestHandlerSource(t *testing.T) {
	log, stdout, _ := newTestLogger(WithSource(true))
	slog.New(log.Handler()).Info("here")

	assert.Regexp(t, regexp.MustCompile(`^info: here \(handler_test\.go:\d+\)\n$`), stdout.String())
}
