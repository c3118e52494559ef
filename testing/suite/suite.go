package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// Suite scripts a console: Input yields the given lines, Output captures everything printed.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Input  io.Reader
	Output *bytes.Buffer
}

func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Input:  strings.NewReader(input),
		Output: &bytes.Buffer{},
	}
}
