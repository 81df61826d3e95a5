// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/designfmt/internal/ctxlog"
)

// Context returns a context carrying a debug-level text logger that writes
// to w. Pass io.Discard when the log output is not inspected.
func Context(w io.Writer) context.Context {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}
