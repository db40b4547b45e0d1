package shutdown_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/probe-service/internal/infra/shutdown"
)

// stubShutdowner records shutdown calls and their order across instances.
type stubShutdowner struct {
	name  string
	err   error
	order *[]string
	mu    *sync.Mutex
}

func (s *stubShutdowner) Name() string { return s.name }

func (s *stubShutdowner) Shutdown(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	*s.order = append(*s.order, s.name)

	return s.err
}

func TestCheckTerminationFile(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("empty path returns false", func(t *testing.T) {
		t.Parallel()

		got := shutdown.CheckTerminationFile(t.Context(), logger, "")
		require.False(t, got)
	})

	t.Run("file missing returns false", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nonexistent")

		got := shutdown.CheckTerminationFile(t.Context(), logger, path)
		require.False(t, got)
	})

	t.Run("file exists returns true", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "terminating")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		got := shutdown.CheckTerminationFile(t.Context(), logger, path)
		require.True(t, got)
	})
}

func TestGracefulShutdown(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	newStub := func(name string, err error, order *[]string, mu *sync.Mutex) *stubShutdowner {
		return &stubShutdowner{name: name, err: err, order: order, mu: mu}
	}

	t.Run("empty list returns nil", func(t *testing.T) {
		t.Parallel()

		err := shutdown.GracefulShutdown(t.Context(), logger, nil)
		require.NoError(t, err)
	})

	t.Run("single component success", func(t *testing.T) {
		t.Parallel()

		var (
			order []string
			mu    sync.Mutex
		)

		m := newStub("only", nil, &order, &mu)

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{m})
		require.NoError(t, err)
		require.Equal(t, []string{"only"}, order)
	})

	t.Run("component error is returned", func(t *testing.T) {
		t.Parallel()

		var (
			order []string
			mu    sync.Mutex
		)

		wantErr := errors.New("close listener")
		m := newStub("broken", wantErr, &order, &mu)

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{m})
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("components shut down in reverse order", func(t *testing.T) {
		t.Parallel()

		var (
			order []string
			mu    sync.Mutex
		)

		first := newStub("first", nil, &order, &mu)
		second := newStub("second", nil, &order, &mu)

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{first, second})
		require.NoError(t, err)
		require.Equal(t, []string{"second", "first"}, order)
	})

	t.Run("one failure does not stop the rest", func(t *testing.T) {
		t.Parallel()

		var (
			order []string
			mu    sync.Mutex
		)

		wantErr := errors.New("boom")
		first := newStub("first", nil, &order, &mu)
		second := newStub("second", wantErr, &order, &mu)

		err := shutdown.GracefulShutdown(t.Context(), logger, []shutdown.Shutdowner{first, second})
		require.ErrorIs(t, err, wantErr)
		require.Equal(t, []string{"second", "first"}, order)
	})
}
