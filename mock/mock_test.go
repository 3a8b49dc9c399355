package mock_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fwojciec/aethel"
	"github.com/fwojciec/aethel/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatStarter_StartChat(t *testing.T) {
	t.Parallel()

	t.Run("delegates to StartChatFn", func(t *testing.T) {
		t.Parallel()
		var conv mock.Conversation
		var got aethel.ChatConfig
		s := mock.ChatStarter{
			StartChatFn: func(ctx context.Context, cfg aethel.ChatConfig) (aethel.Conversation, error) {
				got = cfg
				return &conv, nil
			},
		}
		c, err := s.StartChat(context.Background(), aethel.ChatConfig{Model: "m"})
		require.NoError(t, err)
		assert.Equal(t, &conv, c)
		assert.Equal(t, "m", got.Model)
	})

	t.Run("panics when StartChatFn not set", func(t *testing.T) {
		t.Parallel()
		s := mock.ChatStarter{}
		assert.Panics(t, func() {
			_, _ = s.StartChat(context.Background(), aethel.ChatConfig{})
		})
	})
}

func TestStream(t *testing.T) {
	t.Parallel()

	t.Run("Next delegates to NextFn", func(t *testing.T) {
		t.Parallel()
		s := mock.Stream{NextFn: func() (string, error) { return "", io.EOF }}
		_, err := s.Next()
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Close is nil-safe", func(t *testing.T) {
		t.Parallel()
		s := mock.Stream{}
		assert.NoError(t, s.Close())
	})

	t.Run("Close delegates to CloseFn", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("close failed")
		s := mock.Stream{CloseFn: func() error { return wantErr }}
		assert.ErrorIs(t, s.Close(), wantErr)
	})
}

func TestReporter_NilSafe(t *testing.T) {
	t.Parallel()
	r := mock.Reporter{}
	assert.NotPanics(t, func() {
		r.Report(context.Background(), errors.New("boom"), nil)
	})
}
