package aethel

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"time"
)

// Session binds a feature to an open Conversation and its history.
type Session struct {
	ID        string
	FeatureID string
	Model     string
	CreatedAt time.Time

	conv Conversation

	mu      sync.Mutex
	history Transcript
}

// History returns a copy of the accumulated messages.
func (s *Session) History() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// Send appends text as a user message and streams the reply, folding each
// fragment into the trailing model message and passing it to onFragment in
// arrival order. On a mid-stream failure the received text is kept and the
// error is returned. Concurrent sends are not serialized.
func (s *Session) Send(ctx context.Context, text string, onFragment func(string)) error {
	s.mu.Lock()
	s.history = s.history.AppendUser(text)
	s.mu.Unlock()

	stream, err := s.conv.SendStream(ctx, text)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		fragment, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if fragment == "" {
			continue
		}
		s.mu.Lock()
		s.history = s.history.AppendFragment(fragment)
		s.mu.Unlock()
		if onFragment != nil {
			onFragment(fragment)
		}
	}
}
