// Package mock provides test doubles for aethel interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/aethel"
)

// Interface compliance checks.
var (
	_ aethel.ChatStarter  = (*ChatStarter)(nil)
	_ aethel.Conversation = (*Conversation)(nil)
	_ aethel.Stream       = (*Stream)(nil)
)

// ChatStarter is a test double for aethel.ChatStarter.
// Set StartChatFn before calling StartChat.
type ChatStarter struct {
	StartChatFn func(ctx context.Context, cfg aethel.ChatConfig) (aethel.Conversation, error)
}

// StartChat delegates to StartChatFn.
func (s *ChatStarter) StartChat(ctx context.Context, cfg aethel.ChatConfig) (aethel.Conversation, error) {
	return s.StartChatFn(ctx, cfg)
}

// Conversation is a test double for aethel.Conversation.
type Conversation struct {
	SendStreamFn func(ctx context.Context, text string) (aethel.Stream, error)
}

// SendStream delegates to SendStreamFn.
func (c *Conversation) SendStream(ctx context.Context, text string) (aethel.Stream, error) {
	return c.SendStreamFn(ctx, text)
}

// Stream is a test double for aethel.Stream.
// NextFn panics when nil to catch missing setup. CloseFn is nil-safe
// because callers commonly defer Close.
type Stream struct {
	NextFn  func() (string, error)
	CloseFn func() error
}

// Next delegates to NextFn.
func (s *Stream) Next() (string, error) {
	return s.NextFn()
}

// Close delegates to CloseFn. Returns nil when CloseFn is not set.
func (s *Stream) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}
