package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/fwojciec/aethel"
	"google.golang.org/genai"
)

// Interface compliance checks.
var (
	_ aethel.Conversation = (*conversation)(nil)
	_ aethel.Stream       = (*stream)(nil)
)

// conversation implements [aethel.Conversation] over a genai chat. The
// chat records its own history after each completed reply.
type conversation struct {
	chat   chatSession
	model  string
	client *Client
}

func (c *conversation) SendStream(ctx context.Context, text string) (aethel.Stream, error) {
	seq := c.chat.SendMessageStream(ctx, genai.Part{Text: text})
	return newStream(seq, func(err error) error {
		return c.client.fail(ctx, "chat_stream", c.model, err)
	}), nil
}

// stream implements [aethel.Stream] by wrapping the genai SDK's streaming
// iterator. Each response chunk becomes one fragment; chunks without
// visible text are skipped.
type stream struct {
	pull   func() (*genai.GenerateContentResponse, error, bool)
	stop   func()
	onErr  func(error) error
	err    error
	done   bool
	closed bool
}

func newStream(seq iter.Seq2[*genai.GenerateContentResponse, error], onErr func(error) error) *stream {
	next, stop := iter.Pull2(seq)
	if onErr == nil {
		onErr = func(err error) error { return fmt.Errorf("gemini: %w", err) }
	}
	return &stream{pull: next, stop: stop, onErr: onErr}
}

func (s *stream) Next() (string, error) {
	switch {
	case s.closed:
		return "", aethel.ErrStreamClosed
	case s.err != nil:
		return "", s.err
	case s.done:
		return "", io.EOF
	}
	for {
		resp, err, ok := s.pull()
		if !ok || errors.Is(err, io.EOF) {
			s.done = true
			return "", io.EOF
		}
		if err != nil {
			s.err = s.onErr(err)
			return "", s.err
		}
		if text := ResponseText(resp); text != "" {
			return text, nil
		}
	}
}

func (s *stream) Close() error {
	if !s.closed {
		s.closed = true
		s.stop()
	}
	return nil
}
