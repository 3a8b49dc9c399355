package aethel

import "context"

// Stream is a pull-based sequence of reply fragments. Next returns io.EOF
// after the last fragment. Cancellation flows through the context passed
// to Conversation.SendStream.
type Stream interface {
	Next() (string, error)
	Close() error
}

// Conversation is an open multi-turn exchange with a remote model. The
// remote side keeps its own copy of the history.
type Conversation interface {
	SendStream(ctx context.Context, text string) (Stream, error)
}

// ChatConfig carries everything needed to open a Conversation.
type ChatConfig struct {
	Model       string
	Instruction string // persona instruction with any adherence directive applied
	Params      Params
	History     []ChatMessage
}

// ChatStarter opens conversations.
type ChatStarter interface {
	StartChat(ctx context.Context, cfg ChatConfig) (Conversation, error)
}
