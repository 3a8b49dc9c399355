package aethel

// Role represents the role of a message sender.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ErrorPrefix starts the model message appended when a reply fails.
const ErrorPrefix = "Error: "

// ChatMessage is one entry in a conversation transcript. Failed marks the
// model message recorded in place of a reply that could not be produced.
type ChatMessage struct {
	Role    Role
	Content string
	Failed  bool
}

// Transcript is an ordered conversation. It only grows, except that the
// most recent model message is extended while a reply streams.
type Transcript []ChatMessage

// AppendUser appends a user message.
func (t Transcript) AppendUser(text string) Transcript {
	return append(t, ChatMessage{Role: RoleUser, Content: text})
}

// AppendFragment folds a streamed fragment into the trailing model message,
// starting one if the transcript does not end with a model message.
// Empty fragments are dropped.
func (t Transcript) AppendFragment(fragment string) Transcript {
	if fragment == "" {
		return t
	}
	if n := len(t); n > 0 && t[n-1].Role == RoleModel && !t[n-1].Failed {
		t[n-1].Content += fragment
		return t
	}
	return append(t, ChatMessage{Role: RoleModel, Content: fragment})
}

// AppendError appends a model message describing err.
func (t Transcript) AppendError(err error) Transcript {
	return append(t, ChatMessage{Role: RoleModel, Content: ErrorPrefix + err.Error(), Failed: true})
}

// WithoutErrors returns a copy without the messages added by AppendError.
func (t Transcript) WithoutErrors() Transcript {
	out := make(Transcript, 0, len(t))
	for _, m := range t {
		if m.Failed {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Last returns the final message and whether one exists.
func (t Transcript) Last() (ChatMessage, bool) {
	if len(t) == 0 {
		return ChatMessage{}, false
	}
	return t[len(t)-1], true
}
