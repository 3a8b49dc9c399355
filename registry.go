package aethel

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ChatModel is the model every chat session runs on, whatever model the
// feature uses for single-shot requests.
const ChatModel = "gemini-2.5-flash"

// Registry holds at most one Session per feature ID for the life of the
// process, or until ClearAll.
type Registry struct {
	starter ChatStarter
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithLogger sets the logger. Default discards all output.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// WithClock sets the time source used for Session.CreatedAt.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// NewRegistry creates an empty Registry that opens conversations through starter.
func NewRegistry(starter ChatStarter, opts ...RegistryOption) *Registry {
	r := &Registry{
		starter:  starter,
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// GetOrCreate returns the session registered for featureID. If there is
// none, it opens a conversation seeded with history, configured from
// instruction and s, and registers it. Settings and instruction only apply
// when the session is created. Nothing is registered if opening fails.
func (r *Registry) GetOrCreate(ctx context.Context, featureID string, history []ChatMessage, instruction string, s Settings) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[featureID]; ok {
		return sess, nil
	}

	conv, err := r.starter.StartChat(ctx, ChatConfig{
		Model:       ChatModel,
		Instruction: ApplyAdherence(instruction, s.Adherence),
		Params:      s.Params(),
		History:     slices.Clone(history),
	})
	if err != nil {
		return nil, fmt.Errorf("start chat for %q: %w", featureID, err)
	}

	sess := &Session{
		ID:        uuid.NewString(),
		FeatureID: featureID,
		Model:     ChatModel,
		CreatedAt: r.now(),
		conv:      conv,
		history:   slices.Clone(history),
	}
	r.sessions[featureID] = sess
	r.logger.Info("session created", "feature_id", featureID, "session_id", sess.ID, "model", ChatModel)
	return sess, nil
}

// Lookup returns the session registered for featureID, if any.
func (r *Registry) Lookup(featureID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[featureID]
	return sess, ok
}

// ClearAll discards every registered session. Sends already in flight run
// to completion against their detached sessions.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.sessions)
	clear(r.sessions)
	r.logger.Info("sessions cleared", "count", n)
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
