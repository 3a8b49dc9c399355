// Package sentry reports generation failures to Sentry.
package sentry

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/aethel"
	"github.com/getsentry/sentry-go"
)

// Interface compliance check.
var _ aethel.Reporter = (*Reporter)(nil)

// Reporter sends errors to Sentry through a dedicated hub so it never
// touches the SDK's global state.
type Reporter struct {
	hub *sentry.Hub
}

// Option configures the Sentry client.
type Option func(*sentry.ClientOptions)

// WithRelease sets the release reported with every event.
func WithRelease(release string) Option {
	return func(o *sentry.ClientOptions) {
		o.Release = release
	}
}

// WithBeforeSend installs a hook that sees every event before it is sent.
// Returning nil drops the event.
func WithBeforeSend(fn func(*sentry.Event) *sentry.Event) Option {
	return func(o *sentry.ClientOptions) {
		o.BeforeSend = func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return fn(event)
		}
	}
}

// New creates a Reporter. An empty dsn yields a client that processes
// events but never sends them.
func New(dsn, environment string, opts ...Option) (*Reporter, error) {
	o := sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	}
	for _, opt := range opts {
		opt(&o)
	}
	client, err := sentry.NewClient(o)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// Report captures err with tags attached to the event. Each report runs on
// its own clone of the hub, so concurrent reports keep their tags apart.
func (r *Reporter) Report(_ context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// Flush waits up to timeout for buffered events to be delivered.
func (r *Reporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}
