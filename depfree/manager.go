package depfree

import (
	"errors"

	"github.com/accessgraph/accessgraph/acerr"
	"github.com/accessgraph/accessgraph/access"
	"github.com/accessgraph/accessgraph/eventlog"
)

// Signal describes a mutation that had no effect, for the opt-in
// idempotency side channel. Kind names the operation ("AddUser",
// "RemoveGroupToGroupMapping", ...); external callers never see these --
// only a metrics/logging decorator wired in via WithIdempotencySignal.
type Signal struct {
	Kind string
	Key  string
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithEventProcessor wires the sink every prepended and primary event is
// emitted to. Without one, mutations still apply in memory but nothing is
// recorded -- useful in tests that only care about the idempotent surface.
func WithEventProcessor(p eventlog.Processor) Option {
	return func(m *Manager) { m.events = p }
}

// WithMiddleware registers before/after hooks run around every mutating
// call, in registration order.
func WithMiddleware(mw ...Middleware) Option {
	return func(m *Manager) { m.middleware = append(m.middleware, mw...) }
}

// WithIdempotencySignal turns on the IdempotentAddFailure/
// IdempotentRemoveFailure side channel, routing every no-op mutation to fn.
// Default: off (fn is never called).
func WithIdempotencySignal(fn func(Signal)) Option {
	return func(m *Manager) { m.onIdempotent = fn }
}

// Middleware is a before(kind)/after(kind, err) hook pair, run around every
// mutating call -- the seam a metrics or audit-logging decorator attaches
// to without subclassing Manager.
type Middleware struct {
	Before func(kind string)
	After  func(kind string, err error)
}

// Manager wraps *access.Concurrent with the idempotent, dependency-free
// surface of §4.5. It implements eventlog.Processor itself, so a fresh
// Manager is a valid replay target for dispatch.Dispatch.
type Manager struct {
	ac *access.Concurrent

	events       eventlog.Processor
	middleware   []Middleware
	onIdempotent func(Signal)
}

// NewManager returns an empty dependency-free manager over a fresh
// access.Concurrent.
func NewManager(opts ...Option) *Manager {
	m := &Manager{ac: access.NewConcurrent()}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Underlying exposes the wrapped access.Concurrent, e.g. for Snapshot. The
// query methods on Manager itself (queries.go) pass straight through to it
// unchanged, since idempotency and prepending are mutation concerns only.
func (m *Manager) Underlying() *access.Concurrent { return m.ac }

func (m *Manager) before(kind string) {
	for _, mw := range m.middleware {
		if mw.Before != nil {
			mw.Before(kind)
		}
	}
}

func (m *Manager) after(kind string, err error) {
	for _, mw := range m.middleware {
		if mw.After != nil {
			mw.After(kind, err)
		}
	}
}

func (m *Manager) signalIdempotent(kind, key string) {
	if m.onIdempotent != nil {
		m.onIdempotent(Signal{Kind: kind, Key: key})
	}
}

// isNotFound/isAlreadyExists classify acerr failures for the swallow rules;
// any other error (including acerr.SelfMapping and acerr.CircularReference,
// which the task requires to remain hard failures) is propagated untouched.
func isNotFound(err error) bool      { return errors.Is(err, acerr.NotFound) }
func isAlreadyExists(err error) bool { return errors.Is(err, acerr.AlreadyExists) }
