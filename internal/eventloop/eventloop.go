// Package eventloop merges the three ordered input streams spec §5
// describes — key presses, backend callbacks, and resize notifications —
// into the single cooperative, single-threaded loop the core's FSMs and
// Window consume from. There is no example in the retrieval pack using
// errgroup, but it's the documented idiomatic replacement for a raw
// sync.WaitGroup + channel-of-errors when several goroutines feed one
// consumer and the first failure should cancel the rest, which is
// exactly this loop's shape.
package eventloop

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/mmterm/mmterm/internal/backend"
	"github.com/mmterm/mmterm/internal/keys"
	"github.com/mmterm/mmterm/internal/termio"
)

// Kind discriminates an Event's payload.
type Kind int

const (
	KindKey Kind = iota
	KindBackend
	KindResize
)

// BackendEvent wraps whichever backend callback fired: a new message, a
// connect, or a reconnect (spec §6 "events connected(user), reconnected").
type BackendEvent struct {
	Room      backend.Room
	Message   backend.Message
	Connected backend.User
	Reconnect bool
}

// Event is one item dequeued from the loop, carrying exactly one of Key,
// Backend, or Resize depending on Kind.
type Event struct {
	Kind    Kind
	Key     keys.Event
	Backend BackendEvent
	Resize  termio.Size
}

// Loop is the single ordered channel every input source feeds and the
// single consumer drains (spec §5 "a single event loop funnels three
// ordered input streams ... into the focused FSM or the screen
// redrawer").
type Loop struct {
	ch chan Event
}

// New constructs a Loop with the given channel capacity. A small buffer
// lets a burst of keys queue without blocking the decoder goroutine,
// matching spec §5's "no input is lost ... queues key events and replays
// them in arrival order upon resumption".
func New(capacity int) *Loop {
	if capacity < 1 {
		capacity = 1
	}
	return &Loop{ch: make(chan Event, capacity)}
}

// PushBackend enqueues a backend callback event. Safe to call from any
// goroutine; the channel itself is the serialization point.
func (l *Loop) PushBackend(ctx context.Context, ev BackendEvent) error {
	return l.push(ctx, Event{Kind: KindBackend, Backend: ev})
}

func (l *Loop) push(ctx context.Context, ev Event) error {
	select {
	case l.ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next blocks until an Event is available or ctx is cancelled.
func (l *Loop) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-l.ch:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Supervise starts the key-decoding and resize-notification pumps under
// an errgroup.Group derived from ctx: the group's context is cancelled as
// soon as either pump errors, and Wait on the returned group reports the
// first such error.
func Supervise(ctx context.Context, l *Loop, dec *keys.Decoder, resizeCh <-chan struct{}, size func() (termio.Size, error)) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.pumpKeys(gctx, dec) })
	g.Go(func() error { return l.pumpResize(gctx, resizeCh, size) })
	return g, gctx
}

func (l *Loop) pumpKeys(ctx context.Context, dec *keys.Decoder) error {
	for {
		ev, err := dec.Next()
		if err != nil {
			if errors.Is(err, keys.ErrNoInput) {
				continue
			}
			return err
		}
		if err := l.push(ctx, Event{Kind: KindKey, Key: ev}); err != nil {
			return err
		}
	}
}

func (l *Loop) pumpResize(ctx context.Context, notify <-chan struct{}, size func() (termio.Size, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-notify:
			s, err := size()
			if err != nil {
				continue
			}
			if err := l.push(ctx, Event{Kind: KindResize, Resize: s}); err != nil {
				return err
			}
		}
	}
}
