// Package backend declares the chat backend adapter contract the core
// consumes but never implements (spec §1 Non-goals, §6 "Backend adapter
// contract"). Concrete adapters (Matrix, Slack, whatever protocol name
// appears in the config file's "protocol" field) live outside this
// module; the core only ever talks to these interfaces.
package backend

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// User is a chat participant.
type User interface {
	ID() string
	DisplayName() string
}

// Message is one chat log entry.
type Message interface {
	Speaker() User
	Text() string
	Created() int64 // milliseconds since epoch
}

// Room is a channel or direct conversation. ForEachMessage replays the
// room's backlog; OnMessage subscribes to subsequent arrivals.
type Room interface {
	ID() string
	Alias() (string, bool)
	Name() (string, bool)
	ForEachMessage(visitor func(Message))
	SendMessage(text string, cb func(error))
	OnMessage(func(Message))
}

// Backend is the adapter the core looks up rooms through. NewFunc is the
// constructor shape spec §6 prescribes: auth is the adapter-specific
// object decoded from the config file's "auth" field.
type Backend interface {
	GetRoomByName(name string) (Room, bool)
	GetDirectByName(user string) (Room, bool)
	OnConnected(func(User))
	OnReconnected(func())
}

// NewFunc is the constructor signature every adapter registers under its
// protocol name (spec §6 "a constructor accepting {auth, log}").
type NewFunc func(auth map[string]any, log *logrus.Logger) (Backend, error)

// Registry maps a config file's "protocol" value to the adapter
// constructor registered for it, letting cmd/mmterm select a backend
// without this package importing any concrete adapter.
type Registry struct {
	ctors map[string]NewFunc
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]NewFunc)}
}

// Register adds or replaces the constructor for protocol.
func (r *Registry) Register(protocol string, ctor NewFunc) {
	r.ctors[protocol] = ctor
}

// Lookup returns the constructor registered for protocol, if any.
func (r *Registry) Lookup(protocol string) (NewFunc, bool) {
	ctor, ok := r.ctors[protocol]
	return ctor, ok
}

// FaultLine formats the synthetic log line a Room shows on a failed send
// (spec §7 BackendFault): the message preview is truncated to 15
// characters plus an ellipsis if the original was longer than 18.
func FaultLine(text string) string {
	r := []rune(text)
	if len(r) > 18 {
		text = string(r[:15]) + "..."
	}
	return fmt.Sprintf("Failed to send message: %s", text)
}
