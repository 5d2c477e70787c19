package command

import (
	"strings"
	"testing"

	"github.com/mmterm/mmterm/internal/backend"
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/pane"
	"github.com/mmterm/mmterm/internal/register"
	"github.com/mmterm/mmterm/internal/statusline"
	"github.com/mmterm/mmterm/internal/window"
)

type fakeRoom struct{ id string }

func (r *fakeRoom) ID() string                            { return r.id }
func (r *fakeRoom) Alias() (string, bool)                 { return r.id, true }
func (r *fakeRoom) Name() (string, bool)                  { return r.id, true }
func (r *fakeRoom) ForEachMessage(func(backend.Message))  {}
func (r *fakeRoom) SendMessage(string, func(error))       {}
func (r *fakeRoom) OnMessage(func(backend.Message))       {}

type fakeBackend struct{ rooms map[string]*fakeRoom }

func (b *fakeBackend) GetRoomByName(name string) (backend.Room, bool) {
	r, ok := b.rooms[name]
	return r, ok
}
func (b *fakeBackend) GetDirectByName(user string) (backend.Room, bool) {
	r, ok := b.rooms[user]
	return r, ok
}
func (b *fakeBackend) OnConnected(func(backend.User)) {}
func (b *fakeBackend) OnReconnected(func())           {}

func newTestDeps() *Deps {
	regs := register.New()
	v := pane.NewView(nil, regs)
	p := pane.New(v, regs)
	w := window.New(p, 40)
	return &Deps{
		Window:  w,
		Regs:    regs,
		Status:  statusline.New(),
		Backend: &fakeBackend{rooms: map[string]*fakeRoom{"bob": {id: "bob"}}},
	}
}

func TestExecuteStripsColonAndDispatches(t *testing.T) {
	d := newTestDeps()
	warn, term := Execute(d, ":split")
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if term {
		t.Fatal("split should not terminate")
	}
	if d.Window.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Window.Len())
	}
}

func TestExecuteUnknownCommandWarnsWithSuggestion(t *testing.T) {
	d := newTestDeps()
	warn, _ := Execute(d, ":slit")
	if warn == nil || warn.Kind != intent.KindWarn {
		t.Fatalf("warn = %v, want a warn intent", warn)
	}
	if !strings.Contains(warn.Message, "split") {
		t.Fatalf("message = %q, want a suggestion mentioning split", warn.Message)
	}
}

func TestExecuteWrongArity(t *testing.T) {
	d := newTestDeps()
	warn, _ := Execute(d, ":dm")
	if warn == nil || !strings.Contains(warn.Message, "wrong number") {
		t.Fatalf("warn = %v, want an arity warning", warn)
	}
}

func TestDMOpensDirectChat(t *testing.T) {
	d := newTestDeps()
	warn, _ := Execute(d, ":dm bob")
	if warn != nil {
		t.Fatalf("warn = %v, want nil", warn)
	}
	if d.Window.Current().Current().Room.ID() != "bob" {
		t.Fatalf("current room = %v, want bob", d.Window.Current().Current().Room)
	}
}

func TestDMUnknownUserWarns(t *testing.T) {
	d := newTestDeps()
	warn, _ := Execute(d, ":dm nobody")
	if warn == nil || warn.Kind != intent.KindWarn {
		t.Fatalf("warn = %v, want a warn intent", warn)
	}
}

func TestQallTerminates(t *testing.T) {
	d := newTestDeps()
	_, term := Execute(d, ":qall")
	if !term {
		t.Fatal("expected qall to signal termination")
	}
}

func TestQuitClosesPaneThenTerminates(t *testing.T) {
	d := newTestDeps()
	Execute(d, ":split")
	_, term := Execute(d, ":quit")
	if term {
		t.Fatal("expected quit to not terminate with 2 panes")
	}
	_, term = Execute(d, ":quit")
	if !term {
		t.Fatal("expected quit to terminate on the last pane")
	}
}

func TestRegistersSetsStatusMessage(t *testing.T) {
	d := newTestDeps()
	d.Regs.Update(register.ActionYank, register.Unnamed, "hello")
	Execute(d, ":registers")
	if d.Status.Message() == "" {
		t.Fatal("expected a status message after :registers")
	}
}

func TestHelpListsCommands(t *testing.T) {
	d := newTestDeps()
	Execute(d, ":help")
	if !strings.Contains(d.Status.Message(), "dm") {
		t.Fatalf("help message = %q, want it to list the dm command", d.Status.Message())
	}
}
