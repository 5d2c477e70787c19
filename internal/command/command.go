// Package command implements the `:` command-bar interpreter (spec §6
// command table), generalizing the teacher's command_registry.go
// alias/arity/fuzzy-suggestion machinery from a generic CommandRegistry[T]
// into the small, fixed command table spec §6 actually needs.
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mmterm/mmterm/internal/backend"
	"github.com/mmterm/mmterm/internal/intent"
	"github.com/mmterm/mmterm/internal/pane"
	"github.com/mmterm/mmterm/internal/register"
	"github.com/mmterm/mmterm/internal/statusline"
	"github.com/mmterm/mmterm/internal/window"
)

// Deps bundles everything a Command's Run needs (spec §6).
type Deps struct {
	Window  *window.Window
	Regs    *register.Store
	Status  *statusline.StatusLine
	Backend backend.Backend // nil when no backend is configured
	Suspend func() error    // termio.Suspend, injected to avoid a hard import
	Log     *logrus.Logger
}

// Command is one entry of the `:` command table. MinArgv/MaxArgv count the
// command name itself, matching spec §6's "Argv arity" column.
type Command struct {
	Name    string
	Aliases []string
	MinArgv int
	MaxArgv int
	Help    string
	Run     func(d *Deps, args []string) (*intent.Intent, bool)
}

// Table is the fixed set of `:` commands spec §6 enumerates.
var Table = []Command{
	{
		Name: "dm", MinArgv: 2, MaxArgv: 2,
		Help: "dm <user> — open a direct chat with user",
		Run:  runDM,
	},
	{
		Name: "join", MinArgv: 2, MaxArgv: 2,
		Help: "join <room> — open a conference room",
		Run:  runJoin,
	},
	{
		Name: "split", Aliases: []string{"sp"}, MinArgv: 1, MaxArgv: 1,
		Help: "split — horizontal split of the focused pane",
		Run:  runSplit,
	},
	{
		Name: "vsplit", Aliases: []string{"vsp"}, MinArgv: 1, MaxArgv: 1,
		Help: "vsplit — vertical split (currently warns, not yet supported)",
		Run:  runVsplit,
	},
	{
		Name: "quit", Aliases: []string{"q", "Q"}, MinArgv: 1, MaxArgv: 1,
		Help: "quit — close the focused pane, or exit if it's the last one",
		Run:  runQuit,
	},
	{
		Name: "qall", Aliases: []string{"qa", "Qa"}, MinArgv: 1, MaxArgv: 1,
		Help: "qall — exit the process",
		Run:  runQall,
	},
	{
		Name: "shell", Aliases: []string{"sh", "Sh"}, MinArgv: 1, MaxArgv: 1,
		Help: "shell — pause the UI and spawn $SHELL, resuming on exit",
		Run:  runShell,
	},
	{
		Name: "registers", Aliases: []string{"reg", "register"}, MinArgv: 1, MaxArgv: 1,
		Help: "registers — dump register contents into the lobby",
		Run:  runRegisters,
	},
}

// The "help" command's Run closure transitively refers back to Table (to
// list commands), so it is appended here in an init() rather than inlined
// in Table's initializer above, which would otherwise be an initialization
// cycle (Table -> runHelp -> renderHelp -> helpMarkdown -> Table).
func init() {
	Table = append(Table, Command{
		Name: "help", Aliases: []string{"h"}, MinArgv: 1, MaxArgv: 2,
		Help: "help [name] — list commands, or show help for one",
		Run:  runHelp,
	})
}

// Execute strips the leading ':' and surrounding space, splits on
// whitespace, and dispatches to the matching Command (spec §6). It
// returns a warn intent when the command is unknown, malformed, or
// refuses, and whether the caller should terminate the process.
func Execute(d *Deps, line string) (*intent.Intent, bool) {
	line = strings.TrimPrefix(strings.TrimSpace(line), ":")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false
	}

	name, args := fields[0], fields[1:]
	cmd, ok := lookup(name)
	if !ok {
		return unknownCommand(name), false
	}

	argv := len(args) + 1
	if argv < cmd.MinArgv || argv > cmd.MaxArgv {
		return warnPtr("%s: wrong number of arguments", cmd.Name), false
	}
	return cmd.Run(d, args)
}

func lookup(name string) (Command, bool) {
	for _, c := range Table {
		if c.Name == name {
			return c, true
		}
		for _, a := range c.Aliases {
			if a == name {
				return c, true
			}
		}
	}
	return Command{}, false
}

// unknownCommand builds the CommandError warn (spec §7): "Not a client
// command: <cmd>" plus a fuzzy suggestion when one is close enough.
func unknownCommand(name string) *intent.Intent {
	msg := fmt.Sprintf("Not a client command: %s", name)
	if s := suggest(name); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return warnPtr("%s", msg)
}

// suggest returns the closest command name to input by Levenshtein edit
// distance (teacher's command_registry.go SuggestCommand, generalized),
// ties broken alphabetically, within a distance of 2. Empty if nothing
// is close enough.
func suggest(input string) string {
	type candidate struct {
		name string
		dist int
	}
	low := strings.ToLower(input)

	var candidates []candidate
	seen := make(map[string]bool)
	for _, c := range Table {
		names := append([]string{c.Name}, c.Aliases...)
		for _, n := range names {
			if seen[n] {
				continue
			}
			seen[n] = true
			if d := levenshtein(low, strings.ToLower(n)); d <= 2 {
				candidates = append(candidates, candidate{n, d})
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	return candidates[0].name
}

func runDM(d *Deps, args []string) (*intent.Intent, bool) {
	if d.Backend == nil {
		return warnPtr("No backend configured"), false
	}
	room, ok := d.Backend.GetDirectByName(args[0])
	if !ok {
		return warnPtr("No such user: %s", args[0]), false
	}
	d.Window.Current().FocusView(pane.NewView(room, d.Regs))
	return nil, false
}

func runJoin(d *Deps, args []string) (*intent.Intent, bool) {
	if d.Backend == nil {
		return warnPtr("No backend configured"), false
	}
	room, ok := d.Backend.GetRoomByName(args[0])
	if !ok {
		return warnPtr("No such room: %s", args[0]), false
	}
	d.Window.Current().FocusView(pane.NewView(room, d.Regs))
	return nil, false
}

func runSplit(d *Deps, _ []string) (*intent.Intent, bool) {
	return d.Window.Dispatch(intent.Window(intent.WinSplit, intent.DirUp, 0)), false
}

func runVsplit(d *Deps, _ []string) (*intent.Intent, bool) {
	return d.Window.Dispatch(intent.Window(intent.WinSplit, intent.DirLeft, 0)), false
}

func runQuit(d *Deps, _ []string) (*intent.Intent, bool) {
	return nil, d.Window.Quit()
}

func runQall(d *Deps, _ []string) (*intent.Intent, bool) {
	return nil, true
}

func runShell(d *Deps, _ []string) (*intent.Intent, bool) {
	if d.Suspend == nil {
		return nil, false
	}
	if err := d.Suspend(); err != nil {
		return warnPtr("shell: %v", err), false
	}
	return nil, false
}

func runRegisters(d *Deps, _ []string) (*intent.Intent, bool) {
	d.Status.SetMessage(formatRegisters(d.Regs))
	return nil, false
}

func runHelp(d *Deps, args []string) (*intent.Intent, bool) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	d.Status.SetMessage(renderHelp(name))
	return nil, false
}

func warnPtr(format string, args ...any) *intent.Intent {
	w := intent.Warn(format, args...)
	return &w
}
