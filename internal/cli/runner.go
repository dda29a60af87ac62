// Package cli parses command lines and runs one instruction per invocation.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Makepad-fr/todo/internal/config"
	"github.com/Makepad-fr/todo/internal/engine"
	"github.com/Makepad-fr/todo/internal/identity"
	"github.com/Makepad-fr/todo/internal/logging"
	"github.com/Makepad-fr/todo/internal/model"
	"github.com/Makepad-fr/todo/internal/store/jsonstore"
	"github.com/Makepad-fr/todo/internal/ui"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Options holds the process collaborators. Zero values use the real ones.
type Options struct {
	Stdout, Stderr io.Writer
	Owner          func() string    // identity for a fresh list
	Now            func() time.Time // timestamps for recover
	Interactive    func(*engine.Engine, ui.Theme) (bool, error)
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Owner == nil {
		o.Owner = identity.Current
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Interactive == nil {
		o.Interactive = func(e *engine.Engine, t ui.Theme) (bool, error) {
			return ui.RunInteractive(e, t)
		}
	}
	return o
}

// Run executes one command line and returns an exit code
// (0 ok, 1 error, 2 usage). The backup file is written only after an
// instruction succeeded and changed the list.
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()

	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			PrintHelp(opt.Stdout)
			return ExitOK
		}
		// Help needs no configuration, so a broken config file cannot hide it.
		if cmd, perr := Parse(config.Positional(args)); perr == nil && cmd.Kind == KindHelp {
			PrintHelp(opt.Stdout)
			return ExitOK
		}
		con := ui.NewConsole(opt.Stdout, opt.Stderr, config.DefaultTheme, false)
		con.Fail("config: " + err.Error())
		return ExitUsage
	}

	logger := logging.New(opt.Stderr, cfg.LogLevel, cfg.LogFormat)
	logger.Debug("config", "file", cfg.DataFile, "theme", cfg.Theme, "sources", cfg.Files)
	con := ui.NewConsole(opt.Stdout, opt.Stderr, cfg.Theme, cfg.Group)

	cmd, err := Parse(fs.Args())
	if err != nil {
		return usageFailure(con, opt.Stderr, err)
	}

	store := jsonstore.New(cfg.DataFile)
	switch cmd.Kind {
	case KindHelp:
		PrintHelp(opt.Stdout)
		return ExitOK
	case KindRecover:
		return doRecover(con, store, opt.Now())
	}

	owner := cfg.Owner
	if owner == "" {
		owner = opt.Owner()
	}
	list, restored, err := store.Load(owner)
	if err != nil {
		con.Fail("load: " + err.Error())
		if errors.Is(err, jsonstore.ErrDecode) {
			con.Hint(fmt.Sprintf("%s was left untouched; fix it by hand or run `todo recover` to move it aside and start fresh", store.Path))
		}
		return ExitFailure
	}
	logger.Debug("loaded", "path", store.Path, "restored", restored, "owner", list.Owner(), "items", list.Len())

	if cmd.Group {
		con.Group = true
	}
	// The interactive view owns the terminal; console output would land
	// on top of the alternate screen.
	var presenter engine.Presenter = con
	if cmd.Kind == KindInteractive {
		presenter = engine.Discard
	}
	eng := engine.New(list, engine.WithPresenter(presenter), engine.WithLogger(logger))

	changed, code := execute(cmd, eng, con, cfg, opt)
	if code != ExitOK || !changed {
		return code
	}
	if err := store.Save(list); err != nil {
		con.Fail("save: " + err.Error())
		return ExitFailure
	}
	logger.Debug("saved", "path", store.Path, "items", list.Len())
	return ExitOK
}

func execute(cmd Command, eng *engine.Engine, con *ui.Console, cfg *config.Config, opt Options) (bool, int) {
	if cmd.Kind == KindInteractive {
		changed, err := opt.Interactive(eng, ui.NewTheme(cfg.Theme, nil))
		if err != nil {
			con.Fail("tui: " + err.Error())
			return false, ExitFailure
		}
		return changed, ExitOK
	}

	res, err := eng.Run(cmd.Instruction)
	if err != nil {
		con.Fail(err.Error())
		if errors.Is(err, model.ErrIndexOutOfRange) {
			con.Hint("run `todo list` to see valid indexes")
		}
		return false, ExitFailure
	}
	return res.Changed, ExitOK
}

func usageFailure(con *ui.Console, stderr io.Writer, err error) int {
	con.Fail(err.Error())
	var pe *ParseError
	if errors.As(err, &pe) && pe.Usage != "" {
		fmt.Fprintln(stderr, pe.Usage)
		return ExitUsage
	}
	fmt.Fprintln(stderr)
	PrintHelp(stderr)
	return ExitUsage
}

// doRecover moves an unreadable backup aside. A readable one is never touched.
func doRecover(con *ui.Console, store *jsonstore.Store, now time.Time) int {
	_, restored, err := store.Load(identity.Unknown)
	switch {
	case err == nil && !restored:
		con.Fail("nothing to recover: " + store.Path + " does not exist")
		return ExitFailure
	case err == nil:
		con.Fail("nothing to recover: " + store.Path + " is a valid backup")
		return ExitFailure
	case !errors.Is(err, jsonstore.ErrDecode):
		con.Fail("load: " + err.Error())
		return ExitFailure
	}
	dst, err := store.Quarantine(now)
	if err != nil {
		con.Fail("recover: " + err.Error())
		return ExitFailure
	}
	con.OK("moved unreadable backup to " + dst + "; the next command starts a fresh list")
	return ExitOK
}
