package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Makepad-fr/todo/internal/model"
)

// ErrParse is matched by every ParseError.
var ErrParse = errors.New("could not parse arguments")

// ParseError describes why a command line was rejected.
type ParseError struct {
	Msg   string
	Usage string // usage line for the subcommand, if known
}

func (e *ParseError) Error() string { return e.Msg }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Kind names what a parsed command line asks for.
type Kind int

const (
	KindInstruction Kind = iota // apply Instruction to the list
	KindInteractive             // open the interactive list
	KindRecover                 // move an unreadable backup file aside
	KindHelp
)

// Command is a parsed command line.
type Command struct {
	Kind        Kind
	Instruction model.Instruction // set for KindInstruction
	Group       bool              // list --group
}

const (
	usageAdd      = "usage: todo add <text...>"
	usageComplete = "usage: todo done <index>"
	usageRemove   = "usage: todo remove <index>"
	usageList     = "usage: todo list [--group] [--filter EXPR]"
)

// Parse maps positional arguments (root flags already stripped) to a Command.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &ParseError{Msg: "missing subcommand"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		return Command{Kind: KindHelp}, nil

	case "add":
		if len(a) == 0 {
			return Command{}, &ParseError{Msg: "add: missing text", Usage: usageAdd}
		}
		text := strings.Join(a, " ")
		if !utf8.ValidString(text) {
			return Command{}, &ParseError{Msg: "add: text is not valid UTF-8", Usage: usageAdd}
		}
		return instruction(model.Add{Text: text}), nil

	case "done", "complete":
		n, err := index(cmd, a, usageComplete)
		if err != nil {
			return Command{}, err
		}
		return instruction(model.Complete{Index: n}), nil

	case "remove", "rm":
		n, err := index(cmd, a, usageRemove)
		if err != nil {
			return Command{}, err
		}
		return instruction(model.Remove{Index: n}), nil

	case "list", "ls":
		return parseList(a)

	case "tui":
		if len(a) != 0 {
			return Command{}, &ParseError{Msg: "tui: unexpected arguments", Usage: "usage: todo tui"}
		}
		return Command{Kind: KindInteractive}, nil

	case "recover":
		if len(a) != 0 {
			return Command{}, &ParseError{Msg: "recover: unexpected arguments", Usage: "usage: todo recover"}
		}
		return Command{Kind: KindRecover}, nil
	}
	return Command{}, &ParseError{Msg: "unknown subcommand: " + cmd}
}

func instruction(inst model.Instruction) Command {
	return Command{Kind: KindInstruction, Instruction: inst}
}

func index(cmd string, a []string, usage string) (int, error) {
	if len(a) != 1 {
		return 0, &ParseError{Msg: cmd + ": expected exactly one index", Usage: usage}
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		return 0, &ParseError{Msg: cmd + ": not a number: " + a[0], Usage: usage}
	}
	if n < 0 {
		return 0, &ParseError{Msg: cmd + ": index must not be negative: " + a[0], Usage: usage}
	}
	return n, nil
}

func parseList(a []string) (Command, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	group := fs.Bool("group", false, "group by pending/done")
	expr := fs.String("filter", "", "boolean expression over index, text and done")
	if err := fs.Parse(a); err != nil {
		return Command{}, &ParseError{Msg: fmt.Sprintf("list: %v", err), Usage: usageList}
	}
	if fs.NArg() != 0 {
		return Command{}, &ParseError{Msg: "list: unexpected arguments: " + strings.Join(fs.Args(), " "), Usage: usageList}
	}
	return Command{
		Kind:        KindInstruction,
		Instruction: model.List{Filter: *expr},
		Group:       *group,
	}, nil
}
