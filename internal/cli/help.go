package cli

import (
	"fmt"
	"io"
)

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny task list

Usage:
  todo [flags] <subcommand> [args]

Subcommands:
  add <text...>        Add a new item (text can be multiple words)
  list, ls             List items with their 0-based indexes
        --group          group by pending/done
        --filter EXPR    show items matching EXPR, e.g. '!done && text contains "milk"'
  done, complete <i>   Mark item i as done
  remove, rm <i>       Remove item i; later items move up by one
  tui                  Interactive list (space: complete, d: remove, a: add, q: quit)
  recover              Move an unreadable backup file aside and start fresh

Flags:
  -file PATH           Backup file (default todos.json in the current directory)
  -theme NAME          classic, neon or mono
  -group               Group list output by pending/done
  -log-level LEVEL     debug, info, warn or error

Examples:
  todo add "Buy milk"
  todo ls
  todo done 0
  todo rm 2
`)
}
