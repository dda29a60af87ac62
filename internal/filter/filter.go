// Package filter selects list entries with expr-lang expressions such as
// `!done && text contains "milk"`.
package filter

import (
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/Makepad-fr/todo/internal/model"
)

// env is what an expression can see for one item.
type env struct {
	Index int    `expr:"index"`
	Text  string `expr:"text"`
	Done  bool   `expr:"done"`
}

// Filter is a compiled boolean expression. The zero value and a nil
// *Filter match everything.
type Filter struct {
	source  string
	program *exprvm.Program
}

// Compile parses expression. An empty expression yields a match-all filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &Filter{}, nil
	}
	program, err := exprlang.Compile(expression, exprlang.Env(env{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match reports whether the item at index satisfies the expression.
func (f *Filter) Match(index int, it model.Item) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}
	out, err := exprlang.Run(f.program, env{Index: index, Text: it.Text, Done: it.Done})
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
