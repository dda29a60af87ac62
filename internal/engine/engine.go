// Package engine executes one instruction against a to-do list.
package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todo/internal/filter"
	"github.com/Makepad-fr/todo/internal/logging"
	"github.com/Makepad-fr/todo/internal/model"
)

// Entry is an item together with its current index.
type Entry struct {
	Index int
	Item  model.Item
}

// View is what a List instruction produces.
type View struct {
	Owner   string
	Entries []Entry
	Filter  string

	// Counts cover the whole list, not just the filtered entries.
	Done, Pending int
}

// Presenter receives the outcome of each instruction.
type Presenter interface {
	Added(index int, it model.Item)
	Completed(index int, it model.Item, changed bool)
	Removed(index int, it model.Item)
	Listed(v View)
}

// Result reports what a Run did.
type Result struct {
	Changed bool  // state differs from before the run
	View    *View // set for List
}

// Engine owns a list and applies instructions to it.
type Engine struct {
	list *model.ToDoList
	out  Presenter
	log  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

func WithPresenter(p Presenter) Option {
	return func(e *Engine) {
		if p != nil {
			e.out = p
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func New(list *model.ToDoList, opts ...Option) *Engine {
	e := &Engine{list: list, out: Discard, log: logging.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// List returns the list the engine operates on.
func (e *Engine) List() *model.ToDoList { return e.list }

// Run applies inst. On error the list is left as it was.
func (e *Engine) Run(inst model.Instruction) (Result, error) {
	e.log.Debug("run", "instruction", inst.Name(), "items", e.list.Len())

	switch in := inst.(type) {
	case model.Add:
		idx := e.list.Add(in.Text)
		it, _ := e.list.Item(idx)
		e.out.Added(idx, it)
		return Result{Changed: true}, nil

	case model.Complete:
		it, changed, err := e.list.Complete(in.Index)
		if err != nil {
			e.log.Debug("complete rejected", "err", err)
			return Result{}, err
		}
		e.out.Completed(in.Index, it, changed)
		return Result{Changed: changed}, nil

	case model.Remove:
		it, err := e.list.Remove(in.Index)
		if err != nil {
			e.log.Debug("remove rejected", "err", err)
			return Result{}, err
		}
		e.out.Removed(in.Index, it)
		return Result{Changed: true}, nil

	case model.List:
		v, err := e.view(in.Filter)
		if err != nil {
			return Result{}, err
		}
		e.out.Listed(*v)
		return Result{View: v}, nil
	}
	return Result{}, fmt.Errorf("unsupported instruction %T", inst)
}

func (e *Engine) view(expression string) (*View, error) {
	f, err := filter.Compile(expression)
	if err != nil {
		return nil, err
	}
	v := &View{Owner: e.list.Owner(), Filter: f.String(), Entries: []Entry{}}
	v.Done, v.Pending = e.list.Stats()
	for i, it := range e.list.Items() {
		ok, err := f.Match(i, it)
		if err != nil {
			return nil, err
		}
		if ok {
			v.Entries = append(v.Entries, Entry{Index: i, Item: it})
		}
	}
	return v, nil
}

// Discard is a Presenter that prints nothing.
var Discard Presenter = discard{}

type discard struct{}

func (discard) Added(int, model.Item)           {}
func (discard) Completed(int, model.Item, bool) {}
func (discard) Removed(int, model.Item)         {}
func (discard) Listed(View)                     {}
