// Package ui renders list output and status lines with Lip Gloss.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/todo/internal/engine"
	"github.com/Makepad-fr/todo/internal/model"
)

const maxTextWidth = 80

// Console writes command results to Out and failures to Err.
// It implements engine.Presenter.
type Console struct {
	Out, Err io.Writer
	Theme    Theme
	Group    bool // list grouped by pending/done
}

// NewConsole returns a console whose styles match what out can display.
func NewConsole(out, errw io.Writer, theme string, group bool) *Console {
	return &Console{
		Out:   out,
		Err:   errw,
		Theme: NewTheme(theme, lipgloss.NewRenderer(out)),
		Group: group,
	}
}

var _ engine.Presenter = (*Console)(nil)

func (c *Console) OK(msg string) {
	fmt.Fprintln(c.Out, c.Theme.Success.Render(c.Theme.SymOK+" "+msg))
}

func (c *Console) Fail(msg string) {
	fmt.Fprintln(c.Err, c.Theme.Error.Render(c.Theme.SymFail+" "+msg))
}

func (c *Console) Hint(msg string) {
	fmt.Fprintln(c.Err, c.Theme.Muted.Render("Hint: "+msg))
}

func (c *Console) Added(index int, it model.Item) {
	c.OK(fmt.Sprintf("added #%d %s", index, truncate(it.Text, maxTextWidth)))
}

func (c *Console) Completed(index int, it model.Item, changed bool) {
	if !changed {
		c.OK(fmt.Sprintf("#%d was already done", index))
		return
	}
	c.OK(fmt.Sprintf("completed #%d %s", index, truncate(it.Text, maxTextWidth)))
}

func (c *Console) Removed(index int, it model.Item) {
	c.OK(fmt.Sprintf("removed #%d %s", index, truncate(it.Text, maxTextWidth)))
}

func (c *Console) Listed(v engine.View) {
	t := c.Theme
	total := v.Done + v.Pending
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(v.Owner+"'s todos"),
		t.Success.Render(t.SymOK), v.Done,
		t.Pending.Render(t.SymDot), v.Pending,
		t.Accent.Render("Total"), total,
	)

	lines := []string{header, t.Muted.Render(t.ProgressBar(v.Done, total, 28))}
	if v.Filter != "" {
		lines = append(lines, t.Muted.Render(fmt.Sprintf("filter: %s (%d shown)", v.Filter, len(v.Entries))))
	}
	lines = append(lines, "")
	if c.Group {
		lines = append(lines, c.groupLines(v.Entries)...)
	} else {
		lines = append(lines, c.flatLines(v.Entries)...)
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	fmt.Fprintln(c.Out, t.Box(lines))
}

// EntryLine renders one item with its index and completion box.
func (c *Console) EntryLine(e engine.Entry) string {
	t := c.Theme
	idx := fmt.Sprintf("%2d.", e.Index)
	box, style := t.Muted.Render(t.BoxUnchecked), t.Muted
	text := truncate(e.Item.Text, maxTextWidth)
	if e.Item.Done {
		box = t.Success.Render(t.BoxChecked)
		text = t.DoneText.Render(text)
	}
	return fmt.Sprintf("%s %s %s", style.Render(idx), box, text)
}

func (c *Console) flatLines(entries []engine.Entry) []string {
	if len(entries) == 0 {
		return []string{c.Theme.Muted.Render("no items")}
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, c.EntryLine(e))
	}
	return out
}

func (c *Console) groupLines(entries []engine.Entry) []string {
	var pend, done []engine.Entry
	for _, e := range entries {
		if e.Item.Done {
			done = append(done, e)
		} else {
			pend = append(pend, e)
		}
	}
	section := func(title string, es []engine.Entry) []string {
		lines := []string{c.Theme.Accent.Render(title)}
		if len(es) == 0 {
			return append(lines, c.Theme.Muted.Render("(none)"))
		}
		for _, e := range es {
			lines = append(lines, c.EntryLine(e))
		}
		return lines
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
