package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todo/internal/engine"
	"github.com/Makepad-fr/todo/internal/model"
)

// listItem adapts an engine entry to bubbles/list.Item.
type listItem struct {
	engine.Entry
}

func (i listItem) Title() string       { return i.Item.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Item.Text }

// itemDelegate renders each entry on a single line.
type itemDelegate struct {
	theme Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := d.theme
	box, text := t.Muted.Render(t.BoxUnchecked), it.Item.Text
	if it.Item.Done {
		box, text = t.Success.Render(t.BoxChecked), t.DoneText.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, t.Muted.Render(fmt.Sprintf("%2d.", it.Index)), box, text)
}

var (
	completeKey = key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "complete"))
	removeKey   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	addKey      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	quitKey     = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	escKey      = key.NewBinding(key.WithKeys("esc"))
)

// interactive is the Bubble Tea model. Every change goes through the engine.
type interactive struct {
	eng     *engine.Engine
	theme   Theme
	list    list.Model
	changed bool
	status  string

	adding bool
	ti     textinput.Model
	addErr string
}

func newInteractive(eng *engine.Engine, theme Theme) interactive {
	l := list.New(nil, itemDelegate{theme: theme}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	extra := func() []key.Binding { return []key.Binding{completeKey, removeKey, addKey} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item text..."
	ti.CharLimit = 200

	m := interactive{eng: eng, theme: theme, list: l, ti: ti}
	m.refresh()
	return m
}

// refresh rebuilds the visible items and header from the engine's list.
func (m *interactive) refresh() tea.Cmd {
	lst := m.eng.List()
	items := make([]list.Item, 0, lst.Len())
	for i, it := range lst.Items() {
		items = append(items, listItem{engine.Entry{Index: i, Item: it}})
	}
	done, pending := lst.Stats()
	t := m.theme
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(lst.Owner()+"'s todos"),
		t.Success.Render(t.SymOK), done,
		t.Pending.Render(t.SymDot), pending,
		t.Accent.Render("Total"), lst.Len(),
	)
	return m.list.SetItems(items)
}

// apply runs one instruction and records the outcome.
func (m *interactive) apply(inst model.Instruction) tea.Cmd {
	res, err := m.eng.Run(inst)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = ""
	if res.Changed {
		m.changed = true
	}
	return m.refresh()
}

func (m interactive) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m interactive) Init() tea.Cmd { return nil }

func (m interactive) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil
	case tea.KeyMsg:
		// Keys belong to the filter input while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, escKey):
			// esc clears an applied filter first and quits only afterwards.
			if m.list.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case key.Matches(msg, completeKey):
			if it, ok := m.selected(); ok {
				cmd := m.apply(model.Complete{Index: it.Index})
				return m, cmd
			}
			return m, nil
		case key.Matches(msg, removeKey):
			if it, ok := m.selected(); ok {
				cmd := m.apply(model.Remove{Index: it.Index})
				return m, cmd
			}
			return m, nil
		case key.Matches(msg, addKey):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			cmd := m.ti.Focus()
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m interactive) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.addErr = "Text cannot be empty"
				return m, nil
			}
			if !utf8.ValidString(text) {
				m.addErr = "Text is not valid UTF-8"
				return m, nil
			}
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			cmd := m.apply(model.Add{Text: text})
			return m, cmd
		case "esc":
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m interactive) View() string {
	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.addErr != "" {
			title += " " + m.theme.Error.Render(m.addErr)
		}
		content += "\n" + m.theme.Panel.Render(title+"\n"+m.ti.View())
	}
	if m.status != "" {
		content += "\n" + m.theme.Error.Render(m.theme.SymFail+" "+m.status)
	}
	return m.theme.Panel.Render(content)
}

// RunInteractive shows the list full screen until the user quits.
// It reports whether any instruction changed the list.
func RunInteractive(eng *engine.Engine, theme Theme, opts ...tea.ProgramOption) (bool, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(newInteractive(eng, theme), opts...)
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(interactive)
	if !ok {
		return false, nil
	}
	return fm.changed, nil
}
