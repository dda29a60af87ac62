package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the panel border.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	DoneText, Selected, Help                      lipgloss.Style
	Panel                                         lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymOK, SymFail, SymDot   string
	BarFull, BarEmpty        string
}

// NewTheme builds the named theme for renderer r. Unknown names get
// "classic". A nil renderer means the default (stdout) renderer.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        s().Foreground(lipgloss.Color("8")),
			Accent:       s().Foreground(lipgloss.Color("14")),
			Success:      s().Foreground(lipgloss.Color("10")),
			Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("11")),
			DoneText:     s().Faint(true).Strikethrough(true),
			Selected:     s().Bold(true).Foreground(lipgloss.Color("13")),
			Help:         s().Faint(true),
			Panel:        s().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			SymOK:        "✔",
			SymFail:      "✖",
			SymDot:       "•",
			BarFull:      "█",
			BarEmpty:     "░",
		}
	case "mono":
		return Theme{
			Name:         "mono",
			Title:        s(),
			Muted:        s(),
			Accent:       s(),
			Success:      s(),
			Error:        s(),
			Pending:      s(),
			DoneText:     s(),
			Selected:     s(),
			Help:         s(),
			Panel:        s().Border(lipgloss.ASCIIBorder()).Padding(0, 1),
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymOK:        "ok",
			SymFail:      "error:",
			SymDot:       "-",
			BarFull:      "#",
			BarEmpty:     ".",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        s().Bold(true),
			Muted:        s().Faint(true),
			Accent:       s().Foreground(lipgloss.Color("12")),
			Success:      s().Foreground(lipgloss.Color("42")),
			Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("214")),
			DoneText:     s().Faint(true).Strikethrough(true),
			Selected:     s().Bold(true).Reverse(true),
			Help:         s().Faint(true),
			Panel:        s().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			SymOK:        "✔",
			SymFail:      "✖",
			SymDot:       "•",
			BarFull:      "█",
			BarEmpty:     "░",
		}
	}
}
