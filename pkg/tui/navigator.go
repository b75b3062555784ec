package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Outcome is why the navigator program stopped.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEdit
	OutcomeFinish
	OutcomeQuit
)

// Navigator is the Bubble Tea model that shows the step bar and the active
// step, and translates keys into wizard navigation.
type Navigator struct {
	session *Session
	outcome Outcome
	width   int
}

// NewNavigator returns a navigator over s.
func NewNavigator(s *Session) *Navigator {
	return &Navigator{session: s}
}

// Outcome reports why the program quit.
func (m *Navigator) Outcome() Outcome { return m.outcome }

// Init implements tea.Model.
func (m *Navigator) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Navigator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		w := m.session.Wizard
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.outcome = OutcomeQuit
			return m, tea.Quit
		case "enter", "e":
			m.outcome = OutcomeEdit
			return m, tea.Quit
		case "right", "n", "l", "tab":
			if w.IsLast() {
				m.outcome = OutcomeFinish
				return m, tea.Quit
			}
			w.Advance()
		case "left", "b", "h", "shift+tab":
			w.Retreat()
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				if i := int(key[0] - '1'); w.Interactive(i) {
					w.JumpTo(i)
				}
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Navigator) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cvb") + " " + subtitleStyle.Render("resume builder") + "\n\n")
	b.WriteString(StepBar(m.session.Wizard) + "\n\n")
	b.WriteString(Summary(m.session))
	b.WriteString(footer(m.session.Wizard) + "\n")
	return b.String()
}
