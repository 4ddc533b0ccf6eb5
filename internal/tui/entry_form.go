package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryFormModel adds a new entry or replaces the value of an existing one.
// The value is masked while typed.
type EntryFormModel struct {
	sess *session

	inputs []textinput.Model
	focus  int
	errMsg string
}

func NewEntryFormModel(sess *session) *EntryFormModel {
	label := textinput.New()
	label.Placeholder = "label, e.g. website login"
	label.CharLimit = 256
	label.Width = 40

	return &EntryFormModel{
		sess:   sess,
		inputs: []textinput.Model{label, newSecretInput("secret value")},
	}
}

// Init resets the form on every visit.
func (m *EntryFormModel) Init() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.errMsg = ""
	m.inputs[0].Focus()
	return textinput.Blink
}

func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.switchFocus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus == 0 {
				m.switchFocus()
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EntryFormModel) submit() tea.Cmd {
	label := strings.TrimSpace(m.inputs[0].Value())
	value := m.inputs[1].Value()

	if err := m.sess.vault.AddOrUpdate(label, value); err != nil {
		m.errMsg = app.UserMessage(err)
		return nil
	}
	m.sess.logger.Debug().Int("entries", m.sess.vault.Len()).Msg("entry stored")
	return navigate(pageMenu, statusNotice{text: fmt.Sprintf(app.MsgEntrySaved, label)})
}

func (m *EntryFormModel) switchFocus() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EntryFormModel) View() string {
	var b strings.Builder
	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	writeField(&b, "Label", m.inputs[0].View())
	writeField(&b, "Value", m.inputs[1].View())
	writeError(&b, m.errMsg)

	return renderPage("ADD / UPDATE ENTRY", strings.TrimRight(b.String(), "\n"), "enter: next / save │ tab: next field │ esc: back")
}
