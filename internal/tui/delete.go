package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DeleteModel removes an entry after a y/n confirmation.
type DeleteModel struct {
	sess *session

	input         textinput.Model
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	errMsg        string
}

func NewDeleteModel(sess *session) *DeleteModel {
	in := textinput.New()
	in.Placeholder = "label"
	in.CharLimit = 256
	in.Width = 40
	return &DeleteModel{sess: sess, input: in}
}

// Init resets the page on every visit.
func (m *DeleteModel) Init() tea.Cmd {
	m.input.SetValue("")
	m.input.Focus()
	m.showConfirm = false
	m.pendingDelete = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.showConfirm {
			switch {
			case key.Matches(keyMsg, keys.yes):
				m.showConfirm = false
				return m, m.deletePending()
			case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.enter):
			m.ask()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DeleteModel) ask() {
	label := strings.TrimSpace(m.input.Value())
	m.errMsg = ""
	if label == "" {
		m.errMsg = app.MsgEmptyEntry
		return
	}
	if _, ok := m.sess.vault.Get(label); !ok {
		m.errMsg = fmt.Sprintf(app.MsgEntryNotFound, label)
		return
	}
	m.pendingDelete = label
	m.confirm.message = fmt.Sprintf("Delete %q?", label)
	m.showConfirm = true
}

func (m *DeleteModel) deletePending() tea.Cmd {
	label := m.pendingDelete
	m.pendingDelete = ""
	if !m.sess.vault.Delete(label) {
		m.errMsg = fmt.Sprintf(app.MsgEntryNotFound, label)
		return nil
	}
	return navigate(pageMenu, statusNotice{text: fmt.Sprintf(app.MsgEntryDeleted, label)})
}

func (m *DeleteModel) View() string {
	var b strings.Builder
	writeField(&b, "Label", m.input.View())
	writeError(&b, m.errMsg)

	view := renderPage("DELETE ENTRY", strings.TrimRight(b.String(), "\n"), "enter: delete │ esc: back")
	if m.showConfirm {
		view += "\n\n" + m.confirm.View()
	}
	return view
}
