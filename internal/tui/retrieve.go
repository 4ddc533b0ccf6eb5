package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is a test seam for clipboard.WriteAll.
var writeClipboard = clipboard.WriteAll

// RetrieveModel looks an entry up by label. A found value is masked until
// revealed and can be copied to the system clipboard.
type RetrieveModel struct {
	sess *session

	input    textinput.Model
	label    string
	value    string
	found    bool
	revealed bool
	status   string
	errMsg   string
}

func NewRetrieveModel(sess *session) *RetrieveModel {
	in := textinput.New()
	in.Placeholder = "label"
	in.CharLimit = 256
	in.Width = 40
	return &RetrieveModel{sess: sess, input: in}
}

// Init resets the page on every visit.
func (m *RetrieveModel) Init() tea.Cmd {
	m.clearResult()
	m.input.SetValue("")
	m.errMsg = ""
	m.input.Focus()
	return textinput.Blink
}

func (m *RetrieveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupRequest:
		m.input.SetValue(msg.label)
		m.lookup()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.sess.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			m.errMsg = "Could not copy to clipboard."
			return m, nil
		}
		m.status = app.MsgCopiedToClipboard
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			m.clearResult()
			return m, navigate(pageMenu, nil)
		}

		if m.found {
			switch {
			case key.Matches(msg, keys.reveal):
				m.revealed = !m.revealed
			case key.Matches(msg, keys.copy):
				value := m.value
				return m, func() tea.Msg { return copiedMsg{err: writeClipboard(value)} }
			case key.Matches(msg, keys.enter):
				m.clearResult()
				m.input.SetValue("")
				m.input.Focus()
			}
			return m, nil
		}

		if key.Matches(msg, keys.enter) {
			m.lookup()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *RetrieveModel) lookup() {
	label := strings.TrimSpace(m.input.Value())
	m.clearResult()
	m.errMsg = ""
	if label == "" {
		m.errMsg = app.MsgEmptyEntry
		return
	}

	value, ok := m.sess.vault.Get(label)
	if !ok {
		m.errMsg = fmt.Sprintf(app.MsgEntryNotFound, label)
		return
	}
	m.label = label
	m.value = value
	m.found = true
	m.input.Blur()
}

func (m *RetrieveModel) clearResult() {
	m.label = ""
	m.value = ""
	m.found = false
	m.revealed = false
	m.status = ""
}

func (m *RetrieveModel) View() string {
	var b strings.Builder
	writeField(&b, "Label", m.input.View())

	hotKeys := "enter: look up │ esc: back"
	if m.found {
		shown := mask(m.value)
		if m.revealed {
			shown = m.value
		}
		b.WriteString("\nKey:   ")
		b.WriteString(m.label)
		b.WriteString("\nValue: ")
		b.WriteString(shown)
		b.WriteString("\n")
		hotKeys = "r: reveal/hide │ c: copy │ enter: new lookup │ esc: back"
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	writeError(&b, m.errMsg)

	return renderPage("RETRIEVE ENTRY", strings.TrimRight(b.String(), "\n"), hotKeys)
}
