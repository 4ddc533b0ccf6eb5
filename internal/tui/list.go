package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ListModel shows every label in sorted order. Values are never shown here;
// enter opens the selected label on the retrieve page.
type ListModel struct {
	sess *session

	labels []string
	idx    int
}

func NewListModel(sess *session) *ListModel {
	return &ListModel{sess: sess}
}

// Init takes a fresh snapshot of the labels.
func (m *ListModel) Init() tea.Cmd {
	m.labels = m.sess.vault.Labels()
	m.idx = 0
	return nil
}

func (m *ListModel) current() (string, bool) {
	if len(m.labels) == 0 || m.idx < 0 || m.idx >= len(m.labels) {
		return "", false
	}
	return m.labels[m.idx], true
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.labels)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		label, ok := m.current()
		if !ok {
			return m, navigate(pageMenu, nil)
		}
		return m, navigate(pageRetrieve, lookupRequest{label: label})
	}
	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder
	if len(m.labels) == 0 {
		b.WriteString(app.MsgVaultEmpty)
	} else {
		b.WriteString(fmt.Sprintf("--- Stored Labels (%d) ---\n", len(m.labels)))
		for i, label := range m.labels {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(label)
			b.WriteString("\n")
		}
	}

	return renderPage("ALL LABELS", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ enter: open │ esc: back")
}
