package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuAction int

const (
	actionAdd menuAction = iota
	actionRetrieve
	actionList
	actionDelete
	actionSaveExit
	actionExitNoSave
)

var menuItems = []string{
	"Add/Update Entry",
	"Retrieve Entry",
	"List All Labels",
	"Delete Entry",
	"Save & Exit",
	"Exit without Saving (changes will be lost!)",
}

// MenuModel is the main menu shown after unlock.
type MenuModel struct {
	sess *session

	idx         int
	status      string
	saving      bool
	showConfirm bool
	confirm     confirmModel
}

func NewMenuModel(sess *session) *MenuModel {
	return &MenuModel{sess: sess}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Busy reports whether a save is running.
func (m *MenuModel) Busy() bool {
	return m.saving
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusNotice:
		m.status = msg.text
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.sess.logger.Error().Err(msg.err).Msg("save from menu failed")
			if !app.Retryable(msg.err) {
				return m, finish(OutcomeCancelled, msg.err)
			}
			return m, showError(app.UserMessage(msg.err))
		}
		return m, finish(OutcomeSaved, nil)

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				m.showConfirm = false
				return m, finish(OutcomeDiscarded, nil)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				m.showConfirm = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(menuItems)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			return m, m.choose(menuAction(m.idx))
		default:
			// Digits pick an item directly.
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= byte('0'+len(menuItems)) {
				m.idx = int(s[0] - '1')
				return m, m.choose(menuAction(m.idx))
			}
		}
	}

	return m, nil
}

func (m *MenuModel) choose(action menuAction) tea.Cmd {
	m.status = ""
	switch action {
	case actionAdd:
		return navigate(pageAdd, nil)
	case actionRetrieve:
		return navigate(pageRetrieve, nil)
	case actionList:
		return navigate(pageList, nil)
	case actionDelete:
		return navigate(pageDelete, nil)
	case actionSaveExit:
		m.saving = true
		sess := m.sess
		return func() tea.Msg {
			return savedMsg{err: sess.vault.Save(sess.ctx)}
		}
	case actionExitNoSave:
		if !m.sess.vault.Dirty() {
			return finish(OutcomeDiscarded, nil)
		}
		m.showConfirm = true
		m.confirm.message = "There are unsaved changes. Exit and discard them?"
	}
	return nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID") + 2

	actionColWidth := lipgloss.Width("Action")
	for _, item := range menuItems {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range menuItems {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	b.WriteString(fmt.Sprintf("\nEntries: %d", m.sess.vault.Len()))
	if m.sess.vault.Dirty() {
		b.WriteString(warnStyle.Render("  (unsaved changes)"))
	}
	if m.saving {
		b.WriteString("\n\nSaving...")
	}

	view := renderPage("VAULT MENU", strings.TrimRight(b.String(), "\n"), "enter / 1-6: select │ ↑/↓: navigate │ v: version")
	if m.showConfirm {
		view += "\n\n" + m.confirm.View()
	}
	return view
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
