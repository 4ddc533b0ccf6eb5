// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/MKhiriev/go-safe-vault/internal/validators"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// UnlockModel is the first page. For an existing vault it asks for the
// master password once; for a new vault it asks twice and shows a strength
// estimate. Key derivation runs as a command so the spinner keeps moving.
//
// A failure the user can retry (a wrong password, an unreadable file) keeps
// the page open for another attempt. Any other unlock failure ends the
// program.
type UnlockModel struct {
	sess  *session
	isNew bool

	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	busy     bool
	errMsg   string
	strength *validators.PasswordStrength
}

// NewUnlockModel creates an [UnlockModel]. isNew selects the create flow.
func NewUnlockModel(sess *session, isNew bool) *UnlockModel {
	password := newSecretInput("master password")
	password.Focus()
	inputs := []textinput.Model{password}
	if isNew {
		inputs = append(inputs, newSecretInput("repeat password"))
	}

	return &UnlockModel{
		sess:    sess,
		isNew:   isNew,
		inputs:  inputs,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func newSecretInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 1024
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// Busy reports whether key derivation is running.
func (m *UnlockModel) Busy() bool {
	return m.busy
}

// Init implements [tea.Model].
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - unlockDoneMsg: on success opens the menu, on a retryable error shows
//     the message and clears the input, otherwise finishes with the error;
//   - esc: finishes with vault.ErrNoPassword;
//   - tab / shift+tab: moves focus between the two inputs of the create flow;
//   - enter: validates the input and starts the unlock command.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockDoneMsg:
		m.busy = false
		if msg.err == nil {
			notice := statusNotice{text: "Vault decrypted successfully!"}
			if m.isNew {
				notice.text = "New vault created. Use Save & Exit to write it."
			}
			return m, navigate(pageMenu, notice)
		}
		if app.Retryable(msg.err) {
			m.errMsg = app.UserMessage(msg.err)
			m.reset()
			return m, nil
		}
		return m, finish(OutcomeCancelled, msg.err)

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, finish(OutcomeCancelled, vault.ErrNoPassword)
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.isNew && m.focus == 0 {
		m.updateStrength()
	}
	return m, cmd
}

func (m *UnlockModel) submit() tea.Cmd {
	pass := m.inputs[0].Value()
	if pass == "" {
		m.errMsg = app.MsgPasswordEmpty
		return nil
	}
	if m.isNew {
		if m.focus == 0 {
			m.focusNext()
			return nil
		}
		if subtle.ConstantTimeCompare([]byte(pass), []byte(m.inputs[1].Value())) != 1 {
			m.errMsg = app.MsgPasswordsDontMatch
			m.reset()
			return nil
		}
	}

	m.errMsg = ""
	m.busy = true
	password := []byte(pass)
	m.reset()

	sess := m.sess
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return unlockDoneMsg{err: sess.vault.Unlock(sess.ctx, password)}
	})
}

func (m *UnlockModel) updateStrength() {
	pass := m.inputs[0].Value()
	if pass == "" {
		m.strength = nil
		return
	}
	s := validators.EstimateStrength(pass)
	m.strength = &s
}

// reset clears every input and returns focus to the first one.
func (m *UnlockModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.strength = nil
}

func (m *UnlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *UnlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder

	title := "UNLOCK VAULT"
	if m.isNew {
		title = "CREATE VAULT"
		b.WriteString("No vault file found. Creating new vault at ")
	} else {
		b.WriteString("Loading existing vault ")
	}
	b.WriteString(m.sess.vault.Path())
	b.WriteString("\n\n")

	writeField(&b, "Password", m.inputs[0].View())
	if m.isNew {
		writeField(&b, "Repeat", m.inputs[1].View())
		if m.strength != nil {
			line := fmt.Sprintf("\nStrength: %s (cracked in %s)", m.strength.Label(), m.strength.CrackTime)
			if m.strength.Weak() {
				b.WriteString(warnStyle.Render(line + ", consider a longer passphrase"))
			} else {
				b.WriteString(statusStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Deriving key...\n")
	}
	writeError(&b, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: confirm │ tab: next field │ esc: cancel")
}
