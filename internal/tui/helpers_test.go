package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/mock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

const testVaultPath = "/vaults/vault_data.json"

func newTestSession(t *testing.T) (*session, *mock.MockSecretVault) {
	t.Helper()
	ctrl := gomock.NewController(t)
	v := mock.NewMockSecretVault(ctrl)
	v.EXPECT().Path().Return(testVaultPath).AnyTimes()
	return &session{ctx: context.Background(), vault: v, logger: logger.Nop()}, v
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends s to m one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// collect runs cmd and returns every message it produces, flattening batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// find returns the first message of type T produced by cmd.
func find[T any](cmd tea.Cmd) (T, bool) {
	for _, msg := range collect(cmd) {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
