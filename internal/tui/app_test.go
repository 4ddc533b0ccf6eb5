package tui

import (
	"testing"

	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/MKhiriev/go-safe-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T) (RootModel, *session) {
	t.Helper()
	sess, _ := newTestSession(t)
	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(sess, false),
		pageAdd:    NewEntryFormModel(sess),
	}
	return NewRootModel(pages, pageUnlock, models.NewAppBuildInfo("v1.0.0", "", ""), testVaultPath), sess
}

func TestRootModel_Navigate(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, _ := root.Update(NavigateTo{Page: pageAdd})
	root = updated.(RootModel)
	assert.Equal(t, pageAdd, root.currentName)
	assert.Contains(t, root.View(), "ADD / UPDATE ENTRY")

	updated, _ = root.Update(NavigateTo{Page: "missing"})
	root = updated.(RootModel)
	assert.Equal(t, pageAdd, root.currentName)
}

func TestRootModel_ErrorOverlay(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, _ := root.Update(errorNotice{message: "disk full"})
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "disk full")

	// keys go to the overlay, not the page
	updated, cmd := root.Update(keyEsc)
	root = updated.(RootModel)
	assert.Nil(t, cmd)
	assert.NotContains(t, root.View(), "disk full")
}

func TestRootModel_Finish(t *testing.T) {
	root, _ := newTestRoot(t)

	updated, cmd := root.Update(finishMsg{outcome: OutcomeCancelled, err: vault.ErrNoPassword})
	root = updated.(RootModel)
	_, ok := find[tea.QuitMsg](cmd)
	require.True(t, ok)

	outcome, err := root.Outcome()
	assert.Equal(t, OutcomeCancelled, outcome)
	assert.ErrorIs(t, err, vault.ErrNoPassword)
}

func TestRootModel_CtrlC(t *testing.T) {
	root, _ := newTestRoot(t)

	_, cmd := root.Update(keyCtrlC)
	_, ok := find[tea.QuitMsg](cmd)
	assert.True(t, ok)
}

func TestRootModel_CtrlCIgnoredWhileBusy(t *testing.T) {
	root, _ := newTestRoot(t)
	root.current.(*UnlockModel).busy = true

	_, cmd := root.Update(keyCtrlC)
	assert.Nil(t, cmd)
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	root, sess := newTestRoot(t)
	root.pages[pageMenu] = NewMenuModel(sess)

	updated, _ := root.Update(keyRunes("v"))
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)

	updated, _ = root.Update(NavigateTo{Page: pageMenu})
	root = updated.(RootModel)
	updated, _ = root.Update(keyRunes("v"))
	root = updated.(RootModel)
	require.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "v1.0.0")
	assert.Contains(t, root.View(), testVaultPath)

	updated, _ = root.Update(keyEsc)
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)
}

func TestRunOutcome_String(t *testing.T) {
	assert.Equal(t, "saved", OutcomeSaved.String())
	assert.Equal(t, "discarded", OutcomeDiscarded.String())
	assert.Equal(t, "cancelled", OutcomeCancelled.String())
}
