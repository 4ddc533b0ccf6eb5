package tui

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUnlock_ExistingVault(t *testing.T) {
	sess, v := newTestSession(t)
	v.EXPECT().Unlock(gomock.Any(), []byte("hunter2")).Return(nil)

	m := NewUnlockModel(sess, false)
	typeText(m, "hunter2")
	_, cmd := m.Update(keyEnter)

	assert.True(t, m.Busy())
	assert.Empty(t, m.inputs[0].Value())
	done, ok := find[unlockDoneMsg](cmd)
	require.True(t, ok)
	require.NoError(t, done.err)

	_, cmd = m.Update(done)
	assert.False(t, m.Busy())
	nav, ok := find[NavigateTo](cmd)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
	assert.Equal(t, statusNotice{text: "Vault decrypted successfully!"}, nav.Payload)
}

func TestUnlock_KeysIgnoredWhileBusy(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, false)
	m.busy = true

	_, cmd := m.Update(keyEsc)
	assert.Nil(t, cmd)
	typeText(m, "abc")
	assert.Empty(t, m.inputs[0].Value())
}

func TestUnlock_WrongPasswordAllowsRetry(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, false)
	m.busy = true

	_, cmd := m.Update(unlockDoneMsg{err: vault.ErrAuthentication})
	assert.Nil(t, cmd)
	assert.False(t, m.Busy())
	assert.Equal(t, app.MsgAuthenticationFailed, m.errMsg)
	assert.Contains(t, m.View(), "Authentication failed. Invalid password or corrupted vault file.")
}

func TestUnlock_ReadFailureCanBeRetried(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, false)
	typeText(m, "pw")

	_, cmd := m.Update(unlockDoneMsg{err: fmt.Errorf("%w: permission denied", vault.ErrIO)})
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgIOFailure, m.errMsg)
	assert.Empty(t, m.inputs[0].Value())
}

func TestUnlock_FatalErrorFinishes(t *testing.T) {
	for _, err := range []error{vault.ErrCorruptVault, crypto.ErrKeyDerivation} {
		t.Run(err.Error(), func(t *testing.T) {
			sess, _ := newTestSession(t)
			m := NewUnlockModel(sess, false)

			_, cmd := m.Update(unlockDoneMsg{err: err})
			fin, ok := find[finishMsg](cmd)
			require.True(t, ok)
			assert.Equal(t, OutcomeCancelled, fin.outcome)
			assert.ErrorIs(t, fin.err, err)
		})
	}
}

func TestUnlock_EmptyPassword(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, false)

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPasswordEmpty, m.errMsg)
	assert.False(t, m.Busy())
}

func TestUnlock_EscCancels(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, false)

	_, cmd := m.Update(keyEsc)
	fin, ok := find[finishMsg](cmd)
	require.True(t, ok)
	assert.ErrorIs(t, fin.err, vault.ErrNoPassword)
}

func TestUnlock_NewVault(t *testing.T) {
	const pw = "Xq7#vLp2$wR9!mZk4&tY"
	sess, v := newTestSession(t)
	v.EXPECT().Unlock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got []byte) error {
		assert.Equal(t, pw, string(got))
		return nil
	})

	m := NewUnlockModel(sess, true)
	require.Len(t, m.inputs, 2)
	assert.Contains(t, m.View(), "CREATE VAULT")

	typeText(m, pw)
	require.NotNil(t, m.strength)
	assert.False(t, m.strength.Weak())

	// enter on the first field moves to the confirmation
	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.focus)

	typeText(m, pw)
	_, cmd = m.Update(keyEnter)
	done, ok := find[unlockDoneMsg](cmd)
	require.True(t, ok)

	_, cmd = m.Update(done)
	nav, ok := find[NavigateTo](cmd)
	require.True(t, ok)
	assert.Equal(t, pageMenu, nav.Page)
}

func TestUnlock_NewVaultMismatch(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, true)

	typeText(m, "first-password")
	m.Update(keyTab)
	typeText(m, "second-password")
	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPasswordsDontMatch, m.errMsg)
	assert.Empty(t, m.inputs[0].Value())
	assert.Empty(t, m.inputs[1].Value())
	assert.Equal(t, 0, m.focus)
}

func TestUnlock_WeakPasswordHint(t *testing.T) {
	sess, _ := newTestSession(t)
	m := NewUnlockModel(sess, true)

	typeText(m, "abc")
	require.NotNil(t, m.strength)
	assert.True(t, m.strength.Weak())
	assert.Contains(t, m.View(), "consider a longer passphrase")
}
