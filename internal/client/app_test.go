package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-safe-vault/internal/cli"
	"github.com/MKhiriev/go-safe-vault/internal/config"
	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/mock"
	"github.com/MKhiriev/go-safe-vault/internal/tui"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/MKhiriev/go-safe-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeInteractive struct {
	outcome tui.RunOutcome
	err     error
	called  bool
}

func (f *fakeInteractive) Run(context.Context) (tui.RunOutcome, error) {
	f.called = true
	return f.outcome, f.err
}

// stdinFile returns a regular file holding content, for use as stdin.
func stdinFile(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

type appFixture struct {
	app    *App
	vault  *mock.MockSecretVault
	ui     *fakeInteractive
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestApp(t *testing.T, stdin string, terminal bool) appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	v := mock.NewMockSecretVault(ctrl)
	v.EXPECT().Path().Return("/vaults/vault_data.json").AnyTimes()
	v.EXPECT().Close()

	ui := &fakeInteractive{}
	a := newApp(v, ui, logger.Nop())
	f := appFixture{app: a, vault: v, ui: ui, stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	a.stdin = stdinFile(t, stdin)
	a.stdout = f.stdout
	a.stderr = f.stderr
	a.isTerminal = func(int) bool { return terminal }
	return f
}

func TestApp_RunCommand(t *testing.T) {
	f := newTestApp(t, "hunter2\n", false)
	gomock.InOrder(
		f.vault.EXPECT().Exists(gomock.Any()).Return(true, nil),
		f.vault.EXPECT().Unlock(gomock.Any(), []byte("hunter2")).Return(nil),
		f.vault.EXPECT().Get("email").Return("p@ss1", true),
	)
	// the command closes the vault, then the app closes it again
	f.vault.EXPECT().Close()

	require.NoError(t, f.app.Run(context.Background(), []string{"get", "email"}))
	assert.Equal(t, "p@ss1\n", f.stdout.String())
	assert.False(t, f.ui.called)
}

func TestApp_InteractiveRequiresTerminal(t *testing.T) {
	f := newTestApp(t, "", false)

	err := f.app.Run(context.Background(), nil)
	require.ErrorIs(t, err, tui.ErrNotTerminal)
	assert.False(t, f.ui.called)
	assert.Contains(t, f.stderr.String(), "usage: safevault")
	assert.Equal(t, ExitUserError, ExitCode(err))
}

func TestApp_InteractiveOutcomes(t *testing.T) {
	tests := []struct {
		name       string
		outcome    tui.RunOutcome
		err        error
		wantStdout string
		wantStderr string
	}{
		{name: "saved", outcome: tui.OutcomeSaved, wantStdout: "Vault saved successfully."},
		{name: "discarded", outcome: tui.OutcomeDiscarded, wantStdout: "Exiting without saving. Changes are discarded."},
		{name: "cancelled", outcome: tui.OutcomeCancelled, wantStdout: "Operation interrupted. Exiting."},
		{name: "corrupt", outcome: tui.OutcomeCancelled, err: fmt.Errorf("%w: missing salt", vault.ErrCorruptVault), wantStderr: "The vault file is corrupted"},
		{name: "no password", outcome: tui.OutcomeCancelled, err: vault.ErrNoPassword, wantStderr: "No password supplied."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestApp(t, "", true)
			f.ui.outcome = tt.outcome
			f.ui.err = tt.err

			err := f.app.Run(context.Background(), nil)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, f.ui.called)
			if tt.wantStdout != "" {
				assert.Contains(t, f.stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, f.stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "usage", err: fmt.Errorf("%w: unknown command", cli.ErrUsage), want: ExitUserError},
		{name: "not found", err: cli.ErrEntryNotFound, want: ExitUserError},
		{name: "authentication", err: vault.ErrAuthentication, want: ExitUserError},
		{name: "key derivation", err: fmt.Errorf("x: %w", crypto.ErrKeyDerivation), want: ExitUserError},
		{name: "io", err: fmt.Errorf("%w: %w", vault.ErrIO, os.ErrPermission), want: ExitUserError},
		{name: "unexpected", err: errors.New("boom"), want: ExitUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestNewApp_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault_data.json")
	cfg := &config.StructuredConfig{
		Vault: config.Vault{Path: path, Iterations: crypto.MinIterations},
	}

	run := func(stdin string, args ...string) (string, error) {
		a, err := NewApp(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
		require.NoError(t, err)
		out := &bytes.Buffer{}
		a.stdin = stdinFile(t, stdin)
		a.stdout = out
		a.stderr = &bytes.Buffer{}
		err = a.Run(context.Background(), args)
		return out.String(), err
	}

	_, err := run("Tr0ub4dor\nTr0ub4dor\n", "put", "email", "p@ss1")
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, err := run("Tr0ub4dor\n", "get", "email")
	require.NoError(t, err)
	assert.Equal(t, "p@ss1\n", out)

	_, err = run("wrong\n", "list")
	require.ErrorIs(t, err, vault.ErrAuthentication)
	assert.Equal(t, ExitUserError, ExitCode(err))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
