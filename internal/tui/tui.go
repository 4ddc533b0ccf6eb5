// Package tui implements the interactive menu of safevault on top of
// bubbletea.
//
// One program run covers a whole session: unlock, any number of entry
// operations, and the final choice between Save & Exit and Exit without
// Saving. Pages are routed by [RootModel]; vault operations that may block
// (key derivation, saving) run as commands while the page reports itself
// busy, so at most one of them is in flight.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/MKhiriev/go-safe-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RunOutcome tells how an interactive session ended.
type RunOutcome int

const (
	// OutcomeCancelled means the program ended before the user chose an exit
	// path: ctrl+c, esc on the unlock page or a fatal unlock error.
	OutcomeCancelled RunOutcome = iota
	// OutcomeSaved means the vault was written by Save & Exit.
	OutcomeSaved
	// OutcomeDiscarded means the user chose Exit without Saving.
	OutcomeDiscarded
)

func (o RunOutcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "cancelled"
	}
}

// TUI runs the interactive menu against one vault.
type TUI struct {
	vault     vault.SecretVault
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

// New constructs a [TUI].
func New(v vault.SecretVault, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		vault:          v,
		buildInfo:      buildInfo,
		logger:         log.WithComponent("tui"),
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the unlock page and then the menu until the user exits.
// The returned error is the one that ended the session early, e.g.
// vault.ErrNoPassword or vault.ErrCorruptVault; it is nil for the normal
// exit paths. The caller closes the vault afterwards.
func (t *TUI) Run(ctx context.Context) (RunOutcome, error) {
	exists, err := t.vault.Exists(ctx)
	if err != nil {
		return OutcomeCancelled, err
	}

	root := t.newRootModel(ctx, !exists)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, runErr := tea.NewProgram(root, opts...).Run()
	if runErr != nil {
		return OutcomeCancelled, fmt.Errorf("run interactive menu: %w", runErr)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return OutcomeCancelled, tea.ErrProgramKilled
	}

	outcome, err := result.Outcome()
	t.logger.Info().Str("outcome", outcome.String()).Err(err).Msg("interactive session ended")
	return outcome, err
}

func (t *TUI) newRootModel(ctx context.Context, isNew bool) RootModel {
	sess := &session{ctx: ctx, vault: t.vault, logger: t.logger}
	pages := map[string]tea.Model{
		pageUnlock:   NewUnlockModel(sess, isNew),
		pageMenu:     NewMenuModel(sess),
		pageAdd:      NewEntryFormModel(sess),
		pageRetrieve: NewRetrieveModel(sess),
		pageList:     NewListModel(sess),
		pageDelete:   NewDeleteModel(sess),
	}
	return NewRootModel(pages, pageUnlock, t.buildInfo, t.vault.Path())
}
