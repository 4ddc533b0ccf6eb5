package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/MKhiriev/go-safe-vault/internal/cli"
	"github.com/MKhiriev/go-safe-vault/internal/config"
	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/store"
	"github.com/MKhiriev/go-safe-vault/internal/tui"
	"github.com/MKhiriev/go-safe-vault/internal/validators"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/MKhiriev/go-safe-vault/models"
	"golang.org/x/term"
)

// Exit codes returned by [ExitCode].
const (
	ExitOK         = 0
	ExitUserError  = 1
	ExitUnexpected = 2
)

// App runs one safevault session against one vault file.
type App struct {
	vault  vault.SecretVault
	ui     Interactive
	logger *logger.Logger

	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	isTerminal func(fd int) bool
}

// NewApp builds the vault described by cfg and the interactive menu on top
// of it. The process standard streams are used for input and output.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storage, err := store.NewFileContainerStorage(cfg.Vault.Path)
	if err != nil {
		return nil, fmt.Errorf("create vault storage: %w", err)
	}

	v := vault.New(
		cfg.Vault,
		storage,
		crypto.NewKeyDeriver(),
		crypto.NewCipher(),
		validators.NewEntryValidator(),
		log,
	)

	return newApp(v, tui.New(v, buildInfo, log), log), nil
}

func newApp(v vault.SecretVault, ui Interactive, log *logger.Logger) *App {
	return &App{
		vault:      v,
		ui:         ui,
		logger:     log.WithComponent("app"),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: term.IsTerminal,
	}
}

// Run executes the command in args, or starts the interactive menu when args
// is empty. The vault is closed before Run returns, without saving anything
// that was not saved explicitly.
//
// Every returned error has already been reported on stderr.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.vault.Close()

	a.logger.Info().Str("vault", a.vault.Path()).Bool("interactive", len(args) == 0).Msg("session started")

	if len(args) > 0 {
		runner := cli.New(a.vault, cli.NewPrompter(a.stdin, a.stderr), a.stdout, a.stderr, a.logger)
		return runner.Run(ctx, args)
	}

	if !a.isTerminal(int(a.stdin.Fd())) {
		fmt.Fprintln(a.stderr, "The interactive menu needs a terminal. Pass a command to run non-interactively.")
		fmt.Fprintln(a.stderr, cli.Usage())
		return tui.ErrNotTerminal
	}

	return a.runInteractive(ctx)
}

func (a *App) runInteractive(ctx context.Context) error {
	outcome, err := a.ui.Run(ctx)

	switch {
	case err != nil:
		fmt.Fprintln(a.stderr, app.UserMessage(err))
	case outcome == tui.OutcomeSaved:
		fmt.Fprintln(a.stdout, app.MsgVaultSaved)
		fmt.Fprintln(a.stdout, "Vault closed. Goodbye!")
	case outcome == tui.OutcomeDiscarded:
		fmt.Fprintln(a.stdout, app.MsgChangesDiscarded)
	default:
		fmt.Fprintln(a.stdout, "Operation interrupted. Exiting.")
	}
	return err
}

// ExitCode maps the error returned by [App.Run] to a process exit code:
// ExitOK for nil, ExitUserError for conditions the user can act on and
// ExitUnexpected for everything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	userErrors := []error{
		cli.ErrUsage,
		cli.ErrEntryNotFound,
		cli.ErrVaultNotFound,
		cli.ErrPasswordMismatch,
		tui.ErrNotTerminal,
		vault.ErrAuthentication,
		vault.ErrCorruptVault,
		vault.ErrValidation,
		vault.ErrIO,
		vault.ErrNoPassword,
		crypto.ErrKeyDerivation,
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return ExitUserError
		}
	}
	return ExitUnexpected
}
