// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-safe-vault/internal/app"
	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/validators"
	"github.com/MKhiriev/go-safe-vault/internal/vault"
	"github.com/awnumar/memguard"
)

const usage = `usage: safevault [flags] <command> [args]

commands:
  list                 print every label
  get <label>          print the value stored under label
  put <label> [value]  store a value and save (omit value to be prompted)
  delete <label>       remove a label and save`

type command struct {
	minArgs, maxArgs int
	creates          bool
	run              func(r *Runner, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"list":   {minArgs: 0, maxArgs: 0, run: (*Runner).list},
	"get":    {minArgs: 1, maxArgs: 1, run: (*Runner).get},
	"put":    {minArgs: 1, maxArgs: 2, creates: true, run: (*Runner).put},
	"delete": {minArgs: 1, maxArgs: 1, run: (*Runner).delete},
}

// Runner executes one command against a vault.
type Runner struct {
	vault    vault.SecretVault
	prompter Prompter
	out      io.Writer
	errOut   io.Writer
	logger   *logger.Logger
}

// New constructs a Runner. Command output goes to out; prompts' follow-up
// messages, warnings and errors go to errOut.
func New(v vault.SecretVault, prompter Prompter, out, errOut io.Writer, log *logger.Logger) *Runner {
	return &Runner{
		vault:    v,
		prompter: prompter,
		out:      out,
		errOut:   errOut,
		logger:   log.WithComponent("cli"),
	}
}

// Usage returns the command synopsis.
func Usage() string {
	return usage
}

// Run executes the command named by args[0]. Any returned error has already
// been reported to the user on errOut.
func (r *Runner) Run(ctx context.Context, args []string) error {
	err := r.run(ctx, args)
	if err != nil {
		r.report(err, args)
	}
	return err
}

func (r *Runner) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command", ErrUsage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	params := args[1:]
	if len(params) < cmd.minArgs || len(params) > cmd.maxArgs {
		return fmt.Errorf("%w: %s takes %d to %d arguments", ErrUsage, args[0], cmd.minArgs, cmd.maxArgs)
	}

	if err := r.unlock(ctx, cmd.creates); err != nil {
		return err
	}
	defer r.vault.Close()

	r.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(r, ctx, params)
}

func (r *Runner) unlock(ctx context.Context, mayCreate bool) error {
	exists, err := r.vault.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists && !mayCreate {
		return fmt.Errorf("%w: %s", ErrVaultNotFound, r.vault.Path())
	}

	var password []byte
	if exists {
		password, err = r.readPassword("Master password: ")
	} else {
		password, err = r.readNewPassword()
	}
	if err != nil {
		return err
	}

	return r.vault.Unlock(ctx, password)
}

func (r *Runner) readPassword(prompt string) ([]byte, error) {
	password, err := r.prompter.ReadSecret(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, vault.ErrNoPassword
		}
		return nil, err
	}
	if len(password) == 0 {
		return nil, vault.ErrNoPassword
	}
	return password, nil
}

func (r *Runner) readNewPassword() ([]byte, error) {
	fmt.Fprintf(r.errOut, "No vault at %s, a new one will be created.\n", r.vault.Path())

	password, err := r.readPassword("New master password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := r.readPassword("Confirm master password: ")
	if err != nil {
		memguard.WipeBytes(password)
		return nil, err
	}
	defer memguard.WipeBytes(confirm)

	if subtle.ConstantTimeCompare(password, confirm) != 1 {
		memguard.WipeBytes(password)
		return nil, ErrPasswordMismatch
	}

	if strength := validators.EstimateStrength(string(password)); strength.Weak() {
		fmt.Fprintf(r.errOut, app.MsgWeakPassword+"\n", strength.Label(), strength.CrackTime)
	}
	return password, nil
}

func (r *Runner) list(_ context.Context, _ []string) error {
	labels := r.vault.Labels()
	if len(labels) == 0 {
		fmt.Fprintln(r.errOut, app.MsgVaultEmpty)
		return nil
	}
	for _, label := range labels {
		fmt.Fprintln(r.out, label)
	}
	return nil
}

func (r *Runner) get(_ context.Context, args []string) error {
	value, ok := r.vault.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, args[0])
	}
	fmt.Fprintln(r.out, value)
	return nil
}

func (r *Runner) put(ctx context.Context, args []string) error {
	label := args[0]
	var value string
	if len(args) == 2 {
		fmt.Fprintln(r.errOut, app.MsgValueInArguments)
		value = args[1]
	} else {
		secret, err := r.prompter.ReadSecret(fmt.Sprintf("Value for '%s': ", label))
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		value = string(secret)
		memguard.WipeBytes(secret)
	}

	if err := r.vault.AddOrUpdate(label, value); err != nil {
		return err
	}
	if err := r.vault.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(r.errOut, app.MsgEntrySaved+"\n", label)
	return nil
}

func (r *Runner) delete(ctx context.Context, args []string) error {
	if !r.vault.Delete(args[0]) {
		return fmt.Errorf("%w: %s", ErrEntryNotFound, args[0])
	}
	if err := r.vault.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(r.errOut, app.MsgEntryDeleted+"\n", args[0])
	return nil
}

func (r *Runner) report(err error, args []string) {
	r.logger.Warn().Err(err).Msg("command failed")

	switch {
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(r.errOut, err)
		fmt.Fprintln(r.errOut, usage)
	case errors.Is(err, ErrEntryNotFound):
		fmt.Fprintf(r.errOut, app.MsgEntryNotFound+"\n", args[1])
	case errors.Is(err, ErrVaultNotFound):
		fmt.Fprintf(r.errOut, "No vault at %s.\n", r.vault.Path())
	case errors.Is(err, ErrPasswordMismatch):
		fmt.Fprintln(r.errOut, "Passwords do not match.")
	default:
		fmt.Fprintln(r.errOut, app.UserMessage(err))
	}
}
