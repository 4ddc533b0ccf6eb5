package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-safe-vault/internal/cli"
	"github.com/MKhiriev/go-safe-vault/internal/client"
	"github.com/MKhiriev/go-safe-vault/internal/config"
	"github.com/MKhiriev/go-safe-vault/internal/crypto"
	"github.com/MKhiriev/go-safe-vault/internal/logger"
	"github.com/MKhiriev/go-safe-vault/internal/utils"
	"github.com/MKhiriev/go-safe-vault/models"
	"github.com/awnumar/memguard"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// SIGINT outside the interactive menu wipes every locked buffer before
	// the process exits.
	memguard.CatchInterrupt()
	memguard.SafeExit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, args, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, cli.Usage())
			return client.ExitOK
		}
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return client.ExitUserError
	}

	if cfg.ShowVersion {
		fmt.Println(buildInfo)
		return client.ExitOK
	}

	log := logger.NewLogger("safevault", cfg.Log).WithSession(utils.NewUUIDGenerator().Generate())
	log.Debug().Any("config", cfg).Str("version", buildInfo.BuildVersion()).Msg("received configs")

	if err = crypto.SelfTest(); err != nil {
		log.Error().Err(err).Msg("crypto self-test failed")
		fmt.Fprintln(os.Stderr, "Cryptographic self-test failed, refusing to start.")
		return client.ExitUnexpected
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		fmt.Fprintf(os.Stderr, "CRITICAL ERROR: %v\n", err)
		return client.ExitUnexpected
	}

	err = app.Run(ctx, args)
	code := client.ExitCode(err)
	if err != nil {
		log.Warn().Err(err).Int("exit_code", code).Msg("session ended with error")
	}
	return code
}
