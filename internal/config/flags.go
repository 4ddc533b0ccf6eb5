package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses configuration flags from args (without the program name)
// and returns the parsed config together with the remaining positional
// arguments.
//
// Flags:
//
//	-f vault file path
//	-i PBKDF2 iterations for new vaults
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-log-file log file path
//	-version print build information and exit
//
// A -h or -help flag yields an error wrapping [flag.ErrHelp].
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var vaultPath string
	var iterations int
	var jsonConfigPath string
	var logLevel string
	var logFile string
	var showVersion bool

	fs := flag.NewFlagSet("safevault", flag.ContinueOnError)
	fs.StringVar(&vaultPath, "f", "", "Vault file path")
	fs.IntVar(&iterations, "i", 0, "PBKDF2 iterations used for new vaults")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Vault: Vault{
			Path:       vaultPath,
			Iterations: iterations,
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, fs.Args(), nil
}
