package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the layout of the optional JSON configuration file.
type StructuredJSONConfig struct {
	Vault struct {
		Path       string `json:"path"`
		Iterations int    `json:"kdf_iterations"`
	} `json:"vault,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	dec := json.NewDecoder(jsonFile)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		Vault: Vault{
			Path:       jsonCfg.Vault.Path,
			Iterations: jsonCfg.Vault.Iterations,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}, nil
}
