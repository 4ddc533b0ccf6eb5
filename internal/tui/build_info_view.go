// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-safe-vault/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, vaultPath string) string {
	var b strings.Builder

	b.WriteString("Application: SafeVault\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("Vault file: ")
	b.WriteString(vaultPath)

	return renderPage("ABOUT", b.String(), "esc: back")
}
