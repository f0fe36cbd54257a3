// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-adder/models"
)

const appName = "VaultAdder"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Приложение", appName},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%-12s│ %s\n", row[0], valueOrNA(row[1]))
	}

	return renderPage("О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
