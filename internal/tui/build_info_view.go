// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/content-console/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	var b strings.Builder

	b.WriteString("Название приложения: Content Console\n")
	b.WriteString("Версия: ")
	b.WriteString(info.Version())
	if !info.Released() {
		b.WriteString(faintStyle.Render(" (локальная сборка)"))
	}
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(info.Date())
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(info.Commit())

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.BuildUnknown
	}
	return v
}
