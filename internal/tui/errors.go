// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
)

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

func isServerUnavailable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}

// errorText is the message shown to the user for a failed request.
func errorText(err error) string {
	if err == nil {
		return ""
	}
	if isServerUnavailable(err) {
		return msgServerUnavailable
	}
	return service.ErrorMessage(err)
}

// loginErrorText is the message shown under the login form.
func loginErrorText(err error) string {
	if err == nil {
		return ""
	}
	if isServerUnavailable(err) {
		return msgServerUnavailable
	}
	return service.LoginErrorMessage(err)
}
