// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/content-console/internal/adapter"
)

// Fallback messages shown when the backend gave no detail.
const (
	MsgLoginFailed     = "Ошибка входа"
	MsgRequestFailed   = "Не удалось выполнить запрос"
	MsgSessionExpired  = "Сессия истекла, войдите снова"
	MsgNotFound        = "Не найдено"
	MsgForbidden       = "Недостаточно прав"
	MsgBackendDown     = "Сервер недоступен"
	MsgTimeout         = "Превышено время ожидания ответа сервера"
	MsgEmptyCredential = "Введите email и пароль"
)

// IsSessionExpired reports whether err is a 401 from the backend.
func IsSessionExpired(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}

// LoginErrorMessage returns the text to show under the login form: the
// backend detail when present, otherwise a generic message.
func LoginErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEmptyCredentials) {
		return MsgEmptyCredential
	}
	if detail, ok := adapter.ErrorDetail(err); ok {
		return detail
	}
	return MsgLoginFailed
}

// ErrorMessage translates err into a user-facing message.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if detail, ok := adapter.ErrorDetail(err); ok {
		return detail
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgSessionExpired
	case errors.Is(err, adapter.ErrForbidden):
		return MsgForbidden
	case errors.Is(err, adapter.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrInternalServerError):
		return MsgBackendDown
	case errors.Is(err, context.DeadlineExceeded):
		return MsgTimeout
	case errors.Is(err, ErrEmptyProjectName):
		return "Укажите название проекта"
	case errors.Is(err, ErrNoProjectsSelected):
		return "Выберите хотя бы один проект"
	case errors.Is(err, ErrEmptyClusterName):
		return "Укажите название кластера"
	case errors.Is(err, ErrNotCSV):
		return "Выберите файл .csv"
	case errors.Is(err, ErrNoQueriesSelected):
		return "Выберите хотя бы один запрос"
	case errors.Is(err, ErrNothingToUpdate):
		return "Укажите, что изменить"
	case errors.Is(err, ErrInvalidQueryDate):
		return "Дата должна быть в формате ГГГГ-ММ-ДД"
	case errors.Is(err, ErrInvalidWSFlag):
		return "Частота не может быть отрицательной"
	case errors.Is(err, os.ErrNotExist):
		return "Файл не найден"
	}

	return MsgRequestFailed
}
