// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/content-console/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ModalKind tells the modal host how to render and drive [ModalContent].
type ModalKind int

const (
	ModalConfirm ModalKind = iota
	ModalError
	ModalProjectForm
	ModalContentPlanForm
	ModalTZForm
	ModalQueryBulkForm
	ModalQueryVersions
	ModalContentPlanProjects
)

// ModalContent is the single modal shown above the active page.
//
// Payload depends on Kind: [ConfirmPayload] for ModalConfirm, nothing for
// ModalError, and a form model for the form kinds.
type ModalContent struct {
	Kind    ModalKind
	Title   string
	Message string
	Payload any
}

// ConfirmPayload is the payload of a ModalConfirm modal. OnConfirm runs
// after the modal has been closed.
type ConfirmPayload struct {
	OnConfirm tea.Cmd
}

// ModalHost opens and closes the modal of the root model. Opening a modal
// replaces the current one.
type ModalHost interface {
	Open(content ModalContent)
	Close()
}

// modalForm is a form shown inside a modal. It receives every key message
// while open and closes the host itself.
type modalForm interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
}

type modalHostKey struct{}

func withModalHost(ctx context.Context, host ModalHost) context.Context {
	return context.WithValue(ctx, modalHostKey{}, host)
}

// modalHostFrom returns the host installed by the root model and panics
// when there is none.
func modalHostFrom(ctx context.Context) ModalHost {
	host, ok := ctx.Value(modalHostKey{}).(ModalHost)
	if !ok || host == nil {
		panic("modal host used outside of root model")
	}
	return host
}

type modalHost struct {
	content *ModalContent
}

func newModalHost() *modalHost {
	return &modalHost{}
}

func (h *modalHost) Open(content ModalContent) {
	h.content = &content
}

func (h *modalHost) Close() {
	h.content = nil
}

func (h *modalHost) active() bool {
	return h.content != nil
}

func (h *modalHost) current() (ModalContent, bool) {
	if h.content == nil {
		return ModalContent{}, false
	}
	return *h.content, true
}

func (h *modalHost) form() (modalForm, bool) {
	if h.content == nil {
		return nil, false
	}
	f, ok := h.content.Payload.(modalForm)
	return f, ok
}

// handleKey drives the active modal with a key press.
func (h *modalHost) handleKey(msg tea.KeyMsg) tea.Cmd {
	content, ok := h.current()
	if !ok {
		return nil
	}

	switch content.Kind {
	case ModalConfirm:
		switch msg.String() {
		case "y", "enter":
			h.Close()
			if p, ok := content.Payload.(ConfirmPayload); ok {
				return p.OnConfirm
			}
		case "n", "esc":
			h.Close()
		}
		return nil

	case ModalError:
		switch msg.String() {
		case "enter", "esc":
			h.Close()
		}
		return nil
	}

	if f, ok := h.form(); ok {
		return f.Update(msg)
	}
	if msg.String() == "esc" {
		h.Close()
	}
	return nil
}

// forward hands a non-key message to an open form.
func (h *modalHost) forward(msg tea.Msg) tea.Cmd {
	if f, ok := h.form(); ok {
		return f.Update(msg)
	}
	return nil
}

func (h *modalHost) View() string {
	content, ok := h.current()
	if !ok {
		return ""
	}

	var b strings.Builder
	switch content.Kind {
	case ModalConfirm:
		title := content.Title
		if title == "" {
			title = "Подтверждение"
		}
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n\n")
		b.WriteString(content.Message)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("y да    n нет"))

	case ModalError:
		title := content.Title
		if title == "" {
			title = "Ошибка"
		}
		b.WriteString(errorStyle.Render(title))
		b.WriteString("\n\n")
		b.WriteString(content.Message)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter / esc закрыть"))

	default:
		if content.Title != "" {
			b.WriteString(titleStyle.Render(content.Title))
			b.WriteString("\n\n")
		}
		if f, ok := h.form(); ok {
			b.WriteString(f.View())
		} else {
			b.WriteString(content.Message)
		}
	}

	return overlayBoxStyle.Render(b.String())
}

// reportError shows err in the error modal, or signals the root model when
// the session has expired.
func reportError(host ModalHost, title string, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if service.IsSessionExpired(err) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	host.Open(ModalContent{Kind: ModalError, Title: title, Message: errorText(err)})
	return nil
}

func confirm(host ModalHost, title, message string, onConfirm tea.Cmd) {
	host.Open(ModalContent{
		Kind:    ModalConfirm,
		Title:   title,
		Message: message,
		Payload: ConfirmPayload{OnConfirm: onConfirm},
	})
}
