// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordFormModel renders the masked master password field.
type passwordFormModel struct {
	input      textinput.Model
	submitting bool
	errMsg     string
}

func newPasswordFormModel() passwordFormModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "мастер-пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return passwordFormModel{input: passwordInput}
}

func (m passwordFormModel) value() string {
	return m.input.Value()
}

func (m *passwordFormModel) reset() {
	m.input.SetValue("")
	m.submitting = false
	m.errMsg = ""
}

func (m passwordFormModel) update(msg tea.Msg) (passwordFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordFormModel) View() string {
	var b strings.Builder
	b.WriteString("Мастер-пароль │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Добавить...]\n")
	} else {
		b.WriteString("\n[Добавить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
