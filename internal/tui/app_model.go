package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-adder/internal/service"
	"github.com/MKhiriev/go-vault-adder/models"
)

const statusTTL = 2 * time.Second

type appModel struct {
	ctx       context.Context
	flow      service.VaultFlowService
	prompt    service.VaultPromptService
	buildInfo models.AppBuildInfo

	// writeClipboard is clipboard.WriteAll outside of tests.
	writeClipboard func(string) error

	password passwordFormModel
	spinner  spinner.Model

	busy          bool
	promptVisible bool
	choicePrompt  choicePromptModel
	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool

	lastSourceID models.VaultSourceID
	status       string
	quitByUser   bool
}

func newAppModel(ctx context.Context, flow service.VaultFlowService, prompt service.VaultPromptService, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:            ctx,
		flow:           flow,
		prompt:         prompt,
		buildInfo:      buildInfo,
		writeClipboard: clipboard.WriteAll,
		password:       newPasswordFormModel(),
		spinner:        s,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case busyChangedMsg:
		m.busy = msg.busy
		if m.busy {
			return m, m.spinner.Tick
		}
		return m, nil
	case promptVisibleMsg:
		m.promptVisible = msg.visible
		return m, nil
	case notificationMsg:
		if msg.notification.Level == models.NotificationError {
			m.showError = true
			m.errorOverlay = newErrorOverlay(msg.notification)
			return m, nil
		}
		m.status = msg.notification.Title
		return m, cmdClearStatus()
	case vaultAddedMsg:
		m.lastSourceID = msg.sourceID
		return m, nil
	case additionDoneMsg:
		return m.handleAdditionDone(msg)
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.update(msg)
	return m, cmd
}

func (m appModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay = errorOverlayModel{}
		}
		return m, nil
	}

	if m.promptVisible {
		return m.updatePrompt(msg)
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopySourceID()
	}

	if m.busy || m.password.submitting {
		return m, nil
	}

	if key.Matches(msg, keys.enter) {
		password := m.password.value()
		if password == "" {
			m.password.errMsg = "Мастер-пароль обязателен"
			return m, nil
		}

		m.password.errMsg = ""
		m.password.submitting = true
		return m, m.cmdAddVault(password)
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.update(msg)
	return m, cmd
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice models.NewVaultChoice
	switch {
	case key.Matches(msg, keys.newVault):
		choice = models.ChoiceNew
	case key.Matches(msg, keys.existing):
		choice = models.ChoiceExisting
	case key.Matches(msg, keys.esc):
		choice = models.ChoiceCancel
	default:
		return m, nil
	}

	if m.prompt.SubmitChoice(choice) {
		m.promptVisible = false
	}
	return m, nil
}

func (m appModel) handleAdditionDone(msg additionDoneMsg) (tea.Model, tea.Cmd) {
	m.password.submitting = false

	switch {
	case errors.Is(msg.err, context.Canceled):
		return m, nil
	case msg.err != nil:
		// пользователь уже видит ошибку через уведомление
		return m, nil
	case msg.sourceID == "":
		m.status = "Добавление отменено"
		return m, cmdClearStatus()
	}

	m.password.reset()
	m.lastSourceID = msg.sourceID
	m.status = "Хранилище добавлено"
	return m, cmdClearStatus()
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.password.View())
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Добавление хранилища...\n")
	}
	if m.lastSourceID != "" {
		b.WriteString("\nПоследнее хранилище: ")
		b.WriteString(fitText(m.lastSourceID.String(), 40))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	body := renderPage("ДОБАВЛЕНИЕ ХРАНИЛИЩА", b.String(), "enter: добавить │ ctrl+y: скопировать ID │ f1: о программе")

	if m.promptVisible {
		body += "\n\n" + m.choicePrompt.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{title: "Ошибка", message: message}
}

// cmdAddVault runs the whole flow off the UI goroutine. It blocks on the
// choice prompt until updatePrompt submits a choice.
func (m appModel) cmdAddVault(password string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		sourceID, err := flow.AddFileVault(ctx, password)
		return additionDoneMsg{sourceID: sourceID, err: err}
	}
}

func (m appModel) cmdCopySourceID() tea.Cmd {
	text := m.lastSourceID.String()
	write := m.writeClipboard

	return func() tea.Msg {
		if text == "" {
			return copiedMsg{err: errors.New("нет добавленного хранилища")}
		}
		if err := write(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
