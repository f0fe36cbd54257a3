package tui

import "github.com/MKhiriev/go-vault-adder/models"

type errorOverlayModel struct {
	title   string
	message string
}

func newErrorOverlay(n models.Notification) errorOverlayModel {
	title := n.Title
	if title == "" {
		title = "Ошибка"
	}
	return errorOverlayModel{title: title, message: humanizeServiceUnavailable(n.Message)}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.title) + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc закрыть")
	return overlayBoxStyle.Render(content)
}
