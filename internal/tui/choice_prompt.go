package tui

// choicePromptModel is shown while the prompt-visible flag is set.
type choicePromptModel struct{}

func (m choicePromptModel) View() string {
	content := titleStyle.Render("Какое хранилище добавить?") + "\n\n"
	content += "n новое    e существующее    esc отмена"
	return promptBoxStyle.Render(content)
}
