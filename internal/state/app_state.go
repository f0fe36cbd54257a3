package state

const (
	FlagBusy          = "busy"
	FlagPromptVisible = "prompt-visible"
)

// AppState groups the flags observed by the UI.
type AppState struct {
	// Busy is set while a vault addition is in flight.
	Busy *Flag
	// PromptVisible is set while the new/existing vault prompt awaits a choice.
	PromptVisible *Flag
}

func NewAppState() *AppState {
	return &AppState{
		Busy:          NewFlag(FlagBusy),
		PromptVisible: NewFlag(FlagPromptVisible),
	}
}
