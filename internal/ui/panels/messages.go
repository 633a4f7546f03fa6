package panels

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared. Seq names the
// flash it was scheduled for; a newer flash ignores it.
type ClearFlashMsg struct {
	Seq int
}

// FlashMsg asks the status bar to show a transient message.
type FlashMsg struct {
	Text  string
	Level FlashLevel
}
