package ui

import "github.com/justinpbarnett/relwatch/internal/ui/panels"

// Aliases of the panels message types.

// UpdateCheckedMsg carries the result of an update check.
type UpdateCheckedMsg = panels.UpdateCheckedMsg

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// FlashMsg asks the status bar to show a transient message.
type FlashMsg = panels.FlashMsg
