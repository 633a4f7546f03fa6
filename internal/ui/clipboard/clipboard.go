package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// osc52Out receives the OSC 52 fallback sequence.
var osc52Out io.Writer = os.Stderr

// writeNative is the system clipboard (wl-copy, xclip, pbcopy, ...).
var writeNative = clipboard.WriteAll

// Write copies text to the system clipboard, falling back to the OSC 52
// terminal sequence when no native clipboard is reachable (SSH, tmux).
func Write(text string) error {
	if err := writeNative(text); err == nil {
		return nil
	}
	return writeOSC52(osc52Out, text)
}

func writeOSC52(w io.Writer, text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(w, "\x1b]52;c;%s\x07", encoded)
	return err
}
