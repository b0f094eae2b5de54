package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/fentz26/pomotui/internal/keymap"
)

var helpSections = []string{"Timer", "Fields", "Tasks", "General"}

// helpPanel lists every binding in a scrollable viewport.
type helpPanel struct {
	viewport viewport.Model
}

func newHelpPanel(keys *keymap.KeyMap, width, height int) helpPanel {
	vp := viewport.New(width, height)
	vp.SetContent(helpContent(keys))
	return helpPanel{viewport: vp}
}

func (h *helpPanel) setSize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = height
}

func (h *helpPanel) view() string {
	return focusedPanelStyle.Render(h.viewport.View())
}

func helpContent(keys *keymap.KeyMap) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keys") + "\n")
	for i, group := range keys.FullHelp() {
		if i < len(helpSections) {
			b.WriteString("\n" + selectedRowStyle.Render(helpSections[i]) + "\n")
		}
		for _, binding := range group {
			b.WriteString(helpLine(binding) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render(fmt.Sprintf("Press %s or esc to close", keys.Help.Help().Key)))
	return b.String()
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("  %-16s %s", h.Key, unitStyle.Render(h.Desc))
}
