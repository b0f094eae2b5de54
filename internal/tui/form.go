package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/fentz26/pomotui/internal/pomodoro"
)

// fieldInput draws the focused form field with a cursor. The controller
// owns the text; the input only mirrors it for rendering.
type fieldInput struct {
	input textinput.Model
}

func newFieldInput() fieldInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()
	return fieldInput{input: ti}
}

// render draws rows, one per line. When focused is false no row gets a cursor.
func (f *fieldInput) render(rows []pomodoro.FieldView, focused bool) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, f.renderRow(row, focused && row.Selected))
	}
	return strings.Join(lines, "\n")
}

func (f *fieldInput) renderRow(row pomodoro.FieldView, cursor bool) string {
	label := row.Display()
	if row.Selected {
		label = selectedRowStyle.Render(label)
	}

	value := row.Value
	if cursor {
		f.input.SetValue(row.Value)
		f.input.CursorEnd()
		value = f.input.View()
	}

	line := label + value
	if row.Unit != "" {
		line += " " + unitStyle.Render(row.Unit)
	}
	return line
}
