package pomodoro

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tab selects which form the input operations edit.
type Tab int

const (
	TabSettings Tab = iota
	TabTasks
)

func (t Tab) String() string {
	if t == TabTasks {
		return "Tasks"
	}
	return "Settings"
}

// Toggle returns the other tab.
func (t Tab) Toggle() Tab {
	if t == TabSettings {
		return TabTasks
	}
	return TabSettings
}

// FieldView is one form row as the renderer sees it.
type FieldView struct {
	Label    string
	Value    string
	Unit     string
	Selected bool
}

// SelectedMarker prefixes the label of the selected row.
const SelectedMarker = ">> "

// Display returns the label with the selection marker applied.
func (f FieldView) Display() string {
	if f.Selected {
		return SelectedMarker + f.Label
	}
	return f.Label
}

// SettingsField names a row of the settings form.
type SettingsField int

const (
	FieldWork SettingsField = iota
	FieldShortBreak
	FieldLongBreak
	FieldThreshold
	settingsFieldCount
)

const maxNumberLen = 4

// SettingsForm is the editable text mirror of the committed settings.
type SettingsForm struct {
	values   [settingsFieldCount]string
	selected SettingsField
}

// NewSettingsForm fills the form from s.
func NewSettingsForm(s Settings) SettingsForm {
	var f SettingsForm
	f.Reset(s)
	return f
}

// Reset overwrites every field with s and keeps the selection.
func (f *SettingsForm) Reset(s Settings) {
	w, sb, lb, n := s.Minutes()
	f.values = [settingsFieldCount]string{w, sb, lb, n}
}

// Values returns the raw text of the four fields.
func (f *SettingsForm) Values() (work, short, long, threshold string) {
	return f.values[FieldWork], f.values[FieldShortBreak], f.values[FieldLongBreak], f.values[FieldThreshold]
}

// Value returns the text of one field.
func (f *SettingsForm) Value(field SettingsField) string {
	if field < 0 || field >= settingsFieldCount {
		return ""
	}
	return f.values[field]
}

// Selected returns the focused field.
func (f *SettingsForm) Selected() SettingsField {
	return f.selected
}

func (f *SettingsForm) Next() {
	f.selected = (f.selected + 1) % settingsFieldCount
}

func (f *SettingsForm) Prev() {
	f.selected = (f.selected + settingsFieldCount - 1) % settingsFieldCount
}

// Push appends a digit to the focused field; anything else is ignored.
func (f *SettingsForm) Push(r rune) {
	if r < '0' || r > '9' || len(f.values[f.selected]) >= maxNumberLen {
		return
	}
	f.values[f.selected] += string(r)
}

func (f *SettingsForm) Pop() {
	f.values[f.selected] = dropLastRune(f.values[f.selected])
}

func (f *SettingsForm) Clear() {
	f.values[f.selected] = ""
}

// Rows returns the form for display.
func (f *SettingsForm) Rows() []FieldView {
	labels := [settingsFieldCount]string{"Timer Length: ", "Short Break Length: ", "Long Break Length: ", "Pomodoros per Long Break: "}
	units := [settingsFieldCount]string{"min", "min", "min", ""}
	rows := make([]FieldView, 0, settingsFieldCount)
	for i := SettingsField(0); i < settingsFieldCount; i++ {
		rows = append(rows, FieldView{
			Label:    labels[i],
			Value:    f.values[i],
			Unit:     units[i],
			Selected: i == f.selected,
		})
	}
	return rows
}

// TaskField names a row of the task form.
type TaskField int

const (
	FieldTitle TaskField = iota
	FieldNotes
	FieldEstimate
	taskFieldCount
)

const (
	maxTitleLen = 64
	maxNotesLen = 256
)

// TaskForm holds the text of a task being written.
type TaskForm struct {
	values   [taskFieldCount]string
	selected TaskField
}

func (f *TaskForm) Selected() TaskField {
	return f.selected
}

func (f *TaskForm) Value(field TaskField) string {
	if field < 0 || field >= taskFieldCount {
		return ""
	}
	return f.values[field]
}

func (f *TaskForm) Next() {
	f.selected = (f.selected + 1) % taskFieldCount
}

func (f *TaskForm) Prev() {
	f.selected = (f.selected + taskFieldCount - 1) % taskFieldCount
}

// Push appends r to the focused field. The estimate only takes digits.
func (f *TaskForm) Push(r rune) {
	cur := f.values[f.selected]
	switch f.selected {
	case FieldEstimate:
		if r < '0' || r > '9' || len(cur) >= maxNumberLen {
			return
		}
	case FieldTitle:
		if !unicode.IsPrint(r) || utf8.RuneCountInString(cur) >= maxTitleLen {
			return
		}
	default:
		if !unicode.IsPrint(r) || utf8.RuneCountInString(cur) >= maxNotesLen {
			return
		}
	}
	f.values[f.selected] = cur + string(r)
}

func (f *TaskForm) Pop() {
	f.values[f.selected] = dropLastRune(f.values[f.selected])
}

func (f *TaskForm) Clear() {
	f.values[f.selected] = ""
}

// Reset empties every field and focuses the title.
func (f *TaskForm) Reset() {
	*f = TaskForm{}
}

// Title returns the trimmed title.
func (f *TaskForm) Title() string {
	return strings.TrimSpace(f.values[FieldTitle])
}

// Notes returns the trimmed notes.
func (f *TaskForm) Notes() string {
	return strings.TrimSpace(f.values[FieldNotes])
}

// Estimate parses the estimate field; blank, zero or invalid text gives 1.
func (f *TaskForm) Estimate() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.values[FieldEstimate]))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (f *TaskForm) Rows() []FieldView {
	labels := [taskFieldCount]string{"Title: ", "Notes: ", "Estimate: "}
	units := [taskFieldCount]string{"", "", "pomodoros"}
	rows := make([]FieldView, 0, taskFieldCount)
	for i := TaskField(0); i < taskFieldCount; i++ {
		rows = append(rows, FieldView{
			Label:    labels[i],
			Value:    f.values[i],
			Unit:     units[i],
			Selected: i == f.selected,
		})
	}
	return rows
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
