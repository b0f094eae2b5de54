// Package keymap turns key presses into controller actions.
package keymap

import "fmt"

// Action is one user operation on the controller.
type Action int

const (
	None Action = iota
	ToggleTimer
	PauseTimer
	LaunchTimer
	AbortTimer
	SetTimer
	SelectNextField
	SelectPrevField
	PushInputChar
	PopInputChar
	ClearInputField
	TabToggle
	AddTask
	DeleteTask
	NextTask
	PrevTask
	StartEditing
	StopEditing
	OpenHelp
	Quit
)

var actionNames = map[Action]string{
	ToggleTimer:     "toggle_timer",
	PauseTimer:      "pause_timer",
	LaunchTimer:     "launch_timer",
	AbortTimer:      "abort_timer",
	SetTimer:        "set_timer",
	SelectNextField: "select_next_field",
	SelectPrevField: "select_prev_field",
	PushInputChar:   "push_input_char",
	PopInputChar:    "pop_input_char",
	ClearInputField: "clear_input_field",
	TabToggle:       "tab_toggle",
	AddTask:         "add_task",
	DeleteTask:      "delete_task",
	NextTask:        "next_task",
	PrevTask:        "prev_task",
	StartEditing:    "start_editing",
	StopEditing:     "stop_editing",
	OpenHelp:        "open_help",
	Quit:            "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction looks an action up by its config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// Command is a resolved key press. Text carries the typed characters for PushInputChar.
type Command struct {
	Action Action
	Text   string
}

// Target is what commands are applied to. *pomodoro.Controller implements it.
type Target interface {
	ToggleTimer()
	PauseTimer()
	LaunchTimer()
	AbortTimer()
	SetTimer()
	SelectNextField()
	SelectPrevField()
	PushInputChar(r rune)
	PopInputChar()
	ClearInputField()
	TabToggle()
	AddTask()
	DeleteTask()
	NextTask()
	PrevTask()
	StartEditing()
	StopEditing()
	OpenHelp()
	Quit()
}

// Apply runs cmd against t.
func Apply(cmd Command, t Target) {
	switch cmd.Action {
	case ToggleTimer:
		t.ToggleTimer()
	case PauseTimer:
		t.PauseTimer()
	case LaunchTimer:
		t.LaunchTimer()
	case AbortTimer:
		t.AbortTimer()
	case SetTimer:
		t.SetTimer()
	case SelectNextField:
		t.SelectNextField()
	case SelectPrevField:
		t.SelectPrevField()
	case PushInputChar:
		for _, r := range cmd.Text {
			t.PushInputChar(r)
		}
	case PopInputChar:
		t.PopInputChar()
	case ClearInputField:
		t.ClearInputField()
	case TabToggle:
		t.TabToggle()
	case AddTask:
		t.AddTask()
	case DeleteTask:
		t.DeleteTask()
	case NextTask:
		t.NextTask()
	case PrevTask:
		t.PrevTask()
	case StartEditing:
		t.StartEditing()
	case StopEditing:
		t.StopEditing()
	case OpenHelp:
		t.OpenHelp()
	case Quit:
		t.Quit()
	}
}
