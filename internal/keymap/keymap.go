package keymap

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fentz26/pomotui/internal/pomodoro"
)

// scope limits a binding to one tab.
type scope int

const (
	scopeAll scope = iota
	scopeSettings
	scopeTasks
)

func (s scope) allows(tab pomodoro.Tab) bool {
	switch s {
	case scopeSettings:
		return tab == pomodoro.TabSettings
	case scopeTasks:
		return tab == pomodoro.TabTasks
	default:
		return true
	}
}

type entry struct {
	action  Action
	binding *key.Binding
	scope   scope
}

// Context is the controller state that changes how keys resolve.
type Context struct {
	Tab     pomodoro.Tab
	Editing bool
}

// ContextOf reads the resolving context from c.
func ContextOf(c *pomodoro.Controller) Context {
	return Context{Tab: c.Tab(), Editing: c.Editing()}
}

// KeyMap is the key binding table. Build it once with New and pass it to
// whoever dispatches key presses.
type KeyMap struct {
	ForceQuit key.Binding

	Toggle   key.Binding
	Pause    key.Binding
	Launch   key.Binding
	Abort    key.Binding
	SetTimer key.Binding

	NextField key.Binding
	PrevField key.Binding
	PopChar   key.Binding
	Clear     key.Binding
	TabToggle key.Binding

	AddTask      key.Binding
	DeleteTask   key.Binding
	NextTask     key.Binding
	PrevTask     key.Binding
	StartEditing key.Binding
	StopEditing  key.Binding

	Help key.Binding
	Quit key.Binding

	entries []entry
}

// New builds the default bindings and applies overrides, a map from action
// name (see Action.String) to the keys that should trigger it.
func New(overrides map[string][]string) (*KeyMap, error) {
	k := &KeyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Launch:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "start")),
		Abort:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "skip phase")),
		SetTimer: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save settings")),

		NextField: key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/j/↓", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/k/↑", "prev field")),
		PopChar:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete char")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear field")),
		TabToggle: key.NewBinding(key.WithKeys("h", "l", "left", "right"), key.WithHelp("h/l", "switch tab")),

		AddTask:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		DeleteTask:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		NextTask:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next task")),
		PrevTask:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "prev task")),
		StartEditing: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit task")),
		StopEditing:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("Q"), key.WithHelp("Q", "quit")),
	}
	k.index()

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("keys.%s: %w", name, err)
		}
		b := k.binding(action)
		if b == nil {
			return nil, fmt.Errorf("keys.%s: action has no binding", name)
		}
		keys, help := parseBindingKeys(overrides[name])
		if len(keys) == 0 {
			return nil, fmt.Errorf("keys.%s: no keys given", name)
		}
		b.SetKeys(keys...)
		b.SetHelp(help, b.Help().Desc)
	}
	return k, nil
}

// index lists the bindings in resolve order. Edit-mode bindings are
// handled separately in Resolve.
func (k *KeyMap) index() {
	k.entries = []entry{
		{Quit, &k.Quit, scopeAll},
		{OpenHelp, &k.Help, scopeAll},
		{ToggleTimer, &k.Toggle, scopeAll},
		{PauseTimer, &k.Pause, scopeAll},
		{LaunchTimer, &k.Launch, scopeAll},
		{AbortTimer, &k.Abort, scopeAll},
		{SetTimer, &k.SetTimer, scopeSettings},
		{AddTask, &k.AddTask, scopeTasks},
		{DeleteTask, &k.DeleteTask, scopeTasks},
		{StartEditing, &k.StartEditing, scopeTasks},
		{NextTask, &k.NextTask, scopeAll},
		{PrevTask, &k.PrevTask, scopeAll},
		{SelectNextField, &k.NextField, scopeAll},
		{SelectPrevField, &k.PrevField, scopeAll},
		{PopInputChar, &k.PopChar, scopeAll},
		{ClearInputField, &k.Clear, scopeAll},
		{TabToggle, &k.TabToggle, scopeAll},
	}
}

func (k *KeyMap) binding(a Action) *key.Binding {
	if a == StopEditing {
		return &k.StopEditing
	}
	for _, e := range k.entries {
		if e.action == a {
			return e.binding
		}
	}
	return nil
}

// Resolve maps a key press to a command.
func (k *KeyMap) Resolve(msg tea.KeyMsg, ctx Context) (Command, bool) {
	if key.Matches(msg, k.ForceQuit) {
		return Command{Action: Quit}, true
	}

	if ctx.Editing {
		switch {
		case key.Matches(msg, k.StopEditing):
			return Command{Action: StopEditing}, true
		case key.Matches(msg, k.AddTask):
			return Command{Action: AddTask}, true
		case key.Matches(msg, k.PopChar):
			return Command{Action: PopInputChar}, true
		case msg.Type == tea.KeyTab || msg.Type == tea.KeyDown:
			return Command{Action: SelectNextField}, true
		case msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp:
			return Command{Action: SelectPrevField}, true
		}
		if text := typed(msg); text != "" {
			return Command{Action: PushInputChar, Text: text}, true
		}
		return Command{}, false
	}

	if ctx.Tab == pomodoro.TabSettings && msg.Type == tea.KeyRunes && isDigits(msg.Runes) {
		return Command{Action: PushInputChar, Text: string(msg.Runes)}, true
	}

	for _, e := range k.entries {
		if e.scope.allows(ctx.Tab) && key.Matches(msg, *e.binding) {
			return Command{Action: e.action}, true
		}
	}
	return Command{}, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Abort, k.TabToggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Pause, k.Launch, k.Abort, k.SetTimer},
		{k.NextField, k.PrevField, k.PopChar, k.Clear, k.TabToggle},
		{k.StartEditing, k.StopEditing, k.AddTask, k.DeleteTask, k.NextTask, k.PrevTask},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

func typed(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		return string(msg.Runes)
	}
	return ""
}

func isDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseBindingKeys turns configured key names into matcher strings and a
// help label. "space" matches the space bar and upper-case letters also
// match their shift+ form.
func parseBindingKeys(raw []string) ([]string, string) {
	var keys, labels []string
	for _, k := range raw {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		labels = append(labels, k)
		switch {
		case strings.EqualFold(k, "space"):
			keys = append(keys, " ")
		case len([]rune(k)) == 1:
			keys = append(keys, k)
			if r := []rune(k)[0]; unicode.IsUpper(r) {
				keys = append(keys, "shift+"+strings.ToLower(k))
			}
		default:
			keys = append(keys, strings.ToLower(k))
		}
	}
	return keys, strings.Join(labels, "/")
}
