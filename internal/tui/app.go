// Package tui provides the interactive terminal UI for pomotui.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/pomotui/internal/keymap"
	"github.com/fentz26/pomotui/internal/pomodoro"
)

const (
	defaultFPS    = 30
	defaultWidth  = 80
	defaultHeight = 24
	progressWidth = 40
)

// Option configures an App.
type Option func(*App)

// WithFPS sets how many times per second the clock is refreshed.
func WithFPS(fps int) Option {
	return func(a *App) {
		if fps > 0 {
			a.fps = fps
		}
	}
}

// App is the main TUI application model.
type App struct {
	ctrl *pomodoro.Controller
	keys *keymap.KeyMap
	fps  int

	help      help.Model
	helpPanel helpPanel
	progress  progress.Model
	tasks     taskListView
	field     fieldInput

	width  int
	height int
}

// New creates the TUI around ctrl. keys is built once at startup.
func New(ctrl *pomodoro.Controller, keys *keymap.KeyMap, opts ...Option) *App {
	a := &App{
		ctrl: ctrl,
		keys: keys,
		fps:  defaultFPS,
		help: help.New(),
		progress: progress.New(
			progress.WithSolidFill(string(workColor)),
			progress.WithWidth(progressWidth),
		),
		tasks:  newTaskListView(defaultWidth/2, defaultHeight-12),
		field:  newFieldInput(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	a.helpPanel = newHelpPanel(keys, defaultWidth-4, defaultHeight-4)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.tickCmd())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.ctrl.HelpOpen() {
			return a, a.updateHelp(msg)
		}
		if cmd, ok := a.keys.Resolve(msg, keymap.ContextOf(a.ctrl)); ok {
			keymap.Apply(cmd, a.ctrl)
		}
		if a.ctrl.ShouldQuit() {
			return a, tea.Quit
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case tickMsg:
		a.ctrl.Tick()
		return a, a.tickCmd()
	}

	var cmd tea.Cmd
	a.field.input, cmd = a.field.input.Update(msg)
	return a, cmd
}

// updateHelp handles keys while the help panel covers the screen. Only
// the help toggle, quit and esc act; everything else scrolls.
func (a *App) updateHelp(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := a.keys.Resolve(msg, keymap.ContextOf(a.ctrl)); ok {
		switch cmd.Action {
		case keymap.OpenHelp, keymap.Quit:
			keymap.Apply(cmd, a.ctrl)
			if a.ctrl.ShouldQuit() {
				return tea.Quit
			}
			return nil
		}
	}
	if msg.Type == tea.KeyEsc {
		a.ctrl.OpenHelp()
		return nil
	}

	var cmd tea.Cmd
	a.helpPanel.viewport, cmd = a.helpPanel.viewport.Update(msg)
	return cmd
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
	a.progress.Width = min(max(width-4, 10), progressWidth)
	a.tasks.setSize(width/2, max(height-12, 4))
	a.helpPanel.setSize(max(width-4, 10), max(height-4, 4))
}

// View implements tea.Model
func (a *App) View() string {
	if a.ctrl.HelpOpen() {
		return a.helpPanel.view()
	}

	a.tasks.sync(a.ctrl.Tasks(), a.ctrl.SelectedTask())

	var b strings.Builder
	b.WriteString(a.renderHeader() + "\n\n")
	b.WriteString(a.renderTimer() + "\n\n")

	switch a.ctrl.Tab() {
	case pomodoro.TabTasks:
		b.WriteString(a.renderTasksTab())
	default:
		b.WriteString(a.renderSettingsTab())
	}
	b.WriteString("\n\n")

	if status := a.ctrl.Status(); status != "" {
		style := statusStyle
		if strings.HasPrefix(status, "Error") || strings.HasPrefix(status, "Invalid") {
			style = statusErrorStyle
		}
		b.WriteString(style.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(a.help.View(a.keys))

	return b.String()
}

func (a *App) renderHeader() string {
	header := titleStyle.Render("🍅 POMOTUI")
	for _, tab := range []pomodoro.Tab{pomodoro.TabSettings, pomodoro.TabTasks} {
		style := inactiveTabStyle
		if tab == a.ctrl.Tab() {
			style = activeTabStyle
		}
		label := tab.String()
		if n := a.ctrl.TaskCount(); tab == pomodoro.TabTasks && n > 0 {
			label = fmt.Sprintf("%s (%d)", label, n)
		}
		header += " " + style.Render(label)
	}
	return header
}

func (a *App) renderTimer() string {
	state := a.ctrl.State()
	style := phaseStyle(state.Phase)

	line := style.Render(state.String())
	switch {
	case a.ctrl.IsPaused():
		line += "  " + pausedStyle.Render("PAUSED")
	case !a.ctrl.IsRunning():
		line += "  " + helpStyle.Render(fmt.Sprintf("press %s to start", a.keys.Toggle.Help().Key))
	}

	clock := style.Render(renderClock(formatClock(a.ctrl.TimeLeft())))
	a.progress.FullColor = string(phaseColor(state.Phase))
	bar := a.progress.ViewAs(a.ctrl.Progress())

	current := ""
	if title := a.tasks.selectedTitle(); title != "" && state.Phase == pomodoro.PhasePomodoro {
		current = unitStyle.Render("Working on: ") + title
	}
	return lipgloss.JoinVertical(lipgloss.Left, line, "", clock, "", bar, current)
}

func (a *App) renderSettingsTab() string {
	form := a.field.render(a.ctrl.SettingsRows(), true)
	hint := helpStyle.Render(fmt.Sprintf("%s to save", a.keys.SetTimer.Help().Key))
	return focusedPanelStyle.Render(form + "\n\n" + hint)
}

func (a *App) renderTasksTab() string {
	empty := fmt.Sprintf("No tasks yet. Press %s to write one, %s to add it.",
		a.keys.StartEditing.Help().Key, a.keys.AddTask.Help().Key)
	list := panelStyle.Render(a.tasks.view(empty))

	formStyle := panelStyle
	hint := fmt.Sprintf("%s to edit", a.keys.StartEditing.Help().Key)
	if a.ctrl.Editing() {
		formStyle = focusedPanelStyle
		hint = fmt.Sprintf("%s to add, %s to stop editing",
			a.keys.AddTask.Help().Key, a.keys.StopEditing.Help().Key)
	}
	form := formStyle.Render(a.field.render(a.ctrl.TaskRows(), a.ctrl.Editing()) +
		"\n\n" + helpStyle.Render(hint))

	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", form)
}

type tickMsg time.Time

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
