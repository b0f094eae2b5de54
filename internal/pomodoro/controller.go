package pomodoro

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fentz26/pomotui/internal/models"
)

// TaskList is the ordered task collection the controller edits.
type TaskList interface {
	Add(title, notes string, estimate int) (models.Task, error)
	Delete() (models.Task, bool, error)
	Next()
	Prev()
	Items() []models.Task
	Len() int
	Selected() int
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock used for new timers.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for phase and settings events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDefaults sets both the starting settings and the values an invalid
// settings commit falls back to.
func WithDefaults(s Settings) Option {
	return func(c *Controller) {
		c.defaults = s
	}
}

// Controller drives the pomodoro cycle. It owns the running timer, the
// committed settings and the forms, and is only touched from the UI loop.
type Controller struct {
	state    CycleState
	timer    *Timer
	settings Settings
	defaults Settings

	settingsForm SettingsForm
	taskForm     TaskForm
	tasks        TaskList

	tab      Tab
	editing  bool
	helpOpen bool
	quit     bool
	status   string

	now    func() time.Time
	logger *log.Logger
}

// NewController returns a controller at the first pomodoro of a lap.
func NewController(tasks TaskList, opts ...Option) *Controller {
	c := &Controller{
		tasks:    tasks,
		defaults: DefaultSettings(),
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.settings = c.defaults
	c.settingsForm = NewSettingsForm(c.defaults)
	c.state = Pomodoro(c.settings.Threshold)
	return c
}

// --- Timer operations ---

// LaunchTimer starts a timer sized for the current phase unless one exists.
func (c *Controller) LaunchTimer() {
	if c.timer != nil {
		return
	}
	d := c.settings.Duration(c.state.Phase)
	c.timer = NewTimerWithClock(d, c.now)
	c.status = ""
	c.logger.Info("phase started", "phase", c.state.Phase, "remaining", c.state.Remaining, "length", d)
}

// ToggleTimer pauses or resumes the running timer, or launches one.
func (c *Controller) ToggleTimer() {
	if c.timer == nil {
		c.LaunchTimer()
		return
	}
	if c.timer.IsPaused() {
		c.timer.Resume()
		c.logger.Debug("timer resumed", "phase", c.state.Phase, "paused_total", c.timer.Paused())
		return
	}
	c.timer.Pause()
	c.logger.Debug("timer paused", "phase", c.state.Phase)
}

// PauseTimer pauses the running timer, if any.
func (c *Controller) PauseTimer() {
	if c.timer == nil {
		return
	}
	c.timer.Pause()
}

// AbortTimer skips the current phase. Without a timer nothing happens.
func (c *Controller) AbortTimer() {
	if c.timer == nil {
		return
	}
	from := c.state
	c.timer = nil
	c.state = Advance(c.state, c.settings.Threshold)
	c.status = fmt.Sprintf("Skipped %s", from.Phase)
	c.logger.Info("phase skipped", "from", from, "to", c.state)
}

// Tick refreshes the timer and moves to the next phase once it finishes.
// The next phase waits for LaunchTimer.
func (c *Controller) Tick() {
	if c.timer == nil {
		return
	}
	c.timer.Update()
	if !c.timer.IsFinished() {
		return
	}
	from := c.state
	c.timer = nil
	c.state = Advance(c.state, c.settings.Threshold)
	c.status = fmt.Sprintf("%s finished, next up: %s", from.Phase, c.state.Phase)
	c.logger.Info("phase finished", "from", from, "to", c.state)
}

// TimeLeft returns the live countdown, or the full length of the current
// phase when no timer is running.
func (c *Controller) TimeLeft() time.Duration {
	if c.timer != nil {
		return c.timer.TimeLeft()
	}
	return c.settings.Duration(c.state.Phase)
}

// Progress returns the completed fraction of the running phase in [0, 1].
func (c *Controller) Progress() float64 {
	if c.timer == nil || c.timer.Total() <= 0 {
		return 0
	}
	p := float64(c.timer.Elapsed()) / float64(c.timer.Total())
	if p > 1 {
		return 1
	}
	return p
}

// SetTimer commits the settings form. Any invalid field resets the whole
// form and the committed settings to the defaults. The running timer keeps
// its length; the in-flight count keeps its value.
func (c *Controller) SetTimer() {
	work, short, long, threshold := c.settingsForm.Values()
	s, err := ParseSettings(work, short, long, threshold)
	if err != nil {
		c.settings = c.defaults
		c.settingsForm.Reset(c.defaults)
		c.status = fmt.Sprintf("Invalid settings (%v), restored defaults", err)
		c.logger.Warn("settings rejected, restored defaults", "err", err)
		return
	}
	c.settings = s
	c.settingsForm.Reset(s)
	c.status = "Settings saved"
	c.logger.Info("settings committed", "work", s.Work, "short_break", s.ShortBreak, "long_break", s.LongBreak, "threshold", s.Threshold)
}

// --- Form operations ---

// TabToggle switches between the settings and task forms and leaves edit mode.
func (c *Controller) TabToggle() {
	c.tab = c.tab.Toggle()
	c.editing = false
}

func (c *Controller) SelectNextField() {
	if c.tab == TabTasks {
		c.taskForm.Next()
		return
	}
	c.settingsForm.Next()
}

func (c *Controller) SelectPrevField() {
	if c.tab == TabTasks {
		c.taskForm.Prev()
		return
	}
	c.settingsForm.Prev()
}

// PushInputChar appends r to the focused field of the active form.
func (c *Controller) PushInputChar(r rune) {
	if c.tab == TabTasks {
		c.taskForm.Push(r)
		return
	}
	c.settingsForm.Push(r)
}

func (c *Controller) PopInputChar() {
	if c.tab == TabTasks {
		c.taskForm.Pop()
		return
	}
	c.settingsForm.Pop()
}

func (c *Controller) ClearInputField() {
	if c.tab == TabTasks {
		c.taskForm.Clear()
		return
	}
	c.settingsForm.Clear()
}

// StartEditing enters free-text mode on the task form.
func (c *Controller) StartEditing() {
	if c.tab != TabTasks {
		return
	}
	c.editing = true
}

func (c *Controller) StopEditing() {
	c.editing = false
}

// --- Task operations ---

// AddTask creates a task from the task form and clears the form.
func (c *Controller) AddTask() {
	if c.tasks == nil {
		return
	}
	title := c.taskForm.Title()
	if title == "" {
		c.status = "A task needs a title"
		return
	}
	task, err := c.tasks.Add(title, c.taskForm.Notes(), c.taskForm.Estimate())
	if err != nil {
		c.status = "Error: " + err.Error()
		c.logger.Error("add task failed", "title", title, "err", err)
		return
	}
	c.taskForm.Reset()
	c.editing = false
	c.status = fmt.Sprintf("Added %q", task.Title)
	c.logger.Debug("task added", "id", task.ID, "title", task.Title, "estimate", task.Estimate)
}

// DeleteTask removes the selected task. No-op on an empty list.
func (c *Controller) DeleteTask() {
	if c.tasks == nil {
		return
	}
	task, ok, err := c.tasks.Delete()
	if err != nil {
		c.status = "Error: " + err.Error()
		c.logger.Error("delete task failed", "err", err)
		return
	}
	if !ok {
		return
	}
	c.status = fmt.Sprintf("Deleted %q", task.Title)
	c.logger.Debug("task deleted", "id", task.ID, "title", task.Title)
}

func (c *Controller) NextTask() {
	if c.tasks != nil {
		c.tasks.Next()
	}
}

func (c *Controller) PrevTask() {
	if c.tasks != nil {
		c.tasks.Prev()
	}
}

// --- Application flags ---

func (c *Controller) Quit() {
	c.quit = true
}

// OpenHelp toggles the help panel.
func (c *Controller) OpenHelp() {
	c.helpOpen = !c.helpOpen
}

// --- Accessors ---

func (c *Controller) State() CycleState {
	return c.state
}

func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) Tab() Tab {
	return c.tab
}

func (c *Controller) Editing() bool {
	return c.editing
}

func (c *Controller) HelpOpen() bool {
	return c.helpOpen
}

func (c *Controller) ShouldQuit() bool {
	return c.quit
}

func (c *Controller) Status() string {
	return c.status
}

func (c *Controller) SettingsRows() []FieldView {
	return c.settingsForm.Rows()
}

func (c *Controller) TaskRows() []FieldView {
	return c.taskForm.Rows()
}

// SettingsForm exposes the edit text of the settings form.
func (c *Controller) SettingsForm() *SettingsForm {
	return &c.settingsForm
}

// TaskForm exposes the edit text of the task form.
func (c *Controller) TaskForm() *TaskForm {
	return &c.taskForm
}

// IsRunning reports whether a timer exists, paused or not.
func (c *Controller) IsRunning() bool {
	return c.timer != nil
}

// IsPaused reports whether the running timer is paused.
func (c *Controller) IsPaused() bool {
	return c.timer != nil && c.timer.IsPaused()
}

// Tasks returns the task list contents.
func (c *Controller) Tasks() []models.Task {
	if c.tasks == nil {
		return nil
	}
	return c.tasks.Items()
}

// TaskCount returns the number of tasks.
func (c *Controller) TaskCount() int {
	if c.tasks == nil {
		return 0
	}
	return c.tasks.Len()
}

// SelectedTask returns the selected task index, or -1.
func (c *Controller) SelectedTask() int {
	if c.tasks == nil {
		return -1
	}
	return c.tasks.Selected()
}
