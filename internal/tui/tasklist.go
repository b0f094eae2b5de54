package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/pomotui/internal/models"
)

var listTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(primaryColor)

// TaskItem implements list.Item for the task list
type TaskItem struct {
	task models.Task
}

func (i TaskItem) FilterValue() string { return i.task.Title }
func (i TaskItem) Title() string       { return i.task.Title }
func (i TaskItem) Description() string {
	est := fmt.Sprintf("%d pomodoro", i.task.Estimate)
	if i.task.Estimate != 1 {
		est += "s"
	}
	if i.task.Notes != "" {
		return fmt.Sprintf("%s • %s", est, i.task.Notes)
	}
	return est
}

// taskListView renders the controller's tasks. It never handles keys
// itself; selection is mirrored from the controller on every sync.
type taskListView struct {
	list list.Model
	ids  []string
}

func newTaskListView(width, height int) taskListView {
	delegate := list.NewDefaultDelegate()
	l := list.New([]list.Item{}, delegate, width, height)
	l.Title = "Tasks"
	l.Styles.Title = listTitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	return taskListView{list: l}
}

// sync replaces the list items when the task set changed and selects index.
func (v *taskListView) sync(tasks []models.Task, selected int) {
	if !sameTasks(v.ids, tasks) {
		items := make([]list.Item, len(tasks))
		v.ids = v.ids[:0]
		for i, t := range tasks {
			items[i] = TaskItem{task: t}
			v.ids = append(v.ids, t.ID)
		}
		v.list.SetItems(items)
	}
	if selected >= 0 && selected < len(tasks) {
		v.list.Select(selected)
	}
}

func (v *taskListView) setSize(width, height int) {
	v.list.SetSize(width, height)
}

// view renders the list, or empty when there are no tasks.
func (v *taskListView) view(empty string) string {
	if len(v.ids) == 0 {
		return listTitleStyle.Render("Tasks") + "\n\n" + helpStyle.Render(empty)
	}
	return v.list.View()
}

// selectedTitle returns the title of the highlighted task, if any.
func (v *taskListView) selectedTitle() string {
	item, ok := v.list.SelectedItem().(TaskItem)
	if !ok {
		return ""
	}
	return strings.TrimSpace(item.task.Title)
}

func sameTasks(ids []string, tasks []models.Task) bool {
	if len(ids) != len(tasks) {
		return false
	}
	for i, t := range tasks {
		if ids[i] != t.ID {
			return false
		}
	}
	return true
}
