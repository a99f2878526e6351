package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"StudyPlanner/internal/models"
	"StudyPlanner/internal/planner"
)

var filterNames = []string{"All", "Pending", "Completed", "Overdue"}

type TasksView struct {
	container *fyne.Container
	store     *planner.Store
	window    fyne.Window

	filter       planner.TaskFilter
	filterSelect *widget.Select
	list         *fyne.Container
}

func NewTasksView(store *planner.Store, window fyne.Window) *TasksView {
	v := &TasksView{
		store:  store,
		window: window,
		filter: planner.FilterAll,
		list:   container.NewVBox(),
	}
	v.setup()
	v.Refresh()
	return v
}

func (v *TasksView) setup() {
	title := widget.NewLabelWithStyle("My Tasks", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	v.filterSelect = widget.NewSelect(filterNames, func(selected string) {
		v.filter = planner.TaskFilter(strings.ToLower(selected))
		v.Refresh()
	})
	v.filterSelect.SetSelected("All")

	addBtn := widget.NewButtonWithIcon("Add Task", theme.ContentAddIcon(), func() {
		v.showTaskDialog(nil)
	})

	toolbar := container.NewHBox(
		widget.NewLabel("Filter:"),
		v.filterSelect,
		addBtn,
	)

	v.container = container.NewBorder(
		container.NewVBox(title, toolbar),
		nil, nil, nil,
		container.NewVScroll(v.list),
	)
}

func (v *TasksView) Refresh() {
	tasks := v.store.FilterTasks(v.filter)

	v.list.Objects = nil
	if len(tasks) == 0 {
		v.list.Add(widget.NewLabel("No tasks found"))
		v.list.Refresh()
		return
	}

	for _, task := range tasks {
		v.list.Add(v.taskRow(task))
	}
	v.list.Refresh()
}

func (v *TasksView) taskRow(task models.Task) fyne.CanvasObject {
	titleStyle := fyne.TextStyle{Bold: true}
	meta := fmt.Sprintf("%s  ·  due %s  ·  %s priority",
		task.DisplaySubject(), planner.DisplayDay(task.DueDate), task.Priority)
	if v.store.Overdue(task) {
		meta += "  ·  OVERDUE"
	}

	toggleLabel := "Complete"
	toggleIcon := theme.ConfirmIcon()
	if task.Completed {
		toggleLabel = "Undo"
		toggleIcon = theme.ContentUndoIcon()
	}

	id := task.ID
	toggleBtn := widget.NewButtonWithIcon(toggleLabel, toggleIcon, func() {
		v.store.ToggleTask(id)
		v.Refresh()
	})
	edited := task
	editBtn := widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() {
		v.showTaskDialog(&edited)
	})
	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Delete Task", "Are you sure you want to delete this task?", func(yes bool) {
			if yes {
				v.store.DeleteTask(id)
				v.Refresh()
			}
		}, v.window)
	})

	rows := []fyne.CanvasObject{
		widget.NewLabelWithStyle(task.Title, fyne.TextAlignLeading, titleStyle),
		widget.NewLabel(meta),
	}
	if task.Description != "" {
		rows = append(rows, widget.NewLabel(task.Description))
	}
	rows = append(rows,
		container.NewHBox(toggleBtn, editBtn, deleteBtn),
		widget.NewSeparator(),
	)
	return container.NewVBox(rows...)
}

// showTaskDialog opens the add/edit form. A nil task means add.
func (v *TasksView) showTaskDialog(task *models.Task) {
	titleEntry := widget.NewEntry()
	titleEntry.SetPlaceHolder("Task title")

	descEntry := widget.NewMultiLineEntry()
	subjectEntry := widget.NewEntry()

	dueEntry := widget.NewEntry()
	dueEntry.SetPlaceHolder("YYYY-MM-DD")

	prioritySelect := widget.NewSelect([]string{"low", "medium", "high"}, nil)
	prioritySelect.SetSelected("medium")

	dialogTitle := "Add New Task"
	if task != nil {
		dialogTitle = "Edit Task"
		titleEntry.SetText(task.Title)
		descEntry.SetText(task.Description)
		subjectEntry.SetText(task.Subject)
		dueEntry.SetText(task.DueDate)
		prioritySelect.SetSelected(string(task.Priority))
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Title", titleEntry),
		widget.NewFormItem("Description", descEntry),
		widget.NewFormItem("Subject", subjectEntry),
		widget.NewFormItem("Due Date", dueEntry),
		widget.NewFormItem("Priority", prioritySelect),
	}

	dialog.ShowForm(dialogTitle, "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}

		var err error
		if task == nil {
			_, err = v.store.AddTask(planner.TaskFields{
				Title:       titleEntry.Text,
				Description: descEntry.Text,
				Subject:     subjectEntry.Text,
				DueDate:     dueEntry.Text,
				Priority:    models.Priority(prioritySelect.Selected),
			})
		} else {
			priority := models.Priority(prioritySelect.Selected)
			_, err = v.store.UpdateTask(task.ID, planner.TaskPatch{
				Title:       &titleEntry.Text,
				Description: &descEntry.Text,
				Subject:     &subjectEntry.Text,
				DueDate:     &dueEntry.Text,
				Priority:    &priority,
			})
		}
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		v.Refresh()
	}, v.window)
}
