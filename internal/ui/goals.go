package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"StudyPlanner/internal/models"
	"StudyPlanner/internal/planner"
)

var goalCategories = []string{"academic", "skill", "personal"}

type GoalsView struct {
	container *fyne.Container
	store     *planner.Store
	window    fyne.Window

	list *fyne.Container
}

func NewGoalsView(store *planner.Store, window fyne.Window) *GoalsView {
	v := &GoalsView{
		store:  store,
		window: window,
		list:   container.NewVBox(),
	}
	v.setup()
	v.Refresh()
	return v
}

func (v *GoalsView) setup() {
	title := widget.NewLabelWithStyle("Study Goals", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	addBtn := widget.NewButtonWithIcon("Add Goal", theme.ContentAddIcon(), func() {
		v.showGoalDialog(nil)
	})

	v.container = container.NewBorder(
		container.NewVBox(title, container.NewHBox(addBtn)),
		nil, nil, nil,
		container.NewVScroll(v.list),
	)
}

func (v *GoalsView) Refresh() {
	goals := v.store.Goals()

	v.list.Objects = nil
	if len(goals) == 0 {
		v.list.Add(widget.NewLabel("No goals set yet"))
		v.list.Refresh()
		return
	}

	for _, goal := range goals {
		v.list.Add(v.goalCard(goal))
	}
	v.list.Refresh()
}

func (v *GoalsView) goalCard(goal models.Goal) fyne.CanvasObject {
	progress := widget.NewProgressBar()
	progress.SetValue(float64(goal.Progress) / 100)

	id := goal.ID
	current := goal.Progress
	bumpBtn := widget.NewButtonWithIcon("+10%", theme.ContentAddIcon(), func() {
		v.store.SetGoalProgress(id, current+10)
		v.Refresh()
	})
	edited := goal
	editBtn := widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() {
		v.showGoalDialog(&edited)
	})
	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Delete Goal", "Are you sure you want to delete this goal?", func(yes bool) {
			if yes {
				v.store.DeleteGoal(id)
				v.Refresh()
			}
		}, v.window)
	})

	rows := []fyne.CanvasObject{
		widget.NewLabelWithStyle(goal.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(goal.Category),
	}
	if goal.Description != "" {
		rows = append(rows, widget.NewLabel(goal.Description))
	}
	rows = append(rows,
		container.NewHBox(widget.NewLabel("Progress:"), widget.NewLabel(fmt.Sprintf("%d%%", goal.Progress))),
		progress,
		widget.NewLabel("Target: "+planner.DisplayDay(goal.TargetDate)),
		container.NewHBox(bumpBtn, editBtn, deleteBtn),
		widget.NewSeparator(),
	)
	return container.NewVBox(rows...)
}

// showGoalDialog opens the add/edit form. A nil goal means add.
func (v *GoalsView) showGoalDialog(goal *models.Goal) {
	titleEntry := widget.NewEntry()
	descEntry := widget.NewMultiLineEntry()

	categoryEntry := widget.NewSelectEntry(goalCategories)
	categoryEntry.SetPlaceHolder("Category")

	targetEntry := widget.NewEntry()
	targetEntry.SetPlaceHolder("YYYY-MM-DD")

	progressEntry := widget.NewEntry()
	progressEntry.SetText("0")

	dialogTitle := "Add New Goal"
	if goal != nil {
		dialogTitle = "Edit Goal"
		titleEntry.SetText(goal.Title)
		descEntry.SetText(goal.Description)
		categoryEntry.SetText(goal.Category)
		targetEntry.SetText(goal.TargetDate)
		progressEntry.SetText(strconv.Itoa(goal.Progress))
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Title", titleEntry),
		widget.NewFormItem("Description", descEntry),
		widget.NewFormItem("Category", categoryEntry),
		widget.NewFormItem("Target Date", targetEntry),
		widget.NewFormItem("Progress %", progressEntry),
	}

	dialog.ShowForm(dialogTitle, "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}

		progress, convErr := strconv.Atoi(progressEntry.Text)
		if convErr != nil {
			progress = 0
		}

		var err error
		if goal == nil {
			_, err = v.store.AddGoal(planner.GoalFields{
				Title:       titleEntry.Text,
				Description: descEntry.Text,
				Category:    categoryEntry.Text,
				TargetDate:  targetEntry.Text,
				Progress:    progress,
			})
		} else {
			_, err = v.store.UpdateGoal(goal.ID, planner.GoalPatch{
				Title:       &titleEntry.Text,
				Description: &descEntry.Text,
				Category:    &categoryEntry.Text,
				TargetDate:  &targetEntry.Text,
				Progress:    &progress,
			})
		}
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		v.Refresh()
	}, v.window)
}
