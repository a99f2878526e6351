package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"StudyPlanner/internal/planner"
)

type DashboardView struct {
	container *fyne.Container
	store     *planner.Store

	todayTasks   *fyne.Container
	progressBar  *widget.ProgressBar
	percentLabel *widget.Label
	timeLabel    *widget.Label
	streakLabel  *widget.Label
}

func NewDashboardView(store *planner.Store) *DashboardView {
	v := &DashboardView{
		store:        store,
		todayTasks:   container.NewVBox(),
		progressBar:  widget.NewProgressBar(),
		percentLabel: widget.NewLabel("0%"),
		timeLabel:    widget.NewLabel("0h 0m"),
		streakLabel:  widget.NewLabel("0"),
	}
	v.setup()
	v.Refresh()
	return v
}

func (v *DashboardView) setup() {
	todayCard := widget.NewCard("Today's Tasks", "", v.todayTasks)

	progressCard := widget.NewCard("Progress Overview", "", container.NewVBox(
		v.progressBar,
		container.NewHBox(widget.NewLabel("Completed:"), v.percentLabel),
	))

	timeCard := widget.NewCard("Today's Study Time", "", v.timeLabel)

	streakCard := widget.NewCard("Study Streak", "", container.NewHBox(
		v.streakLabel,
		widget.NewLabel("days"),
	))

	v.container = container.NewVBox(
		widget.NewLabelWithStyle("Dashboard", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2,
			todayCard,
			progressCard,
			timeCard,
			streakCard,
		),
	)
}

func (v *DashboardView) Refresh() {
	summary := v.store.DashboardSummary()

	v.todayTasks.Objects = nil
	if len(summary.TodayTasks) == 0 {
		v.todayTasks.Add(widget.NewLabel("No tasks due today"))
	} else {
		for _, task := range summary.TodayTasks {
			v.todayTasks.Add(container.NewVBox(
				widget.NewLabelWithStyle(task.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
				widget.NewLabel(task.DisplaySubject()),
			))
		}
	}
	v.todayTasks.Refresh()

	v.progressBar.SetValue(float64(summary.Completion) / 100)
	v.percentLabel.SetText(fmt.Sprintf("%d%%", summary.Completion))
	v.timeLabel.SetText(fmt.Sprintf("%dh %dm", summary.StudyHours, summary.StudyMinutes))
	v.streakLabel.SetText(fmt.Sprintf("%d", summary.Streak))
}
