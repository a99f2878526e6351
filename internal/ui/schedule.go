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

type ScheduleView struct {
	container *fyne.Container
	store     *planner.Store
	window    fyne.Window

	list     *fyne.Container
	calendar *CalendarView
}

func NewScheduleView(store *planner.Store, window fyne.Window) *ScheduleView {
	v := &ScheduleView{
		store:  store,
		window: window,
		list:   container.NewVBox(),
	}
	v.setup()
	v.Refresh()
	return v
}

func (v *ScheduleView) setup() {
	title := widget.NewLabelWithStyle("Study Schedule", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	addBtn := widget.NewButtonWithIcon("Add Schedule", theme.ContentAddIcon(), func() {
		v.showScheduleDialog(nil)
	})

	v.calendar = NewCalendarView(v.store)

	upcoming := container.NewBorder(
		widget.NewLabelWithStyle("Upcoming Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		container.NewVScroll(v.list),
	)

	v.container = container.NewBorder(
		container.NewVBox(title, container.NewHBox(addBtn)),
		nil, nil, nil,
		container.NewGridWithColumns(2, upcoming, v.calendar.container),
	)
}

func (v *ScheduleView) Refresh() {
	schedules := v.store.UpcomingSchedules()

	v.list.Objects = nil
	if len(schedules) == 0 {
		v.list.Add(widget.NewLabel("No upcoming schedules"))
	} else {
		for _, schedule := range schedules {
			v.list.Add(v.scheduleRow(schedule))
		}
	}
	v.list.Refresh()

	v.calendar.Refresh()
}

func (v *ScheduleView) scheduleRow(schedule models.Schedule) fyne.CanvasObject {
	when := fmt.Sprintf("%s at %s (%d min)",
		planner.DisplayDay(schedule.Date), planner.DisplayClock(schedule.Time), schedule.Duration)

	edited := schedule
	editBtn := widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() {
		v.showScheduleDialog(&edited)
	})
	id := schedule.ID
	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		dialog.ShowConfirm("Delete Schedule", "Are you sure you want to delete this schedule?", func(yes bool) {
			if yes {
				v.store.DeleteSchedule(id)
				v.Refresh()
			}
		}, v.window)
	})

	rows := []fyne.CanvasObject{
		widget.NewLabel(when),
		widget.NewLabelWithStyle(schedule.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	if schedule.Subject != "" {
		rows = append(rows, widget.NewLabel(schedule.Subject))
	}
	rows = append(rows,
		container.NewHBox(editBtn, deleteBtn),
		widget.NewSeparator(),
	)
	return container.NewVBox(rows...)
}

// showScheduleDialog opens the add/edit form. A nil schedule means add.
func (v *ScheduleView) showScheduleDialog(schedule *models.Schedule) {
	titleEntry := widget.NewEntry()
	subjectEntry := widget.NewEntry()

	dateEntry := widget.NewEntry()
	dateEntry.SetPlaceHolder("YYYY-MM-DD")

	timeEntry := widget.NewEntry()
	timeEntry.SetPlaceHolder("HH:MM")

	durationEntry := widget.NewEntry()
	durationEntry.SetPlaceHolder("Minutes")

	dialogTitle := "Add Schedule"
	if schedule != nil {
		dialogTitle = "Edit Schedule"
		titleEntry.SetText(schedule.Title)
		subjectEntry.SetText(schedule.Subject)
		dateEntry.SetText(schedule.Date)
		timeEntry.SetText(schedule.Time)
		durationEntry.SetText(strconv.Itoa(schedule.Duration))
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Title", titleEntry),
		widget.NewFormItem("Subject", subjectEntry),
		widget.NewFormItem("Date", dateEntry),
		widget.NewFormItem("Time", timeEntry),
		widget.NewFormItem("Duration", durationEntry),
	}

	dialog.ShowForm(dialogTitle, "Save", "Cancel", items, func(save bool) {
		if !save {
			return
		}

		duration, convErr := strconv.Atoi(durationEntry.Text)
		if convErr != nil {
			dialog.ShowError(planner.ErrInvalidDuration, v.window)
			return
		}

		var err error
		if schedule == nil {
			_, err = v.store.AddSchedule(planner.ScheduleFields{
				Title:    titleEntry.Text,
				Subject:  subjectEntry.Text,
				Date:     dateEntry.Text,
				Time:     timeEntry.Text,
				Duration: duration,
			})
		} else {
			_, err = v.store.UpdateSchedule(schedule.ID, planner.SchedulePatch{
				Title:    &titleEntry.Text,
				Subject:  &subjectEntry.Text,
				Date:     &dateEntry.Text,
				Time:     &timeEntry.Text,
				Duration: &duration,
			})
		}
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		v.Refresh()
	}, v.window)
}
