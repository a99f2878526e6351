package ui

import (
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"StudyPlanner/internal/planner"
)

var dayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CalendarView shows one month as a 7x6 grid of day cells with the
// days carrying at least one schedule marked.
type CalendarView struct {
	container *fyne.Container
	store     *planner.Store

	year       int
	month      time.Month
	monthLabel *widget.Label
	grid       *fyne.Container
}

func NewCalendarView(store *planner.Store) *CalendarView {
	now := time.Now()
	v := &CalendarView{
		store:      store,
		year:       now.Year(),
		month:      now.Month(),
		monthLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		grid:       container.NewGridWithColumns(7),
	}
	v.setup()
	v.Refresh()
	return v
}

func (v *CalendarView) setup() {
	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
		v.changeMonth(-1)
	})
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
		v.changeMonth(1)
	})

	header := container.NewBorder(nil, nil, prevBtn, nextBtn, v.monthLabel)

	v.container = container.NewBorder(header, nil, nil, nil, v.grid)
}

func (v *CalendarView) changeMonth(direction int) {
	shifted := time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, direction, 0)
	v.year, v.month = shifted.Year(), shifted.Month()
	v.Refresh()
}

func (v *CalendarView) Refresh() {
	v.monthLabel.SetText(time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"))

	v.grid.Objects = nil
	for _, name := range dayHeaders {
		v.grid.Add(widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}
	for _, cell := range v.store.CalendarCells(v.year, v.month) {
		v.grid.Add(dayCell(cell))
	}
	v.grid.Refresh()
}

func dayCell(cell planner.CalendarCell) fyne.CanvasObject {
	text := canvas.NewText(strconv.Itoa(cell.Day), theme.ForegroundColor())
	text.Alignment = fyne.TextAlignCenter

	switch {
	case cell.IsToday:
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.Color = theme.PrimaryColor()
	case !cell.InMonth:
		text.Color = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	}

	if !cell.HasSchedule {
		return text
	}

	marker := canvas.NewText("•", theme.PrimaryColor())
	marker.Alignment = fyne.TextAlignCenter
	return container.NewVBox(text, marker)
}
