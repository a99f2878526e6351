package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"StudyPlanner/internal/config"
	"StudyPlanner/internal/planner"
)

type MainWindow struct {
	window        fyne.Window
	store         *planner.Store
	configManager *config.Manager

	dashboard *DashboardView
	tasks     *TasksView
	schedule  *ScheduleView
	goals     *GoalsView
	timer     *TimerView
}

func NewMainWindow(app fyne.App, store *planner.Store, configManager *config.Manager) *MainWindow {
	cfg := configManager.GetConfig()

	w := &MainWindow{
		window:        app.NewWindow(cfg.App.Name),
		store:         store,
		configManager: configManager,
	}
	w.setup()
	return w
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) setup() {
	w.dashboard = NewDashboardView(w.store)
	w.tasks = NewTasksView(w.store, w.window)
	w.schedule = NewScheduleView(w.store, w.window)
	w.goals = NewGoalsView(w.store, w.window)
	w.timer = NewTimerView(w.store, w.configManager.GetConfig().Timer, w.dashboard.Refresh)

	tabs := container.NewAppTabs(
		container.NewTabItem("Dashboard", w.dashboard.container),
		container.NewTabItem("Tasks", w.tasks.container),
		container.NewTabItem("Schedule", w.schedule.container),
		container.NewTabItem("Goals", w.goals.container),
		container.NewTabItem("Timer", w.timer.container),
	)

	// Derived views are recomputed whenever a tab comes into view, so a
	// mutation made on one tab shows up on the next.
	tabs.OnSelected = func(*container.TabItem) {
		w.dashboard.Refresh()
		w.tasks.Refresh()
		w.schedule.Refresh()
		w.goals.Refresh()
	}

	w.window.SetContent(tabs)
	w.window.Resize(fyne.NewSize(1000, 700))
}

func (w *MainWindow) Show() {
	w.window.ShowAndRun()
}
