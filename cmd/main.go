package main

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"StudyPlanner/internal/config"
	"StudyPlanner/internal/planner"
	"StudyPlanner/internal/storage"
	"StudyPlanner/internal/ui"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatal(err)
	}
	cfg := configManager.GetConfig()

	logger, err := config.InitLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Relative database paths land in the app directory next to the
	// config and logs.
	dbPath := cfg.Database.Path
	if !filepath.IsAbs(dbPath) {
		appDir, err := config.Dir()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.MkdirAll(appDir, 0755); err != nil {
			log.Fatal(err)
		}
		dbPath = filepath.Join(appDir, dbPath)
	}

	db, err := storage.NewDatabase(dbPath)
	if err != nil {
		logger.Fatalw("failed to open database", "path", dbPath, "error", err)
	}
	defer db.Close()

	store := planner.NewStore(db, logger)
	if err := store.Load(); err != nil {
		logger.Fatalw("failed to load collections", "error", err)
	}

	myApp := app.New()

	mainWindow := ui.NewMainWindow(myApp, store, configManager)
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	mainWindow.Show()
}
