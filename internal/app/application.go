package app

import (
	"clinic-scheduler/internal/config"
	"clinic-scheduler/internal/gui"
	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/services"
	"clinic-scheduler/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Hospital Appointment Booking System"
	AppID      = "com.clinic.scheduler"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	lifecycle  *Lifecycle
	logger     logger.Logger
}

// NewApplication builds the window around an already opened scheduler.
// Resources registered with shut are released when the window closes.
func NewApplication(cfg *config.Config, scheduler services.Scheduler, shut *shutdown.Manager, log logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	controller := gui.NewController(scheduler, gui.NewDialogNotifier(window), log)
	guiManager := gui.NewManager(controller, cfg.DBPath, log)
	guiManager.SetBackground(cfg.BackgroundImage)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"db_path":       cfg.DBPath,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"background":    cfg.BackgroundImage,
	})

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		lifecycle:  NewLifecycle(guiManager, shut, log),
		logger:     log,
	}
}

// Run shows the window and blocks until it is closed or the process is
// signalled, then releases everything.
func (a *Application) Run() error {
	defer a.lifecycle.Shutdown()

	a.lifecycle.ListenForSignals(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
