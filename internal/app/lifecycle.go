package app

import (
	"clinic-scheduler/internal/gui"
	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/shutdown"
)

type Lifecycle struct {
	guiManager *gui.Manager
	shutdown   *shutdown.Manager
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(gm *gui.Manager, shut *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: gm,
		shutdown:   shut,
		logger:     log,
	}
}

func (l *Lifecycle) ListenForSignals(onSignal func()) {
	l.shutdown.Listen(onSignal)
}

// Shutdown stops the GUI first, then releases the registered resources
// (the storage handle) in reverse order.
func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	if l.shutdown != nil {
		l.shutdown.Shutdown()
	}
}
