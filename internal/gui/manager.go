package gui

import (
	"clinic-scheduler/internal/gui/components"
	"clinic-scheduler/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const heading = "Hospital Appointment Booking System"

// Manager owns the window content and routes form events to the controller
type Manager struct {
	controller *Controller
	logger     logger.Logger
	isShutdown bool

	form       *components.BookingForm
	statusBar  *components.StatusBar
	background string
}

func NewManager(controller *Controller, dbPath string, log logger.Logger) *Manager {
	manager := &Manager{
		controller: controller,
		logger:     log,
		form:       components.NewBookingForm(),
		statusBar:  components.NewStatusBar(dbPath),
	}

	manager.setupHandlers()

	log.Debug("GUIManager", "initialized", map[string]interface{}{
		"db_path": dbPath,
	})
	return manager
}

func (m *Manager) setupHandlers() {
	m.form.SetViewDoctorsHandler(func() {
		m.logger.Debug("GUIManager", "view doctors requested", nil)
		m.controller.ViewDoctors()
	})
	m.form.SetScheduleHandler(func(patientName, doctorID string) {
		m.logger.Debug("GUIManager", "schedule requested", map[string]interface{}{
			"doctor_id": doctorID,
		})
		m.controller.ScheduleAppointment(patientName, doctorID)
	})
	m.form.SetViewAppointmentsHandler(func() {
		m.logger.Debug("GUIManager", "view appointments requested", nil)
		m.controller.ViewAppointments()
	})

	m.controller.SetStatusHandler(m.statusBar.SetStatus)
}

// SetBackground stretches the image at path behind the form. An empty path
// keeps the plain theme background.
func (m *Manager) SetBackground(path string) {
	m.background = path
}

func (m *Manager) GetMainContainer() *fyne.Container {
	title := widget.NewLabelWithStyle(heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewBorder(
		title,
		m.statusBar.GetContainer(),
		nil, nil,
		container.NewCenter(m.form.GetContainer()),
	)
	if m.background == "" {
		return content
	}

	image := canvas.NewImageFromFile(m.background)
	image.FillMode = canvas.ImageFillStretch
	image.Translucency = 0.2

	return container.NewStack(image, content)
}

func (m *Manager) Form() *components.BookingForm {
	return m.form
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
