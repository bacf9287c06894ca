package gui

import (
	"context"
	"fmt"

	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/services"
)

// Controller turns the three form actions into scheduler calls and popups.
// Each handler runs to completion on the UI thread.
type Controller struct {
	scheduler services.Scheduler
	notifier  Notifier
	logger    logger.Logger

	statusHandler func(string)
}

func NewController(scheduler services.Scheduler, notifier Notifier, log logger.Logger) *Controller {
	return &Controller{
		scheduler: scheduler,
		notifier:  notifier,
		logger:    log,
	}
}

func (c *Controller) SetStatusHandler(handler func(string)) {
	c.statusHandler = handler
}

func (c *Controller) ViewDoctors() {
	doctors, err := c.scheduler.ListDoctors(context.Background())
	if err != nil {
		c.handleFault("Loading doctors failed", err)
		return
	}

	c.updateStatus(fmt.Sprintf("%d doctor(s) available", len(doctors)))
	c.notifier.ShowInfo("Available Doctors", FormatDoctors(doctors))
}

func (c *Controller) ScheduleAppointment(patientName, doctorID string) {
	_, err := c.scheduler.BookAppointment(context.Background(), patientName, doctorID)
	if err != nil {
		if services.IsUserError(err) {
			c.updateStatus("Appointment not scheduled")
			c.notifier.ShowWarning(err.Error())
			return
		}
		c.handleFault("Scheduling failed", err)
		return
	}

	c.updateStatus("Appointment scheduled")
	c.notifier.ShowInfo("Success", bookedMessage)
}

func (c *Controller) ViewAppointments() {
	views, err := c.scheduler.ListScheduledAppointments(context.Background())
	if err != nil {
		c.handleFault("Loading appointments failed", err)
		return
	}

	c.updateStatus(fmt.Sprintf("%d appointment(s) scheduled", len(views)))
	c.notifier.ShowInfo("Scheduled Appointments", FormatAppointments(views))
}

func (c *Controller) handleFault(status string, err error) {
	c.logger.Error("Controller", err, map[string]interface{}{
		"status": status,
	})
	c.updateStatus(status)
	c.notifier.ShowError(fmt.Errorf("%s: %w", status, err))
}

func (c *Controller) updateStatus(status string) {
	if c.statusHandler != nil {
		c.statusHandler(status)
	}
}
