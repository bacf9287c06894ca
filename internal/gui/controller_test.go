package gui

import (
	"context"
	"errors"
	"testing"

	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/models"
	"clinic-scheduler/internal/services"
	"clinic-scheduler/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type popup struct {
	kind    string
	title   string
	message string
}

type recordingNotifier struct {
	popups []popup
}

func (r *recordingNotifier) ShowInfo(title, message string) {
	r.popups = append(r.popups, popup{kind: "info", title: title, message: message})
}

func (r *recordingNotifier) ShowWarning(message string) {
	r.popups = append(r.popups, popup{kind: "warning", title: "Warning", message: message})
}

func (r *recordingNotifier) ShowError(err error) {
	r.popups = append(r.popups, popup{kind: "error", title: "Error", message: err.Error()})
}

func (r *recordingNotifier) last(t *testing.T) popup {
	t.Helper()
	require.NotEmpty(t, r.popups)
	return r.popups[len(r.popups)-1]
}

type stubScheduler struct {
	doctors      []models.Doctor
	appointments []models.AppointmentView
	bookErr      error
	listErr      error

	bookedName, bookedDoctor string
}

func (s *stubScheduler) ListDoctors(context.Context) ([]models.Doctor, error) {
	return s.doctors, s.listErr
}

func (s *stubScheduler) BookAppointment(_ context.Context, name, doctorID string) (*models.Appointment, error) {
	s.bookedName, s.bookedDoctor = name, doctorID
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return &models.Appointment{ID: 1}, nil
}

func (s *stubScheduler) ListScheduledAppointments(context.Context) ([]models.AppointmentView, error) {
	return s.appointments, s.listErr
}

func newTestController(s services.Scheduler) (*Controller, *recordingNotifier, *string) {
	notifier := &recordingNotifier{}
	status := new(string)
	c := NewController(s, notifier, logger.NoOpLogger{})
	c.SetStatusHandler(func(text string) { *status = text })
	return c, notifier, status
}

func TestController_ViewDoctors(t *testing.T) {
	c, notifier, status := newTestController(&stubScheduler{
		doctors: []models.Doctor{{ID: 3, Name: "Dr. David Pandey", Specialization: "Orthopedics"}},
	})

	c.ViewDoctors()

	assert.Equal(t, popup{kind: "info", title: "Available Doctors", message: "3: Dr. David Pandey (Orthopedics)"}, notifier.last(t))
	assert.Equal(t, "1 doctor(s) available", *status)
}

func TestController_ViewDoctorsEmpty(t *testing.T) {
	c, notifier, _ := newTestController(&stubScheduler{})

	c.ViewDoctors()

	assert.Equal(t, "No doctors available.", notifier.last(t).message)
}

func TestController_ScheduleSuccess(t *testing.T) {
	stub := &stubScheduler{}
	c, notifier, status := newTestController(stub)

	c.ScheduleAppointment("Alice", "1")

	assert.Equal(t, "Alice", stub.bookedName)
	assert.Equal(t, "1", stub.bookedDoctor)
	assert.Equal(t, popup{kind: "info", title: "Success", message: "Appointment scheduled successfully."}, notifier.last(t))
	assert.Equal(t, "Appointment scheduled", *status)
}

func TestController_ScheduleWarnings(t *testing.T) {
	cases := map[string]error{
		"Please enter patient name and doctor ID.": services.ErrMissingInput,
		"Doctor ID must be a valid number.":        services.ErrInvalidDoctorID,
		"Doctor with ID 42 not found.":             &storage.DoctorNotFoundError{ID: 42},
	}

	for want, bookErr := range cases {
		c, notifier, _ := newTestController(&stubScheduler{bookErr: bookErr})

		c.ScheduleAppointment("Alice", "x")

		got := notifier.last(t)
		assert.Equal(t, "warning", got.kind)
		assert.Equal(t, want, got.message)
	}
}

func TestController_StorageFaultShowsError(t *testing.T) {
	fault := errors.New("database is locked")
	c, notifier, status := newTestController(&stubScheduler{bookErr: fault, listErr: fault})

	c.ScheduleAppointment("Alice", "1")
	got := notifier.last(t)
	assert.Equal(t, "error", got.kind)
	assert.Contains(t, got.message, "database is locked")
	assert.Equal(t, "Scheduling failed", *status)

	c.ViewAppointments()
	assert.Equal(t, "error", notifier.last(t).kind)

	c.ViewDoctors()
	assert.Equal(t, "error", notifier.last(t).kind)
	assert.Len(t, notifier.popups, 3)
}

func TestController_ViewAppointments(t *testing.T) {
	c, notifier, _ := newTestController(&stubScheduler{})

	c.ViewAppointments()
	assert.Equal(t, popup{kind: "info", title: "Scheduled Appointments", message: "No appointments scheduled."}, notifier.last(t))
}
