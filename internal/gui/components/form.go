package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// BookingForm holds the two input fields and the three action buttons
type BookingForm struct {
	container *fyne.Container

	NameEntry     *widget.Entry
	DoctorIDEntry *widget.Entry

	ViewDoctorsButton      *widget.Button
	ScheduleButton         *widget.Button
	ViewAppointmentsButton *widget.Button

	viewDoctorsHandler      func()
	scheduleHandler         func(patientName, doctorID string)
	viewAppointmentsHandler func()
}

func NewBookingForm() *BookingForm {
	form := &BookingForm{}
	form.setupForm()
	return form
}

func (f *BookingForm) setupForm() {
	f.NameEntry = widget.NewEntry()
	f.NameEntry.SetPlaceHolder("e.g. Jane Doe")
	f.DoctorIDEntry = widget.NewEntry()
	f.DoctorIDEntry.SetPlaceHolder("e.g. 1")

	fields := container.New(
		layout.NewFormLayout(),
		widget.NewLabel("Patient Name:"), f.NameEntry,
		widget.NewLabel("Doctor ID:"), f.DoctorIDEntry,
	)

	f.ViewDoctorsButton = widget.NewButton("View Available Doctors", f.onViewDoctors)
	f.ScheduleButton = widget.NewButton("Schedule Appointment", f.onSchedule)
	f.ScheduleButton.Importance = widget.HighImportance
	f.ViewAppointmentsButton = widget.NewButton("View Scheduled Appointments", f.onViewAppointments)

	// Enter in the doctor id field books, same as the button
	f.DoctorIDEntry.OnSubmitted = func(string) { f.onSchedule() }

	buttons := container.NewVBox(
		container.NewGridWithColumns(2, f.ViewDoctorsButton, f.ScheduleButton),
		container.NewCenter(f.ViewAppointmentsButton),
	)

	f.container = container.NewVBox(fields, buttons)
}

func (f *BookingForm) GetContainer() *fyne.Container {
	return f.container
}

func (f *BookingForm) SetViewDoctorsHandler(handler func()) {
	f.viewDoctorsHandler = handler
}

func (f *BookingForm) SetScheduleHandler(handler func(patientName, doctorID string)) {
	f.scheduleHandler = handler
}

func (f *BookingForm) SetViewAppointmentsHandler(handler func()) {
	f.viewAppointmentsHandler = handler
}

func (f *BookingForm) onViewDoctors() {
	if f.viewDoctorsHandler != nil {
		f.viewDoctorsHandler()
	}
}

func (f *BookingForm) onSchedule() {
	if f.scheduleHandler != nil {
		f.scheduleHandler(f.NameEntry.Text, f.DoctorIDEntry.Text)
	}
}

func (f *BookingForm) onViewAppointments() {
	if f.viewAppointmentsHandler != nil {
		f.viewAppointmentsHandler()
	}
}
