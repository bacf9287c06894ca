package gui

import (
	"fmt"
	"strings"

	"clinic-scheduler/internal/models"
)

const (
	noDoctorsMessage      = "No doctors available."
	noAppointmentsMessage = "No appointments scheduled."
	bookedMessage         = "Appointment scheduled successfully."
)

// FormatDoctors renders one "id: name (specialization)" line per doctor
func FormatDoctors(doctors []models.Doctor) string {
	if len(doctors) == 0 {
		return noDoctorsMessage
	}

	lines := make([]string, len(doctors))
	for i, d := range doctors {
		lines[i] = fmt.Sprintf("%d: %s (%s)", d.ID, d.Name, d.Specialization)
	}
	return strings.Join(lines, "\n")
}

// FormatAppointments renders one block per appointment
func FormatAppointments(views []models.AppointmentView) string {
	if len(views) == 0 {
		return noAppointmentsMessage
	}

	blocks := make([]string, len(views))
	for i, v := range views {
		blocks[i] = fmt.Sprintf("Appointment ID: %d\nDoctor: %s (%s)\nPatient: %s\nDate: %s\n",
			v.AppointmentID, v.DoctorName, v.DoctorSpecialization, v.PatientName, v.Date)
	}
	return strings.Join(blocks, "\n")
}
