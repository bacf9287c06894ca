package storage

import (
	"context"
	"fmt"

	"clinic-scheduler/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookAppointment registers a new patient and an appointment for today with
// the given doctor. Both rows are committed together or not at all.
func (s *Store) BookAppointment(ctx context.Context, patientName string, doctorID int64) (*models.Appointment, error) {
	var appointment models.Appointment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doctor, found, err := getDoctor(tx, doctorID)
		if err != nil {
			return err
		}
		if !found {
			return &DoctorNotFoundError{ID: doctorID}
		}

		patient := models.Patient{Name: patientName}
		if err := tx.Create(&patient).Error; err != nil {
			return fmt.Errorf("insert patient: %w", err)
		}

		appointment = models.Appointment{
			DoctorID:  doctor.ID,
			PatientID: patient.ID,
			Date:      s.now().Format(models.DateLayout),
		}
		if err := tx.Omit(clause.Associations).Create(&appointment).Error; err != nil {
			return fmt.Errorf("insert appointment: %w", err)
		}

		appointment.Doctor = *doctor
		appointment.Patient = patient
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(component, "appointment booked", map[string]interface{}{
		"appointment_id": appointment.ID,
		"patient_id":     appointment.PatientID,
		"doctor_id":      appointment.DoctorID,
		"date":           appointment.Date,
	})
	return &appointment, nil
}

// ListScheduledAppointments joins every appointment with its doctor and
// patient, in appointment id order.
func (s *Store) ListScheduledAppointments(ctx context.Context) ([]models.AppointmentView, error) {
	var views []models.AppointmentView

	err := s.db.WithContext(ctx).
		Table("appointments").
		Select(`appointments.appointment_id AS appointment_id,
			doctors.name AS doctor_name,
			COALESCE(doctors.specialization, '') AS doctor_specialization,
			patients.name AS patient_name,
			appointments.appointment_date AS date`).
		Joins("JOIN doctors ON appointments.doctor_id = doctors.doctor_id").
		Joins("JOIN patients ON appointments.patient_id = patients.patient_id").
		Order("appointments.appointment_id").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return views, nil
}
