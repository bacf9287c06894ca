package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/models"
	"clinic-scheduler/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrMissingInput    = errors.New("Please enter patient name and doctor ID.")
	ErrInvalidDoctorID = errors.New("Doctor ID must be a valid number.")
)

// Repository is the storage the scheduler books against
type Repository interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	BookAppointment(ctx context.Context, patientName string, doctorID int64) (*models.Appointment, error)
	ListScheduledAppointments(ctx context.Context) ([]models.AppointmentView, error)
}

// Scheduler is what the window and the CLI call. It takes raw form text.
type Scheduler interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	BookAppointment(ctx context.Context, patientName, doctorID string) (*models.Appointment, error)
	ListScheduledAppointments(ctx context.Context) ([]models.AppointmentView, error)
}

type bookingRequest struct {
	PatientName string `validate:"required"`
	DoctorID    string `validate:"required"`
}

type SchedulingService struct {
	repo     Repository
	logger   logger.Logger
	validate *validator.Validate
}

func NewSchedulingService(repo Repository, log logger.Logger) *SchedulingService {
	return &SchedulingService{
		repo:     repo,
		logger:   log,
		validate: validator.New(),
	}
}

func (s *SchedulingService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	done := s.trace("list_doctors")

	doctors, err := s.repo.ListDoctors(ctx)
	done(err, map[string]interface{}{"count": len(doctors)})
	return doctors, err
}

// BookAppointment validates the form input and books today's appointment.
// Validation and unknown-doctor failures leave storage untouched.
func (s *SchedulingService) BookAppointment(ctx context.Context, patientName, doctorID string) (*models.Appointment, error) {
	done := s.trace("book_appointment")

	req := bookingRequest{
		PatientName: strings.TrimSpace(patientName),
		DoctorID:    strings.TrimSpace(doctorID),
	}
	if err := s.validate.Struct(req); err != nil {
		done(ErrMissingInput, nil)
		return nil, ErrMissingInput
	}

	id, err := strconv.ParseInt(req.DoctorID, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// a well-formed id beyond int64 cannot match any stored doctor
		notFound := &storage.DoctorNotFoundError{Input: req.DoctorID}
		done(notFound, map[string]interface{}{"doctor_id": req.DoctorID})
		return nil, notFound
	}
	if err != nil {
		done(ErrInvalidDoctorID, map[string]interface{}{"doctor_id": req.DoctorID})
		return nil, ErrInvalidDoctorID
	}

	appointment, err := s.repo.BookAppointment(ctx, req.PatientName, id)
	if err != nil {
		done(err, map[string]interface{}{"doctor_id": id})
		return nil, err
	}

	done(nil, map[string]interface{}{
		"appointment_id": appointment.ID,
		"doctor_id":      id,
	})
	return appointment, nil
}

func (s *SchedulingService) ListScheduledAppointments(ctx context.Context) ([]models.AppointmentView, error) {
	done := s.trace("list_appointments")

	views, err := s.repo.ListScheduledAppointments(ctx)
	done(err, map[string]interface{}{"count": len(views)})
	return views, err
}

// trace tags one operation with a correlation id and logs its outcome
func (s *SchedulingService) trace(operation string) func(error, map[string]interface{}) {
	opID := uuid.NewString()
	start := time.Now()

	s.logger.Debug("Scheduler", "operation started", map[string]interface{}{
		"operation": operation,
		"op_id":     opID,
	})

	return func(err error, fields map[string]interface{}) {
		if fields == nil {
			fields = make(map[string]interface{})
		}
		fields["operation"] = operation
		fields["op_id"] = opID
		fields["duration_ms"] = time.Since(start).Milliseconds()

		if err == nil {
			s.logger.Info("Scheduler", "operation completed", fields)
			return
		}
		if IsUserError(err) {
			fields["reason"] = err.Error()
			s.logger.Warning("Scheduler", "operation rejected", fields)
			return
		}
		s.logger.Error("Scheduler", fmt.Errorf("%s: %w", operation, err), fields)
	}
}
