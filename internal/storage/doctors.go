package storage

import (
	"context"
	"errors"
	"fmt"

	"clinic-scheduler/internal/models"

	"gorm.io/gorm"
)

// ListDoctors returns every doctor in id order
func (s *Store) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.WithContext(ctx).Order("doctor_id").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

// GetDoctor looks a doctor up by id. A missing doctor is reported through
// the bool, not the error.
func (s *Store) GetDoctor(ctx context.Context, id int64) (*models.Doctor, bool, error) {
	return getDoctor(s.db.WithContext(ctx), id)
}

func getDoctor(db *gorm.DB, id int64) (*models.Doctor, bool, error) {
	var doctor models.Doctor
	err := db.Where("doctor_id = ?", id).Take(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get doctor %d: %w", id, err)
	}
	return &doctor, true, nil
}
