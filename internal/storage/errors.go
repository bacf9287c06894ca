package storage

import "fmt"

// DoctorNotFoundError is returned when a booking references an unknown doctor.
// Input carries the id as typed when it is too large to be stored at all.
type DoctorNotFoundError struct {
	ID    int64
	Input string
}

func (e *DoctorNotFoundError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("Doctor with ID %s not found.", e.Input)
	}
	return fmt.Sprintf("Doctor with ID %d not found.", e.ID)
}
