package services

import (
	"errors"

	"clinic-scheduler/internal/storage"
)

// IsUserError reports whether err is an input or lookup problem the user can
// fix, as opposed to a storage fault.
func IsUserError(err error) bool {
	if errors.Is(err, ErrMissingInput) || errors.Is(err, ErrInvalidDoctorID) {
		return true
	}
	var notFound *storage.DoctorNotFoundError
	return errors.As(err, &notFound)
}
