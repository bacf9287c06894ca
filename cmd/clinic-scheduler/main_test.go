package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/services"
	"clinic-scheduler/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands_AgainstFreshDatabase(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "hospital.db")

	out, err := run(t, "init", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Database ready: "+db)
	assert.Contains(t, out, "Doctors seeded: 5, patients: 0, appointments: 0")

	out, err = run(t, "init", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Doctors seeded: 0, patients: 0, appointments: 0")

	out, err = run(t, "doctors", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1: Dr. Vinod kumar (Cardiology)")
	assert.Contains(t, out, "5: Dr. Michael Pawar (Ophthalmology)")

	out, err = run(t, "appointments", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No appointments scheduled.")

	out, err = run(t, "book", "--db", db, "--name", "Alice", "--doctor", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Appointment scheduled successfully. (appointment 1, patient 1,")

	out, err = run(t, "appointments", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Appointment ID: 1")
	assert.Contains(t, out, "Doctor: Dr. David Pandey (Orthopedics)")
	assert.Contains(t, out, "Patient: Alice")
}

func TestBook_RejectsBadInput(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "hospital.db")

	_, err := run(t, "book", "--db", db, "--doctor", "1")
	assert.ErrorIs(t, err, services.ErrMissingInput)

	_, err = run(t, "book", "--db", db, "--name", "Alice", "--doctor", "9999")
	var notFound *storage.DoctorNotFoundError
	assert.ErrorAs(t, err, &notFound)

	out, err := run(t, "appointments", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No appointments scheduled.")
}

func TestStart_SchemaFailureReleasesStore(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	db := filepath.Join(t.TempDir(), "hospital.db")

	// A view squatting on a table name makes table creation fail.
	raw, err := gorm.Open(sqlite.Open(db), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, raw.Exec(`CREATE VIEW patients AS SELECT 1 AS patient_id`).Error)
	sqlDB, err := raw.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	var opened *storage.Store
	original := openStore
	openStore = func(path string, log logger.Logger, opts ...storage.Option) (*storage.Store, error) {
		s, err := original(path, log, opts...)
		opened = s
		return s, err
	}
	t.Cleanup(func() { openStore = original })

	_, err = run(t, "doctors", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot prepare database "+db)

	require.NotNil(t, opened)
	_, err = opened.ListDoctors(context.Background())
	assert.ErrorContains(t, err, "database is closed")
}
