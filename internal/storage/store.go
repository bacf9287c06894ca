package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const component = "Storage"

// Store owns the doctors, patients and appointments tables of one SQLite file
type Store struct {
	db     *gorm.DB
	logger logger.Logger
	seed   []models.Doctor
	now    func() time.Time

	closeOnce sync.Once
	closeErr  error
}

type Option func(*Store)

// WithSeed replaces the doctors inserted into an empty database
func WithSeed(doctors []models.Doctor) Option {
	return func(s *Store) {
		s.seed = doctors
	}
}

// WithClock overrides the source of "today" for new appointments
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithSQLTrace routes every gorm statement to w. The zerolog adapter
// writes these at debug level.
func WithSQLTrace(w gormlogger.Writer) Option {
	return func(s *Store) {
		s.db.Logger = gormlogger.New(w, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Info,
			IgnoreRecordNotFoundError: true,
		})
	}
}

// Open opens (creating if needed) the database file at path
func Open(path string, log logger.Logger, opts ...Option) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	// one writer, and every handler runs on the UI thread anyway
	sqlDB.SetMaxOpenConns(1)

	s := &Store{
		db:     db,
		logger: log,
		seed:   models.DefaultDoctors,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	log.Info(component, "database opened", map[string]interface{}{
		"path": path,
	})

	return s, nil
}

// EnsureSchema creates the three tables if they are absent. Existing tables
// are left exactly as they are, including ones written by older versions of
// the booking program.
func (s *Store) EnsureSchema(ctx context.Context) error {
	tables := []interface{}{
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
	}

	migrator := s.db.WithContext(ctx).Migrator()
	created := 0
	for _, table := range tables {
		if migrator.HasTable(table) {
			continue
		}
		if err := migrator.CreateTable(table); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		created++
	}

	s.logger.Debug(component, "schema ensured", map[string]interface{}{
		"created_tables": created,
	})
	return nil
}

// SeedDefaultDoctorsIfEmpty inserts the seed list when the doctors table has
// no rows. It reports how many doctors were inserted.
func (s *Store) SeedDefaultDoctorsIfEmpty(ctx context.Context) (int, error) {
	inserted := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Doctor{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count doctors: %w", err)
		}
		if count > 0 || len(s.seed) == 0 {
			return nil
		}

		doctors := make([]models.Doctor, len(s.seed))
		for i, d := range s.seed {
			doctors[i] = models.Doctor{Name: d.Name, Specialization: d.Specialization}
		}
		if err := tx.Create(&doctors).Error; err != nil {
			return fmt.Errorf("insert default doctors: %w", err)
		}

		inserted = len(doctors)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.logger.Info(component, "default doctors seeded", map[string]interface{}{
			"count": inserted,
		})
	}
	return inserted, nil
}

func (s *Store) CountPatients(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Patient{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return n, nil
}

func (s *Store) CountAppointments(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Appointment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}

// Close releases the database handle. Later calls return the first result.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		sqlDB, err := s.db.DB()
		if err != nil {
			s.closeErr = err
			return
		}
		s.closeErr = sqlDB.Close()
		s.logger.Info(component, "database closed", nil)
	})
	return s.closeErr
}
