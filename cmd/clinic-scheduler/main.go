package main

import (
	"context"
	"fmt"
	"os"

	"clinic-scheduler/internal/app"
	"clinic-scheduler/internal/config"
	"clinic-scheduler/internal/gui"
	"clinic-scheduler/internal/logger"
	"clinic-scheduler/internal/services"
	"clinic-scheduler/internal/shutdown"
	"clinic-scheduler/internal/storage"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// session is everything a command needs once the database is ready
type session struct {
	cfg       *config.Config
	logger    logger.Logger
	store     *storage.Store
	scheduler *services.SchedulingService
	shutdown  *shutdown.Manager
	seeded    int
}

// openStore is replaced in tests to observe the handle start opens
var openStore = storage.Open

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "clinic-scheduler: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clinic-scheduler",
		Short:         "Hospital appointment booking",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}
			return app.NewApplication(s.cfg, s.scheduler, s.shutdown, s.logger).Run()
		},
	}
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database file (overrides CLINIC_DB_PATH)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(doctorsCmd())
	rootCmd.AddCommand(appointmentsCmd())
	rootCmd.AddCommand(bookCmd())

	return rootCmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the tables and seed the default doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}
			defer s.shutdown.Shutdown()

			ctx := cmd.Context()
			patients, err := s.store.CountPatients(ctx)
			if err != nil {
				return err
			}
			appointments, err := s.store.CountAppointments(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database ready: %s\n", s.cfg.DBPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Doctors seeded: %d, patients: %d, appointments: %d\n", s.seeded, patients, appointments)
			return nil
		},
	}
}

func doctorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "List available doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}
			defer s.shutdown.Shutdown()

			doctors, err := s.scheduler.ListDoctors(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gui.FormatDoctors(doctors))
			return nil
		},
	}
}

func appointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "List scheduled appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd)
			if err != nil {
				return err
			}
			defer s.shutdown.Shutdown()

			views, err := s.scheduler.ListScheduledAppointments(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gui.FormatAppointments(views))
			return nil
		},
	}
}

func bookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Register a patient and book an appointment for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			doctorID, _ := cmd.Flags().GetString("doctor")

			s, err := start(cmd)
			if err != nil {
				return err
			}
			defer s.shutdown.Shutdown()

			appointment, err := s.scheduler.BookAppointment(cmd.Context(), name, doctorID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Appointment scheduled successfully. (appointment %d, patient %d, %s)\n",
				appointment.ID, appointment.PatientID, appointment.Date)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Patient name")
	cmd.Flags().String("doctor", "", "Doctor ID")
	return cmd
}

// start loads configuration, opens the database, ensures the schema and seeds
// the doctors. The storage handle is released again if any step fails.
func start(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DBPath = db
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := logger.ParseLevel(cfg.LogLevel, cfg.Debug)
	log := logger.New(level, cfg.LogJSON)
	shut := shutdown.NewManager(log)

	opts := []storage.Option{}
	if level == zerolog.DebugLevel {
		opts = append(opts, storage.WithSQLTrace(log))
	}

	store, err := openStore(cfg.DBPath, log, opts...)
	if err != nil {
		return nil, err
	}
	shut.Register("storage", store.Close)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := store.EnsureSchema(ctx); err != nil {
		shut.Shutdown()
		return nil, fmt.Errorf("cannot prepare database %s: %w", cfg.DBPath, err)
	}
	seeded, err := store.SeedDefaultDoctorsIfEmpty(ctx)
	if err != nil {
		shut.Shutdown()
		return nil, fmt.Errorf("cannot seed doctors: %w", err)
	}

	return &session{
		cfg:       cfg,
		logger:    log,
		store:     store,
		scheduler: services.NewSchedulingService(store, log),
		shutdown:  shut,
		seeded:    seeded,
	}, nil
}
