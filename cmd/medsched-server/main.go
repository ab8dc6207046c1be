package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medsched/medsched/internal/config"
	"github.com/medsched/medsched/internal/domain/appointment"
	"github.com/medsched/medsched/internal/domain/doctor"
	"github.com/medsched/medsched/internal/domain/patient"
	"github.com/medsched/medsched/internal/platform/db"
	"github.com/medsched/medsched/internal/platform/mail"
	"github.com/medsched/medsched/internal/platform/middleware"
	"github.com/medsched/medsched/internal/platform/web"
)

// patientDirectory adapts the patient repository to the booking engine's
// lookup interface, avoiding a circular import between the appointment and
// patient packages.
type patientDirectory struct {
	repo patient.Repository
}

func (d *patientDirectory) GetPatient(ctx context.Context, id uuid.UUID) (*appointment.PatientInfo, error) {
	p, err := d.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, appointment.ErrNotFound
		}
		return nil, err
	}
	return &appointment.PatientInfo{ID: p.ID, Name: p.Name, Email: p.Email}, nil
}

// doctorDirectory adapts the doctor repository likewise, loading the
// doctor's agendas for the availability check.
type doctorDirectory struct {
	repo doctor.Repository
}

func (d *doctorDirectory) GetDoctor(ctx context.Context, id uuid.UUID) (*appointment.DoctorInfo, error) {
	doc, err := d.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			return nil, appointment.ErrNotFound
		}
		return nil, err
	}
	agendas, err := d.repo.ListAgendasByDoctor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &appointment.DoctorInfo{
		ID:        doc.ID,
		Name:      doc.Name,
		Specialty: doc.Specialty,
		Price:     doc.AppointmentPrice,
		Agendas:   agendas,
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "medsched-server",
		Short: "Medical appointment scheduling API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = web.NewValidator()
	e.HTTPErrorHandler = web.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", db.HealthHandler(pool))

	// Mail
	mailer := mail.NewSender(mail.Config{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUser,
		Password: cfg.MailPass,
		From:     cfg.MailFrom,
		Enabled:  cfg.MailEnabled,
	}, logger)

	// Domains
	api := e.Group("/api")

	patientRepo := patient.NewRepoPG(pool)
	patientSvc := patient.NewService(patientRepo)
	patient.NewHandler(patientSvc).RegisterRoutes(api)

	doctorRepo := doctor.NewRepoPG(pool)
	doctorSvc := doctor.NewService(doctorRepo)
	doctor.NewHandler(doctorSvc).RegisterRoutes(api)

	appointmentRepo := appointment.NewRepoPG(pool)
	appointmentSvc := appointment.NewService(
		appointmentRepo,
		&patientDirectory{repo: patientRepo},
		&doctorDirectory{repo: doctorRepo},
		mailer,
		logger,
	)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
