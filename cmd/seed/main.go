package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"fleetops/internal/app"
	"fleetops/internal/config"
	"fleetops/internal/domain"
	"fleetops/internal/logger"
	"fleetops/internal/repository"
	"fleetops/internal/repository/postgres"
)

// Seeds demo accounts (one per role, password "password123") and a small
// fleet for local development. Safe to run repeatedly: duplicates are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := app.NewDatabase(ctx, cfg.Database, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	userRepo := postgres.NewUserRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	driverRepo := postgres.NewDriverRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	users := []domain.User{
		{Email: "manager@fleetops.local", Role: domain.RoleManager},
		{Email: "dispatcher@fleetops.local", Role: domain.RoleDispatcher},
		{Email: "analyst@fleetops.local", Role: domain.RoleFinancialAnalyst},
		{Email: "safety@fleetops.local", Role: domain.RoleSafetyOfficer},
	}
	for _, u := range users {
		u.ID = uuid.New().String()
		u.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, &u); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				log.Debug().Str("email", u.Email).Msg("user already seeded")
				continue
			}
			log.Fatal().Err(err).Str("email", u.Email).Msg("failed to seed user")
		}
		log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("seeded user")
	}

	vehicles := []domain.Vehicle{
		{VehicleID: "VH-001", Model: "Volvo FH16", LicensePlate: "FLT-1001", MaxCapacity: 25000, Odometer: 182400, Status: domain.VehicleStatusAvailable},
		{VehicleID: "VH-002", Model: "Scania R500", LicensePlate: "FLT-1002", MaxCapacity: 22000, Odometer: 95100, Status: domain.VehicleStatusAvailable},
		{VehicleID: "VH-003", Model: "Mercedes Actros", LicensePlate: "FLT-1003", MaxCapacity: 18000, Odometer: 240800, Status: domain.VehicleStatusInShop},
	}
	for _, v := range vehicles {
		v.ID = uuid.New().String()
		if err := vehicleRepo.Create(ctx, &v); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				log.Debug().Str("vehicle_id", v.VehicleID).Msg("vehicle already seeded")
				continue
			}
			log.Fatal().Err(err).Str("vehicle_id", v.VehicleID).Msg("failed to seed vehicle")
		}
		log.Info().Str("vehicle_id", v.VehicleID).Msg("seeded vehicle")
	}

	nextYear := time.Now().AddDate(1, 0, 0)
	drivers := []domain.Driver{
		{DriverID: "DR-001", Name: "Elena Vasquez", LicenseType: "CDL-A", LicenseExpiry: nextYear, Status: domain.DriverStatusOnDuty, SafetyScore: 96},
		{DriverID: "DR-002", Name: "Marcus Cole", LicenseType: "CDL-A", LicenseExpiry: nextYear, Status: domain.DriverStatusOnDuty, SafetyScore: 88},
		{DriverID: "DR-003", Name: "Priya Nair", LicenseType: "CDL-B", LicenseExpiry: nextYear.AddDate(1, 0, 0), Status: domain.DriverStatusOffDuty, SafetyScore: 100},
	}
	for _, d := range drivers {
		d.ID = uuid.New().String()
		if err := driverRepo.Create(ctx, &d); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				log.Debug().Str("driver_id", d.DriverID).Msg("driver already seeded")
				continue
			}
			log.Fatal().Err(err).Str("driver_id", d.DriverID).Msg("failed to seed driver")
		}
		log.Info().Str("driver_id", d.DriverID).Msg("seeded driver")
	}

	log.Info().Msg("seed complete")
}
