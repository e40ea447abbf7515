package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"bus_depot/internal/auth"
	"bus_depot/internal/config"
	"bus_depot/internal/controllers"
	"bus_depot/internal/logger"
	"bus_depot/internal/middleware"
	"bus_depot/internal/models"
	"bus_depot/internal/repository"
	"bus_depot/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Setup(cfg.LogFile)

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	if err := seedAdmin(userRepo, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	deps := routes.Deps{
		Auth:        controllers.NewAuthController(userRepo, tokens),
		Health:      controllers.NewHealthController(db),
		Users:       controllers.NewUserController(userRepo),
		Mechanics:   controllers.NewMechanicController(repository.NewMechanicRepository(db)),
		Companies:   controllers.NewCompanyController(repository.NewCompanyRepository(db)),
		Routes:      controllers.NewRouteController(repository.NewRouteRepository(db)),
		Stops:       controllers.NewStopController(repository.NewStopRepository(db)),
		Drivers:     controllers.NewDriverController(repository.NewDriverRepository(db)),
		Buses:       controllers.NewBusController(repository.NewBusRepository(db)),
		Requests:    controllers.NewRepairRequestController(repository.NewRepairRequestRepository(db)),
		Inspections: controllers.NewInspectionController(repository.NewTechnicalInspectionRepository(db)),
		Trips:       controllers.NewTripController(repository.NewTripRepository(db)),
		RouteStops:  controllers.NewRouteStopController(repository.NewRouteStopRepository(db)),
		StopTimes:   controllers.NewStopTimeController(repository.NewStopTimeRepository(db)),

		RequireAuth:  middleware.RequireAuth(tokens, userRepo),
		RequireAdmin: middleware.RequireAdmin(),
	}

	r := routes.SetupRouter(deps)

	log.Printf("🚀 Server running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

// seedAdmin creates the bootstrap admin account when one is configured
// and missing. Without it a fresh database has no identity that can pass
// the admin gate.
func seedAdmin(users *repository.UserRepository, cfg config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	_, err := users.GetByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		FirstName: "Admin",
		LastName:  "Admin",
		Email:     cfg.AdminEmail,
		Password:  hashed,
		IsAdmin:   true,
	}
	if err := users.Create(ctx, &admin); err != nil {
		return err
	}
	log.Printf("seeded admin account %s", cfg.AdminEmail)
	return nil
}
