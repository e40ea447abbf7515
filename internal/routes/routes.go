package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"bus_depot/internal/controllers"
	"bus_depot/internal/middleware"
)

// Deps carries every controller plus the two auth middlewares. Built in
// main and threaded through the registration functions; no globals.
type Deps struct {
	Auth        *controllers.AuthController
	Health      *controllers.HealthController
	Users       *controllers.UserController
	Mechanics   *controllers.MechanicController
	Companies   *controllers.CompanyController
	Routes      *controllers.RouteController
	Stops       *controllers.StopController
	Drivers     *controllers.DriverController
	Buses       *controllers.BusController
	Requests    *controllers.RepairRequestController
	Inspections *controllers.InspectionController
	Trips       *controllers.TripController
	RouteStops  *controllers.RouteStopController
	StopTimes   *controllers.StopTimeController

	RequireAuth  gin.HandlerFunc
	RequireAdmin gin.HandlerFunc
}

// SetupRouter builds the engine: recovery, request logging, CORS, then
// the full route table. Reads sit behind RequireAuth; every mutation
// additionally passes the admin gate.
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(middleware.EnableCORS())

	AuthRoutes(r, deps)

	authed := r.Group("", deps.RequireAuth)
	admin := authed.Group("", deps.RequireAdmin)

	UserRoutes(authed, admin, deps)
	StaffRoutes(authed, admin, deps)
	FleetRoutes(authed, admin, deps)
	NetworkRoutes(authed, admin, deps)
	MaintenanceRoutes(authed, admin, deps)

	return r
}
