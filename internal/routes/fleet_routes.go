package routes

import "github.com/gin-gonic/gin"

// FleetRoutes registers companies, buses and trips.
func FleetRoutes(authed, admin *gin.RouterGroup, deps Deps) {
	authed.GET("/all_companies", deps.Companies.List)
	authed.GET("/company/:id_company", deps.Companies.Get)

	admin.POST("/add_company", deps.Companies.Create)
	admin.PUT("/update_company/:id_company", deps.Companies.Update)
	admin.DELETE("/delete_company/:id_company", deps.Companies.Delete)

	authed.GET("/all_buses", deps.Buses.List)
	authed.GET("/bus/:gos_num", deps.Buses.Get)

	admin.POST("/add_bus", deps.Buses.Create)
	admin.PUT("/update_bus/:gos_num", deps.Buses.Update)
	admin.DELETE("/delete_bus/:gos_num", deps.Buses.Delete)

	authed.GET("/all_trips", deps.Trips.List)
	authed.GET("/trip/:trip_id", deps.Trips.Get)

	admin.POST("/add_trip", deps.Trips.Create)
	admin.PUT("/update_trip/:trip_id", deps.Trips.Update)
	admin.DELETE("/delete_trip/:trip_id", deps.Trips.Delete)
}
