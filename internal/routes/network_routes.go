package routes

import "github.com/gin-gonic/gin"

// NetworkRoutes registers routes, stops and the two junction relations.
func NetworkRoutes(authed, admin *gin.RouterGroup, deps Deps) {
	authed.GET("/all_routes", deps.Routes.List)
	authed.GET("/route/:route_number", deps.Routes.Get)

	admin.POST("/add_route", deps.Routes.Create)
	admin.PUT("/update_route/:route_number", deps.Routes.Update)
	admin.DELETE("/delete_route/:route_number", deps.Routes.Delete)

	authed.GET("/all_stops", deps.Stops.List)
	authed.GET("/stop/:latitude/:longitude", deps.Stops.Get)

	admin.POST("/add_stop", deps.Stops.Create)
	admin.PUT("/update_stop/:latitude/:longitude", deps.Stops.Update)
	admin.DELETE("/delete_stop/:latitude/:longitude", deps.Stops.Delete)

	authed.GET("/all_route_stops", deps.RouteStops.List)
	admin.POST("/add_route_stop", deps.RouteStops.Create)
	admin.DELETE("/delete_route_stop/:latitude/:longitude/:route_number", deps.RouteStops.Delete)

	authed.GET("/all_stop_times", deps.StopTimes.List)
	admin.POST("/add_stop_time", deps.StopTimes.Create)
	admin.DELETE("/delete_stop_time/:latitude/:longitude/:route_number", deps.StopTimes.Delete)
}
