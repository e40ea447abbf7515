package routes

import "github.com/gin-gonic/gin"

// StaffRoutes registers mechanics and drivers.
func StaffRoutes(authed, admin *gin.RouterGroup, deps Deps) {
	authed.GET("/all_mecs", deps.Mechanics.List)
	authed.GET("/mec/:passport_number", deps.Mechanics.Get)

	admin.POST("/add_mec", deps.Mechanics.Create)
	admin.PUT("/update_mec/:passport_number", deps.Mechanics.Update)
	admin.DELETE("/delete_mec/:passport_number", deps.Mechanics.Delete)

	authed.GET("/all_drivers", deps.Drivers.List)
	authed.GET("/driver/:passport_number", deps.Drivers.Get)

	admin.POST("/add_driver", deps.Drivers.Create)
	admin.PUT("/update_driver/:passport_number", deps.Drivers.Update)
	admin.DELETE("/delete_driver/:passport_number", deps.Drivers.Delete)
}
