package routes

import "github.com/gin-gonic/gin"

// MaintenanceRoutes registers repair requests and technical inspections.
func MaintenanceRoutes(authed, admin *gin.RouterGroup, deps Deps) {
	authed.GET("/all_requests", deps.Requests.List)
	authed.GET("/request/:request_id", deps.Requests.Get)

	admin.POST("/add_request", deps.Requests.Create)
	admin.PUT("/update_request/:request_id", deps.Requests.Update)
	admin.DELETE("/delete_request/:request_id", deps.Requests.Delete)

	authed.GET("/all_inspections", deps.Inspections.List)
	authed.GET("/inspection/:inspection_id", deps.Inspections.Get)

	admin.POST("/add_inspection", deps.Inspections.Create)
	admin.PUT("/update_inspection/:inspection_id", deps.Inspections.Update)
	admin.DELETE("/delete_inspection/:inspection_id", deps.Inspections.Delete)
}
