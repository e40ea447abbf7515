package routes

import "github.com/gin-gonic/gin"

func UserRoutes(authed, admin *gin.RouterGroup, deps Deps) {
	authed.GET("/all_users", deps.Users.List)
	authed.GET("/user/:user_id", deps.Users.Get)

	admin.POST("/add_user", deps.Users.Create)
	admin.PUT("/update_user/:user_id", deps.Users.Update)
	admin.DELETE("/delete_user/:user_id", deps.Users.Delete)
}
