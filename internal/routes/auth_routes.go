package routes

import "github.com/gin-gonic/gin"

func AuthRoutes(r *gin.Engine, deps Deps) {
	r.POST("/login", deps.Auth.Login)
	r.GET("/health", deps.Health.Check)
}
