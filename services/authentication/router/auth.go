package router

import (
	"github.com/madhu363/harvest-wheels-link/lib/middlewares/auth"
	"github.com/madhu363/harvest-wheels-link/services/authentication/interfaces"

	"github.com/gin-gonic/gin"
)

func SetupRouter(router *gin.Engine, service interfaces.AuthService) {
	router.GET("/health", service.HealthCheck)

	user := router.Group("/user")
	{
		user.POST("/register", service.Register)
		user.POST("/login", service.Login)
		user.Use(auth.AuthInjectionMiddleware())
		{
			user.GET("/profile", service.GetProfile)
			user.PUT("/profile", service.UpdateProfile)
		}
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", service.AdminLogin)
	}
}
