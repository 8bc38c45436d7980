package router

import (
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/middlewares/auth"
	"github.com/madhu363/harvest-wheels-link/services/notification/interfaces"

	"github.com/gin-gonic/gin"
)

func SetupRouter(router *gin.Engine, service interfaces.NotificationInterface) {
	router.GET("/ws", service.HandleWebSocket)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	notifications := router.Group("/notifications")
	notifications.Use(auth.AuthInjectionMiddleware())
	{
		notifications.GET("/history", service.HandleNotificationHistory)
	}
}
