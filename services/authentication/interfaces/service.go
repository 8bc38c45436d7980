package interfaces

import (
	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	AdminLogin(c *gin.Context)
	HealthCheck(c *gin.Context)
}
