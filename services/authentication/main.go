package main

import (
	"log"
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/config"
	"github.com/madhu363/harvest-wheels-link/lib/database"
	"github.com/madhu363/harvest-wheels-link/lib/middlewares/cors"
	"github.com/madhu363/harvest-wheels-link/lib/utils"
	"github.com/madhu363/harvest-wheels-link/services/authentication/router"
	"github.com/madhu363/harvest-wheels-link/services/authentication/service"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.NewPostgresPool()
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	authService := service.NewAuthService(pool)

	r := gin.Default()
	r.Use(cors.CORSMiddleware())
	router.SetupRouter(r, authService)

	server := &http.Server{
		Addr:    ":8081",
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	utils.WaitForShutdown(server)
}
