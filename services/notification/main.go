package main

import (
	"context"
	"log"
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/config"
	"github.com/madhu363/harvest-wheels-link/lib/database"
	"github.com/madhu363/harvest-wheels-link/lib/middlewares/cors"
	"github.com/madhu363/harvest-wheels-link/services/notification/router"
	"github.com/madhu363/harvest-wheels-link/services/notification/service"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mongoClient, err := database.InitMongoDB()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	notificationService := service.NewNotificationService(mongoClient)

	r := gin.Default()
	r.Use(cors.CORSMiddleware())
	router.SetupRouter(r, notificationService)

	go notificationService.ConsumeBookingRequests()
	go notificationService.ConsumeBookingUpdates()

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	notificationService.GracefulShutdown(server)
}
