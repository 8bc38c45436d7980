package main

import (
	"log"
	"net/http"

	"github.com/madhu363/harvest-wheels-link/lib/config"
	"github.com/madhu363/harvest-wheels-link/lib/database"
	"github.com/madhu363/harvest-wheels-link/lib/middlewares/cors"
	"github.com/madhu363/harvest-wheels-link/lib/utils"
	"github.com/madhu363/harvest-wheels-link/services/booking/router"
	"github.com/madhu363/harvest-wheels-link/services/booking/service"

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

	redisClient, err := database.InitRedis()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	bookingService := service.NewBookingService(pool, redisClient)

	r := gin.Default()
	r.Use(cors.CORSMiddleware())
	router.SetupRouter(r, bookingService)

	server := &http.Server{
		Addr:    ":8084",
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	requestWriter, updateWriter := bookingService.Writers()
	utils.WaitForShutdown(server, requestWriter, updateWriter, redisClient)
}
