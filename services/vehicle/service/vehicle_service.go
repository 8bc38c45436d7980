package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/services/vehicle/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

const vehicleGeoKey = "vehicle_locations"

type VehicleService struct {
	pool        *pgxpool.Pool
	redisClient *redis.Client
}

func NewVehicleService(pool *pgxpool.Pool, redisClient *redis.Client) interfaces.VehicleService {
	return &VehicleService{pool: pool, redisClient: redisClient}
}

const vehicleColumns = `id, owner_id, name, type, description, price_per_hour,
	location, latitude, longitude, is_available, image_url, created_at, updated_at`

func scanVehicle(row pgx.Row) (models.Vehicle, error) {
	var v models.Vehicle
	var description, imageURL pgtype.Text
	var lat, lon pgtype.Float8
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Type, &description, &v.PricePerHour,
		&v.Location, &lat, &lon, &v.IsAvailable, &imageURL, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return models.Vehicle{}, err
	}
	v.Description = description.String
	v.ImageURL = imageURL.String
	if lat.Status == pgtype.Present && lon.Status == pgtype.Present {
		v.Position = &models.GeoPoint{Latitude: lat.Float, Longitude: lon.Float}
	}
	return v, nil
}

func (s *VehicleService) queryVehicles(ctx context.Context, sql string, args ...interface{}) ([]models.Vehicle, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (s *VehicleService) HandleAvailableVehicles(c *gin.Context) {
	vehicles, err := s.queryVehicles(c.Request.Context(),
		"SELECT "+vehicleColumns+" FROM vehicles WHERE is_available = true ORDER BY created_at DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (s *VehicleService) HandleNearbyVehicles(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	radius := 50.0
	if r := c.Query("radius"); r != "" {
		parsed, err := strconv.ParseFloat(r, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		radius = parsed
	}

	nearby, err := s.redisClient.GeoRadius(c.Request.Context(), vehicleGeoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radius,
		Unit:   "km",
	}).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error searching nearby vehicles"})
		return
	}

	if len(nearby) == 0 {
		c.JSON(http.StatusOK, gin.H{"vehicles": []models.Vehicle{}})
		return
	}

	ids := make([]string, 0, len(nearby))
	for _, loc := range nearby {
		ids = append(ids, loc.Name)
	}

	vehicles, err := s.queryVehicles(c.Request.Context(),
		"SELECT "+vehicleColumns+" FROM vehicles WHERE id = ANY($1) AND is_available = true", ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func (s *VehicleService) HandleMyVehicles(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	owner := authUser.(models.UserRequest)

	vehicles, err := s.queryVehicles(c.Request.Context(),
		"SELECT "+vehicleColumns+" FROM vehicles WHERE owner_id = $1 ORDER BY created_at DESC", owner.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

type vehicleInput struct {
	Name         string           `json:"name" binding:"required"`
	Type         string           `json:"type" binding:"required"`
	Description  string           `json:"description,omitempty"`
	PricePerHour float64          `json:"price_per_hour" binding:"required"`
	Location     string           `json:"location" binding:"required"`
	Position     *models.GeoPoint `json:"position,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
}

func (s *VehicleService) HandleCreateVehicle(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	owner := authUser.(models.UserRequest)

	var input vehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if reason := validateVehicleInput(input.PricePerHour, input.Position); reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	vehicleID := uuid.NewString()
	var lat, lon interface{}
	if input.Position != nil {
		lat, lon = input.Position.Latitude, input.Position.Longitude
	}

	_, err := s.pool.Exec(c.Request.Context(),
		`INSERT INTO vehicles (id, owner_id, name, type, description, price_per_hour,
			location, latitude, longitude, is_available, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, $10)`,
		vehicleID, owner.UserID, input.Name, input.Type, input.Description,
		input.PricePerHour, input.Location, lat, lon, input.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating vehicle", "message": err.Error()})
		return
	}

	if input.Position != nil {
		if err := s.redisClient.GeoAdd(c.Request.Context(), vehicleGeoKey, &redis.GeoLocation{
			Name:      vehicleID,
			Latitude:  input.Position.Latitude,
			Longitude: input.Position.Longitude,
		}).Err(); err != nil {
			log.Printf("Error adding vehicle %s to geo index: %v", vehicleID, err)
		}
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vehicle created", "id": vehicleID})
}

func (s *VehicleService) HandleToggleAvailability(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	owner := authUser.(models.UserRequest)
	vehicleID := c.Param("id")

	var isAvailable bool
	err := s.pool.QueryRow(c.Request.Context(),
		`UPDATE vehicles SET is_available = NOT is_available, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2 RETURNING is_available`,
		vehicleID, owner.UserID).Scan(&isAvailable)
	if err == pgx.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating vehicle"})
		return
	}

	s.invalidateSnapshot(vehicleID)

	c.JSON(http.StatusOK, gin.H{"id": vehicleID, "is_available": isAvailable})
}

func (s *VehicleService) HandleDeleteVehicle(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	owner := authUser.(models.UserRequest)
	vehicleID := c.Param("id")

	comm, err := s.pool.Exec(c.Request.Context(),
		"DELETE FROM vehicles WHERE id = $1 AND owner_id = $2", vehicleID, owner.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error deleting vehicle"})
		return
	}
	if comm.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	if err := s.redisClient.ZRem(c.Request.Context(), vehicleGeoKey, vehicleID).Err(); err != nil {
		log.Printf("Error removing vehicle %s from geo index: %v", vehicleID, err)
	}
	s.invalidateSnapshot(vehicleID)

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}

// invalidateSnapshot drops the cached snapshot the booking service reads
// through, so price and availability changes are seen within one fetch.
func (s *VehicleService) invalidateSnapshot(vehicleID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Del(ctx, snapshotKey(vehicleID)).Err(); err != nil {
		log.Printf("Error invalidating snapshot for vehicle %s: %v", vehicleID, err)
	}
}

func snapshotKey(vehicleID string) string {
	return fmt.Sprintf("%s-snap", vehicleID)
}
