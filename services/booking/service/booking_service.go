package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/services/booking/interfaces"

	kafkaConfig "github.com/madhu363/harvest-wheels-link/lib/kafka"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

var _ interfaces.BookingService = (*BookingService)(nil)

type BookingService struct {
	pool          *pgxpool.Pool
	redisClient   *redis.Client
	requestWriter *kafka.Writer
	updateWriter  *kafka.Writer
}

func NewBookingService(pool *pgxpool.Pool, redisClient *redis.Client) *BookingService {
	return &BookingService{
		pool:          pool,
		redisClient:   redisClient,
		requestWriter: kafkaConfig.InitKafkaWriter("booking_requests"),
		updateWriter:  kafkaConfig.InitKafkaWriter("booking_updates"),
	}
}

func (s *BookingService) Writers() (*kafka.Writer, *kafka.Writer) {
	return s.requestWriter, s.updateWriter
}

func (s *BookingService) HandleCreateBooking(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	farmer := authUser.(models.UserRequest)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if reason := validateBookingInput(input, time.Now()); reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	snapshot, err := s.GetVehicleSnapshot(c.Request.Context(), input.VehicleID)
	if err == pgx.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching vehicle"})
		return
	}

	booking := models.Booking{
		ID:            uuid.NewString(),
		FarmerID:      farmer.UserID,
		VehicleID:     input.VehicleID,
		VehicleName:   snapshot.Name,
		Date:          input.Date,
		Time:          input.Time,
		Duration:      input.Duration,
		FieldLocation: input.FieldLocation,
		FieldPosition: input.FieldPosition,
		Task:          input.Task,
		Status:        models.BookingStatusPending,
		TotalAmount:   computeTotalAmount(snapshot.PricePerHour, input.Duration),
		Notes:         input.Notes,
	}

	var fieldLat, fieldLon interface{}
	if input.FieldPosition != nil {
		fieldLat, fieldLon = input.FieldPosition.Latitude, input.FieldPosition.Longitude
	}

	err = s.pool.QueryRow(c.Request.Context(),
		`INSERT INTO bookings (id, farmer_id, vehicle_id, date, time, duration,
			field_location, field_latitude, field_longitude, task, status, total_amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`,
		booking.ID, booking.FarmerID, booking.VehicleID, booking.Date, booking.Time,
		booking.Duration, booking.FieldLocation, fieldLat, fieldLon, booking.Task,
		booking.Status, booking.TotalAmount, booking.Notes).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating booking", "message": err.Error()})
		return
	}

	// Notifications are best-effort; the booking row is already committed.
	go s.ProduceBookingRequestEvent(booking, snapshot, farmer)

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (s *BookingService) ProduceBookingRequestEvent(booking models.Booking, snapshot models.VehicleSnapshot, farmer models.UserRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var ownerEmail string
	var ownerMobile, farmerMobile pgtype.Text
	err := s.pool.QueryRow(ctx,
		"SELECT email, mobile_number FROM profiles WHERE id = $1", snapshot.OwnerID).
		Scan(&ownerEmail, &ownerMobile)
	if err != nil {
		log.Printf("Error fetching owner contact for booking %s: %v", booking.ID, err)
		return
	}

	err = s.pool.QueryRow(ctx,
		"SELECT mobile_number FROM profiles WHERE id = $1", booking.FarmerID).
		Scan(&farmerMobile)
	if err != nil {
		log.Printf("Error fetching farmer contact for booking %s: %v", booking.ID, err)
		return
	}

	event := models.BookingRequestNotification{
		BookingID:     booking.ID,
		VehicleID:     booking.VehicleID,
		VehicleName:   snapshot.Name,
		OwnerID:       snapshot.OwnerID,
		OwnerEmail:    ownerEmail,
		OwnerMobile:   ownerMobile.String,
		FarmerID:      booking.FarmerID,
		FarmerName:    farmer.UserName,
		FarmerMobile:  farmerMobile.String,
		Task:          booking.Task,
		Date:          booking.Date,
		Time:          booking.Time,
		Duration:      booking.Duration,
		FieldLocation: booking.FieldLocation,
		TotalAmount:   booking.TotalAmount,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling booking request event: %v", err)
		return
	}

	if err := s.requestWriter.WriteMessages(ctx, kafka.Message{Value: eventJSON}); err != nil {
		log.Printf("Error writing booking request event: %v", err)
	}
}

func (s *BookingService) HandleFarmerBookings(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	farmer := authUser.(models.UserRequest)

	rows, err := s.pool.Query(c.Request.Context(),
		`SELECT b.id, b.farmer_id, b.vehicle_id, COALESCE(v.name, ''), b.date, b.time,
			b.duration, b.field_location, b.task, b.status, b.total_amount, b.notes,
			b.created_at, b.updated_at
		FROM bookings b
		LEFT JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.farmer_id = $1
		ORDER BY b.created_at DESC`, farmer.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching booking history"})
		return
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading booking history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (s *BookingService) HandleOwnerPendingBookings(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	owner := authUser.(models.UserRequest)

	rows, err := s.pool.Query(c.Request.Context(),
		`SELECT b.id, b.farmer_id, b.vehicle_id, v.name, b.date, b.time,
			b.duration, b.field_location, b.task, b.status, b.total_amount, b.notes,
			b.created_at, b.updated_at, p.name
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		JOIN profiles p ON p.id = b.farmer_id
		WHERE v.owner_id = $1 AND b.status = $2
		ORDER BY b.created_at ASC`, owner.UserID, models.BookingStatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching booking requests"})
		return
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var notes pgtype.Text
		if err := rows.Scan(&b.ID, &b.FarmerID, &b.VehicleID, &b.VehicleName, &b.Date,
			&b.Time, &b.Duration, &b.FieldLocation, &b.Task, &b.Status, &b.TotalAmount,
			&notes, &b.CreatedAt, &b.UpdatedAt, &b.FarmerName); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error reading booking requests"})
			return
		}
		b.Notes = notes.String
		bookings = append(bookings, b)
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (s *BookingService) HandleBookingAction(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	owner := authUser.(models.UserRequest)
	bookingID := c.Param("id")

	var req struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if reason := validateStatusAction(req.Action); reason != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	// Plain status flip scoped to the vehicle owner. No guard on the current
	// status: concurrent actions race and the last write wins.
	comm, err := s.pool.Exec(c.Request.Context(),
		`UPDATE bookings SET status = $1, updated_at = NOW()
		FROM vehicles
		WHERE bookings.id = $2 AND bookings.vehicle_id = vehicles.id AND vehicles.owner_id = $3`,
		req.Action, bookingID, owner.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating booking"})
		return
	}
	if comm.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	go s.ProduceBookingStatusEvent(bookingID, req.Action)

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Booking %s", req.Action)})
}

func (s *BookingService) ProduceBookingStatusEvent(bookingID, status string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var event models.BookingStatusNotification
	var farmerMobile pgtype.Text
	err := s.pool.QueryRow(ctx,
		`SELECT b.farmer_id, p.mobile_number, v.name
		FROM bookings b
		JOIN profiles p ON p.id = b.farmer_id
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.id = $1`, bookingID).
		Scan(&event.FarmerID, &farmerMobile, &event.VehicleName)
	if err != nil {
		log.Printf("Error fetching booking %s for status event: %v", bookingID, err)
		return
	}

	event.BookingID = bookingID
	event.FarmerMobile = farmerMobile.String
	event.Status = status

	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling booking status event: %v", err)
		return
	}

	if err := s.updateWriter.WriteMessages(ctx, kafka.Message{Value: eventJSON}); err != nil {
		log.Printf("Error writing booking status event: %v", err)
	}
}

// GetVehicleSnapshot reads the vehicle slice the booking flow needs through
// a Redis cache with a 1h TTL, falling back to Postgres on a miss.
func (s *BookingService) GetVehicleSnapshot(ctx context.Context, vehicleID string) (models.VehicleSnapshot, error) {
	key := fmt.Sprintf("%s-snap", vehicleID)

	var snapshot models.VehicleSnapshot
	cached, err := s.redisClient.Get(ctx, key).Result()
	if err == nil && cached != "" {
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return snapshot, nil
		}
	}

	err = s.pool.QueryRow(ctx,
		"SELECT id, name, owner_id, price_per_hour, is_available FROM vehicles WHERE id = $1", vehicleID).
		Scan(&snapshot.ID, &snapshot.Name, &snapshot.OwnerID, &snapshot.PricePerHour, &snapshot.IsAvailable)
	if err != nil {
		return models.VehicleSnapshot{}, err
	}

	if data, err := json.Marshal(snapshot); err == nil {
		_ = s.redisClient.Set(ctx, key, data, 1*time.Hour).Err()
	}

	return snapshot, nil
}

func scanBookings(rows pgx.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		var notes pgtype.Text
		if err := rows.Scan(&b.ID, &b.FarmerID, &b.VehicleID, &b.VehicleName, &b.Date,
			&b.Time, &b.Duration, &b.FieldLocation, &b.Task, &b.Status, &b.TotalAmount,
			&notes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Notes = notes.String
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
