package service

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	kafkaConfig "github.com/madhu363/harvest-wheels-link/lib/kafka"
	"github.com/madhu363/harvest-wheels-link/lib/models"
	"github.com/madhu363/harvest-wheels-link/lib/token"
	"github.com/madhu363/harvest-wheels-link/services/notification/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

var _ interfaces.NotificationInterface = (*NotificationService)(nil)

type NotificationService struct {
	userConnections sync.Map
	requestReader   *kafka.Reader
	updateReader    *kafka.Reader
	smsClient       *TwilioClient
	pushClient      *PushClient
	deliveryLog     *DeliveryLog
	shutdown        chan struct{}
	wg              sync.WaitGroup
}

func NewNotificationService(mongoClient *mongo.Client) *NotificationService {
	return &NotificationService{
		requestReader: kafkaConfig.InitKafkaReader("booking_requests", "notification_service_group"),
		updateReader:  kafkaConfig.InitKafkaReader("booking_updates", "notification_service_group"),
		smsClient:     NewTwilioClient(),
		pushClient:    NewPushClient(),
		deliveryLog:   NewDeliveryLog(mongoClient),
		shutdown:      make(chan struct{}),
	}
}

func (s *NotificationService) ConsumeBookingRequests() {
	s.wg.Add(1)
	defer s.wg.Done()

	for {
		select {
		case <-s.shutdown:
			log.Println("Stopping booking request consumer")
			return
		default:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			msg, err := s.requestReader.FetchMessage(ctx)
			cancel()

			if err != nil {
				if err == context.DeadlineExceeded {
					time.Sleep(1 * time.Second)
				} else {
					log.Printf("Error fetching booking request message: %v", err)
				}
				continue
			}

			var notification models.BookingRequestNotification
			if err := json.Unmarshal(msg.Value, &notification); err != nil {
				log.Printf("Error unmarshaling booking request: %v", err)
			} else {
				s.DispatchBookingRequest(notification)
			}

			if err := s.requestReader.CommitMessages(context.Background(), msg); err != nil {
				log.Printf("Error committing message: %v", err)
			}
		}
	}
}

func (s *NotificationService) ConsumeBookingUpdates() {
	s.wg.Add(1)
	defer s.wg.Done()

	for {
		select {
		case <-s.shutdown:
			log.Println("Stopping booking update consumer")
			return
		default:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			msg, err := s.updateReader.FetchMessage(ctx)
			cancel()

			if err != nil {
				if err == context.DeadlineExceeded {
					time.Sleep(1 * time.Second)
				} else {
					log.Printf("Error fetching booking update message: %v", err)
				}
				continue
			}

			var notification models.BookingStatusNotification
			if err := json.Unmarshal(msg.Value, &notification); err != nil {
				log.Printf("Error unmarshaling booking update: %v", err)
			} else {
				s.DispatchBookingUpdate(notification)
			}

			if err := s.updateReader.CommitMessages(context.Background(), msg); err != nil {
				log.Printf("Error committing message: %v", err)
			}
		}
	}
}

// DispatchBookingRequest fans a new booking out to the vehicle owner (push +
// live socket) and confirms to the farmer by SMS. Each channel fails or is
// skipped independently.
func (s *NotificationService) DispatchBookingRequest(n models.BookingRequestNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if n.OwnerMobile == "" {
		s.deliveryLog.Record(n.BookingID, n.OwnerID, "push", "", deliverySkipped, nil)
	} else {
		err := s.pushClient.SendPush(ctx, n.OwnerEmail, n.OwnerMobile, buildOwnerRequestMessage(n), "new_booking_request")
		if err != nil {
			log.Printf("Error sending push for booking %s: %v", n.BookingID, err)
			s.deliveryLog.Record(n.BookingID, n.OwnerID, "push", n.OwnerMobile, deliveryFailed, err)
		} else {
			s.deliveryLog.Record(n.BookingID, n.OwnerID, "push", n.OwnerMobile, deliverySent, nil)
		}
	}

	s.NotifyUser(n.OwnerID, n)

	if n.FarmerMobile == "" {
		s.deliveryLog.Record(n.BookingID, n.FarmerID, "sms", "", deliverySkipped, nil)
		return
	}
	if err := s.smsClient.SendSMS(ctx, n.FarmerMobile, buildFarmerConfirmationMessage(n)); err != nil {
		log.Printf("Error sending SMS for booking %s: %v", n.BookingID, err)
		s.deliveryLog.Record(n.BookingID, n.FarmerID, "sms", n.FarmerMobile, deliveryFailed, err)
		return
	}
	s.deliveryLog.Record(n.BookingID, n.FarmerID, "sms", n.FarmerMobile, deliverySent, nil)
}

// DispatchBookingUpdate tells the farmer the owner's decision.
func (s *NotificationService) DispatchBookingUpdate(n models.BookingStatusNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	s.NotifyUser(n.FarmerID, n)

	if n.FarmerMobile == "" {
		s.deliveryLog.Record(n.BookingID, n.FarmerID, "sms", "", deliverySkipped, nil)
		return
	}
	if err := s.smsClient.SendSMS(ctx, n.FarmerMobile, buildStatusMessage(n)); err != nil {
		log.Printf("Error sending status SMS for booking %s: %v", n.BookingID, err)
		s.deliveryLog.Record(n.BookingID, n.FarmerID, "sms", n.FarmerMobile, deliveryFailed, err)
		return
	}
	s.deliveryLog.Record(n.BookingID, n.FarmerID, "sms", n.FarmerMobile, deliverySent, nil)
}

func (s *NotificationService) NotifyUser(userID string, payload interface{}) {
	conn, ok := s.userConnections.Load(userID)
	if !ok {
		return
	}
	if err := conn.(*websocket.Conn).WriteJSON(payload); err != nil {
		log.Printf("Error sending live notification to user %s: %v", userID, err)
	}
}

func (s *NotificationService) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	// The first frame carries the authentication token.
	var authMessage struct {
		Token string `json:"token"`
	}

	if err := conn.ReadJSON(&authMessage); err != nil {
		log.Printf("Failed to read auth message: %v", err)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "Authentication required"))
		return
	}

	user, err := token.GetUserFromToken(authMessage.Token)
	if err != nil {
		log.Printf("Invalid token: %v", err)
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "Invalid authentication token"))
		return
	}

	userID := user.UserID
	if userID == "" {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "User ID required"))
		return
	}

	s.userConnections.Store(userID, conn)
	defer s.userConnections.Delete(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (s *NotificationService) HandleNotificationHistory(c *gin.Context) {
	authUser, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid auth token"})
		return
	}
	user := authUser.(models.UserRequest)

	records, err := s.deliveryLog.History(c.Request.Context(), user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching notification history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": records})
}

func (s *NotificationService) GracefulShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	close(s.shutdown)

	go func() {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("All consumers finished")
	case <-ctx.Done():
		log.Println("Shutdown timed out")
	}

	if err := s.requestReader.Close(); err != nil {
		log.Printf("Error closing booking request reader: %v", err)
	}
	if err := s.updateReader.Close(); err != nil {
		log.Printf("Error closing booking update reader: %v", err)
	}

	log.Println("Server exiting")
	os.Exit(0)
}
