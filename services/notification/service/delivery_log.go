package service

import (
	"context"
	"log"
	"time"

	"github.com/madhu363/harvest-wheels-link/lib/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	deliverySent    = "sent"
	deliveryFailed  = "failed"
	deliverySkipped = "skipped"
)

// DeliveryLog records every notification delivery attempt, so a skipped or
// failed best-effort send is still observable afterwards.
type DeliveryLog struct {
	collection *mongo.Collection
}

func NewDeliveryLog(client *mongo.Client) *DeliveryLog {
	return &DeliveryLog{
		collection: client.Database("harvest_wheels").Collection("notification_log"),
	}
}

func (d *DeliveryLog) Record(bookingID, userID, channel, recipient, status string, deliveryErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := models.DeliveryRecord{
		BookingID: bookingID,
		UserID:    userID,
		Channel:   channel,
		Recipient: recipient,
		Status:    status,
		SentAt:    time.Now().UTC(),
	}
	if deliveryErr != nil {
		record.Error = deliveryErr.Error()
	}

	if _, err := d.collection.InsertOne(ctx, record); err != nil {
		log.Printf("Error recording %s delivery for booking %s: %v", channel, bookingID, err)
	}
}

func (d *DeliveryLog) History(ctx context.Context, userID string) ([]models.DeliveryRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}}).SetLimit(50)
	cursor, err := d.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.DeliveryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
