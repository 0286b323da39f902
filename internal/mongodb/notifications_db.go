package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ----- Types for the database -----

type NotificationDb struct {
	Id      string    `json:"id" bson:"_id"`
	UserId  string    `json:"userId" bson:"userId"`
	Type    string    `json:"type" bson:"type"`
	Content string    `json:"content" bson:"content"`
	Read    bool      `json:"read" bson:"read"`
	Date    time.Time `json:"date" bson:"date"`
}

// ----- Methods for the database -----

func (db *DB) AddNotification(ctx context.Context, notification NotificationDb) (NotificationDb, error) {
	coll := db.Collection(NotificationsCollection)

	notification.Id = uuid.NewString()
	if notification.Date.IsZero() {
		notification.Date = time.Now()
	}

	if _, err := coll.InsertOne(ctx, notification); err != nil {
		return NotificationDb{}, err
	}

	return notification, nil
}

// GetNotificationsByUserId returns the newest notifications first, capped at
// limit, optionally restricted to unread ones.
func (db *DB) GetNotificationsByUserId(ctx context.Context, userId string, limit int, onlyUnread bool) ([]NotificationDb, error) {
	coll := db.Collection(NotificationsCollection)

	filter := bson.M{"userId": userId}
	if onlyUnread {
		filter["read"] = false
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return []NotificationDb{}, err
	}
	defer cursor.Close(ctx)

	var notifications []NotificationDb
	if err := cursor.All(ctx, &notifications); err != nil {
		return []NotificationDb{}, err
	}

	return notifications, nil
}

func (db *DB) MarkNotificationRead(ctx context.Context, notificationId, userId string) error {
	coll := db.Collection(NotificationsCollection)

	filter := bson.M{"_id": notificationId, "userId": userId}
	update := bson.M{"$set": bson.M{"read": true}}

	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (db *DB) DeleteNotification(ctx context.Context, notificationId, userId string) (int64, error) {
	coll := db.Collection(NotificationsCollection)

	result, err := coll.DeleteOne(ctx, bson.M{"_id": notificationId, "userId": userId})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
