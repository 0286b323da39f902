// Package notifications exposes the per-user notification feed. Other
// services insert notifications directly through the database layer; this
// package only covers reading and acknowledging them.
package notifications

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lealre/cafes-backend/internal/mongodb"
)

const defaultFeedLimit = 50

var ErrNotificationNotFound = errors.New("notification not found")

var ErrorMap = map[error]int{
	ErrNotificationNotFound: http.StatusNotFound,
}

type Notification struct {
	Id      string    `json:"id"`
	Type    string    `json:"type"`
	Content string    `json:"content"`
	Read    bool      `json:"read"`
	Date    time.Time `json:"date"`
}

type NotificationFeedResponse struct {
	Notifications []Notification `json:"notifications"`
}

func GetFeed(db *mongodb.DB, ctx context.Context, userId string, limit int, onlyUnread bool) ([]Notification, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}

	notificationsDb, err := db.GetNotificationsByUserId(ctx, userId, limit, onlyUnread)
	if err != nil {
		return nil, err
	}

	feed := make([]Notification, len(notificationsDb))
	for i, notificationDb := range notificationsDb {
		feed[i] = Notification{
			Id:      notificationDb.Id,
			Type:    notificationDb.Type,
			Content: notificationDb.Content,
			Read:    notificationDb.Read,
			Date:    notificationDb.Date,
		}
	}

	return feed, nil
}

func MarkRead(db *mongodb.DB, ctx context.Context, notificationId, userId string) error {
	if err := db.MarkNotificationRead(ctx, notificationId, userId); err != nil {
		if err == mongodb.ErrRecordNotFound {
			return ErrNotificationNotFound
		}
		return err
	}

	return nil
}

func Delete(db *mongodb.DB, ctx context.Context, notificationId, userId string) error {
	deletedCount, err := db.DeleteNotification(ctx, notificationId, userId)
	if err != nil {
		return err
	}
	if deletedCount == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
