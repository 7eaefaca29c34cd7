package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-budget-sync/models"
)

type notificationService struct {
	replicas ReplicaSynchronizer
	queue    SyncQueue
}

// NewNotificationService creates a NotificationService writing through the
// given synchronizer.
func NewNotificationService(replicas ReplicaSynchronizer, queue SyncQueue) NotificationService {
	return &notificationService{replicas: replicas, queue: queue}
}

func (s *notificationService) Notify(ctx context.Context, userID int64, mode models.Mode, message string) (models.Notification, error) {
	if message == "" {
		return models.Notification{}, fmt.Errorf("%w: empty message", ErrInvalidDataProvided)
	}

	n := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.replicas.Append(ctx, models.CollectionNotifications, userID, mode, n); err != nil {
		return models.Notification{}, err
	}

	if mode.IsOffline() {
		raw, err := json.Marshal(n)
		if err != nil {
			return models.Notification{}, fmt.Errorf("encode notification record: %w", err)
		}
		if err := s.queue.Enqueue(ctx, models.SyncAction{
			Kind:       models.SyncActionAdd,
			Collection: models.CollectionNotifications,
			UserID:     userID,
			Record:     raw,
		}); err != nil {
			return models.Notification{}, err
		}
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID int64, mode models.Mode) ([]models.Notification, error) {
	doc, err := s.replicas.Fetch(ctx, models.CollectionNotifications, userID, mode)
	if err != nil {
		return nil, err
	}
	return doc.Notifications, nil
}
