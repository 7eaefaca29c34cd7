package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/models"
)

type preferencesService struct {
	replicas ReplicaSynchronizer
	queue    SyncQueue
}

// NewPreferencesService creates a PreferencesService writing through the
// given synchronizer. The chart theme is stored per mode under separate
// cache keys, so switching modes never leaks a theme across sessions.
func NewPreferencesService(replicas ReplicaSynchronizer, queue SyncQueue) PreferencesService {
	return &preferencesService{replicas: replicas, queue: queue}
}

func (s *preferencesService) ChartTheme(ctx context.Context, userID int64, mode models.Mode) (string, error) {
	doc, err := s.replicas.Fetch(ctx, models.CollectionPreferences, userID, mode)
	if err != nil {
		return "", err
	}
	return doc.ChartTheme, nil
}

func (s *preferencesService) SetChartTheme(ctx context.Context, userID int64, mode models.Mode, theme string) error {
	if theme == "" {
		return fmt.Errorf("%w: empty chart theme", ErrInvalidDataProvided)
	}

	err := s.replicas.Mutate(ctx, models.CollectionPreferences, userID, mode, func(doc models.Document) (models.Document, error) {
		doc.ChartTheme = theme
		return doc, nil
	})
	if err != nil {
		return err
	}

	if mode.IsOffline() {
		raw, err := json.Marshal(theme)
		if err != nil {
			return fmt.Errorf("encode chart theme: %w", err)
		}
		return s.queue.Enqueue(ctx, models.SyncAction{
			Kind:       models.SyncActionUpdate,
			Collection: models.CollectionPreferences,
			UserID:     userID,
			Record:     raw,
		})
	}
	return nil
}
