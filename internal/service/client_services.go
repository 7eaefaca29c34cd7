package service

import (
	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/cache"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/validators"
)

// Cache keys owned by the client services. Replica keys are derived per
// collection and mode via models.Collection.CacheKey.
const (
	cacheKeyMode    = "offlineMode"
	cacheKeySession = "offlineUser"
	cacheKeyQueue   = "syncQueue"
)

// ClientServices aggregates every client-side service over one local cache
// store and one remote store adapter.
type ClientServices struct {
	Modes         ModeResolver
	Replicas      ReplicaSynchronizer
	Queue         SyncQueue
	Auth          ClientAuthService
	Budgets       BudgetService
	Transactions  TransactionService
	Notifications NotificationService
	Preferences   PreferencesService
	Stats         StatsService
	DrainJob      ClientDrainJob
}

func NewClientServices(cacheStore cache.Store, remote adapter.RemoteStore, log *logger.Logger) *ClientServices {
	validator := validators.NewRecordValidator()

	modes := NewModeResolver(cacheStore)
	replicas := NewReplicaSynchronizer(cacheStore, remote)
	queue := NewSyncQueue(cacheStore, remote)
	notifications := NewNotificationService(replicas, queue)

	return &ClientServices{
		Modes:         modes,
		Replicas:      replicas,
		Queue:         queue,
		Auth:          NewClientAuthService(cacheStore, remote, validator),
		Budgets:       NewBudgetService(replicas, queue, notifications, validator),
		Transactions:  NewTransactionService(replicas, queue, validator),
		Notifications: notifications,
		Preferences:   NewPreferencesService(replicas, queue),
		Stats:         NewStatsService(replicas),
		DrainJob:      NewClientDrainJob(queue, modes, log),
	}
}
