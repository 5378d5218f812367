package repository

import (
	"fmt"

	"kidsguard/internal/database"
)

// monitoringTables are cleared in dependency order: progress references sessions
var monitoringTables = []string{"progress", "sessions", "alerts"}

// MonitoringStore owns the generated monitoring tables as a whole
type MonitoringStore struct {
	db *database.DB
}

// NewMonitoringStore creates a new monitoring store
func NewMonitoringStore(db *database.DB) *MonitoringStore {
	return &MonitoringStore{db: db}
}

// Clear removes all sessions, progress records and alerts in one transaction
func (s *MonitoringStore) Clear() error {
	err := s.db.WithTx(func(tx *database.Tx) error {
		return tx.DeleteAll(monitoringTables...)
	})
	if err != nil {
		return fmt.Errorf("failed to clear monitoring data: %w", err)
	}
	return nil
}
