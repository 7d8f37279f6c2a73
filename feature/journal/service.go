package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pipeline-hud/core/database"
	"pipeline-hud/core/session"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
	maxDetail    = 512
)

// ErrDisabled is returned when the journal has no database.
var ErrDisabled = errors.New("sync journal is disabled")

// Service reads and writes journal events.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new journal service. db may be nil.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// Enabled reports whether a database is attached.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Migrate creates or updates the journal table and verifies its columns.
func (s *Service) Migrate() error {
	if s.db == nil {
		return ErrDisabled
	}
	if err := s.db.AutoMigrate(&Event{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	missing, err := database.MissingColumns(s.db, TableName, Columns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", TableName, missing)
	}
	return nil
}

// Record stores one sync loop transition.
func (s *Service) Record(ctx context.Context, entry session.Entry) error {
	if s.db == nil {
		return ErrDisabled
	}

	now := s.now().UTC()
	detail := entry.Detail
	if len(detail) > maxDetail {
		detail = detail[:maxDetail]
	}
	ev := Event{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Kind:      entry.Kind,
		Epoch:     entry.Epoch,
		ConnID:    entry.ConnID,
		Detail:    detail,
		CreatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return fmt.Errorf("failed to record %s event: %w", entry.Kind, err)
	}
	return nil
}

// Query selects journal events.
type Query struct {
	Kind  string
	Limit int
}

// List returns the most recent events first.
func (s *Service) List(ctx context.Context, q Query) ([]Event, error) {
	if s.db == nil {
		return nil, ErrDisabled
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	tx := s.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if q.Kind != "" {
		tx = tx.Where("kind = ?", q.Kind)
	}

	var events []Event
	if err := tx.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}
