// Package outboxrepo stores serialized domain events until the relay job has
// published them.
package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OutboxMessageDTO is one pending or sent event.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventName   string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_outbox_pending,priority:2"`
	SentAt      *time.Time `gorm:"index:idx_outbox_pending,priority:1"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := slice.Map(messages, func(_ int, m ports.OutboxMessage) OutboxMessageDTO {
		return OutboxMessageDTO{
			ID:          m.ID.Bytes(),
			EventName:   m.EventName,
			AggregateID: m.AggregateID.Bytes(),
			Payload:     m.Payload,
			CreatedAt:   m.CreatedAt.UTC(),
			SentAt:      m.SentAt,
		}
	})
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchPending locks up to limit unsent rows with FOR UPDATE SKIP LOCKED, so
// concurrent relays inside transactions never pick the same message.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
		if err != nil {
			return nil, err
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			EventName:   dto.EventName,
			AggregateID: aggregateID,
			Payload:     dto.Payload,
			CreatedAt:   dto.CreatedAt,
			SentAt:      dto.SentAt,
		})
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids []kernel.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := slice.Map(ids, func(_ int, id kernel.UUID) uuid.UUID { return id.Bytes() })
	return r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("sent_at", sentAt.UTC()).Error
}
