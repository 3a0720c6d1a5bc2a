// Package models holds persistence models for aggregates whose domain shape
// cannot be stored directly.
package models

import (
	"time"

	"github.com/estate/backend/internal/domain/approval"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ApprovalModel is the persistence shape of an approval.
// The type-discriminated payload is stored as a jsonb column and decoded
// back through the payload's declared type.
type ApprovalModel struct {
	ID          uuid.UUID               `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time               `gorm:"not null"`
	UpdatedAt   time.Time               `gorm:"not null"`
	Version     int                     `gorm:"not null;default:1"`
	Type        approval.ApprovalType   `gorm:"type:varchar(20);not null"`
	Status      approval.ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	RequesterID uuid.UUID               `gorm:"type:uuid;not null;index"`
	Payload     []byte                  `gorm:"type:jsonb;not null"`
	DecidedAt   *time.Time
}

// TableName returns the table name for GORM
func (ApprovalModel) TableName() string {
	return "approvals"
}

// ToDomain converts the model to a domain approval
func (m *ApprovalModel) ToDomain() (*approval.Approval, error) {
	payload, err := approval.DecodePayload(m.Type, m.Payload)
	if err != nil {
		return nil, err
	}

	return &approval.Approval{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Type:        m.Type,
		Status:      m.Status,
		RequesterID: m.RequesterID,
		Payload:     payload,
		DecidedAt:   m.DecidedAt,
	}, nil
}

// ApprovalModelFromDomain converts a domain approval to its persistence model
func ApprovalModelFromDomain(a *approval.Approval) (*ApprovalModel, error) {
	payload, err := approval.EncodePayload(a.Payload)
	if err != nil {
		return nil, err
	}

	return &ApprovalModel{
		ID:          a.ID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Version:     a.Version,
		Type:        a.Type,
		Status:      a.Status,
		RequesterID: a.RequesterID,
		Payload:     payload,
		DecidedAt:   a.DecidedAt,
	}, nil
}
