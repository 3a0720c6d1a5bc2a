package crm

import (
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeClient = "Client"

// Event type constants
const (
	EventTypeClientCreated          = "ClientCreated"
	EventTypeClientUpdated          = "ClientUpdated"
	EventTypeClientKYCStatusChanged = "ClientKYCStatusChanged"
)

// ClientCreatedEvent is published when a new client is created
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(client *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		Name:            client.Name,
	}
}

// ClientUpdatedEvent is published when a client is updated
type ClientUpdatedEvent struct {
	shared.BaseDomainEvent
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	Email    string    `json:"email,omitempty"`
}

// NewClientUpdatedEvent creates a new ClientUpdatedEvent
func NewClientUpdatedEvent(client *Client) *ClientUpdatedEvent {
	return &ClientUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientUpdated, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		Name:            client.Name,
		Phone:           client.Phone,
		Email:           client.Email,
	}
}

// ClientKYCStatusChangedEvent is published when a client's KYC verification state changes
type ClientKYCStatusChangedEvent struct {
	shared.BaseDomainEvent
	ClientID  uuid.UUID `json:"client_id"`
	OldStatus KYCStatus `json:"old_status"`
	NewStatus KYCStatus `json:"new_status"`
}

// NewClientKYCStatusChangedEvent creates a new ClientKYCStatusChangedEvent
func NewClientKYCStatusChangedEvent(client *Client, oldStatus, newStatus KYCStatus) *ClientKYCStatusChangedEvent {
	return &ClientKYCStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientKYCStatusChanged, AggregateTypeClient, client.ID),
		ClientID:        client.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
