package listing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jakupie/backend/internal/domain/shared"
)

// ResponseStatus represents the lifecycle status of a seller's response
type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusAccepted ResponseStatus = "accepted"
	ResponseStatusRejected ResponseStatus = "rejected"
)

// ValidResponseStatus reports whether s is a known response status
func ValidResponseStatus(s string) bool {
	switch ResponseStatus(s) {
	case ResponseStatusPending, ResponseStatusAccepted, ResponseStatusRejected:
		return true
	}
	return false
}

// AdResponse is a seller's offer on a buyer's ad. Status starts pending and
// moves to accepted or rejected by the ad owner. Price is nil when the seller
// offered no amount.
type AdResponse struct {
	shared.BaseEntity
	AdID    uuid.UUID
	UserID  uuid.UUID
	Message string
	Price   *int
	Status  ResponseStatus
}

// NewAdResponse creates a pending response from userID on adID
func NewAdResponse(adID, userID uuid.UUID, message string, price *int) (*AdResponse, error) {
	if adID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_AD_ID", "Ad cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "Responder cannot be empty")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}
	if len(message) > 2000 {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot exceed 2000 characters")
	}
	if price != nil && *price < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &AdResponse{
		BaseEntity: shared.NewBaseEntity(),
		AdID:       adID,
		UserID:     userID,
		Message:    message,
		Price:      price,
		Status:     ResponseStatusPending,
	}, nil
}

// IsFrom reports whether the response was made by userID
func (r *AdResponse) IsFrom(userID uuid.UUID) bool {
	return r.UserID == userID
}

// SetStatus moves the response to the given status. Setting the status it
// already has is a no-op. Once accepted or rejected, a response only accepts
// a repeat of the same status.
func (r *AdResponse) SetStatus(status ResponseStatus) error {
	if !ValidResponseStatus(string(status)) {
		return shared.NewDomainError("INVALID_STATUS", "Unknown response status")
	}
	if r.Status == status {
		return nil
	}
	if r.Status != ResponseStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Response has already been "+string(r.Status))
	}

	r.Status = status
	r.Touch()

	return nil
}
