package models

import (
	"github.com/google/uuid"

	"github.com/jakupie/backend/internal/domain/rating"
)

// RatingModel is the persistence model for ratings. AdID is the zero UUID for
// ratings not tied to an ad.
type RatingModel struct {
	BaseModel
	RaterID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RatedUserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AdID          uuid.UUID `gorm:"type:uuid;index"`
	Score         int       `gorm:"not null"`
	Comment       string    `gorm:"size:500"`
	TransactionID string    `gorm:"size:100"`
	Type          string    `gorm:"size:10;not null"`
}

// TableName returns the table name for RatingModel
func (RatingModel) TableName() string {
	return "ratings"
}

// ToDomain converts RatingModel to a domain Rating
func (m *RatingModel) ToDomain() *rating.Rating {
	return &rating.Rating{
		BaseEntity:    m.BaseModel.ToDomain(),
		RaterID:       m.RaterID,
		RatedUserID:   m.RatedUserID,
		AdID:          m.AdID,
		Score:         m.Score,
		Comment:       m.Comment,
		TransactionID: m.TransactionID,
		Type:          rating.RatingType(m.Type),
	}
}

// RatingModelFromDomain converts a domain Rating to RatingModel
func RatingModelFromDomain(r *rating.Rating) *RatingModel {
	model := &RatingModel{
		RaterID:       r.RaterID,
		RatedUserID:   r.RatedUserID,
		AdID:          r.AdID,
		Score:         r.Score,
		Comment:       r.Comment,
		TransactionID: r.TransactionID,
		Type:          string(r.Type),
	}
	model.FromDomainBaseEntity(r.BaseEntity)
	return model
}
